package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByCodeQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByCodeQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderByCodeQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderByCodeQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetOrderByCodeQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderByCodeQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderByCodeQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsSnapshot() {
	ctx := context.Background()

	o, err := newPendingOrder(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetOrderByCodeQuery(o.Code())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(o.Code().String(), result.Code)
	suite.Equal(order.Pending.String(), result.Status)
	suite.Equal("Alice", result.CustomerName)
	suite.Equal("+390001234567", result.Phone)
	suite.Equal("Via Roma 1", result.DeliveryAddress)
	suite.Equal(order.InitialVersion, result.Version)
	suite.Require().Len(result.Items, 2)
	suite.Equal("Margherita", result.Items[0].Name)
	suite.Equal("Diavola", result.Items[1].Name)
}

func (suite *GetOrderByCodeQueryHandlerTestSuite) TestHandle_UnknownCode_ReturnsNil() {
	query, err := queries.NewGetOrderByCodeQuery(kernel.NewOrderCode())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result)
}

func (suite *GetOrderByCodeQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByCodeQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrderByCodeQuery constructor")
}

func TestGetOrderByCodeQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByCodeQueryHandlerTestSuite))
}

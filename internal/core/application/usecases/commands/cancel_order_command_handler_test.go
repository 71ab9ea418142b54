package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_PendingOrder_Canceled(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	saved := savedCopy(t, existing, order.Canceled)

	cmd, err := commands.NewCancelOrderCommand(existing.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(saved, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Canceled, canceled.Status())
	require.Equal(t, existing.Version()+1, canceled.Version())

	// The aggregate sent to the store carries the transition
	require.Equal(t, order.Canceled, existing.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

// Customers cannot withdraw an order the preparer has already claimed, even
// though the kitchen itself could still abort it.
func TestCancelOrderCommandHandler_Handle_InPreparation_NotAllowed(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.InPreparation)

	cmd, err := commands.NewCancelOrderCommand(existing.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.Nil(t, canceled)
	require.ErrorIs(t, err, errs.ErrModificationNotAllowed)

	// No save attempted, the order stays as loaded
	require.Equal(t, order.InPreparation, existing.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ReadyOrder_NotAllowed(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Ready)

	cmd, err := commands.NewCancelOrderCommand(existing.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrModificationNotAllowed)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)

	cmd, err := commands.NewCancelOrderCommand(existing.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).
			Return(nil, errs.NewObjectNotFoundError("order", existing.Code().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// The customer read the order while it was still PENDING, but the preparer
// claimed it before the cancel write landed. The conditional save loses and
// the conflict surfaces so the customer can reload.
func TestCancelOrderCommandHandler_Handle_LostRaceAgainstTake(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)

	cmd, err := commands.NewCancelOrderCommand(existing.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).
			Return(nil, errs.NewConcurrencyConflictError("order", existing.Code().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.Nil(t, canceled)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

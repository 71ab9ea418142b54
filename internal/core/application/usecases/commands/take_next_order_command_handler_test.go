package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTakeNextOrderCommand_Validate(t *testing.T) {
	cmd := commands.NewTakeNextOrderCommand()
	require.NoError(t, cmd.Validate())

	var zero commands.TakeNextOrderCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrTakeNextOrderCommandIsNotConstructed)
}

func TestTakeNextOrderCommandHandler_Handle_ClaimsOldestPending(t *testing.T) {
	ctx := t.Context()
	oldest := storedOrder(t, order.Pending)
	saved := savedCopy(t, oldest, order.InPreparation)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsWithStatus", mock.Anything, order.InPreparation).Return(false, nil).Once(),
		repo.On("GetFirstPendingByCreatedAt", mock.Anything).Return(oldest, nil).Once(),
		repo.On("Claim", mock.Anything, oldest).Return(saved, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeNextOrderCommandHandler(factory)
	taken, err := h.Handle(ctx, commands.NewTakeNextOrderCommand())
	require.NoError(t, err)
	require.Equal(t, oldest.Code(), taken.Code())
	require.Equal(t, order.InPreparation, taken.Status())
	require.Equal(t, oldest.Version()+1, taken.Version())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTakeNextOrderCommandHandler_Handle_SlotAlreadyHeld(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsWithStatus", mock.Anything, order.InPreparation).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeNextOrderCommandHandler(factory)
	taken, err := h.Handle(ctx, commands.NewTakeNextOrderCommand())
	require.Nil(t, taken)
	require.ErrorIs(t, err, errs.ErrModificationNotAllowed)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTakeNextOrderCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsWithStatus", mock.Anything, order.InPreparation).Return(false, nil).Once(),
		repo.On("GetFirstPendingByCreatedAt", mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", "first pending")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeNextOrderCommandHandler(factory)
	taken, err := h.Handle(ctx, commands.NewTakeNextOrderCommand())
	require.Nil(t, taken)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_AppliesOnlyPresentFields(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	originalPhone := existing.Phone()
	saved := savedCopy(t, existing, order.Pending)

	name := "Luigi Verdi"
	cmd, err := commands.NewUpdateOrderCommand(existing.Code(), &name, nil, nil, nil)
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

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Same(t, saved, updated)

	// The aggregate passed to Update carries the new name and untouched phone
	require.Equal(t, "Luigi Verdi", existing.CustomerName())
	require.Equal(t, originalPhone, existing.Phone())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	name := "Luigi Verdi"
	cmd, err := commands.NewUpdateOrderCommand(existing.Code(), &name, nil, nil, nil)
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

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotEditableAfterTake(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.InPreparation)
	name := "Luigi Verdi"
	cmd, err := commands.NewUpdateOrderCommand(existing.Code(), &name, nil, nil, nil)
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

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrModificationNotAllowed)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	name := "Luigi Verdi"
	cmd, err := commands.NewUpdateOrderCommand(existing.Code(), &name, nil, nil, nil)
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

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_MarkReady(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.InPreparation)
	saved := savedCopy(t, existing, order.Ready)

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.Ready)
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

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Ready, updated.Status())
	require.Equal(t, existing.Version()+1, updated.Version())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

// Advancing a PENDING order to IN_PREPARATION through the general status
// operation must go through the store's atomic claim, not the plain save,
// so the single-slot rule cannot be sidestepped.
func TestUpdateOrderStatusCommandHandler_Handle_InPreparationTarget_UsesClaim(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)
	saved := savedCopy(t, existing, order.InPreparation)

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.InPreparation)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once(),
		repo.On("Claim", mock.Anything, existing).Return(saved, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.InPreparation, updated.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InPreparationTarget_SlotHeld(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Pending)

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.InPreparation)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once(),
		repo.On("Claim", mock.Anything, existing).
			Return(nil, errs.NewModificationNotAllowedError("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrModificationNotAllowed)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Completed)

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.Pending)
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

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// The completed order is untouched
	require.Equal(t, order.Completed, existing.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// Re-applying the current status is an idempotent no-op that still saves.
func TestUpdateOrderStatusCommandHandler_Handle_SameStatus_NoOp(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, order.Ready)
	saved := savedCopy(t, existing, order.Ready)

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.Ready)
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

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Ready, updated.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

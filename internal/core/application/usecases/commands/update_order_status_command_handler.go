package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a general preparer-side status
// advance after validating it against the transition table.
//
// A request targeting IN_PREPARATION is routed through the store's atomic
// Claim so the single-slot admission rule cannot be bypassed via this
// operation; every other target uses the plain conditional save.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status advances.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, validates and applies the requested transition, and
// conditionally saves. Returns the post-save snapshot. An undefined target
// status never reaches this point: command construction already rejects it.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return nil, err
	}

	claiming := cmd.NewStatus() == order.InPreparation && existing.Status() != order.InPreparation

	if err = existing.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	var updated *order.Order
	if claiming {
		updated, err = repo.Claim(ctx, existing)
	} else {
		updated, err = repo.Update(ctx, existing)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

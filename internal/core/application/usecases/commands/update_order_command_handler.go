package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a customer's partial edit to a pending order.
// Only the fields present on the command are touched; the aggregate rejects
// the edit with errs.ErrModificationNotAllowed once the order has left PENDING.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for customer order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the present fields, and conditionally saves.
// Returns the post-save snapshot, errs.ErrObjectNotFound when the code matches
// nothing, errs.ErrModificationNotAllowed when the order is no longer editable,
// or errs.ErrConcurrencyConflict when a concurrent writer advanced the version.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if name := cmd.CustomerName(); name != nil {
		if err = existing.ChangeCustomerName(*name); err != nil {
			return nil, err
		}
	}
	if phone := cmd.Phone(); phone != nil {
		if err = existing.ChangePhone(*phone); err != nil {
			return nil, err
		}
	}
	if address := cmd.DeliveryAddress(); address != nil {
		if err = existing.ChangeDeliveryAddress(*address); err != nil {
			return nil, err
		}
	}
	if items := cmd.Items(); items != nil {
		if err = existing.ReplaceItems(items); err != nil {
			return nil, err
		}
	}

	updated, err := repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

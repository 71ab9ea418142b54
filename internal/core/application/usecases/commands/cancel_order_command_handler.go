package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// CancelOrderCommandHandler withdraws an order on the customer's behalf.
//
// Customers may cancel only while the order is still PENDING; once the
// preparer has taken it, cancellation is rejected with
// errs.ErrModificationNotAllowed even though the transition table would
// permit IN_PREPARATION -> CANCELED for the kitchen itself.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, verifies customer editability, applies the CANCELED
// transition, and conditionally saves. Returns the post-save snapshot.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if !existing.Status().CanBeModifiedByCustomer() {
		return nil, errs.NewModificationNotAllowedErrorWithCause(
			"order",
			errors.New("order cannot be canceled in status "+existing.Status().String()),
		)
	}

	if err = existing.Cancel(); err != nil {
		return nil, err
	}

	canceled, err := repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return canceled, nil
}

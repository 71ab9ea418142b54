package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// TakeOrderCommandHandler lets the preparer claim a specific order.
//
// The single-slot admission rule (at most one order IN_PREPARATION
// system-wide) is enforced in two layers: a cheap existence pre-check that
// produces a fast, friendly rejection, and the store's atomic Claim write
// that remains correct when two preparer calls race past the pre-check.
// Only the atomic write is load-bearing.
//
// Example:
//
//	handler := NewTakeOrderCommandHandler(uowFactory)
//	cmd, _ := NewTakeOrderCommand(code)
//	taken, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrModificationNotAllowed):
//	    // another order is active, or this one is not PENDING
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // order changed concurrently, reload and retry
//	case err != nil:
//	    // storage failure
//	default:
//	    fmt.Printf("now preparing %s", taken.Code())
//	}
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeOrderCommandHandler creates a handler for claiming specific orders.
func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the order with the given code for preparation and returns the
// post-save snapshot.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (*order.Order, error) {
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

	busy, err := repo.ExistsWithStatus(ctx, order.InPreparation)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, errs.NewModificationNotAllowedErrorWithCause(
			"order",
			errors.New("another order is currently in preparation"),
		)
	}

	if err = existing.Take(); err != nil {
		return nil, err
	}

	taken, err := repo.Claim(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return taken, nil
}

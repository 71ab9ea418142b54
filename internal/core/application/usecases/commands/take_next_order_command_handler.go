package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// TakeNextOrderCommandHandler lets the preparer claim the oldest pending
// order: the PENDING order with the smallest creation time, ties broken by
// the store's natural key order.
//
// Shares the admission layering of TakeOrderCommandHandler: existence
// pre-check for a friendly rejection, atomic Claim write for correctness
// under concurrent take attempts.
type TakeNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeNextOrderCommandHandler creates a handler for claiming the next pending order.
func NewTakeNextOrderCommandHandler(uowFactory OrderUoWFactory) TakeNextOrderCommandHandler {
	return TakeNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the oldest pending order and returns the post-save snapshot.
// Returns errs.ErrObjectNotFound when the pending queue is empty and
// errs.ErrModificationNotAllowed when another order is already in preparation.
func (h TakeNextOrderCommandHandler) Handle(ctx context.Context, cmd TakeNextOrderCommand) (*order.Order, error) {
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

	next, err := repo.GetFirstPendingByCreatedAt(ctx)
	if err != nil {
		return nil, err
	}

	if err = next.Take(); err != nil {
		return nil, err
	}

	taken, err := repo.Claim(ctx, next)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return taken, nil
}

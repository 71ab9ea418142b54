package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All external lookups go through the business code; listings are always
// ordered by creation time ascending.
//
// Mutating methods implement optimistic concurrency: saves are conditional on
// the version the aggregate was read at, and the persisted version advances by
// exactly one on success. On a stale version the save fails with
// errs.ErrConcurrencyConflict and leaves the stored aggregate unchanged.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and its code must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update conditionally saves changes to an existing order. The write
	// applies only if the persisted version still matches the version the
	// aggregate was read at. Returns the refreshed aggregate carrying the
	// advanced version, or errs.ErrConcurrencyConflict when another writer
	// got there first.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Claim atomically moves the order into preparation: a single conditional
	// write that succeeds only if the version still matches AND no other
	// order currently holds the IN_PREPARATION status. This closes the
	// check-then-act gap between "is anyone preparing?" and "take this
	// order" under concurrent callers.
	//
	// The aggregate passed in must already carry the InPreparation status.
	// Returns the refreshed aggregate on success, errs.ErrModificationNotAllowed
	// when the preparation slot is held by another order, or
	// errs.ErrConcurrencyConflict when the row version moved.
	Claim(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// GetByCode retrieves an order by its business code.
	// Returns errs.ErrObjectNotFound if no order matches.
	GetByCode(ctx context.Context, code kernel.OrderCode) (*order.Order, error)

	// GetFirstPendingByCreatedAt retrieves the oldest PENDING order, ties
	// broken by the store's natural key order. Used by take-next.
	// Returns errs.ErrObjectNotFound when the pending queue is empty.
	GetFirstPendingByCreatedAt(ctx context.Context) (*order.Order, error)

	// ExistsWithStatus reports whether any order currently holds the given status.
	ExistsWithStatus(ctx context.Context, status order.Status) (bool, error)

	// GetAll retrieves every order, ordered by creation time ascending.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllWithStatus retrieves every order in the given status, ordered by
	// creation time ascending.
	GetAllWithStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}

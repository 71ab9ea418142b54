package orderrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Saves are conditional on the version the aggregate was read at. A successful
// save advances the stored version by exactly one and the repository returns a
// freshly loaded aggregate carrying it; the caller's copy is never mutated.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update conditionally saves changes to an existing order. The row is written
// only if its version still matches the version the aggregate was read at;
// otherwise the save fails with a ConcurrencyConflictError and the store is
// left unchanged. Line items are replaced wholesale alongside the row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":           dto.Status,
			"customer_name":    dto.CustomerName,
			"phone":            dto.Phone,
			"delivery_address": dto.DeliveryAddress,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.classifyMissedWrite(ctx, dto, false)
	}

	if err := r.replaceItems(ctx, dto); err != nil {
		return nil, err
	}

	return r.refresh(ctx, aggregate, dto.ID)
}

// Claim atomically moves the order into preparation. A single conditional
// UPDATE guards both the optimistic lock and the system-wide rule that at most
// one order is IN_PREPARATION. The NOT EXISTS subquery rejects a claim while
// another order visibly holds the slot; the partial unique index on status
// catches the interleaving where two concurrent claims both pass that check.
// Either way at most one claim succeeds.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if aggregate.Status() != order.InPreparation {
		return nil, errs.NewValueIsInvalidError("order status")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET status = ?, version = version + 1
		WHERE id = ? AND version = ?
		  AND NOT EXISTS (
		      SELECT 1 FROM orders held
		      WHERE held.status = ? AND held.id <> orders.id
		  )`,
		order.InPreparation.String(), dto.ID, dto.Version, order.InPreparation.String())
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, errs.NewModificationNotAllowedErrorWithCause(
				"order",
				errors.New("another order is currently in preparation"),
			)
		}
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.classifyMissedWrite(ctx, dto, true)
	}

	return r.refresh(ctx, aggregate, dto.ID)
}

// GetByCode retrieves an order by its business code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code kernel.OrderCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPendingByCreatedAt retrieves the oldest PENDING order, ties broken
// by id so take-next is deterministic.
func (r *GormOrderRepository) GetFirstPendingByCreatedAt(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at, id").
		First(&dto, "status = ?", order.Pending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first pending")
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithStatus reports whether any order currently holds the given status.
func (r *GormOrderRepository) ExistsWithStatus(ctx context.Context, status order.Status) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every order, ordered by creation time ascending.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllWithStatus retrieves every order in the given status, ordered by
// creation time ascending.
func (r *GormOrderRepository) GetAllWithStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at, id").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// replaceItems swaps the stored line items for the order. Items are immutable
// value rows, so the old list is deleted and the new one inserted.
func (r *GormOrderRepository) replaceItems(ctx context.Context, dto OrderDTO) error {
	err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error
	if err != nil {
		return err
	}

	items := make([]ItemDTO, len(dto.Items))
	copy(items, dto.Items)
	return r.db.WithContext(ctx).Create(&items).Error
}

// classifyMissedWrite explains a conditional write that affected zero rows.
// The row may be gone, its version may have moved, or (for claims only) the
// preparation slot may be held.
//
// For claims the slot check runs first: every loser of a claim race reports
// the busy slot, including racers that targeted the same order the winner
// just moved into preparation. The version check alone would misreport those
// as plain write conflicts.
func (r *GormOrderRepository) classifyMissedWrite(ctx context.Context, dto OrderDTO, claiming bool) error {
	var current OrderDTO
	err := r.db.WithContext(ctx).First(&current, "id = ?", dto.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", dto.Code)
		}
		return err
	}

	if claiming {
		var held int64
		err = r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("status = ?", order.InPreparation.String()).
			Count(&held).Error
		if err != nil {
			return err
		}
		if held > 0 {
			return errs.NewModificationNotAllowedErrorWithCause(
				"order",
				errors.New("another order is currently in preparation"),
			)
		}
	}

	return errs.NewConcurrencyConflictError("order", dto.Code)
}

// refresh loads the post-save state of the order and tracks it.
func (r *GormOrderRepository) refresh(ctx context.Context, aggregate *order.Order, id uuid.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error; err != nil {
		return nil, err
	}

	refreshed, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), refreshed)
	return refreshed, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

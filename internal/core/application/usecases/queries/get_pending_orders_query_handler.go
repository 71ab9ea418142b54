package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads the pending queue from the database,
// ordered by creation time ascending so the head of the list is what
// take-next would claim.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending-queue queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all PENDING orders, oldest first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at, id
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(orderRows))
	for i, row := range orderRows {
		ids[i] = row.id
	}

	items, err := loadItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderQueryResponse, 0, len(orderRows))
	for _, row := range orderRows {
		responses = append(responses, toResponse(row, items[row.id]))
	}

	return responses, nil
}

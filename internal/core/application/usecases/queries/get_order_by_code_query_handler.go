package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler reads a single order projection by business code.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for order-by-code lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle executes the lookup. An absent code is a legitimate empty result on
// this read path, not a failure: the handler returns (nil, nil).
func (h GetOrderByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByCodeQuery,
) (*OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE code = ?
	`, query.Code().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orderRows) == 0 {
		return nil, nil
	}

	row := orderRows[0]
	items, err := loadItems(ctx, h.db, []uuid.UUID{row.id})
	if err != nil {
		return nil, err
	}

	response := toResponse(row, items[row.id])
	return &response, nil
}

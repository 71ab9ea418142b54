package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the full order board from the database,
// ordered by creation time ascending.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for full-board queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order, oldest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at, id
	`).Rows()
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

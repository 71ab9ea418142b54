// Package queries contains the read-only listings of the order workflow.
// Query handlers bypass the aggregate and read projection rows directly
// through the database handle; all listings are ordered by creation time
// ascending, ties broken by primary key.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderQueryResponse is the read-model projection of an order.
type OrderQueryResponse struct {
	Code            string
	Status          string
	CustomerName    string
	Phone           string
	DeliveryAddress string
	Items           []OrderItemQueryResponse
	CreatedAt       time.Time
	Version         int64
}

// OrderItemQueryResponse is the read-model projection of a single line item.
type OrderItemQueryResponse struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// orderRow is the scan target for the orders table.
type orderRow struct {
	id              uuid.UUID
	code            string
	status          string
	customerName    string
	phone           string
	deliveryAddress string
	createdAt       time.Time
	version         int64
}

const orderColumns = `id, code, status, customer_name, phone, delivery_address, created_at, version`

func scanOrderRows(rows *sql.Rows) ([]orderRow, error) {
	var result []orderRow
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(
			&row.id,
			&row.code,
			&row.status,
			&row.customerName,
			&row.phone,
			&row.deliveryAddress,
			&row.createdAt,
			&row.version,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// loadItems fetches the line items for the given order ids in one query and
// groups them by order id, preserving insertion order within each order.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemQueryResponse, error) {
	items := make(map[uuid.UUID][]OrderItemQueryResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemQueryResponse
		if err = rows.Scan(&orderID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}

func toResponse(row orderRow, items []OrderItemQueryResponse) OrderQueryResponse {
	return OrderQueryResponse{
		Code:            row.code,
		Status:          row.status,
		CustomerName:    row.customerName,
		Phone:           row.phone,
		DeliveryAddress: row.deliveryAddress,
		Items:           items,
		CreatedAt:       row.createdAt,
		Version:         row.version,
	}
}

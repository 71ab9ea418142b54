// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The business code is unique and version carries the optimistic lock.
//
// The partial unique index on status permits at most one IN_PREPARATION row.
// The claim UPDATE already checks the slot, but under READ COMMITTED two
// concurrent claims can both pass that subquery; the index is what makes the
// single-slot rule hold no matter how the writes interleave.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"uniqueIndex"`
	Status          string    `gorm:"index;uniqueIndex:uniq_order_in_preparation,where:status = 'IN_PREPARATION'"`
	CustomerName    string
	Phone           string
	DeliveryAddress string
	CreatedAt       time.Time `gorm:"index"`
	Version         int64
	Items           []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the order_items table.
// Rows are insert-only: replacing an order's items deletes the old
// rows and inserts the new list.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Code:            aggregate.Code().String(),
		Status:          aggregate.Status().String(),
		CustomerName:    aggregate.CustomerName(),
		Phone:           aggregate.Phone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and version using RestoreOrder,
// so corrupt rows surface as validation errors instead of live aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		code,
		status,
		dto.CustomerName,
		dto.Phone,
		dto.DeliveryAddress,
		items,
		dto.CreatedAt,
		dto.Version,
	)
}

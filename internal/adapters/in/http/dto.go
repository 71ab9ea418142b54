package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is the wire representation of a single order line.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerName    string      `json:"customerName"`
	Phone           string      `json:"phone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Items           []OrderItem `json:"items"`
}

// UpdateOrderRequest is the body of PUT /api/orders/:code. Absent fields are
// left untouched; a present items list replaces the existing one wholesale.
type UpdateOrderRequest struct {
	CustomerName    *string     `json:"customerName"`
	Phone           *string     `json:"phone"`
	DeliveryAddress *string     `json:"deliveryAddress"`
	Items           []OrderItem `json:"items"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/preparer/orders/:code/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the wire representation of an order snapshot. Version lets
// clients detect that a reread is needed after a 409.
type OrderResponse struct {
	Code            string      `json:"code"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customerName"`
	Phone           string      `json:"phone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
	Version         int64       `json:"version"`
}

// toOrderItems converts wire items to validated domain line items.
func toOrderItems(items []OrderItem) ([]order.Item, error) {
	converted := make([]order.Item, 0, len(items))
	for _, item := range items {
		domainItem, err := order.NewItem(item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		converted = append(converted, domainItem)
	}
	return converted, nil
}

// fromAggregate maps a post-save order snapshot to its wire representation.
func fromAggregate(o *order.Order) OrderResponse {
	domainItems := o.Items()
	items := make([]OrderItem, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItem{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderResponse{
		Code:            o.Code().String(),
		Status:          o.Status().String(),
		CustomerName:    o.CustomerName(),
		Phone:           o.Phone(),
		DeliveryAddress: o.DeliveryAddress(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		Version:         o.Version(),
	}
}

// fromProjection maps a read-model row to its wire representation.
func fromProjection(projection queries.OrderQueryResponse) OrderResponse {
	items := make([]OrderItem, 0, len(projection.Items))
	for _, item := range projection.Items {
		items = append(items, OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return OrderResponse{
		Code:            projection.Code,
		Status:          projection.Status,
		CustomerName:    projection.CustomerName,
		Phone:           projection.Phone,
		DeliveryAddress: projection.DeliveryAddress,
		Items:           items,
		CreatedAt:       projection.CreatedAt,
		Version:         projection.Version,
	}
}

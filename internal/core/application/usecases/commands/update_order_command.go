package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNoUpdateFields = errs.NewValueIsRequiredError("at least one field to update")
)

// UpdateOrderCommand represents a customer's partial edit of a pending order.
// Each mutable field is independently optional: nil pointers mean "leave
// untouched", while a present-but-empty value is a validation error at apply
// time. Items, when present, fully replace the existing item list.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	code            kernel.OrderCode
	customerName    *string
	phone           *string
	deliveryAddress *string
	items           []order.Item

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial-update command for the order with
// the given code. At least one of the optional fields must be present; a
// present items list must be non-empty and contain only constructed items.
func NewUpdateOrderCommand(
	code kernel.OrderCode,
	customerName *string,
	phone *string,
	deliveryAddress *string,
	items []order.Item,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.code = code

	if customerName == nil && phone == nil && deliveryAddress == nil && items == nil {
		return UpdateOrderCommand{}, ErrNoUpdateFields
	}

	if items != nil {
		if len(items) == 0 {
			return UpdateOrderCommand{}, errs.NewValueIsRequiredError("items")
		}
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return UpdateOrderCommand{}, err
			}
		}
		cmd.items = make([]order.Item, len(items))
		copy(cmd.items, items)
	}

	cmd.customerName = customerName
	cmd.phone = phone
	cmd.deliveryAddress = deliveryAddress

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Code returns the business code of the order to update.
func (c UpdateOrderCommand) Code() kernel.OrderCode {
	return c.code
}

// CustomerName returns the new customer name, or nil when untouched.
func (c UpdateOrderCommand) CustomerName() *string {
	return c.customerName
}

// Phone returns the new phone number, or nil when untouched.
func (c UpdateOrderCommand) Phone() *string {
	return c.phone
}

// DeliveryAddress returns the new delivery address, or nil when untouched.
func (c UpdateOrderCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

// Items returns the replacement item list, or nil when untouched.
func (c UpdateOrderCommand) Items() []order.Item {
	if c.items == nil {
		return nil
	}
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

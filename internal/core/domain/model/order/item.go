package order

import (
	"errors"

	"pizzeria/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// maxItemQuantity bounds a single line item. Orders needing more repeat the line.
const maxItemQuantity = 100

// Item is a single line of an order: a product name, how many, and the unit
// price agreed at ordering time. Items are value objects; replacing the order's
// items means swapping the whole list, never editing one in place.
type Item struct {
	name      string
	quantity  int
	unitPrice float64

	isConstructed bool
}

// NewItem creates a validated line item.
//
// Rules:
//   - name must not be empty
//   - quantity must be between 1 and 100
//   - unit price must not be negative
func NewItem(name string, quantity int, unitPrice float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units of the product were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price agreed at ordering time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("item unit price")
	}
	i.unitPrice = unitPrice
	return nil
}

package order

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// InitialVersion is the version a freshly created order carries before its
// first save. The store advances it by exactly one on every successful
// conditional save.
const InitialVersion int64 = 1

// Order represents a pizza order in the system. It is the aggregate root that
// manages the order lifecycle from creation through preparation to completion
// or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid order code
//   - Customer name, phone, and delivery address must not be empty
//   - Items list is never empty and contains only constructed items
//   - Status transitions follow the static transition table
//   - Version strictly increases with each successful persisted mutation
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The version field is never mutated in
// memory; the store returns a refreshed aggregate after a successful save.
type Order struct {
	id   kernel.UUID
	code kernel.OrderCode

	status Status

	customerName    string
	phone           string
	deliveryAddress string

	items []Item

	createdAt time.Time
	version   int64

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with InitialVersion.
// This is the creation path for customer-submitted orders; it is not a status
// transition, so no transition validation applies.
//
// Parameters:
//   - id: unique identifier for the order
//   - code: the human-facing business key, generated by the caller
//   - customerName, phone, deliveryAddress: contact details, all required
//   - items: at least one validated line item
//   - createdAt: creation timestamp, used to order the pending queue
//
// Returns the constructed order, or a validation error if any argument
// violates an invariant.
func NewOrder(
	id kernel.UUID,
	code kernel.OrderCode,
	customerName string,
	phone string,
	deliveryAddress string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		version:       InitialVersion,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and version, but applies the same field validation
// so corrupt rows never become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	code kernel.OrderCode,
	status Status,
	customerName string,
	phone string,
	deliveryAddress string,
	items []Item,
	createdAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setStatus(status),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's human-facing business key.
func (o *Order) Code() kernel.OrderCode {
	return o.code
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the customer's phone number.
func (o *Order) Phone() string {
	return o.phone
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the order's line items.
// The slice is copied so callers cannot mutate the aggregate's state.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the version the aggregate was read at. It advances only
// through the store's conditional save, never in memory.
func (o *Order) Version() int64 {
	return o.version
}

// ChangeCustomerName updates the customer's name.
// Allowed only while the order is still customer-editable (Pending).
func (o *Order) ChangeCustomerName(name string) error {
	if err := o.ensureCustomerEditable(); err != nil {
		return err
	}
	return o.setCustomerName(name)
}

// ChangePhone updates the customer's phone number.
// Allowed only while the order is still customer-editable (Pending).
func (o *Order) ChangePhone(phone string) error {
	if err := o.ensureCustomerEditable(); err != nil {
		return err
	}
	return o.setPhone(phone)
}

// ChangeDeliveryAddress updates the delivery address.
// Allowed only while the order is still customer-editable (Pending).
func (o *Order) ChangeDeliveryAddress(address string) error {
	if err := o.ensureCustomerEditable(); err != nil {
		return err
	}
	return o.setDeliveryAddress(address)
}

// ReplaceItems swaps the entire item list. Partial edits of individual lines
// are not supported; the new list fully replaces the old one and must not be
// empty. Allowed only while the order is still customer-editable (Pending).
func (o *Order) ReplaceItems(items []Item) error {
	if err := o.ensureCustomerEditable(); err != nil {
		return err
	}
	return o.setItems(items)
}

// Cancel transitions the order to Canceled.
//
// The transition table permits cancellation from Pending and InPreparation;
// whether a particular caller is allowed to cancel (customers only while
// Pending) is workflow policy enforced by the command handlers.
func (o *Order) Cancel() error {
	return o.changeStatus(Canceled)
}

// Take transitions the order from Pending to InPreparation, claiming it for
// the preparer.
//
// Returns a ModificationNotAllowedError when the order is not takeable.
// The system-wide single-slot rule (at most one order InPreparation) is
// enforced by the store's atomic claim, not here: the aggregate cannot see
// other orders.
func (o *Order) Take() error {
	if !o.status.CanBeTakenByPreparer() {
		return errs.NewModificationNotAllowedErrorWithCause(
			"order",
			errors.New("order can only be taken while PENDING, current status is "+o.status.String()),
		)
	}
	return o.changeStatus(InPreparation)
}

// ChangeStatus applies a general preparer-side status advance after validating
// it against the transition table. Re-applying the current status is a no-op.
func (o *Order) ChangeStatus(target Status) error {
	return o.changeStatus(target)
}

func (o *Order) changeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) ensureCustomerEditable() error {
	if !o.status.CanBeModifiedByCustomer() {
		return errs.NewModificationNotAllowedErrorWithCause(
			"order",
			errors.New("order is not editable in status "+o.status.String()),
		)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code kernel.OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < InitialVersion {
		return errs.NewVersionIsInvalidError("version")
	}
	o.version = version
	return nil
}

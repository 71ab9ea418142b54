package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a general preparer-side status advance,
// e.g. marking the active order READY or a ready order COMPLETED.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	code      kernel.OrderCode
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status-advance command.
// Fails with a ValueIsInvalidError when newStatus is undefined; whether the
// transition itself is legal is decided against the current status at
// handling time.
func NewUpdateOrderStatusCommand(code kernel.OrderCode, newStatus order.Status) (UpdateOrderStatusCommand, error) {
	if err := code.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		code:      code,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Code returns the business code of the order to advance.
func (c UpdateOrderStatusCommand) Code() kernel.OrderCode {
	return c.code
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

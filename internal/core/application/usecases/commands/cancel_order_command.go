package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a customer's request to withdraw an order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	code kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command for the given order code.
func NewCancelOrderCommand(code kernel.OrderCode) (CancelOrderCommand, error) {
	if err := code.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Code returns the business code of the order to cancel.
func (c CancelOrderCommand) Code() kernel.OrderCode {
	return c.code
}

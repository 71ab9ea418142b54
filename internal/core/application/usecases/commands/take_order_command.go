package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrTakeOrderCommandIsNotConstructed = errors.New(
		"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
	)
)

// TakeOrderCommand represents the preparer claiming a specific order by code.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	code kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a take command for the given order code.
func NewTakeOrderCommand(code kernel.OrderCode) (TakeOrderCommand, error) {
	if err := code.Validate(); err != nil {
		return TakeOrderCommand{}, err
	}

	return TakeOrderCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// Code returns the business code of the order to take.
func (c TakeOrderCommand) Code() kernel.OrderCode {
	return c.code
}

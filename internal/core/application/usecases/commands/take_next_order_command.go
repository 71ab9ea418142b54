package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrTakeNextOrderCommandIsNotConstructed = errors.New(
		"TakeNextOrderCommand must be created via NewTakeNextOrderCommand constructor",
	)
)

// TakeNextOrderCommand represents the preparer claiming the oldest pending
// order without naming it. This is a parameterless command.
type TakeNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewTakeNextOrderCommand creates a take-next command.
func NewTakeNextOrderCommand() TakeNextOrderCommand {
	return TakeNextOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c TakeNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeNextOrderCommandIsNotConstructed)
}

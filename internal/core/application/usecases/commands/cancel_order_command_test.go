package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	code := kernel.NewOrderCode()
	cmd, err := commands.NewCancelOrderCommand(code)
	require.NoError(t, err)
	assert.Equal(t, code, cmd.Code())
	assert.NoError(t, cmd.Validate())
}

func TestNewCancelOrderCommand_InvalidCode(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.OrderCode{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderCodeIsNotConstructed)
}

func TestCancelOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}

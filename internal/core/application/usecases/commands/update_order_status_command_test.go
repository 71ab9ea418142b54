package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	code := kernel.NewOrderCode()
	cmd, err := commands.NewUpdateOrderStatusCommand(code, order.Ready)
	require.NoError(t, err)
	assert.Equal(t, code, cmd.Code())
	assert.Equal(t, order.Ready, cmd.NewStatus())
}

func TestNewUpdateOrderStatusCommand_UndefinedStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewOrderCode(), order.Status(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewOrderCode(), order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_InvalidCode(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.OrderCode{}, order.Ready)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderCodeIsNotConstructed)
}

package queries_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByCodeQuery_Valid(t *testing.T) {
	code := kernel.NewOrderCode()

	query, err := queries.NewGetOrderByCodeQuery(code)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, code, query.Code())
}

func TestNewGetOrderByCodeQuery_InvalidCode(t *testing.T) {
	_, err := queries.NewGetOrderByCodeQuery(kernel.OrderCode{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderCodeIsNotConstructed)
}

func TestGetOrderByCodeQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByCodeQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByCodeQueryIsNotConstructed)
}

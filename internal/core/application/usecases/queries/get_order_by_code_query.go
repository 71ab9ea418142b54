package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
		"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
	)
)

// GetOrderByCodeQuery retrieves the current snapshot of a single order by its
// business code. This is the customer's order-tracking read path.
type GetOrderByCodeQuery struct {
	code kernel.OrderCode

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a lookup query for the given order code.
func NewGetOrderByCodeQuery(code kernel.OrderCode) (GetOrderByCodeQuery, error) {
	if err := code.Validate(); err != nil {
		return GetOrderByCodeQuery{}, err
	}

	return GetOrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

// Code returns the business code to look up.
func (q GetOrderByCodeQuery) Code() kernel.OrderCode {
	return q.code
}

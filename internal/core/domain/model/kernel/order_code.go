package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderCodeIsNotConstructed indicates that an OrderCode was not created
// through NewOrderCode or OrderCodeFromString.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderCode must be created via NewOrderCode or OrderCodeFromString",
)

// orderCodePattern matches the "ORD-" prefix followed by eight uppercase
// hexadecimal characters, e.g. "ORD-1A2B3C4D".
var orderCodePattern = regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

// OrderCode is the human-facing business key of an order. It is assigned once
// at creation, is unique across the system, and is the handle customers and
// preparers use for every lookup. The order's UUID stays internal; the code is
// what goes on the receipt.
//
// The zero value is invalid; construct through NewOrderCode (fresh code) or
// OrderCodeFromString (parsing external input or persisted rows).
type OrderCode struct {
	value string
}

// NewOrderCode generates a fresh order code of the form "ORD-XXXXXXXX",
// where the suffix is the first eight hex characters of a random UUID,
// uppercased.
func NewOrderCode() OrderCode {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return OrderCode{value: "ORD-" + suffix}
}

// OrderCodeFromString parses and validates an order code from its string form.
func OrderCodeFromString(s string) (OrderCode, error) {
	code := OrderCode{value: s}
	if err := code.Validate(); err != nil {
		return OrderCode{}, err
	}
	return code, nil
}

// String returns the code in its external "ORD-XXXXXXXX" form.
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two order codes for equality.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate checks that the code is constructed and matches the expected format.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return ErrOrderCodeIsNotConstructed
	}
	if !orderCodePattern.MatchString(c.value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderCode",
			fmt.Errorf("%q does not match ORD-XXXXXXXX", c.value),
		)
	}
	return nil
}

// Package guard provides the ConstructorGuard pattern used to ensure that
// commands, queries, and value objects are only created through their
// designated constructor functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embed it as a private field and set
// it with NewConstructorGuard inside the constructor; Validate then rejects
// any instance that bypassed construction.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guarded object was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if !g.isConstructed {
		if validationError == nil {
			return ErrDefaultConstructorGuard
		}
		return validationError
	}
	return nil
}

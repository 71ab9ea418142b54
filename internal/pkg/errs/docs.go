// Package errs provides standardized error types for the pizzeria application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsRequiredError: For when a required value is missing
//   - ModificationNotAllowedError: For when a status precondition forbids a change
//   - ConcurrencyConflictError: For when a conditional save hits a stale version
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is resolves against the sentinel
//
// The workflow failure taxonomy maps onto these types directly: "order not
// found" is an ObjectNotFoundError, a rejected customer edit or preparer take
// is a ModificationNotAllowedError, an undefined status or illegal transition
// is a ValueIsInvalidError, and a lost optimistic-concurrency race is a
// ConcurrencyConflictError.
package errs

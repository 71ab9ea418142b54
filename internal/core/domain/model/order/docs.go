// Package order provides domain entities and business logic for pizza order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, customer details, items, and lifecycle
//   - Status: a state machine enforcing valid order status transitions
//   - Item: a line-item value object (name, quantity, unit price)
//
// Key business rules:
//   - Orders start in PENDING with a unique code and a non-empty item list
//   - Status follows the static table PENDING -> IN_PREPARATION -> READY -> COMPLETED,
//     with cancellation possible from PENDING and IN_PREPARATION
//   - Customers may edit or cancel only while the order is PENDING
//   - At most one order system-wide may be IN_PREPARATION; the aggregate
//     exposes the takeability predicate, the store enforces the global slot
//   - The version counter changes only via the store's conditional save,
//     making concurrent lost updates detectable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

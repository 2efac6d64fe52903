// Package order provides the Order aggregate and the status lifecycle
// engine of the order service.
//
// The package includes:
//   - Order: the aggregate root managing identity, customer fields, and the
//     cancellation metadata tied to the lifecycle
//   - Status: the state machine enforcing valid status transitions
//   - Field validation helpers shared by creation and partial update
//
// Key business rules:
//   - Status follows the workflow pending -> processing -> shipped ->
//     delivered, with every non-terminal status also allowed to move to
//     cancelled
//   - delivered and cancelled are terminal: no further transitions
//   - cancelledAt and cancellationReason are present exactly when the order
//     is cancelled
//   - A same-status change request is an idempotent no-op
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order

// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two families of errors live here:
//
//   - Base value errors used by validation code:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError.
//   - Order lifecycle and persistence errors used by the status engine and
//     the repository adapters: ValidationError (a collect-all field error
//     list), InvalidTransitionError, AlreadyCancelledError,
//     TerminalStateError, DuplicateNumberError, ConcurrentModificationError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification
//     works without depending on concrete types
//
// The HTTP boundary relies on this taxonomy to map any error bubbling out of
// a use case onto exactly one response status and envelope shape.
package errs

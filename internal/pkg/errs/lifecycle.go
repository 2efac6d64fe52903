package errs

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for order lifecycle and persistence failures.
var (
	ErrValidationFailed       = errors.New("validation failed")
	ErrEmptyUpdate            = errors.New("update payload must contain at least one field")
	ErrInvalidTransition      = errors.New("status transition is not allowed")
	ErrAlreadyCancelled       = errors.New("order is already cancelled")
	ErrTerminalState          = errors.New("order is in a terminal status")
	ErrDuplicateNumber        = errors.New("order number already exists")
	ErrConcurrentModification = errors.New("order was modified concurrently")
)

// FieldError pairs a payload field path with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError accumulates every field failure of a payload so the caller
// receives the complete list in a single round trip. It is not fail-fast:
// callers keep adding field errors and return the collector only when
// validation has inspected every field.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates an empty collector.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a failure for the given field path.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// AddIf records err under the given field path when err is non-nil.
// A no-op for nil errors, so validation code can stay linear.
func (e *ValidationError) AddIf(field string, err error) {
	if err != nil {
		e.Add(field, err.Error())
	}
}

// Empty reports whether no field failures were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// ErrOrNil returns the collector as an error, or nil when no failures
// were recorded. Returning the typed nil directly would yield a non-nil
// error interface.
func (e *ValidationError) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// InvalidTransitionError indicates a status change outside the transition
// table. It carries the current status and the full allowed-target set so
// clients can display what would have been legal.
type InvalidTransitionError struct {
	Current   string
	Requested string
	Allowed   []string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current/requested pair and the targets allowed from the current status.
func NewInvalidTransitionError(current, requested string, allowed []string) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Requested: requested, Allowed: allowed}
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return sanitize(fmt.Sprintf("%s: %s -> %s (no transitions allowed from %s)",
			ErrInvalidTransition, e.Current, e.Requested, e.Current))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s (allowed: %s)",
		ErrInvalidTransition, e.Current, e.Requested, strings.Join(e.Allowed, ", ")))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyCancelledError rejects a second cancellation and echoes the
// existing cancellation metadata so clients can treat the retry as
// idempotent.
type AlreadyCancelledError struct {
	CancelledAt time.Time
	Reason      string
}

// NewAlreadyCancelledError creates an AlreadyCancelledError carrying the
// metadata recorded by the first cancellation.
func NewAlreadyCancelledError(cancelledAt time.Time, reason string) *AlreadyCancelledError {
	return &AlreadyCancelledError{CancelledAt: cancelledAt, Reason: reason}
}

func (e *AlreadyCancelledError) Error() string {
	return sanitize(fmt.Sprintf("%s: cancelled at %s (%s)",
		ErrAlreadyCancelled, e.CancelledAt.Format(time.RFC3339), e.Reason))
}

func (e *AlreadyCancelledError) Unwrap() error {
	return ErrAlreadyCancelled
}

// TerminalStateError rejects any operation against an order whose status
// has no outgoing transitions.
type TerminalStateError struct {
	Current string
}

// NewTerminalStateError creates a TerminalStateError for the given status.
func NewTerminalStateError(current string) *TerminalStateError {
	return &TerminalStateError{Current: current}
}

func (e *TerminalStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrTerminalState, e.Current))
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// DuplicateNumberError indicates an insert collided with an existing order
// number. Creation is safe to retry: the failed insert leaves nothing behind.
type DuplicateNumberError struct {
	Number string
	Cause  error
}

// NewDuplicateNumberError creates a DuplicateNumberError wrapping the
// storage-layer uniqueness violation.
func NewDuplicateNumberError(number string, cause error) *DuplicateNumberError {
	return &DuplicateNumberError{Number: number, Cause: cause}
}

func (e *DuplicateNumberError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateNumber, e.Number, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDuplicateNumber, e.Number))
}

func (e *DuplicateNumberError) Unwrap() error {
	return ErrDuplicateNumber
}

// ConcurrentModificationError indicates an optimistic-concurrency conflict:
// the order changed between the caller's read and write. The caller must
// re-fetch and retry.
type ConcurrentModificationError struct {
	Number  string
	Version int
}

// NewConcurrentModificationError creates a ConcurrentModificationError for
// the given order number and the version the caller attempted to save.
func NewConcurrentModificationError(number string, version int) *ConcurrentModificationError {
	return &ConcurrentModificationError{Number: number, Version: version}
}

func (e *ConcurrentModificationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s at version %d", ErrConcurrentModification, e.Number, e.Version))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

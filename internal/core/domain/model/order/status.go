package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are sinks: once reached, no further transition is
// permitted. Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// Processing indicates the order has been accepted and is being prepared.
	Processing

	// Shipped indicates the order has left fulfilment.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled. Terminal. Entering this
	// status records cancellation metadata on the aggregate.
	Cancelled
)

// getStatusStrings returns the wire/persistence representation of every
// Status value, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the allowed-target table of the state machine.
// The graph is directed and acyclic with two sinks.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered, Cancelled},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error listing the valid values for anything unrecognised.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of pending, processing, shipped, delivered, cancelled", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedTargets returns the statuses reachable from s in one transition.
// The slice is a copy; callers may modify it.
func (s Status) AllowedTargets() []Status {
	targets := getTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// AllowedTargetStrings returns the allowed targets as their wire strings,
// ready for client display in an InvalidTransitionError.
func (s Status) AllowedTargetStrings() []string {
	targets := getTransitions()[s]
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.String())
	}
	return out
}

// CanTransitionTo reports whether target appears in the allowed set of s.
// A same-status "transition" is not in the table; Transition treats it as a
// no-op before consulting this.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range getTransitions()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Transition decides a requested status change.
//
// Returns:
//   - (target, nil) for a pair in the transition table
//   - (s, nil) when target equals s: an idempotent no-op, so retried
//     requests succeed without side effects
//   - (Unknown, *errs.InvalidTransitionError) otherwise, carrying the
//     current status and its full allowed-target set
//
// Transition is pure; the aggregate applies cancellation side effects after
// a successful decision.
func (s Status) Transition(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if target == s {
		return s, nil
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String(), s.AllowedTargetStrings())
	}
	return target, nil
}

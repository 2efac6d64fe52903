package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// OrderNumberPrefix distinguishes the human-readable order identifier from
// the internal row identifier.
const OrderNumberPrefix = "ORD"

// maxOrderNumberLength bounds caller-supplied identifiers.
const maxOrderNumberLength = 64

// ErrOrderNumberIsNotConstructed indicates an OrderNumber that was not created
// through NewOrderNumber or OrderNumberFromSequence.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromSequence",
)

// orderNumberPattern accepts the generated ORD-<seq> shape as well as
// caller-supplied identifiers: letters, digits, dashes and underscores,
// starting with a letter or digit.
var orderNumberPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// OrderNumber is the immutable, globally unique, human-readable identifier
// of an order. It is the domain identity; the persistence layer keeps its
// own row identifier alongside it.
//
// The zero value is invalid and reported by Validate. Generated numbers have
// the shape "ORD-000042"; callers may supply their own identifier at
// creation, in which case it is validated but never reassigned afterwards.
type OrderNumber struct {
	value string

	guard guard.ConstructorGuard
}

// NewOrderNumber validates a caller-supplied identifier. The value is
// trimmed; it must be non-empty, at most 64 characters, and restricted to
// letters, digits, dashes and underscores.
func NewOrderNumber(value string) (OrderNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if len(value) > maxOrderNumberLength {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("orderNumber length", len(value), 1, maxOrderNumberLength)
	}
	if !orderNumberPattern.MatchString(value) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q contains characters outside [A-Za-z0-9_-]", value),
		)
	}

	return OrderNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// OrderNumberFromSequence formats a sequence value produced by the atomic
// counter into the canonical generated shape, e.g. 42 -> "ORD-000042".
func OrderNumberFromSequence(seq int64) (OrderNumber, error) {
	if seq <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}

	return OrderNumber{
		value: fmt.Sprintf("%s-%06d", OrderNumberPrefix, seq),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the OrderNumber was properly constructed.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// String returns the identifier value.
func (n OrderNumber) String() string {
	return n.value
}

// IsZero reports whether the OrderNumber is the zero value, i.e. no
// identifier was supplied.
func (n OrderNumber) IsZero() bool {
	return n.value == ""
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

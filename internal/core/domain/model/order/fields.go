package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Field constraints of the Order aggregate. Validation helpers below are
// shared by creation and partial update so both paths enforce the same
// rules, and by the command constructors so every payload is checked before
// any persistence call.
const (
	MinCustomerNameLength = 2
	MaxCustomerNameLength = 100
	MinProductLength      = 2
	MaxProductLength      = 200
	MinQuantity           = 1
	MaxQuantity           = 1000
	DefaultQuantity       = 1
	MinPhoneDigits        = 10
	MaxNotesLength        = 1000
	MaxCancellationReason = 500
)

// Default cancellation reasons recorded when the caller supplies none.
// The wording differs by entry point so support can tell them apart.
const (
	ReasonCancelledByUser     = "Cancelled by user"     // status set to cancelled via update
	ReasonCancelledByCustomer = "Cancelled by customer" // dedicated cancel operation
)

// ValidateCustomerName trims and validates a customer name.
func ValidateCustomerName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", errs.NewValueIsRequiredError("customerName")
	}
	if n := len([]rune(name)); n < MinCustomerNameLength || n > MaxCustomerNameLength {
		return "", errs.NewValueIsOutOfRangeError("customerName length", n, MinCustomerNameLength, MaxCustomerNameLength)
	}
	return name, nil
}

// ValidatePhone trims and validates a phone value. The value may contain
// digits, whitespace, dashes, plus signs and parentheses, and must carry at
// least MinPhoneDigits digits once everything else is stripped.
func ValidatePhone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", errs.NewValueIsRequiredError("phone")
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '\t' || r == '-' || r == '+' || r == '(' || r == ')':
		default:
			return "", errs.NewValueIsInvalidErrorWithCause(
				"phone",
				fmt.Errorf("character %q is not allowed", r),
			)
		}
	}
	if digits < MinPhoneDigits {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("must contain at least %d digits, got %d", MinPhoneDigits, digits),
		)
	}
	return phone, nil
}

// ValidateProduct trims and validates a product name.
func ValidateProduct(raw string) (string, error) {
	product := strings.TrimSpace(raw)
	if product == "" {
		return "", errs.NewValueIsRequiredError("product")
	}
	if n := len([]rune(product)); n < MinProductLength || n > MaxProductLength {
		return "", errs.NewValueIsOutOfRangeError("product length", n, MinProductLength, MaxProductLength)
	}
	return product, nil
}

// ValidateQuantity validates a quantity value.
func ValidateQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	return nil
}

// ValidateNotes validates an optional notes value.
func ValidateNotes(raw string) (string, error) {
	if n := len([]rune(raw)); n > MaxNotesLength {
		return "", errs.NewValueIsOutOfRangeError("notes length", n, 0, MaxNotesLength)
	}
	return raw, nil
}

// ValidateCancellationReason trims and validates an optional cancellation
// reason. An empty reason is valid; the aggregate substitutes a default
// sentinel when the transition into cancelled happens.
func ValidateCancellationReason(raw string) (string, error) {
	reason := strings.TrimSpace(raw)
	if n := len([]rune(reason)); n > MaxCancellationReason {
		return "", errs.NewValueIsOutOfRangeError("cancellationReason length", n, 0, MaxCancellationReason)
	}
	return reason, nil
}

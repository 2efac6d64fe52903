package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the order service. It manages the order
// lifecycle from creation through status transitions to a terminal status
// or deletion.
//
// Order follows these invariants:
//   - The order number is valid, unique, and never reassigned
//   - Customer fields satisfy the rules in fields.go
//   - Status only changes through ChangeStatus/Cancel, which consult the
//     transition table
//   - cancelledAt and cancellationReason are both set exactly when the
//     status is cancelled, and absent otherwise
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// number is the immutable human-readable identifier
	number kernel.OrderNumber

	customerName string
	phone        string
	product      string
	quantity     int
	notes        string

	// status is the current state in the order lifecycle
	status Status

	// cancellation metadata, present iff status == Cancelled
	cancelledAt        *time.Time
	cancellationReason string

	// isDeleted is the soft-delete marker; soft-deleted orders are invisible
	// to every read, list and update path
	isDeleted bool

	// createdAt/updatedAt are maintained by the persistence layer
	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic-concurrency token maintained by the
	// persistence layer; 0 for a not-yet-persisted order
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the creation
// entry point: every field is validated and ALL field failures are
// collected into a single *errs.ValidationError so the caller gets the
// complete list in one round trip.
//
// Parameters:
//   - number: the order identifier, already constructed (generated or
//     caller-supplied)
//   - customerName, phone, product: required fields per fields.go
//   - quantity: must be within [MinQuantity, MaxQuantity]; the caller
//     substitutes DefaultQuantity when the payload omitted it
//   - notes: optional free text
func NewOrder(
	number kernel.OrderNumber,
	customerName string,
	phone string,
	product string,
	quantity int,
	notes string,
) (*Order, error) {
	v := errs.NewValidationError()

	if err := number.Validate(); err != nil {
		v.Add("orderNumber", err.Error())
	}

	name, err := ValidateCustomerName(customerName)
	v.AddIf("customerName", err)

	phoneValue, err := ValidatePhone(phone)
	v.AddIf("phone", err)

	productValue, err := ValidateProduct(product)
	v.AddIf("product", err)

	v.AddIf("quantity", ValidateQuantity(quantity))

	notesValue, err := ValidateNotes(notes)
	v.AddIf("notes", err)

	if !v.Empty() {
		return nil, v
	}

	return &Order{
		number:        number,
		customerName:  name,
		phone:         phoneValue,
		product:       productValue,
		quantity:      quantity,
		notes:         notesValue,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. Stored values are
// trusted for field content but structural invariants are still enforced:
// the number and status must be valid, and the cancellation metadata must
// match the status.
func RestoreOrder(
	number kernel.OrderNumber,
	customerName string,
	phone string,
	product string,
	quantity int,
	notes string,
	status Status,
	cancelledAt *time.Time,
	cancellationReason string,
	isDeleted bool,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if status == Cancelled {
		if cancelledAt == nil || cancellationReason == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"cancellation metadata",
				fmt.Errorf("order %s is cancelled but metadata is incomplete", number),
			)
		}
	} else if cancelledAt != nil || cancellationReason != "" {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"cancellation metadata",
			fmt.Errorf("order %s is %s but carries cancellation metadata", number, status),
		)
	}

	return &Order{
		number:             number,
		customerName:       customerName,
		phone:              phone,
		product:            product,
		quantity:           quantity,
		notes:              notes,
		status:             status,
		cancelledAt:        cancelledAt,
		cancellationReason: cancellationReason,
		isDeleted:          isDeleted,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		version:            version,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when aggregates cross a trust boundary, e.g. entering a repository.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// Number returns the order's identifier.
func (o *Order) Number() kernel.OrderNumber { return o.number }

// CustomerName returns the customer name.
func (o *Order) CustomerName() string { return o.customerName }

// Phone returns the contact phone.
func (o *Order) Phone() string { return o.phone }

// Product returns the product name.
func (o *Order) Product() string { return o.product }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int { return o.quantity }

// Notes returns the optional notes.
func (o *Order) Notes() string { return o.notes }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CancelledAt returns the cancellation timestamp, or nil when the order is
// not cancelled.
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }

// CancellationReason returns the cancellation reason, or the empty string
// when the order is not cancelled.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// IsDeleted reports the soft-delete marker.
func (o *Order) IsDeleted() bool { return o.isDeleted }

// CreatedAt returns the persistence-layer creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the persistence-layer modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version returns the optimistic-concurrency token.
func (o *Order) Version() int { return o.version }

// Patch carries the optional fields of a partial update. A nil pointer
// means "leave unchanged". Status changes travel separately through
// ChangeStatus so the transition table cannot be bypassed.
type Patch struct {
	CustomerName *string
	Phone        *string
	Product      *string
	Quantity     *int
	Notes        *string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.CustomerName == nil && p.Phone == nil && p.Product == nil &&
		p.Quantity == nil && p.Notes == nil
}

// ApplyPatch validates and applies every present field, collecting all
// field failures before returning. Nothing is modified unless the whole
// patch is valid.
func (o *Order) ApplyPatch(p Patch) error {
	v := errs.NewValidationError()

	var name, phone, product, notes string
	var err error

	if p.CustomerName != nil {
		name, err = ValidateCustomerName(*p.CustomerName)
		v.AddIf("customerName", err)
	}
	if p.Phone != nil {
		phone, err = ValidatePhone(*p.Phone)
		v.AddIf("phone", err)
	}
	if p.Product != nil {
		product, err = ValidateProduct(*p.Product)
		v.AddIf("product", err)
	}
	if p.Quantity != nil {
		v.AddIf("quantity", ValidateQuantity(*p.Quantity))
	}
	if p.Notes != nil {
		notes, err = ValidateNotes(*p.Notes)
		v.AddIf("notes", err)
	}

	if !v.Empty() {
		return v
	}

	if p.CustomerName != nil {
		o.customerName = name
	}
	if p.Phone != nil {
		o.phone = phone
	}
	if p.Product != nil {
		o.product = product
	}
	if p.Quantity != nil {
		o.quantity = *p.Quantity
	}
	if p.Notes != nil {
		o.notes = notes
	}
	return nil
}

// ChangeStatus requests a transition to target, consulting the state
// machine.
//
// Behaviour:
//   - target equal to the current status: idempotent no-op, side effects
//     are not re-applied
//   - transition into Cancelled: cancelledAt is stamped with now and
//     cancellationReason is set to the trimmed reason, falling back to
//     ReasonCancelledByUser when empty
//   - transition into any other status: both cancellation fields are
//     cleared (defensive; they should already be absent)
//   - illegal pair: *errs.InvalidTransitionError with the current status
//     and its allowed-target set
func (o *Order) ChangeStatus(target Status, reason string, now time.Time) error {
	next, err := o.status.Transition(target)
	if err != nil {
		return err
	}
	if next == o.status {
		return nil
	}

	o.status = next
	if next == Cancelled {
		at := now.UTC()
		o.cancelledAt = &at
		r := strings.TrimSpace(reason)
		if r == "" {
			r = ReasonCancelledByUser
		}
		o.cancellationReason = r
	} else {
		o.cancelledAt = nil
		o.cancellationReason = ""
	}
	return nil
}

// Cancel is the dedicated cancellation operation: a transition into
// Cancelled with two early guards.
//
//   - already cancelled: *errs.AlreadyCancelledError carrying the existing
//     cancellation metadata, so clients can treat the retry as idempotent
//   - delivered: *errs.TerminalStateError
//
// When no reason is supplied, ReasonCancelledByCustomer is recorded; this
// differs from the update entry point's default on purpose.
func (o *Order) Cancel(reason string, now time.Time) error {
	if o.status == Cancelled {
		cancelledAt := time.Time{}
		if o.cancelledAt != nil {
			cancelledAt = *o.cancelledAt
		}
		return errs.NewAlreadyCancelledError(cancelledAt, o.cancellationReason)
	}
	if o.status == Delivered {
		return errs.NewTerminalStateError(o.status.String())
	}

	r := strings.TrimSpace(reason)
	if r == "" {
		r = ReasonCancelledByCustomer
	}
	return o.ChangeStatus(Cancelled, r, now)
}

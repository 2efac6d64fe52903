package kernel

import (
	"orderdesk/internal/pkg/guard"
)

// Pagination bounds. Out-of-range requests are clamped, not rejected, so a
// sloppy client still gets a sane page instead of an error.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MinPageSize       = 1
	MaxPageSize       = 100
)

// ErrPageIsNotConstructed indicates a Page that was not created via NewPage.
var ErrPageIsNotConstructed = guard.ErrDefaultConstructorGuard

// Page is a value object describing one page of a listing. Construction
// clamps rather than validates: page numbers below 1 become 1, a
// non-positive size falls back to the default, and sizes above MaxPageSize
// are capped.
type Page struct {
	number int
	size   int

	guard guard.ConstructorGuard
}

// NewPage builds a Page from raw query values, applying defaults and clamps.
func NewPage(number, size int) Page {
	if number < DefaultPageNumber {
		number = DefaultPageNumber
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{number: number, size: size, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the Page was properly constructed.
func (p Page) Validate() error {
	return p.guard.Validate(ErrPageIsNotConstructed)
}

// Number returns the 1-based page number.
func (p Page) Number() int {
	return p.number
}

// Size returns the page size.
func (p Page) Size() int {
	return p.size
}

// Offset returns the row offset of the first item on the page.
func (p Page) Offset() int {
	return (p.number - 1) * p.size
}

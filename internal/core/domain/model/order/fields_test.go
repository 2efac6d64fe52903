package order_test

import (
	"strings"
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCustomerName(t *testing.T) {
	t.Run("should accept names within bounds", func(t *testing.T) {
		name, err := order.ValidateCustomerName("  Alice  ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", name)
	})

	t.Run("should reject empty and whitespace-only", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			_, err := order.ValidateCustomerName(raw)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should enforce length bounds after trimming", func(t *testing.T) {
		_, err := order.ValidateCustomerName(" A ")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.ValidateCustomerName(strings.Repeat("a", 101))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.ValidateCustomerName(strings.Repeat("a", 100))
		require.NoError(t, err)
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("should accept common formats", func(t *testing.T) {
		valid := []string{
			"1234567890",
			"123-456-7890",
			"+1 (555) 123-4567",
			"+7 912 345 67 89",
		}
		for _, raw := range valid {
			_, err := order.ValidatePhone(raw)
			require.NoError(t, err, "phone %q should be valid", raw)
		}
	})

	t.Run("should reject too few digits", func(t *testing.T) {
		_, err := order.ValidatePhone("12345")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		// Formatting characters do not count as digits.
		_, err = order.ValidatePhone("+()-  123456")
		require.Error(t, err)
	})

	t.Run("should reject forbidden characters", func(t *testing.T) {
		for _, raw := range []string{"123456789x", "12345.67890", "1234567890;"} {
			_, err := order.ValidatePhone(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "phone %q should be rejected", raw)
		}
	})

	t.Run("should reject empty", func(t *testing.T) {
		_, err := order.ValidatePhone("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValidateProduct(t *testing.T) {
	t.Run("should enforce bounds", func(t *testing.T) {
		_, err := order.ValidateProduct("x")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.ValidateProduct(strings.Repeat("p", 201))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		product, err := order.ValidateProduct("  Tea  ")
		require.NoError(t, err)
		assert.Equal(t, "Tea", product)
	})

	t.Run("should reject empty", func(t *testing.T) {
		_, err := order.ValidateProduct("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValidateQuantity(t *testing.T) {
	require.NoError(t, order.ValidateQuantity(1))
	require.NoError(t, order.ValidateQuantity(1000))
	require.ErrorIs(t, order.ValidateQuantity(0), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, order.ValidateQuantity(1001), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, order.ValidateQuantity(-5), errs.ErrValueIsOutOfRange)
}

func TestValidateNotes(t *testing.T) {
	notes, err := order.ValidateNotes("ring twice")
	require.NoError(t, err)
	assert.Equal(t, "ring twice", notes)

	_, err = order.ValidateNotes(strings.Repeat("n", 1001))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestValidateCancellationReason(t *testing.T) {
	reason, err := order.ValidateCancellationReason("  changed my mind  ")
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", reason)

	reason, err = order.ValidateCancellationReason("")
	require.NoError(t, err)
	assert.Empty(t, reason)

	_, err = order.ValidateCancellationReason(strings.Repeat("r", 501))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

package order_test

import (
	"fmt"
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Processing, "processing"},
			{order.Shipped, "shipped"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire values", func(t *testing.T) {
		for _, value := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
			status, err := order.StatusFromString(value)
			require.NoError(t, err)
			assert.Equal(t, value, status.String())
		}
	})

	t.Run("should reject unrecognised values", func(t *testing.T) {
		for _, value := range []string{"", "Pending", "SHIPPED", "done", "unknown"} {
			_, err := order.StatusFromString(value)
			require.Error(t, err, "value %q should not parse", value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_AllowedTargets(t *testing.T) {
	t.Run("should expose the transition table", func(t *testing.T) {
		assert.ElementsMatch(t, []order.Status{order.Processing, order.Cancelled}, order.Pending.AllowedTargets())
		assert.ElementsMatch(t, []order.Status{order.Shipped, order.Cancelled}, order.Processing.AllowedTargets())
		assert.ElementsMatch(t, []order.Status{order.Delivered, order.Cancelled}, order.Shipped.AllowedTargets())
		assert.Empty(t, order.Delivered.AllowedTargets())
		assert.Empty(t, order.Cancelled.AllowedTargets())
	})

	t.Run("should return wire strings for client display", func(t *testing.T) {
		assert.Equal(t, []string{"processing", "cancelled"}, order.Pending.AllowedTargetStrings())
	})
}

func TestStatus_Transition(t *testing.T) {
	allStatuses := []order.Status{
		order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled,
	}

	legal := map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Cancelled},
		order.Processing: {order.Shipped, order.Cancelled},
		order.Shipped:    {order.Delivered, order.Cancelled},
		order.Delivered:  {},
		order.Cancelled:  {},
	}

	isLegal := func(from, to order.Status) bool {
		for _, s := range legal[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	t.Run("should decide the full matrix", func(t *testing.T) {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				name := fmt.Sprintf("%s to %s", from, to)
				t.Run(name, func(t *testing.T) {
					next, err := from.Transition(to)

					switch {
					case from == to:
						// Idempotent no-op.
						require.NoError(t, err)
						assert.Equal(t, from, next)
					case isLegal(from, to):
						require.NoError(t, err)
						assert.Equal(t, to, next)
					default:
						require.Error(t, err)
						var transitionErr *errs.InvalidTransitionError
						require.ErrorAs(t, err, &transitionErr)
						assert.Equal(t, from.String(), transitionErr.Current)
						assert.Equal(t, to.String(), transitionErr.Requested)
						assert.Equal(t, from.AllowedTargetStrings(), transitionErr.Allowed)
					}
				})
			}
		}
	})

	t.Run("terminal statuses reject every other target", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range allStatuses {
				if to == terminal {
					continue
				}
				_, err := terminal.Transition(to)
				require.Error(t, err, "%s -> %s should be rejected", terminal, to)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("should reject transitions involving invalid statuses", func(t *testing.T) {
		_, err := order.Unknown.Transition(order.Pending)
		require.Error(t, err)

		_, err = order.Pending.Transition(order.Status(42))
		require.Error(t, err)
	})
}

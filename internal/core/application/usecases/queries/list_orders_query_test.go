package queries_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should default to newest first", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, "", "", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, ports.DefaultSort(), query.Sort())
		assert.Nil(t, query.Status())
	})

	t.Run("should clamp page and limit", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, "", "", -3, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, query.Page().Number())
		assert.Equal(t, 10, query.Page().Size())

		query, err = queries.NewListOrdersQuery(nil, "", "", 2, 500)
		require.NoError(t, err)
		assert.Equal(t, 2, query.Page().Number())
		assert.Equal(t, 100, query.Page().Size())
	})

	t.Run("should map the sort key whitelist", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, "customerName", "asc", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, ports.SortByCustomerName, query.Sort().Field)
		assert.False(t, query.Sort().Descending)
	})

	t.Run("should reject unknown sort key", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(nil, "phone; DROP TABLE orders", "", 1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown sort direction", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(nil, "number", "sideways", 1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should parse the status filter", func(t *testing.T) {
		status := "shipped"
		query, err := queries.NewListOrdersQuery(&status, "", "", 1, 10)
		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Shipped, *query.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		status := "teleported"
		_, err := queries.NewListOrdersQuery(&status, "", "", 1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var query queries.ListOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

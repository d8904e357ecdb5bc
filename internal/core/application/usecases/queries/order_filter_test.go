package queries

import (
	"testing"
	"time"

	"deliverus/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFilter_Empty(t *testing.T) {
	var f orderFilter
	clause, args := f.clause()
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestOrderFilter_StatusPredicates(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusPending, " AND o.started_at IS NULL"},
		{order.StatusInProcess, " AND o.started_at IS NOT NULL AND o.sent_at IS NULL"},
		{order.StatusSent, " AND o.sent_at IS NOT NULL AND o.delivered_at IS NULL"},
		{order.StatusDelivered, " AND o.delivered_at IS NOT NULL"},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			var f orderFilter
			f.byStatus(tc.status)
			clause, args := f.clause()
			assert.Equal(t, tc.expected, clause)
			assert.Empty(t, args)
		})
	}
}

func TestOrderFilter_UnknownStatusAddsNothing(t *testing.T) {
	var f orderFilter
	f.byStatus(order.StatusUnknown)
	clause, _ := f.clause()
	assert.Empty(t, clause)
}

func TestOrderFilter_DateWindow(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	var f orderFilter
	f.byCreatedFrom(from)
	f.byCreatedTo(to)

	clause, args := f.clause()
	assert.Equal(t, " AND o.created_at >= ? AND o.created_at < ?", clause)
	require.Len(t, args, 2)
	assert.Equal(t, from, args[0])
	// The upper bound names a day and is exclusive of the following midnight.
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), args[1])
}

func TestOrderFilter_CombinesWithAnd(t *testing.T) {
	var f orderFilter
	f.byStatus(order.StatusDelivered)
	f.byCreatedFrom(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	clause, args := f.clause()
	assert.Equal(t, " AND o.delivered_at IS NOT NULL AND o.created_at >= ?", clause)
	assert.Len(t, args, 1)
}

package queries

import (
	"strings"
	"time"

	"deliverus/internal/core/domain/model/order"
)

// orderFilter accumulates WHERE predicates over the orders table (aliased o).
// Predicates combine with AND; an empty filter matches everything.
type orderFilter struct {
	predicates []string
	args       []any
}

func (f *orderFilter) add(predicate string, args ...any) {
	f.predicates = append(f.predicates, predicate)
	f.args = append(f.args, args...)
}

// byStatus translates a lifecycle status into its timestamp predicate. The
// status is never stored, so filtering inspects which timestamps are set.
func (f *orderFilter) byStatus(status order.Status) {
	switch status {
	case order.StatusPending:
		f.add("o.started_at IS NULL")
	case order.StatusInProcess:
		f.add("o.started_at IS NOT NULL AND o.sent_at IS NULL")
	case order.StatusSent:
		f.add("o.sent_at IS NOT NULL AND o.delivered_at IS NULL")
	case order.StatusDelivered:
		f.add("o.delivered_at IS NOT NULL")
	case order.StatusUnknown:
	}
}

// byCreatedFrom keeps orders placed at or after the given instant.
func (f *orderFilter) byCreatedFrom(from time.Time) {
	f.add("o.created_at >= ?", from)
}

// byCreatedTo keeps orders placed before the end of the given day: the bound
// is advanced by one day and compared exclusively, so a date of 2026-08-28
// includes everything placed during the 28th.
func (f *orderFilter) byCreatedTo(to time.Time) {
	f.add("o.created_at < ?", to.AddDate(0, 0, 1))
}

// clause renders the accumulated predicates as a SQL fragment starting with
// AND, suitable for appending after a fixed primary predicate.
func (f *orderFilter) clause() (string, []any) {
	if len(f.predicates) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(f.predicates, " AND "), f.args
}

package order

import (
	"fmt"
	"time"

	"deliverus/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is never persisted:
// the state is always derived from the three transition timestamps, so there
// is a single source of truth for where an order stands.
//
// State transitions:
//
//	Pending ──> InProcess ──> Sent ──> Delivered
//
// strictly linear, no skipping, no reversal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the restaurant has not confirmed the
	// order yet. Only pending orders may be edited or deleted by the customer.
	StatusPending

	// StatusInProcess indicates the restaurant has confirmed the order and is
	// preparing it.
	StatusInProcess

	// StatusSent indicates the order has left the restaurant and is on its way.
	StatusSent

	// StatusDelivered indicates the order reached the customer. This is a final
	// state with no further transitions.
	StatusDelivered
)

// getStatusStrings returns the wire names for every Status value, matching the
// values accepted by the status query filter.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusInProcess: "in process",
		StatusSent:      "sent",
		StatusDelivered: "delivered",
	}
}

// getValidStatusStrings returns only the statuses an order can actually be in.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusInProcess: "in process",
		StatusSent:      "sent",
		StatusDelivered: "delivered",
	}
}

// StatusFromTimestamps derives the order status from its transition
// timestamps. The mapping is total: any combination of set timestamps yields
// exactly one status.
func StatusFromTimestamps(startedAt, sentAt, deliveredAt *time.Time) Status {
	switch {
	case deliveredAt != nil:
		return StatusDelivered
	case sentAt != nil:
		return StatusSent
	case startedAt != nil:
		return StatusInProcess
	default:
		return StatusPending
	}
}

// ParseStatus converts a wire name ("pending", "in process", "sent",
// "delivered") to a Status. Used when binding the status query filter.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the four order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, implementing fmt.Stringer.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

package queries

import (
	"errors"
	"time"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
	"deliverus/internal/pkg/guard"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
)

// GetRestaurantOrdersQuery lists the orders of one restaurant for its owner,
// optionally narrowed by lifecycle status and by creation-date window.
type GetRestaurantOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	status       order.Status
	from         *time.Time
	to           *time.Time

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query listing a restaurant's orders.
// status may be empty for no status filter; from and to may be nil. An
// unrecognized status value is reported as a field violation.
func NewGetRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	status string,
	from *time.Time,
	to *time.Time,
) (GetRestaurantOrdersQuery, error) {
	q := GetRestaurantOrdersQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setRestaurantID(restaurantID),
		q.setOwnerID(ownerID),
	); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return GetRestaurantOrdersQuery{}, errs.NewValidationError([]errs.FieldViolation{
				{Field: "status", Message: err.Error()},
			})
		}
		q.status = parsed
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OwnerID returns the requesting owner.
func (q GetRestaurantOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Status returns the status filter, StatusUnknown when absent.
func (q GetRestaurantOrdersQuery) Status() order.Status {
	return q.status
}

// From returns the lower creation-date bound, nil when absent.
func (q GetRestaurantOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the upper creation-date bound, nil when absent. The bound names
// a day: orders placed during that day are included.
func (q GetRestaurantOrdersQuery) To() *time.Time {
	return q.to
}

func (q *GetRestaurantOrdersQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	q.restaurantID = restaurantID
	return nil
}

func (q *GetRestaurantOrdersQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	q.ownerID = ownerID
	return nil
}

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
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves every order placed by one customer,
// newest first, optionally narrowed by lifecycle status and by creation-date
// window.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	status     order.Status
	from       *time.Time
	to         *time.Time

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query listing a customer's orders.
// status may be empty for no status filter; from and to may be nil. An
// unrecognized status value is reported as a field violation.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	status string,
	from *time.Time,
	to *time.Time,
) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return GetCustomerOrdersQuery{}, errs.NewValidationError([]errs.FieldViolation{
				{Field: "status", Message: err.Error()},
			})
		}
		q.status = parsed
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the status filter, StatusUnknown when absent.
func (q GetCustomerOrdersQuery) Status() order.Status {
	return q.status
}

// From returns the lower creation-date bound, nil when absent.
func (q GetCustomerOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the upper creation-date bound, nil when absent. The bound names
// a day: orders placed during that day are included.
func (q GetCustomerOrdersQuery) To() *time.Time {
	return q.to
}

func (q *GetCustomerOrdersQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

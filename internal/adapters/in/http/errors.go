package http

import (
	"errors"
	"net/http"

	"deliverus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Violations is present only for validation failures.
	Violations []errs.FieldViolation `json:"violations,omitempty"`
}

// writeError maps the application error taxonomy onto HTTP statuses:
// not-found 404, not-permitted 403, invalid-state 409, validation 422,
// everything else 500. The order of checks does not matter because the
// sentinels are disjoint.
func writeError(c echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:       http.StatusUnprocessableEntity,
			Message:    "validation failed",
			Violations: validationErr.Violations,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "not found",
		})
	case errors.Is(err, errs.ErrNotPermitted):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "forbidden",
		})
	case errors.Is(err, errs.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

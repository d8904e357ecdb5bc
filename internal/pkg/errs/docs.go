// Package errs provides standardized error types for the order management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The HTTP adapter maps the sentinels onto response codes: ErrObjectNotFound
// becomes 404, ErrNotPermitted 403, ErrInvalidState 409, ErrValidationFailed
// 422, and everything else 500.
package errs

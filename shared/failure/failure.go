package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Fields carries per-field validation messages keyed by the JSON field name.
type Failure struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
	cause   error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying error, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a new bad request Failure carrying field level messages.
func Validation(msg string, fields map[string][]string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Fields:  fields,
	}
}

// Summarize replaces the message of a validation failure, keeping its field messages.
// Any other error is returned untouched.
func Summarize(err error, msg string) error {
	var fail *Failure
	if errors.As(err, &fail) && fail.Code == http.StatusBadRequest {
		return &Failure{
			Code:    fail.Code,
			Message: msg,
			Fields:  fail.Fields,
			cause:   fail.cause,
		}
	}

	return err
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// StorageError returns a generic internal Failure for a persistence error.
// The cause stays reachable through errors.Is / errors.As but is never shown to clients.
func StorageError(err error) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: "Failed to save data.",
		cause:   err,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// BadGatewayFromString returns a bad gateway Failure shown to clients as msg. The upstream error is
// kept as the cause.
func BadGatewayFromString(msg string, cause error) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		cause:   cause,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the client facing message of err. For a wrapped Failure this is the Failure's own
// message, without the context added by the wrapping.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

// GetFields returns the field messages of a validation failure, nil otherwise.
func GetFields(err error) map[string][]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsNotFound reports whether err is a not found Failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

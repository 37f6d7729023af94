package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing and for callers
// that parse the error text to retry with corrected parameters
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Dispatch errors
	ErrUnknownOperation  ErrorCode = "UNKNOWN_OPERATION"
	ErrDisabledOperation ErrorCode = "DISABLED_OPERATION"
	ErrMalformedPayload  ErrorCode = "MALFORMED_PAYLOAD"

	// Parameter errors
	ErrMissingField     ErrorCode = "MISSING_FIELD"
	ErrTypeMismatch     ErrorCode = "TYPE_MISMATCH"
	ErrEmptyField       ErrorCode = "EMPTY_FIELD"
	ErrInvalidEnumValue ErrorCode = "INVALID_ENUM_VALUE"
	ErrOutOfRange       ErrorCode = "OUT_OF_RANGE"

	// Rendering errors
	ErrSerialization ErrorCode = "SERIALIZATION_FAILURE"
)

// Detail keys shared by the packages that build errors
const (
	DetailField     = "field"
	DetailOperation = "operation"
	DetailAvailable = "available"
	DetailAccepted  = "accepted"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. The code is printed once even when
// the wrapped error carries the same one.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.text())
}

func (e *Error) text() string {
	if e.Wrapped == nil {
		return e.Message
	}
	if inner, ok := e.Wrapped.(*Error); ok && inner.Code == e.Code {
		return e.Message + ": " + inner.text()
	}
	return e.Message + ": " + e.Wrapped.Error()
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// MissingField reports a required parameter that was not supplied
func MissingField(field string) *Error {
	return Newf(ErrMissingField, "missing required field '%s'", field).
		WithDetail(DetailField, field)
}

// TypeMismatch reports a parameter supplied with the wrong shape
func TypeMismatch(field, want string, got interface{}) *Error {
	return Newf(ErrTypeMismatch, "field '%s' must be %s, got %s", field, want, describeValue(got)).
		WithDetail(DetailField, field)
}

// EmptyField reports a required string parameter that is blank
func EmptyField(field string) *Error {
	return Newf(ErrEmptyField, "field '%s' must not be empty", field).
		WithDetail(DetailField, field)
}

// InvalidEnumValue reports a value outside an enumerated set
func InvalidEnumValue(field, value string, accepted []string) *Error {
	return Newf(ErrInvalidEnumValue, "invalid value '%s' for field '%s'. Accepted values: %s",
		value, field, strings.Join(accepted, ", ")).
		WithDetail(DetailField, field).
		WithDetail(DetailAccepted, accepted)
}

// OutOfRange reports an integer parameter outside its allowed bounds
func OutOfRange(field string, value, min, max int) *Error {
	return Newf(ErrOutOfRange, "field '%s' must be between %d and %d, got %d", field, min, max, value).
		WithDetail(DetailField, field)
}

func describeValue(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case fmt.Stringer:
		return "number"
	case float64, float32, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

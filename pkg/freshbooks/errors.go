package freshbooks

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every error returned by the client wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrTransport is a connection or IO failure below the API layer.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse is a response body that is not valid JSON.
	ErrMalformedResponse = errors.New("failed to parse response")

	// ErrUnexpectedResponseShape is a JSON body without the "response" envelope.
	ErrUnexpectedResponseShape = errors.New("returned an unexpected response")

	// ErrUnknownAPI is an error status whose body carries no "errors" key.
	ErrUnknownAPI = errors.New("unknown API error")

	// ErrAPI is an error status with a message extracted from the body.
	ErrAPI = errors.New("API error")

	// ErrConfiguration is raised before any network call when the client is
	// missing configuration an operation depends on.
	ErrConfiguration = errors.New("configuration error")
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIBaseURLRequired = errors.New("API base URL is required")
	ErrNoMoreItems        = errors.New("no more items")
	ErrFieldCoercion      = errors.New("cannot coerce field value")
	ErrNotAnObject        = errors.New("payload is not an object")
	ErrNoTokenConfigured  = errors.New("no token manager configured")
)

// DefaultErrorMessage is used when the server omits an error message.
const DefaultErrorMessage = "Unknown error"

// APIError is a failure decoded from an API response. It carries the HTTP
// status and the raw body for diagnostics.
type APIError struct {
	// Message is the server supplied message, or DefaultErrorMessage.
	Message string `json:"message" yaml:"message"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"status_code" yaml:"status_code"`
	// RawBody is the unparsed response body.
	RawBody string `json:"raw_body" yaml:"raw_body"`
	// ErrorCode is the server "errno", meaningful only when HasErrorCode is set.
	ErrorCode    int  `json:"errno,omitempty" yaml:"errno,omitempty"`
	HasErrorCode bool `json:"-"               yaml:"-"`

	kind  error
	cause error
}

// NewAPIError creates an APIError carrying a server error code.
func NewAPIError(message string, statusCode int, rawBody string, errorCode int) *APIError {
	return &APIError{
		Message:      message,
		StatusCode:   statusCode,
		RawBody:      rawBody,
		ErrorCode:    errorCode,
		HasErrorCode: true,
		kind:         ErrAPI,
	}
}

// NewAPIErrorWithoutCode creates an APIError for a body that had no errno.
func NewAPIErrorWithoutCode(message string, statusCode int, rawBody string) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		RawBody:    rawBody,
		kind:       ErrAPI,
	}
}

// NewUnknownAPIError creates the error for an error status without an "errors" key.
func NewUnknownAPIError(statusCode int, rawBody string) *APIError {
	return &APIError{
		Message:    DefaultErrorMessage,
		StatusCode: statusCode,
		RawBody:    rawBody,
		kind:       ErrUnknownAPI,
	}
}

// NewMalformedResponseError creates the error for a body that failed to parse.
func NewMalformedResponseError(statusCode int, rawBody string, cause error) *APIError {
	return &APIError{
		Message:    ErrMalformedResponse.Error(),
		StatusCode: statusCode,
		RawBody:    rawBody,
		kind:       ErrMalformedResponse,
		cause:      cause,
	}
}

// NewUnexpectedResponseShapeError creates the error for a body without the envelope.
func NewUnexpectedResponseShapeError(statusCode int, rawBody string) *APIError {
	return &APIError{
		Message:    ErrUnexpectedResponseShape.Error(),
		StatusCode: statusCode,
		RawBody:    rawBody,
		kind:       ErrUnexpectedResponseShape,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.HasErrorCode {
		return fmt.Sprintf("%s (status: %d, errno: %d)", e.Message, e.StatusCode, e.ErrorCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// Unwrap exposes the error kind and, for malformed bodies, the decoder error.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}

	if e.cause != nil {
		errs = append(errs, e.cause)
	}

	return errs
}

// Kind returns the sentinel describing which class of failure this is.
func (e *APIError) Kind() error {
	return e.kind
}

// TransportError is a failure to reach the API or read its response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// ConfigError reports missing or invalid client configuration.
type ConfigError struct {
	Field  string
	Reason string
}

// NewConfigError creates a ConfigError for the given field.
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// IsAPIError reports whether err is an APIError of any kind.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

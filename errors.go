package secadvisor

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fastjson"
)

// Sentinel errors for common failure modes.
var (
	ErrNoAuthenticator     = errors.New("secadvisor: no authenticator configured")
	ErrInvalidServiceURL   = errors.New("secadvisor: invalid service URL")
	ErrUnsupportedAuthType = errors.New("secadvisor: unsupported authentication type")
	ErrMissingParameters   = errors.New("secadvisor: missing required parameters")
)

// MissingParametersError reports required operation parameters that were not
// supplied. Names appear in the operation's declaration order.
type MissingParametersError struct {
	Params []string
}

func (e *MissingParametersError) Error() string {
	return "Missing required parameters: " + strings.Join(e.Params, ", ")
}

// Is lets errors.Is match ErrMissingParameters.
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}

// APIError represents a general Security Advisor API error.
type APIError struct {
	StatusCode    int
	Message       string
	TransactionID string
	Body          []byte
}

func (e *APIError) Error() string {
	if e.TransactionID != "" {
		return fmt.Sprintf("secadvisor: API error %d: %s (transaction_id=%s)", e.StatusCode, e.Message, e.TransactionID)
	}
	return fmt.Sprintf("secadvisor: API error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates authentication failure (401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("secadvisor: authentication failed: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates the requested resource was not found (404).
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("secadvisor: resource not found: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ConflictError indicates the resource already exists (409).
type ConflictError struct {
	APIError
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("secadvisor: conflict: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ConflictError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ValidationError indicates the server rejected the request data (400).
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("secadvisor: validation error: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// RateLimitError indicates the API rate limit was exceeded (429).
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("secadvisor: rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "secadvisor: rate limit exceeded"
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *RateLimitError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ServerError indicates an internal server error (5xx).
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("secadvisor: server error %d: %s", e.StatusCode, e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ServerError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// parseError converts an HTTP error response into the appropriate error type.
func parseError(statusCode int, status string, body []byte, headers http.Header) error {
	base := APIError{
		StatusCode:    statusCode,
		Message:       errorMessage(body, status),
		TransactionID: headers.Get("Transaction-Id"),
		Body:          body,
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusConflict:
		return &ConflictError{APIError: base}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: base}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{
			APIError:   base,
			RetryAfter: parseRetryAfter(headers.Get("Retry-After")),
		}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}

// errorMessage digs the human readable message out of an error body. IBM
// services use several shapes; a non-JSON body is returned verbatim.
func errorMessage(body []byte, status string) string {
	if len(body) == 0 {
		return status
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return string(body)
	}

	candidates := [][]string{
		{"errors", "0", "message"},
		{"error"},
		{"message"},
		{"errorMessage"},
	}
	for _, keys := range candidates {
		if s := v.GetStringBytes(keys...); len(s) > 0 {
			return string(s)
		}
	}

	return string(body)
}

// parseRetryAfter parses the Retry-After header value.
// It handles both seconds (integer) and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	// Try parsing as seconds first
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 1123)
	if t, err := time.Parse(time.RFC1123, value); err == nil {
		duration := time.Until(t)
		if duration > 0 {
			return duration
		}
	}

	return 0
}

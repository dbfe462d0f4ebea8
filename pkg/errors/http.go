package errors

import "net/http"

// HTTPError is an error that carries the status code and message the
// delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError for the given status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "upstream request failed")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

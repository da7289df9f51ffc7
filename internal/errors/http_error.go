package errors

import (
	stderrors "errors"
	"log"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrBadRequest       = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrMethodNotAllowed = func(msg string) *HTTPError { return NewHTTPError(http.StatusMethodNotAllowed, msg) }
)

// WriteError writes err as a plain-text response. Errors that do not carry an
// HTTP status are logged and reported as 500 without their details.
func WriteError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	log.Printf("Internal error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

package types

import "net/http"

// APIError is the error taxonomy surfaced at the HTTP boundary. Every
// component failure maps to exactly one of the constructors below;
// anything else is treated as an internal error by the responder.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func ErrValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func ErrConflict(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func ErrAuth(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

func ErrNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

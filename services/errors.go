package services

import (
	"errors"
	"fmt"
)

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPayment  = errors.New("payment amount is invalid or insufficient")
	ErrUnauthenticated = errors.New("no active session")
	ErrUnreachable     = errors.New("pos api unreachable")
)

// Fallback used when an error response has no readable {"message"} body.
const unreadableBodyMessage = "No se pudo leer el cuerpo del error."

// APIError is a non-2xx answer from the POS API.
type APIError struct {
	Status     int
	StatusText string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pos api: %d %s: %s", e.Status, e.StatusText, e.Message)
}

// ErrorMessage returns the server-provided message when err is an APIError.
func ErrorMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message, true
	}
	return "", false
}

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks a transport failure where no response arrived.
	ErrNetwork = errors.New("network error")

	// ErrSessionExpired marks a 401 response. The gateway has already cleared
	// the session and forced navigation to the login view when a call fails
	// with this error.
	ErrSessionExpired = errors.New("session expired")
)

// RequestError is a non-2xx response the server answered with a body. Message
// carries the server's error field when present, else a generic status line.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

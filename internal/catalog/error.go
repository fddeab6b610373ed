package catalog

import (
	"errors"
	"net/http"
)

// Error is the uniform failure shape for every client operation.
// Status is the HTTP status code, or 0 when the request never
// produced a response (network unreachable, unparsable reply).
// Body holds the raw response body so callers can render either the
// extracted message or the payload itself.
type Error struct {
	Status  int
	Message string
	Body    []byte
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a catalog error for a missing item.
func IsNotFound(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Status == http.StatusNotFound
	}
	return false
}

// transportError wraps a failure that happened before any status code
// was seen. The message stays generic; details ride on Err for logs.
func transportError(err error) *Error {
	return &Error{Status: 0, Message: "catalog service unreachable: " + err.Error()}
}

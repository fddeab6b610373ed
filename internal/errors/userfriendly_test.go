package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tturner/stockdeck/internal/catalog"
)

func TestUserFriendlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UserFriendlyError
		contains []string
	}{
		{
			name:     "message only",
			err:      UserFriendlyError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "all fields",
			err: UserFriendlyError{
				Message: "connection failed",
				Reason:  "timeout",
				Hint:    "check network",
				Try:     "ping host",
				Err:     fmt.Errorf("dial tcp: timeout"),
			},
			contains: []string{"connection failed", "Reason: timeout", "Hint: check network", "Try: ping host", "Details: dial tcp: timeout"},
		},
		{
			name: "no reason",
			err: UserFriendlyError{
				Message: "failed",
				Hint:    "hint here",
			},
			contains: []string{"failed", "Hint: hint here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want to contain %q", msg, s)
				}
			}
		})
	}
}

func TestUserFriendlyError_ErrorOmitsEmptyFields(t *testing.T) {
	err := UserFriendlyError{Message: "msg"}
	msg := err.Error()
	if strings.Contains(msg, "Reason:") || strings.Contains(msg, "Hint:") || strings.Contains(msg, "Try:") || strings.Contains(msg, "Details:") {
		t.Errorf("Error() = %q, should not contain empty fields", msg)
	}
}

func TestUserFriendlyError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("root cause")
	err := UserFriendlyError{Message: "wrapper", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Unwrap should return the inner error")
	}

	var nilErr UserFriendlyError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil Err should return nil")
	}
}

func TestWrapCatalogError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapCatalogError(nil, "http://localhost:8080/api/items") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("timeout error", func(t *testing.T) {
		err := WrapCatalogError(fmt.Errorf("dial tcp: i/o timeout"), "http://localhost:8080/api/items")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "http://localhost:8080/api/items") {
			t.Errorf("message should contain base URL, got %q", ufe.Message)
		}
		if !strings.Contains(ufe.Reason, "timed out") {
			t.Errorf("reason should mention timeout, got %q", ufe.Reason)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		err := WrapCatalogError(fmt.Errorf("connection refused"), "http://localhost:8080/api/items")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "refused") {
			t.Errorf("reason should mention refused, got %q", ufe.Reason)
		}
	})

	t.Run("not found", func(t *testing.T) {
		inner := &catalog.Error{Status: http.StatusNotFound, Message: "Item not found with id 7"}
		err := WrapCatalogError(inner, "http://localhost:8080/api/items")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "missing") {
			t.Errorf("reason should mention missing item, got %q", ufe.Reason)
		}
		if !errors.Is(err, error(inner)) {
			t.Error("wrapped error should unwrap to the catalog error")
		}
	})

	t.Run("validation rejected", func(t *testing.T) {
		inner := &catalog.Error{Status: http.StatusBadRequest, Message: "name: must not be blank"}
		err := WrapCatalogError(inner, "http://localhost:8080/api/items")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "rejected") {
			t.Errorf("message should say the request was rejected, got %q", ufe.Message)
		}
		if ufe.Hint != "name: must not be blank" {
			t.Errorf("hint should carry the service message, got %q", ufe.Hint)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		err := WrapCatalogError(fmt.Errorf("decode response: unexpected EOF"), "http://localhost:8080/api/items")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Reason, "malformed") {
			t.Errorf("reason should mention malformed, got %q", ufe.Reason)
		}
	})

	t.Run("generic error", func(t *testing.T) {
		err := WrapCatalogError(fmt.Errorf("something else"), "http://localhost:8080/api/items")
		ufe := err.(UserFriendlyError)
		if ufe.Reason != "Catalog request failed" {
			t.Errorf("unexpected reason: %q", ufe.Reason)
		}
	})
}

func TestWrapConfigError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapConfigError(nil, "config.yaml") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("wraps config error", func(t *testing.T) {
		err := WrapConfigError(fmt.Errorf("invalid yaml"), "stockdeck.yaml")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "stockdeck.yaml") {
			t.Errorf("message should contain config path, got %q", ufe.Message)
		}
		if ufe.Reason != "invalid yaml" {
			t.Errorf("reason should be inner error message, got %q", ufe.Reason)
		}
	})
}

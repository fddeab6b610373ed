package errors

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/tturner/stockdeck/internal/catalog"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapCatalogError wraps catalog service errors with user-friendly context
func WrapCatalogError(err error, baseURL string) error {
	if err == nil {
		return nil
	}

	var ce *catalog.Error
	if goerrors.As(err, &ce) && ce.Status != 0 {
		// The service responded; this is not a reachability problem.
		return UserFriendlyError{
			Message: fmt.Sprintf("The catalog service at %s rejected the request", baseURL),
			Reason:  extractCatalogReason(err),
			Hint:    ce.Message,
			Err:     err,
		}
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to reach the catalog service at %s", baseURL),
		Reason:  extractCatalogReason(err),
		Hint:    "The catalog service may be down, or the base URL may be wrong",
		Try:     "stockdeck serve  (runs a local catalog service for development)",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	where := configPath
	if where == "" {
		where = "the configuration"
	}
	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", where),
		Reason:  err.Error(),
		Hint:    "Expected YAML with api, ui, and logging sections",
		Err:     err,
	}
}

func extractCatalogReason(err error) string {
	if catalog.IsNotFound(err) {
		return "The service reported the item as missing"
	}

	errStr := err.Error()
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return "Request timed out - service may be overloaded or unreachable"
	}
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused - nothing is listening at the configured address"
	}
	if strings.Contains(errStr, "no route to host") {
		return "No route to host - network routing issue or host unreachable"
	}
	if strings.Contains(errStr, "connection reset") {
		return "Connection reset - the service closed the connection unexpectedly"
	}
	if strings.Contains(errStr, "decode response") {
		return "Received a malformed response from the service"
	}

	return "Catalog request failed"
}

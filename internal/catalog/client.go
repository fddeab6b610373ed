package catalog

// HTTP client for the item-catalog service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tturner/stockdeck/internal/logging"
)

// DefaultTimeout bounds a single catalog request when the caller does
// not supply its own http.Client.
const DefaultTimeout = 10 * time.Second

// Client talks to the item-catalog service. Success and failure are
// decided by transport status alone; every failure path resolves to a
// *Error so callers never see a raw transport error.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logging.Logger
}

// NewClient creates a client for the catalog service rooted at baseURL
// (e.g. http://localhost:8080/api/items). A nil httpClient gets a
// default with DefaultTimeout; a nil logger is replaced with a no-op.
func NewClient(baseURL string, httpClient *http.Client, log *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.baseURL }

// List fetches items, optionally filtered and ordered by the service.
// Unset filter fields are omitted from the query entirely.
func (c *Client) List(ctx context.Context, filter ListFilter) ([]Item, error) {
	q := url.Values{}
	if filter.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	if filter.SortBy != "" {
		q.Set("sortBy", filter.SortBy)
	}
	if filter.Order != "" {
		q.Set("order", filter.Order)
	}
	var items []Item
	if err := c.do(ctx, http.MethodGet, "", q, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LowStock fetches items whose quantity is at or below threshold.
// The semantics belong to the service; the client only passes the value.
func (c *Client) LowStock(ctx context.Context, threshold int) ([]Item, error) {
	q := url.Values{}
	q.Set("threshold", strconv.Itoa(threshold))
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/low-stock", q, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item. A missing id surfaces as a *Error with
// status 404; use IsNotFound to classify.
func (c *Client) Get(ctx context.Context, id string) (Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Create submits a new item and returns it with its service-assigned id.
func (c *Client) Create(ctx context.Context, in ItemInput) (Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "", nil, in, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Update replaces the item with the given id.
func (c *Client) Update(ctx context.Context, id string, in ItemInput) (Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPut, "/"+url.PathEscape(id), nil, in, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Delete removes the item with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil, nil)
}

// do performs one request against the service. out may be nil for
// calls whose response body is irrelevant (delete returns no payload).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return transportError(fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return transportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("catalog request", "method", method, "url", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("catalog request failed", "method", method, "url", endpoint, "err", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractMessage(resp.Header.Get("Content-Type"), raw)
		c.log.Debug("catalog error response", "status", resp.StatusCode, "message", msg)
		return &Error{Status: resp.StatusCode, Message: msg, Body: raw}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return transportError(fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body.
// Structured bodies win with their message field; otherwise the raw
// text stands in, and an empty body falls back to a generic string.
func extractMessage(contentType string, raw []byte) string {
	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return "unknown error"
}

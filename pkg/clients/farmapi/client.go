package farmapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/domain/models"
)

// Client wraps the farm backend REST API. All admin resources live under a
// common /api prefix; authenticated endpoints require a bearer token.
type Client struct {
	http *resty.Client
}

// NewClient builds a farm API client using the provided configuration values.
func NewClient(cfg config.FarmAPIConfig) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base + "/api").
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{http: restyClient}
}

// SetToken installs the bearer token used on subsequent authenticated calls.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// APIError is a non-success response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("farm api error: status=%d, message=%s", e.Status, e.Message)
}

// IsAuthError reports whether err is an expired/invalid-token response.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a missing-resource response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// errorPayload mirrors the backend's error body.
type errorPayload struct {
	Detail string `json:"detail"`
}

func toAPIError(resp *resty.Response, apiErr *errorPayload) error {
	message := ""
	if apiErr != nil {
		message = apiErr.Detail
	}
	return &APIError{Status: resp.StatusCode(), Message: message}
}

// List fetches a resource collection.
func List[T any](ctx context.Context, c *Client, path string, query map[string]string) ([]T, error) {
	var result []T
	apiErr := new(errorPayload)

	req := c.http.R().SetContext(ctx).SetResult(&result).SetError(apiErr)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, toAPIError(resp, apiErr)
	}

	return result, nil
}

// GetOne fetches a single resource document.
func GetOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var result T
	apiErr := new(errorPayload)

	resp, err := c.http.R().SetContext(ctx).SetResult(&result).SetError(apiErr).Get(path)
	if err != nil {
		return result, fmt.Errorf("get %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return result, toAPIError(resp, apiErr)
	}

	return result, nil
}

// Create POSTs a new resource and returns the stored representation.
func Create[T any](ctx context.Context, c *Client, path string, item T) (T, error) {
	var result T
	apiErr := new(errorPayload)

	resp, err := c.http.R().SetContext(ctx).SetBody(item).SetResult(&result).SetError(apiErr).Post(path)
	if err != nil {
		return result, fmt.Errorf("create %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return result, toAPIError(resp, apiErr)
	}

	return result, nil
}

// Replace PUTs a full-document update and returns the stored representation.
func Replace[T any](ctx context.Context, c *Client, path string, item T) (T, error) {
	var result T
	apiErr := new(errorPayload)

	resp, err := c.http.R().SetContext(ctx).SetBody(item).SetResult(&result).SetError(apiErr).Put(path)
	if err != nil {
		return result, fmt.Errorf("replace %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return result, toAPIError(resp, apiErr)
	}

	return result, nil
}

// Delete removes a resource document.
func (c *Client) Delete(ctx context.Context, path string) error {
	apiErr := new(errorPayload)

	resp, err := c.http.R().SetContext(ctx).SetError(apiErr).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return toAPIError(resp, apiErr)
	}

	return nil
}

// PatchStatus issues a narrow status-only update, the one exception to the
// full-document-replace contract (contact status, sale payment status, and
// the other singled-out status fields).
func (c *Client) PatchStatus(ctx context.Context, path, status string) error {
	apiErr := new(errorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("status", status).
		SetError(apiErr).
		Patch(path)
	if err != nil {
		return fmt.Errorf("patch status %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return toAPIError(resp, apiErr)
	}

	return nil
}

// Ticker fetches the public market price feed.
func (c *Client) Ticker(ctx context.Context) (models.Ticker, error) {
	var result models.Ticker
	apiErr := new(errorPayload)

	resp, err := c.http.R().SetContext(ctx).SetResult(&result).SetError(apiErr).Get("/ticker")
	if err != nil {
		return nil, fmt.Errorf("fetch ticker: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, toAPIError(resp, apiErr)
	}

	return result, nil
}

package farmapi

import (
	"context"
	"fmt"
	"net/http"
)

// tokenResponse mirrors the login endpoint's success payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// verifyResponse mirrors the verify endpoint's success payload.
type verifyResponse struct {
	Username string `json:"username"`
}

// Login exchanges the shared admin credentials for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	result := new(tokenResponse)
	apiErr := new(errorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(result).
		SetError(apiErr).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return "", toAPIError(resp, apiErr)
	}

	return result.AccessToken, nil
}

// Verify validates a stored token against the backend and returns the
// authenticated username.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	result := new(verifyResponse)
	apiErr := new(errorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(result).
		SetError(apiErr).
		Get("/auth/verify")
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return "", toAPIError(resp, apiErr)
	}

	return result.Username, nil
}

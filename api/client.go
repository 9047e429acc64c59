// Package api is the wire client for the console backend's auth surface:
// login, registration, and the profile endpoint. Resource endpoints (cars,
// bookings, ...) have their own clients and only borrow the bearer token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rentora/console-client/utils"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the signup request payload.
type Registration struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// Profile is the authenticated user's record as served by /me.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Me is the /me response: the user plus the tenant fields the client cares
// about (currently only the subscription tier).
type Me struct {
	User   Profile `json:"user"`
	Tenant struct {
		SubscriptionTier string `json:"subscription_tier"`
	} `json:"tenant"`
}

// StatusError is a non-2xx response. Message carries the server's {error}
// body when present, otherwise a generic fallback.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Code, e.Message)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized
}

// Client talks JSON to the console backend.
type Client struct {
	baseURL    string
	tenantID   string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (primarily for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the given API base URL. tenantID is sent as
// the X-Tenant-ID header on every request; the backend uses it to select the
// tenant database.
func NewClient(baseURL, tenantID string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		tenantID: tenantID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if err := utils.ValidateStruct(creds); err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &resp, "Login failed"); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: no token in response")
	}
	return resp.Token, nil
}

// Register creates an account. It does not authenticate; callers are
// expected to log in afterwards.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	if err := utils.ValidateStruct(reg); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/auth/register", "", reg, nil, "Registration failed")
}

// Me fetches the authenticated user's profile and tenant subscription tier.
func (c *Client) Me(ctx context.Context, token string) (Me, error) {
	var me Me
	err := c.do(ctx, http.MethodGet, "/me", token, nil, &me, "Failed to fetch profile")
	return me, err
}

// do issues one JSON request and decodes the response into out. A non-2xx
// status becomes a *StatusError carrying the body's {error} message or the
// fallback.
func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}, fallback string) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tenantID != "" {
		req.Header.Set("X-Tenant-ID", c.tenantID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
			message = envelope.Error
		}
		c.logger.Debug("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &StatusError{Code: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

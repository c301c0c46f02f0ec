package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"todoist-agent-cli/internal/task/repository"
)

const (
	DefaultRESTURL = "https://api.todoist.com/rest/v2"
	DefaultSyncURL = "https://api.todoist.com/sync/v9"
)

// ClientConfig configures a Client.
type ClientConfig struct {
	RESTURL           string
	SyncURL           string
	Token             string
	Timeout           time.Duration
	RequestsPerMinute int // 0 disables client-side throttling
}

// Client is the HTTP wrapper for the Todoist REST and Sync APIs.
type Client struct {
	restURL    string
	syncURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Todoist client that authenticates every request with the bearer token.
func NewClient(cfg ClientConfig) *Client {
	restURL := strings.TrimRight(cfg.RESTURL, "/")
	if restURL == "" {
		restURL = DefaultRESTURL
	}
	syncURL := strings.TrimRight(cfg.SyncURL, "/")
	if syncURL == "" {
		syncURL = DefaultSyncURL
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = cfg.Timeout

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)
	}

	return &Client{
		restURL:    restURL,
		syncURL:    syncURL,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// APIError is a non-2xx answer from Todoist.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = http.StatusText(e.Status)
	}
	return fmt.Sprintf("todoist API %s %s error %d: %s", e.Method, e.Path, e.Status, body)
}

// Is maps 404 to repository.ErrNotFound and 401/403 to repository.ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	switch target {
	case repository.ErrNotFound:
		return e.Status == http.StatusNotFound
	case repository.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

// ---- REST ----

func (c *Client) restGet(ctx context.Context, path string, query url.Values, out any) error {
	u := c.restURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.doJSON(ctx, http.MethodGet, u, nil, out)
}

func (c *Client) restPost(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, c.restURL+path, body, out)
}

func (c *Client) restDelete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, c.restURL+path, nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, rawURL string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", method, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// ---- Sync ----

func (c *Client) syncGet(ctx context.Context, path string, query url.Values, out any) error {
	u := c.syncURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	return c.send(req, out)
}

func (c *Client) syncPost(ctx context.Context, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.syncURL+"/sync", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return fmt.Errorf("request throttled: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call todoist %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Method: req.Method, Path: req.URL.Path, Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode todoist %s response: %w", req.URL.Path, err)
	}
	return nil
}

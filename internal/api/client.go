package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Prefix is the fixed path segment all admin endpoints are rooted under.
const Prefix = "/_synapse/admin/"

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP client for the Synapse admin API. It owns request
// construction, bearer authentication and response error mapping; the
// endpoint methods in endpoints.go are thin wrappers over Send and Do.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

// Config configures the API client.
type Config struct {
	// BaseURL is the homeserver base URL, e.g. "https://matrix.example.com".
	BaseURL string
	// AccessToken is the admin bearer token. May be empty at construction;
	// without it the client can only issue unauthenticated calls.
	AccessToken string
	// HTTPClient is the transport used for requests. Defaults to an
	// *http.Client with DefaultTimeout.
	HTTPClient *http.Client
	// Timeout overrides the default timeout when no HTTPClient is given.
	Timeout time.Duration
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		accessToken: cfg.AccessToken,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetAccessToken replaces the stored bearer token. The new token is used
// for the next request; requests already in flight are unaffected.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// AccessToken returns the current bearer token, or "" if none is set.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Response is a raw admin API response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the full status line, e.g. "200 OK".
	Status string
	// Header holds the response headers.
	Header http.Header
	// Body is the response body, fully read.
	Body []byte
}

// Send issues a single request to {baseURL}/_synapse/admin/{relativeURL}
// and returns the raw response.
//
// A non-nil payload with a GET request is rejected before any network
// activity. Transport failures surface as *NetworkError. A status code in
// [300, 500) surfaces as *APIError, with the message taken from the
// response's "error" JSON field when present, else the HTTP reason phrase.
// All other status codes, including 5xx, return an ordinary *Response;
// callers wanting stricter handling of 5xx must inspect StatusCode.
func (c *Client) Send(ctx context.Context, method, relativeURL string, payload []byte) (*Response, error) {
	if method == http.MethodGet && payload != nil {
		return nil, ErrPayloadWithGet
	}

	url := c.baseURL + Prefix + relativeURL

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: url}
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 500 {
		return nil, newAPIError(resp.StatusCode, reasonPhrase(resp), body)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Do sends a request with an optional JSON body and decodes the response
// body into result when result is non-nil. It applies the same error
// mapping as Send; a response body that fails to decode surfaces as
// *ParseError.
func (c *Client) Do(ctx context.Context, method, relativeURL string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	resp, err := c.Send(ctx, method, relativeURL, payload)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return &ParseError{What: method + " " + relativeURL, Err: err}
		}
	}

	return nil
}

// reasonPhrase extracts the reason phrase from a response status line,
// falling back to the standard text for the status code.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}

// newAPIError builds an *APIError for an error-range response. The message
// comes from the body's "error" field when the body decodes as JSON and the
// field is non-empty, otherwise the reason phrase is used.
func newAPIError(statusCode int, reason string, body []byte) *APIError {
	msg := reason

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		msg = errResp.Error
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    msg,
	}
}

// Package vnish implements a read-only client for the VNish firmware
// REST API exposed by Antminer-class mining hardware.
package vnish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds each outbound request.
const DefaultTimeout = 10 * time.Second

// Client is the interface for reading miner status over the VNish API.
type Client interface {
	// Host returns the miner host address.
	Host() string

	// CheckAuth calls the auth-check endpoint and returns the raw
	// response. The response is informational only and never validated.
	CheckAuth(ctx context.Context) (json.RawMessage, error)

	// Summary returns the parsed miner summary.
	Summary(ctx context.Context) (*Summary, error)

	// SummaryRaw returns the raw JSON summary document.
	SummaryRaw(ctx context.Context) ([]byte, error)
}

// HTTPClient is the HTTP implementation of Client.
type HTTPClient struct {
	host       string
	baseURL    string
	httpClient *http.Client
	creds      *Credentials
}

// ClientOption is a function that configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new VNish HTTP client for a single miner host.
func NewClient(host string, creds *Credentials, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		host:    host,
		baseURL: fmt.Sprintf("http://%s/api/v1", host),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		creds: creds,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Host returns the miner host address.
func (c *HTTPClient) Host() string {
	return c.host
}

// get issues a GET request and returns the response body. Non-2xx
// responses are converted to *APIError.
func (c *HTTPClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.creds != nil && c.creds.Configured() {
		req.Header.Set("Authorization", "Bearer "+c.creds.Token())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if json.Unmarshal(bodyBytes, &errResp) == nil && errResp.Err != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Err, Endpoint: endpoint}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(bodyBytes), Endpoint: endpoint}
	}

	return bodyBytes, nil
}

// CheckAuth calls /auth-check and returns the raw response body.
func (c *HTTPClient) CheckAuth(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "/auth-check")
	if err != nil {
		return nil, fmt.Errorf("auth check failed: %w", err)
	}
	return json.RawMessage(body), nil
}

// SummaryRaw returns the raw JSON response from the summary endpoint.
func (c *HTTPClient) SummaryRaw(ctx context.Context) ([]byte, error) {
	body, err := c.get(ctx, "/summary")
	if err != nil {
		return nil, fmt.Errorf("summary fetch failed: %w", err)
	}
	return body, nil
}

// Summary returns the parsed miner summary.
func (c *HTTPClient) Summary(ctx context.Context) (*Summary, error) {
	body, err := c.SummaryRaw(ctx)
	if err != nil {
		return nil, err
	}

	sum, err := ParseSummary(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}
	return sum, nil
}

// Ensure HTTPClient implements the Client interface.
var _ Client = (*HTTPClient)(nil)

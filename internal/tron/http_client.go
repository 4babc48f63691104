package tron

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// apiKeyHeader carries the TronGrid API key when one is configured.
	apiKeyHeader = "TRON-PRO-API-KEY"

	// sunPerTRX is the number of SUN in one TRX.
	sunPerTRX = 1_000_000
)

// HTTPClient implements Client against the TRON full-node HTTP API
// (wallet/getaccount, wallet/getaccountresource).
type HTTPClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// ClientOption configures HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithAPIKey sets the TronGrid API key sent with every request.
func WithAPIKey(key string) ClientOption {
	return func(c *HTTPClient) {
		c.apiKey = key
	}
}

// WithHTTPClient sets custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// NewHTTPClient creates a new TRON node HTTP client.
func NewHTTPClient(endpoint string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSessionFactory returns a SessionFactory that opens a fresh HTTP client
// session per call.
func NewSessionFactory(endpoint string, opts ...ClientOption) SessionFactory {
	return func() SessionClient {
		return NewHTTPClient(endpoint, opts...)
	}
}

// Close releases the session's idle connections.
func (c *HTTPClient) Close() {
	c.client.CloseIdleConnections()
}

// Compile-time interface check.
var _ SessionClient = (*HTTPClient)(nil)

// accountRequest is the request body shared by the wallet endpoints.
// visible=true selects base58 address encoding.
type accountRequest struct {
	Address string `json:"address"`
	Visible bool   `json:"visible"`
}

// call POSTs an account request to the given wallet endpoint path and
// decodes the JSON response into result.
func (c *HTTPClient) call(ctx context.Context, path, address string, result interface{}) error {
	body, err := json.Marshal(accountRequest{Address: address, Visible: true})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// IsValidAddress reports whether address passes base58check validation.
// Validation is local; the node is not contacted.
func (c *HTTPClient) IsValidAddress(_ context.Context, address string) (bool, error) {
	return ValidAddress(address), nil
}

// getAccountResult is the raw response for wallet/getaccount. Balance is in
// SUN and absent for unactivated accounts.
type getAccountResult struct {
	Balance int64  `json:"balance"`
	Error   string `json:"Error"`
}

// GetAccountBalance retrieves the TRX balance of an account.
func (c *HTTPClient) GetAccountBalance(ctx context.Context, address string) (float64, error) {
	var result getAccountResult
	if err := c.call(ctx, "/wallet/getaccount", address, &result); err != nil {
		return 0, err
	}
	if result.Error != "" {
		return 0, fmt.Errorf("node error: %s", result.Error)
	}
	return float64(result.Balance) / sunPerTRX, nil
}

// GetBandwidth retrieves the remaining free bandwidth of an account
// (freeNetLimit minus freeNetUsed).
func (c *HTTPClient) GetBandwidth(ctx context.Context, address string) (int64, error) {
	res, err := c.GetAccountResource(ctx, address)
	if err != nil {
		return 0, err
	}
	return res.FreeNetLimit - res.FreeNetUsed, nil
}

// getAccountResourceResult is the raw response for wallet/getaccountresource.
type getAccountResourceResult struct {
	AccountResource
	Error string `json:"Error"`
}

// GetAccountResource retrieves the resource summary of an account.
func (c *HTTPClient) GetAccountResource(ctx context.Context, address string) (*AccountResource, error) {
	var result getAccountResourceResult
	if err := c.call(ctx, "/wallet/getaccountresource", address, &result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, fmt.Errorf("node error: %s", result.Error)
	}
	return &result.AccountResource, nil
}

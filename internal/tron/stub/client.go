package stub

import (
	"context"

	"tron-address-service/internal/tron"
)

// Client implements tron.SessionClient for testing. Fixed return values are
// set directly on the struct; per-call errors via the Err fields.
type Client struct {
	Valid     bool
	Balance   float64
	Bandwidth int64
	Resource  tron.AccountResource

	ValidErr     error
	BalanceErr   error
	BandwidthErr error
	ResourceErr  error

	// Call bookkeeping for assertions.
	Calls  []string
	Closed bool
}

// NewClient creates a stub client with sane account defaults.
func NewClient() *Client {
	return &Client{
		Valid:     true,
		Balance:   123.456,
		Bandwidth: 600,
		Resource: tron.AccountResource{
			FreeNetLimit: 600,
			EnergyLimit:  1000,
			EnergyUsed:   200,
		},
	}
}

// Factory returns a tron.SessionFactory that hands out this stub.
func (c *Client) Factory() tron.SessionFactory {
	return func() tron.SessionClient { return c }
}

func (c *Client) IsValidAddress(_ context.Context, _ string) (bool, error) {
	c.Calls = append(c.Calls, "IsValidAddress")
	return c.Valid, c.ValidErr
}

func (c *Client) GetAccountBalance(_ context.Context, _ string) (float64, error) {
	c.Calls = append(c.Calls, "GetAccountBalance")
	return c.Balance, c.BalanceErr
}

func (c *Client) GetBandwidth(_ context.Context, _ string) (int64, error) {
	c.Calls = append(c.Calls, "GetBandwidth")
	return c.Bandwidth, c.BandwidthErr
}

func (c *Client) GetAccountResource(_ context.Context, _ string) (*tron.AccountResource, error) {
	c.Calls = append(c.Calls, "GetAccountResource")
	if c.ResourceErr != nil {
		return nil, c.ResourceErr
	}
	res := c.Resource
	return &res, nil
}

// Close records that the session was released.
func (c *Client) Close() {
	c.Closed = true
}

package tron

import "context"

// Client defines the TRON node HTTP interface consumed by the lookup service.
type Client interface {
	// IsValidAddress reports whether address is a well-formed base58check
	// TRON address.
	IsValidAddress(ctx context.Context, address string) (bool, error)

	// GetAccountBalance retrieves the TRX balance of an account.
	// Unactivated accounts have balance 0.
	GetAccountBalance(ctx context.Context, address string) (float64, error)

	// GetBandwidth retrieves the remaining free bandwidth of an account.
	GetBandwidth(ctx context.Context, address string) (int64, error)

	// GetAccountResource retrieves the resource summary of an account.
	GetAccountResource(ctx context.Context, address string) (*AccountResource, error)
}

// SessionClient is a Client bound to a single scoped session. Close releases
// the session and must be called once the caller is done, on every path.
type SessionClient interface {
	Client
	Close()
}

// SessionFactory opens a fresh client session. The lookup service acquires
// one per request and never shares sessions across requests.
type SessionFactory func() SessionClient

// AccountResource is the resource summary of an account as reported by
// wallet/getaccountresource. The node omits fields that are zero.
type AccountResource struct {
	FreeNetLimit int64 `json:"freeNetLimit"`
	FreeNetUsed  int64 `json:"freeNetUsed"`
	NetLimit     int64 `json:"NetLimit"`
	NetUsed      int64 `json:"NetUsed"`
	EnergyLimit  int64 `json:"EnergyLimit"`
	EnergyUsed   int64 `json:"EnergyUsed"`
}

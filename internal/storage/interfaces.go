package storage

import (
	"context"
	"time"

	"tron-address-service/internal/domain"
)

// LookupStore provides access to address_info storage. Records are
// append-only: they are never updated or deleted by the service.
type LookupStore interface {
	// Insert appends one lookup record and returns it with the
	// store-assigned id. The timestamp is supplied by the caller at
	// write time, never by the HTTP client.
	Insert(ctx context.Context, address string, balance float64, at time.Time) (*domain.AddressLookup, error)

	// ListRecent retrieves records ordered by date descending (id
	// descending on equal dates), skipping offset rows and returning at
	// most limit. An offset beyond the last row yields an empty slice.
	ListRecent(ctx context.Context, offset, limit int) ([]*domain.AddressLookup, error)
}

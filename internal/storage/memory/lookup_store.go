package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tron-address-service/internal/domain"
	"tron-address-service/internal/storage"
)

// LookupStore is an in-memory implementation of storage.LookupStore.
type LookupStore struct {
	mu      sync.RWMutex
	records []*domain.AddressLookup
	nextID  int64
}

// NewLookupStore creates a new in-memory lookup store.
func NewLookupStore() *LookupStore {
	return &LookupStore{nextID: 1}
}

// Compile-time interface check.
var _ storage.LookupStore = (*LookupStore)(nil)

// Insert appends one lookup record and returns it with the assigned id.
func (s *LookupStore) Insert(_ context.Context, address string, balance float64, at time.Time) (*domain.AddressLookup, error) {
	if address == "" {
		return nil, storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &domain.AddressLookup{
		ID:      s.nextID,
		Date:    at,
		Address: address,
		Balance: balance,
	}
	s.nextID++
	s.records = append(s.records, rec)

	copy := *rec
	return &copy, nil
}

// ListRecent retrieves records ordered by date descending with offset/limit.
func (s *LookupStore) ListRecent(_ context.Context, offset, limit int) ([]*domain.AddressLookup, error) {
	if offset < 0 || limit < 0 {
		return nil, storage.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]*domain.AddressLookup, len(s.records))
	copy(sorted, s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID > sorted[j].ID
	})

	if offset >= len(sorted) {
		return []*domain.AddressLookup{}, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}

	out := make([]*domain.AddressLookup, 0, end-offset)
	for _, rec := range sorted[offset:end] {
		c := *rec
		out = append(out, &c)
	}
	return out, nil
}

// Len reports the number of stored records.
func (s *LookupStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"tron-address-service/internal/domain"
	"tron-address-service/internal/storage"
)

// LookupStore implements storage.LookupStore using PostgreSQL.
type LookupStore struct {
	pool *Pool
}

// NewLookupStore creates a new LookupStore.
func NewLookupStore(pool *Pool) *LookupStore {
	return &LookupStore{pool: pool}
}

// Compile-time interface check.
var _ storage.LookupStore = (*LookupStore)(nil)

// Insert appends one lookup record and returns it with the assigned id.
func (s *LookupStore) Insert(ctx context.Context, address string, balance float64, at time.Time) (*domain.AddressLookup, error) {
	if address == "" {
		return nil, storage.ErrInvalidInput
	}

	query := `
		INSERT INTO address_info (date, address, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	rec := &domain.AddressLookup{
		Date:    at,
		Address: address,
		Balance: balance,
	}

	if err := s.pool.QueryRow(ctx, query, at, address, balance).Scan(&rec.ID); err != nil {
		return nil, fmt.Errorf("insert address lookup: %w", err)
	}

	return rec, nil
}

// ListRecent retrieves records ordered by date descending with offset/limit.
func (s *LookupStore) ListRecent(ctx context.Context, offset, limit int) ([]*domain.AddressLookup, error) {
	if offset < 0 || limit < 0 {
		return nil, storage.ErrInvalidInput
	}

	query := `
		SELECT id, date, address, balance
		FROM address_info
		ORDER BY date DESC, id DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list address lookups: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AddressLookup, 0, limit)
	for rows.Next() {
		var rec domain.AddressLookup
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Address, &rec.Balance); err != nil {
			return nil, fmt.Errorf("scan address lookup row: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address lookup rows: %w", err)
	}

	return records, nil
}

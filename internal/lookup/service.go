// Package lookup orchestrates the address-lookup-and-persist workflow:
// validation, node fetches, energy derivation, best-effort persistence,
// and the paginated read of the lookup history.
package lookup

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"tron-address-service/internal/domain"
	"tron-address-service/internal/observability"
	"tron-address-service/internal/storage"
	"tron-address-service/internal/tron"
)

// WriteMode is the persistence policy for the lookup log write.
type WriteMode int

const (
	// WriteBestEffort logs and swallows persistence failures; the lookup
	// response is still returned. This is the default: observability of
	// the ledger state is prioritized over guaranteed audit logging.
	WriteBestEffort WriteMode = iota

	// WriteRequired fails the lookup when the record cannot be written.
	WriteRequired
)

// History pagination bounds.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Options configures a Service.
type Options struct {
	// Sessions opens one node client session per lookup.
	Sessions tron.SessionFactory

	// Store receives one record per successful lookup.
	Store storage.LookupStore

	// WriteMode defaults to WriteBestEffort.
	WriteMode WriteMode

	// Logger defaults to a "[lookup]" stdout logger.
	Logger *log.Logger

	// Now defaults to time.Now. Overridable in tests.
	Now func() time.Time
}

// Service implements the lookup workflow and the history query.
type Service struct {
	sessions  tron.SessionFactory
	store     storage.LookupStore
	writeMode WriteMode
	logger    *log.Logger
	now       func() time.Time
}

// New creates a lookup service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "[lookup] ", log.LstdFlags|log.Lshortfile)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		sessions:  opts.Sessions,
		store:     opts.Store,
		writeMode: opts.WriteMode,
		logger:    logger,
		now:       now,
	}
}

// Lookup fetches balance, bandwidth and energy for one address and appends a
// record to the lookup log. The address is trimmed, shape-checked locally,
// then checked against the node client's own rules; the three fetches run
// sequentially on one session, which is released on every exit path.
func (s *Service) Lookup(ctx context.Context, address string) (*domain.AccountInfo, error) {
	address = strings.TrimSpace(address)

	if len(address) != tron.AddressLength || address[0] != tron.AddressPrefix {
		return nil, ErrInvalidFormat
	}

	session := s.sessions()
	defer session.Close()

	valid, err := session.IsValidAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("validate address %s: %w", address, err)
	}
	if !valid {
		return nil, ErrInvalidAddress
	}

	balance, err := session.GetAccountBalance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch balance for %s: %w", address, err)
	}

	bandwidth, err := session.GetBandwidth(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch bandwidth for %s: %w", address, err)
	}

	res, err := session.GetAccountResource(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch account resources for %s: %w", address, err)
	}

	// Remaining is not clamped: usage above the limit passes through
	// negative so consumers see the raw upstream values.
	var remaining int64
	if res.EnergyLimit > 0 {
		remaining = res.EnergyLimit - res.EnergyUsed
	}

	info := &domain.AccountInfo{
		Address:    address,
		BalanceTRX: balance,
		Bandwidth:  bandwidth,
		Energy: domain.Energy{
			Limit:     res.EnergyLimit,
			Used:      res.EnergyUsed,
			Remaining: remaining,
		},
	}

	if _, err := s.store.Insert(ctx, address, balance, s.now().UTC()); err != nil {
		if s.writeMode == WriteRequired {
			return nil, fmt.Errorf("record lookup for %s: %w", address, err)
		}
		s.logger.Printf("failed to record lookup for %s: %v", address, err)
		observability.RecordLookupWriteSwallowed()
	}

	return info, nil
}

// History returns logged lookups, most recent first. Out-of-range page or
// pageSize values return ErrInvalidPage; defaults are the caller's concern.
func (s *Service) History(ctx context.Context, page, pageSize int) ([]*domain.AddressLookup, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, ErrInvalidPage
	}

	offset := (page - 1) * pageSize

	records, err := s.store.ListRecent(ctx, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list lookup history: %w", err)
	}
	return records, nil
}

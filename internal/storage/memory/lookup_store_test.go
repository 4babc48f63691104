package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"tron-address-service/internal/storage"
)

func TestLookupStore_InsertAssignsIDs(t *testing.T) {
	store := NewLookupStore()
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := store.Insert(ctx, "TTestAddress1234567890abcdef", 789.012, now)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	second, err := store.Insert(ctx, "TTestAddress1234567890abcdef", 1.5, now.Add(time.Second))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.Balance != 789.012 {
		t.Errorf("Balance mismatch: got %f, want %f", first.Balance, 789.012)
	}
}

func TestLookupStore_InsertEmptyAddress(t *testing.T) {
	store := NewLookupStore()

	_, err := store.Insert(context.Background(), "", 1.0, time.Now())
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestLookupStore_ListRecentOrdering(t *testing.T) {
	store := NewLookupStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := store.Insert(ctx, "TTestAddress1234567890abcdef", float64(i), base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	records, err := store.ListRecent(ctx, 0, 3)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.After(records[i-1].Date) {
			t.Errorf("records out of order: %v before %v", records[i-1].Date, records[i].Date)
		}
	}
	if records[0].Balance != 4 {
		t.Errorf("expected newest record first (balance 4), got %f", records[0].Balance)
	}
}

func TestLookupStore_ListRecentPagesDoNotOverlap(t *testing.T) {
	store := NewLookupStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		if _, err := store.Insert(ctx, "TTestAddress1234567890abcdef", float64(i), base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	page1, err := store.ListRecent(ctx, 0, 10)
	if err != nil {
		t.Fatalf("ListRecent page 1 failed: %v", err)
	}
	page2, err := store.ListRecent(ctx, 10, 10)
	if err != nil {
		t.Fatalf("ListRecent page 2 failed: %v", err)
	}

	if len(page1) != 10 || len(page2) != 10 {
		t.Fatalf("expected 10+10 records, got %d+%d", len(page1), len(page2))
	}

	seen := make(map[int64]bool)
	for _, rec := range page1 {
		seen[rec.ID] = true
	}
	for _, rec := range page2 {
		if seen[rec.ID] {
			t.Errorf("record %d appears on both pages", rec.ID)
		}
	}
	// No gap: page2 continues exactly where page1 ended.
	if page2[0].ID != page1[len(page1)-1].ID-1 {
		t.Errorf("expected page 2 to start at id %d, got %d", page1[len(page1)-1].ID-1, page2[0].ID)
	}
}

func TestLookupStore_ListRecentOffsetBeyondRows(t *testing.T) {
	store := NewLookupStore()
	ctx := context.Background()

	records, err := store.ListRecent(ctx, 100, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty slice, got %d records", len(records))
	}
	if records == nil {
		t.Error("expected non-nil empty slice")
	}
}

func TestLookupStore_SameTimestampBreaksTiesByID(t *testing.T) {
	store := NewLookupStore()
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := store.Insert(ctx, "TTestAddress1234567890abcdef", float64(i), at); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	records, err := store.ListRecent(ctx, 0, 3)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}

	if records[0].ID != 3 || records[1].ID != 2 || records[2].ID != 1 {
		t.Errorf("expected ids 3,2,1 got %d,%d,%d", records[0].ID, records[1].ID, records[2].ID)
	}
}

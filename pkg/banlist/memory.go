package banlist

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is an in-memory ban store, used in tests and as a
// fallback when no persistent backend is available.
type MemoryRepository struct {
	mu      sync.Mutex
	records []BanRecord
	now     func() time.Time
}

// NewMemoryRepository creates an empty in-memory ban store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// List returns a copy of all records in ban order
func (r *MemoryRepository) List(ctx context.Context) []BanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]BanRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Find returns the record for userID, if any
func (r *MemoryRepository) Find(ctx context.Context, userID string) (*BanRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.UserID == userID {
			found := rec
			return &found, true
		}
	}
	return nil, false
}

// Add appends a new record
func (r *MemoryRepository) Add(ctx context.Context, userID, username, reason, bannedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.UserID == userID {
			return ErrAlreadyBanned
		}
	}

	r.records = append(r.records, BanRecord{
		UserID:   userID,
		Username: username,
		Reason:   reason,
		BannedBy: bannedBy,
		BannedAt: r.now(),
	})
	return nil
}

// Remove deletes the record for userID
func (r *MemoryRepository) Remove(ctx context.Context, userID, actingAdmin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.UserID == userID {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return ErrNotBanned
}

// Stats returns the total count and the most recent records
func (r *MemoryRepository) Stats(ctx context.Context) Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return statsOf(r.records)
}

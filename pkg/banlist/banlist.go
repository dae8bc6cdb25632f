// Package banlist implements the per-user ban store that gates bot commands.
// Records are kept in insertion order; the user ID is the natural key and at
// most one active record exists per user. Implementations persist the full
// collection on every mutation and guard the read-modify-write cycle.
package banlist

import (
	"context"
	"errors"
	"time"
)

// RecentLimit is how many records Stats reports, most-recent-first
const RecentLimit = 5

// Sentinel errors returned by Repository mutations
var (
	ErrAlreadyBanned = errors.New("el usuario ya está baneado")
	ErrNotBanned     = errors.New("el usuario no está baneado")
)

// BanRecord is a persisted ban entry
type BanRecord struct {
	UserID   string    `json:"userId" bson:"_id"`
	Username string    `json:"username" bson:"username"`
	Reason   string    `json:"reason" bson:"reason"`
	BannedBy string    `json:"bannedBy" bson:"banned_by"`
	BannedAt time.Time `json:"bannedAt" bson:"banned_at"`
}

// Stats summarizes the ban store
type Stats struct {
	Total  int
	Recent []BanRecord
}

// Repository is the sole owner of the ban collection
type Repository interface {
	// List returns all records in ban order. It fails soft: unreadable or
	// corrupt backing data degrades to an empty list, never an error.
	List(ctx context.Context) []BanRecord

	// Find returns the record for userID, if any
	Find(ctx context.Context, userID string) (*BanRecord, bool)

	// Add appends a new record with BannedAt set to the current time.
	// Returns ErrAlreadyBanned if a record for userID already exists.
	Add(ctx context.Context, userID, username, reason, bannedBy string) error

	// Remove deletes the record for userID.
	// Returns ErrNotBanned if no record exists; nothing is written in that case.
	Remove(ctx context.Context, userID, actingAdmin string) error

	// Stats returns the total count and the most recent records
	Stats(ctx context.Context) Stats
}

// statsOf derives Stats from an ordered record slice
func statsOf(records []BanRecord) Stats {
	s := Stats{Total: len(records)}

	n := len(records)
	limit := RecentLimit
	if n < limit {
		limit = n
	}

	s.Recent = make([]BanRecord, 0, limit)
	for i := 0; i < limit; i++ {
		s.Recent = append(s.Recent, records[n-1-i])
	}
	return s
}

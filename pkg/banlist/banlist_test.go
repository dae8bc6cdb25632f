package banlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// both backends must honor the same Repository contract
func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"file":   NewFileRepository(t.TempDir()),
	}
}

func TestFindAbsent(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := repo.Find(ctx, "999999999999999999"); ok {
				t.Error("Find() should report absent for an unknown user")
			}
			if got := len(repo.List(ctx)); got != 0 {
				t.Errorf("List() on empty store = %d records, want 0", got)
			}
		})
	}
}

func TestAddTwiceReturnsAlreadyBanned(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Add(ctx, "111111111111111111", "maria", "spam", "admin"); err != nil {
				t.Fatalf("first Add() failed: %v", err)
			}

			err := repo.Add(ctx, "111111111111111111", "maria", "spam again", "admin")
			if err != ErrAlreadyBanned {
				t.Errorf("second Add() = %v, want ErrAlreadyBanned", err)
			}

			if got := len(repo.List(ctx)); got != 1 {
				t.Errorf("record count after duplicate Add() = %d, want 1", got)
			}
		})
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Add(ctx, "222222222222222222", "pedro", "flood", "admin"); err != nil {
				t.Fatalf("Add() failed: %v", err)
			}

			rec, ok := repo.Find(ctx, "222222222222222222")
			if !ok {
				t.Fatal("Find() should locate the banned user")
			}
			if rec.Username != "pedro" || rec.Reason != "flood" || rec.BannedBy != "admin" {
				t.Errorf("unexpected record: %+v", rec)
			}
			if rec.BannedAt.IsZero() {
				t.Error("BannedAt should be set at creation")
			}

			if err := repo.Remove(ctx, "222222222222222222", "admin"); err != nil {
				t.Fatalf("Remove() failed: %v", err)
			}

			if _, ok := repo.Find(ctx, "222222222222222222"); ok {
				t.Error("Find() should report absent after Remove()")
			}
			if got := len(repo.List(ctx)); got != 0 {
				t.Errorf("List() after round trip = %d records, want 0", got)
			}
		})
	}
}

func TestRemoveNotBanned(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.Remove(ctx, "333333333333333333", "admin"); err != ErrNotBanned {
				t.Errorf("Remove() on absent user = %v, want ErrNotBanned", err)
			}
		})
	}
}

func TestRemoveNotBannedDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewFileRepository(dir)

	if err := repo.Add(ctx, "444444444444444444", "luisa", "spam", "admin"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	path := filepath.Join(dir, "banned_users.json")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading ban file: %v", err)
	}

	if err := repo.Remove(ctx, "555555555555555555", "admin"); err != ErrNotBanned {
		t.Fatalf("Remove() = %v, want ErrNotBanned", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading ban file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("failed Remove() must not rewrite the persisted collection")
	}
}

func TestListFailsSoftOnCorruptFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "banned_users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	repo := NewFileRepository(dir)
	if got := repo.List(ctx); len(got) != 0 {
		t.Errorf("List() on corrupt store = %d records, want 0", len(got))
	}

	// The store stays usable: a fresh Add replaces the corrupt collection
	if err := repo.Add(ctx, "666666666666666666", "ana", "spam", "admin"); err != nil {
		t.Fatalf("Add() after corruption failed: %v", err)
	}
	if got := len(repo.List(ctx)); got != 1 {
		t.Errorf("List() after recovery = %d records, want 1", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 4; i++ {
				id := fmt.Sprintf("70000000000000000%d", i)
				if err := repo.Add(ctx, id, fmt.Sprintf("user%d", i), "spam", "admin"); err != nil {
					t.Fatalf("Add() failed: %v", err)
				}
			}

			records := repo.List(ctx)
			if len(records) != 4 {
				t.Fatalf("List() = %d records, want 4", len(records))
			}
			for i, rec := range records {
				want := fmt.Sprintf("70000000000000000%d", i)
				if rec.UserID != want {
					t.Errorf("records[%d].UserID = %s, want %s", i, rec.UserID, want)
				}
			}
		})
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	i := 0
	repo.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	for n := 0; n < 7; n++ {
		id := fmt.Sprintf("80000000000000000%d", n)
		if err := repo.Add(ctx, id, fmt.Sprintf("user%d", n), "spam", "admin"); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	stats := repo.Stats(ctx)
	if stats.Total != 7 {
		t.Errorf("Stats().Total = %d, want 7", stats.Total)
	}
	if len(stats.Recent) != RecentLimit {
		t.Fatalf("Stats().Recent = %d records, want %d", len(stats.Recent), RecentLimit)
	}

	// Most recent first
	if stats.Recent[0].UserID != "800000000000000006" {
		t.Errorf("Recent[0].UserID = %s, want the newest ban", stats.Recent[0].UserID)
	}
	for j := 1; j < len(stats.Recent); j++ {
		if stats.Recent[j].BannedAt.After(stats.Recent[j-1].BannedAt) {
			t.Error("Stats().Recent should be ordered most-recent-first")
		}
	}
}

func TestStatsSmallStore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Add(ctx, "900000000000000001", "solo", "spam", "admin"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	stats := repo.Stats(ctx)
	if stats.Total != 1 || len(stats.Recent) != 1 {
		t.Errorf("Stats() = total %d / recent %d, want 1 / 1", stats.Total, len(stats.Recent))
	}
}

package banlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	json "github.com/goccy/go-json"
)

// FileRepository persists the ban list as a single JSON file.
// Every mutation rewrites the whole collection through a temp file + rename,
// so readers never observe a partially-written list. A mutex serializes the
// load/modify/save cycle against concurrent admin commands.
type FileRepository struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileRepository creates a file-backed ban store at dataDir/banned_users.json
func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{
		path: filepath.Join(dataDir, "banned_users.json"),
		now:  time.Now,
	}
}

// load reads the full collection. Missing or corrupt files degrade to empty.
func (r *FileRepository) load() []BanRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error(fmt.Sprintf("Error leyendo el archivo de baneos: %v", err), "BanList")
		}
		return nil
	}

	var records []BanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Error(fmt.Sprintf("Archivo de baneos corrupto, se ignora: %v", err), "BanList")
		return nil
	}
	return records
}

// save atomically rewrites the full collection
func (r *FileRepository) save(records []BanRecord) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ban list: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "banned_users-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ban file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing ban list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp ban file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing ban file: %w", err)
	}

	logger.Info("Lista de baneos actualizada", "BanList")
	return nil
}

// List returns all records in ban order
func (r *FileRepository) List(ctx context.Context) []BanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Find returns the record for userID, if any
func (r *FileRepository) Find(ctx context.Context, userID string) (*BanRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.load() {
		if rec.UserID == userID {
			found := rec
			return &found, true
		}
	}
	return nil, false
}

// Add appends a new record and persists the collection
func (r *FileRepository) Add(ctx context.Context, userID, username, reason, bannedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()
	for _, rec := range records {
		if rec.UserID == userID {
			return ErrAlreadyBanned
		}
	}

	records = append(records, BanRecord{
		UserID:   userID,
		Username: username,
		Reason:   reason,
		BannedBy: bannedBy,
		BannedAt: r.now(),
	})

	if err := r.save(records); err != nil {
		logger.Error(fmt.Sprintf("Error guardando el baneo de %s: %v", userID, err), "BanList")
		return err
	}

	logger.Info(fmt.Sprintf("Usuario %s (%s) baneado por %s. Razón: %s", username, userID, bannedBy, reason), "BanList")
	return nil
}

// Remove deletes the record for userID and persists the collection
func (r *FileRepository) Remove(ctx context.Context, userID, actingAdmin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()
	idx := -1
	for i, rec := range records {
		if rec.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotBanned
	}

	removed := records[idx]
	records = append(records[:idx], records[idx+1:]...)

	if err := r.save(records); err != nil {
		logger.Error(fmt.Sprintf("Error guardando el desbaneo de %s: %v", userID, err), "BanList")
		return err
	}

	logger.Info(fmt.Sprintf("Usuario %s (%s) desbaneado por %s", removed.Username, userID, actingAdmin), "BanList")
	return nil
}

// Stats returns the total count and the most recent records
func (r *FileRepository) Stats(ctx context.Context) Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return statsOf(r.load())
}

// Package tempfile manages short-lived files for outgoing attachments.
// A generated file is discarded immediately when its pipeline fails, or
// released with a delay so the upload can outlive the handler that made it.
package tempfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"github.com/google/uuid"
)

// Manager hands out uniquely named paths under a single temp directory
type Manager struct {
	dir string
}

// File is a scoped temporary file path
type File struct {
	Path string
	Name string
}

// NewManager creates a manager rooted at dir
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// New reserves a unique file path like prefix_<uuid>.<ext>.
// The directory is created on demand; the file itself is not.
func (m *Manager) New(prefix, ext string) (*File, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.%s", prefix, uuid.New().String(), ext)
	return &File{
		Path: filepath.Join(m.dir, name),
		Name: name,
	}, nil
}

// Exists reports whether the file has been written
func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Discard removes the file immediately, best effort.
// Safe to call whether or not the file was ever written.
func (f *File) Discard() {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		logger.Warn(fmt.Sprintf("No se pudo eliminar el archivo temporal %s: %v", f.Name, err), "TempFile")
	}
}

// Release schedules a best-effort removal after delay, so a reply
// attachment still uploading is not pulled out from under the platform.
func (f *File) Release(delay time.Duration) {
	time.AfterFunc(delay, func() {
		if !f.Exists() {
			return
		}
		if err := os.Remove(f.Path); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo limpiar el archivo temporal %s: %v", f.Name, err), "TempFile")
			return
		}
		logger.Info(fmt.Sprintf("Archivo temporal limpiado: %s", f.Name), "TempFile")
	})
}

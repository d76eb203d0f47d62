package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mkarlsen/BloxClicker_Go/internal/domain"
	"github.com/mkarlsen/BloxClicker_Go/internal/logger"
	"github.com/mkarlsen/BloxClicker_Go/internal/registry"
)

// FileStore persists the state as a single JSON document on disk. Writes go
// through a temp file and rename so a crash mid-write never corrupts the save.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path, creating parent
// directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads and merges the save file. A missing file yields the default
// state; a corrupt file is logged and also yields the default state.
func (s *FileStore) Load(ctx context.Context) (domain.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return registry.DefaultState(), nil
		}
		return registry.DefaultState(), fmt.Errorf("failed to read save file: %w", err)
	}

	state, err := mergeWithDefaults(raw)
	if err != nil {
		logger.FromContext(ctx).Warn("Save file is corrupt, starting fresh", "path", s.path, "error", err)
		return registry.DefaultState(), nil
	}
	return state, nil
}

// Save writes the full state atomically.
func (s *FileStore) Save(ctx context.Context, state domain.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

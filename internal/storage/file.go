package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	model "github.com/kanechan25/fitness-challenge-backend/internal/models"
)

// FileStore écrit le blob dans un fichier JSON. Écriture via fichier
// temporaire puis rename, pour ne jamais laisser un blob tronqué.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = StateKey + ".json"
	}
	return &FileStore{path: path}
}

func (f *FileStore) Save(_ context.Context, snap model.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(envelope{Version: envelopeVersion, Snapshot: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (f *FileStore) Load(_ context.Context) (*model.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &env.Snapshot, nil
}

func (f *FileStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

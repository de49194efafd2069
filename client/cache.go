package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MauItu/inventario-alimentos/entity"
)

// Snapshot is the single durable record the cache holds: the active
// identity and its item list, or both absent when logged out.
type Snapshot struct {
	Identity *entity.Identity `json:"identity"`
	Items    []entity.Item    `json:"items"`
}

// Cache persists the session snapshot to a JSON file so a restarted
// process observes the state the last successful operation left behind.
type Cache struct {
	path string
}

// NewCache creates a cache backed by the file at path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Load reads the stored snapshot. A missing file means logged out and is
// not an error.
func (c *Cache) Load() (*Snapshot, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot synchronously, replacing whatever was there.
func (c *Cache) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Clear removes the stored snapshot. Clearing an absent cache succeeds.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// Store holds the last known fingerprint for each asset ID.
type Store struct {
	Fingerprints map[string]string `json:"fingerprints"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{Fingerprints: make(map[string]string)}
}

// Load reads a store from the given path. A missing file yields an empty
// store; an unreadable or undecodable file is reported as corrupt state.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: state file %s: %v", enricher.ErrStateCorrupt, path, err)
	}
	if store.Fingerprints == nil {
		store.Fingerprints = make(map[string]string)
	}
	return &store, nil
}

// Save writes the store to the given path, creating parent directories as
// needed.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	return nil
}

// Get returns the stored fingerprint for an asset ID.
func (s *Store) Get(assetID string) (string, bool) {
	fp, ok := s.Fingerprints[assetID]
	return fp, ok
}

// Set records the fingerprint for an asset ID.
func (s *Store) Set(assetID, fingerprint string) {
	s.Fingerprints[assetID] = fingerprint
}

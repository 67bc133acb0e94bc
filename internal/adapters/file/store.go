package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ninefold/novena/pkg/state"
)

// Store implements ports.LedgerStore on the local filesystem, one JSON
// file per ledger.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath. An empty basePath defaults to
// ~/.novena/ledgers, falling back to a relative directory when the home
// directory cannot be resolved.
func New(basePath string) *Store {
	if basePath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			basePath = filepath.Join(home, ".novena", "ledgers")
		} else {
			basePath = filepath.Join(".novena", "ledgers")
		}
	}
	return &Store{BasePath: basePath}
}

// Save writes the ledger atomically: temp file in the same directory,
// fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, id string, ledger *state.Ledger) error {
	if id == "" {
		return fmt.Errorf("ledger id cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+id+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := filepath.Join(s.BasePath, id+".json")
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load reads a ledger by ID.
func (s *Store) Load(ctx context.Context, id string) (*state.Ledger, error) {
	if id == "" {
		return nil, fmt.Errorf("ledger id cannot be empty")
	}
	data, err := os.ReadFile(filepath.Join(s.BasePath, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, state.ErrLedgerNotFound
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	var ledger state.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger: %w", err)
	}
	return &ledger, nil
}

// Delete removes a ledger file; missing files are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("ledger id cannot be empty")
	}
	err := os.Remove(filepath.Join(s.BasePath, id+".json"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete ledger file: %w", err)
	}
	return nil
}

// List returns all persisted ledger IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && filepath.Ext(name) == ".json" {
			ids = append(ids, name[:len(name)-len(".json")])
		}
	}
	return ids, nil
}

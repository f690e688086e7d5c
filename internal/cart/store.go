package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Store persists the full cart line list. It stands in for browser local
// storage: small, local, and rewritten whole on every mutation.
type Store interface {
	// Load reads the persisted line list. A missing store yields an empty
	// list; corrupt data yields an error the cart recovers from.
	Load() ([]Line, error)

	// Save writes the full line list, replacing any previous state.
	Save(lines []Line) error
}

// fileStore persists the cart as a JSON file on disk.
type fileStore struct {
	path string
}

// NewFileStore creates a file-backed cart store at the given path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load() ([]Line, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file %s: %w", s.path, err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse cart file %s: %w", s.path, err)
	}

	return lines, nil
}

func (s *fileStore) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", s.path, err)
	}

	return nil
}

// memoryStore keeps the line list in memory; used in tests.
type memoryStore struct {
	lines []Line
}

// NewMemoryStore creates an in-memory cart store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load() ([]Line, error) {
	return copyLines(s.lines), nil
}

func (s *memoryStore) Save(lines []Line) error {
	s.lines = copyLines(lines)
	return nil
}

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Files persists named client-state records as JSON documents in a single
// directory. Records have no schema version; a record that fails to decode
// is treated as absent.
type Files struct {
	dir string
	mu  sync.RWMutex
}

func NewFiles(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Files{dir: dir}, nil
}

// Load decodes the named record into out. The boolean reports whether a
// usable record existed.
func (f *Files) Load(name string, out interface{}) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read state %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *Files) Save(name string, v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state %s: %w", name, err)
	}
	if err := os.WriteFile(f.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", name, err)
	}
	return nil
}

// Clear removes every persisted record.
func (f *Files) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			_ = os.Remove(filepath.Join(f.dir, e.Name()))
		}
	}
	return nil
}

func (f *Files) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Store reads and writes layout records as JSON files under one directory,
// one file per named layout.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	name = filepath.Base(name)
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.Dir, name)
}

// Save writes the record to <dir>/<name>.json. A record with no name gets a
// timestamped one. Returns the name actually saved under.
func (s *Store) Save(rec Record) (string, error) {
	if rec.Name == "" {
		rec.Name = fmt.Sprintf("layout_%d", time.Now().Unix())
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}
	f, err := os.Create(s.path(rec.Name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return rec.Name, nil
}

func (s *Store) Load(name string) (Record, error) {
	var rec Record
	f, err := os.Open(s.path(name))
	if err != nil {
		return rec, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		return rec, fmt.Errorf("decode layout %q: %w", name, err)
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	return rec, nil
}

// List returns the saved layout names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(name string) error {
	return os.Remove(s.path(name))
}

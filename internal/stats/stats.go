// internal/stats/stats.go
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	Kills         = "kills"
	Deaths        = "deaths"
	SecondsPlayed = "secondsPlayed"
	GamesPlayed   = "gamesPlayed"
)

// Keys lists the counters every record starts with, in display order.
var Keys = []string{Kills, Deaths, SecondsPlayed, GamesPlayed}

// Record is the flat counter map persisted as JSON.
type Record map[string]int

// Store persists lifetime counters in a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a store backed by path, creating a zeroed file when none exists.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		zero := make(Record, len(Keys))
		for _, k := range Keys {
			zero[k] = 0
		}
		if err := s.write(zero); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat stats file: %w", err)
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Load reads the full record. Missing keys read as zero.
func (s *Store) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Increment adds delta to key with a read-modify-write of the whole file.
func (s *Store) Increment(key string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return err
	}
	rec[key] += delta
	return s.write(rec)
}

// Formatted renders the record as menu lines.
func (s *Store) Formatted() (string, error) {
	rec, err := s.Load()
	if err != nil {
		return "", err
	}
	return rec.Format(), nil
}

// Format renders one "Label: value" line per known counter.
func (r Record) Format() string {
	labels := map[string]string{
		Kills:         "Kills",
		Deaths:        "Deaths",
		SecondsPlayed: "Seconds played",
		GamesPlayed:   "Games played",
	}
	var b strings.Builder
	for i, k := range Keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %d", labels[k], r[k])
	}
	return b.String()
}

func (s *Store) read() (Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(Record), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}
	rec := make(Record)
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return rec, nil
}

// write replaces the file through a temp file and rename so readers never
// see a partial record.
func (s *Store) write(rec Record) error {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".stats-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp stats file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp stats file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace stats file: %w", err)
	}
	return nil
}

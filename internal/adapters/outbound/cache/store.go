package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/abscore/abscore/internal/domain"
)

// DefaultDir is the cache location relative to a submissions root.
const DefaultDir = ".abscore/cache"

// Store is a file-based implementation of domain.MeasurementCache. Each
// design's metrics live in one JSON file named by a hash of the tool
// configuration and the design's input files, so any edit to an input or to
// the configuration is a miss.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

type entry struct {
	Key    string            `json:"key"`
	Design domain.DesignInput `json:"design"`
	Raw    domain.RawMetrics  `json:"raw"`
}

// Load returns the cached metrics for d, or (nil, nil) on a miss.
func (s *Store) Load(d domain.DesignInput, key string) (*domain.RawMetrics, error) {
	k, err := EntryKey(d, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(k))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}
	if e.Key != k {
		return nil, nil
	}
	return &e.Raw, nil
}

// Save writes the metrics for d, creating the cache directory as needed.
func (s *Store) Save(d domain.DesignInput, key string, raw domain.RawMetrics) error {
	k, err := EntryKey(d, key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry{Key: k, Design: d, Raw: raw}, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(k), data, 0644)
}

// Clear removes every cached entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.RemoveAll(s.dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) path(k string) string {
	return filepath.Join(s.dir, k+".json")
}

// EntryKey hashes the configuration key, the design identity, and the
// contents of every input file the design references.
func EntryKey(d domain.DesignInput, key string) (string, error) {
	h := sha256.New()
	for _, part := range []string{key, d.Team, d.DesignID, d.Challenge} {
		writeString(h, part)
	}
	for _, p := range []string{d.ComplexPDB, d.PAEJSON, d.FASTA, d.NativeComplex} {
		writeString(h, p)
		if p == "" {
			continue
		}
		if err := hashFile(h, p); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeString(w, "<missing>")
			return nil
		}
		return fmt.Errorf("hashing %s: %w", path, err)
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// writeString writes s length-prefixed so adjacent parts cannot run together.
func writeString(w io.Writer, s string) {
	fmt.Fprintf(w, "%d:%s", len(s), s)
}

package store

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/jengzang/acp-backend-go/internal/dataset"
)

// ErrNotFound is returned when a cache key resolves to no dataset.
var ErrNotFound = errors.New("dataset not found")

// CachedDataset couples a normalized dataset with its ingestion metadata.
// Datasets are immutable once stored.
type CachedDataset struct {
	Key        string
	Data       *dataset.Dataset
	UploadTime time.Time
	FileCount  int
}

// Store is the process-wide in-memory dataset cache, keyed by content
// digest. Entries live for the process lifetime; there is no eviction.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*CachedDataset
}

// New creates an empty store. One store is constructed at startup and
// shared by all services.
func New() *Store {
	return &Store{entries: make(map[string]*CachedDataset)}
}

// Key derives the deterministic cache key for an upload batch: the hex MD5
// of all file contents concatenated in upload order. The digest is a cache
// key, not a security boundary.
func Key(contents [][]byte) string {
	h := md5.New()
	for _, c := range contents {
		h.Write(c)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Put inserts or replaces the entry for cd.Key. Identical keys carry
// identical content, so last-write-wins is safe for concurrent uploads.
func (s *Store) Put(cd *CachedDataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[cd.Key] = cd
}

// Get resolves a cache key, returning ErrNotFound for unknown keys.
func (s *Store) Get(key string) (*CachedDataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cd, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return cd, nil
}

// Len returns the number of cached datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

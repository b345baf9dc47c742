// Package cache keeps registration results on disk keyed by a hash of the
// input and the overlap threshold, so re-running on unchanged input skips
// the search.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/scanalign/scanalign/internal/align"
)

// Entry is one cached registration.
type Entry struct {
	SavedAt time.Time    `json:"saved_at"`
	Files   []string     `json:"files,omitempty"`
	Result  align.Result `json:"result"`
}

type DB struct {
	// input hash + threshold -> result
	Entries map[string]Entry `json:"entries"`
}

// Key combines an input hash with the overlap threshold it was run with.
func Key(inputHash string, minOverlap int) string {
	return inputHash + ":" + strconv.Itoa(minOverlap)
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "scanalign_cache.json")
	}
	return filepath.Join(root, ".scanalign_cache.json")
}

func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0644)
}

// Get returns the cached result for key.
func (db DB) Get(key string) (Entry, bool) {
	e, ok := db.Entries[key]
	return e, ok
}

// Put stores a result under key.
func (db *DB) Put(key string, files []string, res align.Result) {
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	db.Entries[key] = Entry{SavedAt: time.Now().UTC(), Files: files, Result: res}
}

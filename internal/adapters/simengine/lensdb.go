package simengine

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// LensDB is a lens profile database shared between engines.
type LensDB struct {
	mu       sync.RWMutex
	loaded   bool
	profiles map[string]LensProfile
	loads    atomic.Int32
}

// NewLensDB returns an empty, unloaded database.
func NewLensDB() *LensDB {
	return &LensDB{profiles: make(map[string]LensProfile)}
}

// Loaded reports whether Load completed.
func (db *LensDB) Loaded() bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.loaded
}

// Loads returns how many times the database was read from disk.
func (db *LensDB) Loads() int {
	return int(db.loads.Load())
}

// Load reads every *.json profile in dir. A missing directory loads an empty database.
func (db *LensDB) Load(fs afero.Fs, dir string) error {
	db.loads.Add(1)

	matches, err := afero.Glob(fs, filepath.Join(dir, "*.json"))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to list lens profiles"), "dir", dir)
	}

	profiles := make(map[string]LensProfile, len(matches))
	for _, path := range matches {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read lens profile"), "path", path)
		}
		var p LensProfile
		if err := json.Unmarshal(data, &p); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to parse lens profile"), "path", path)
		}
		if p.Name == "" {
			p.Name = filepath.Base(path)
		}
		profiles[p.Name] = p
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	for name, p := range profiles {
		db.profiles[name] = p
	}
	db.loaded = true
	return nil
}

// Add registers a profile without touching the disk.
func (db *LensDB) Add(p LensProfile) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.profiles[p.Name] = p
}

// Lookup returns the profile called name.
func (db *LensDB) Lookup(name string) (LensProfile, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	p, ok := db.profiles[name]
	return p, ok
}

// Len returns the number of known profiles.
func (db *LensDB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.profiles)
}

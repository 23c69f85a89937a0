package managers

import (
	"errors"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// BuildFunc constructs a fully loaded engine for a key. The returned handle
// carries one reference owned by the caller.
type BuildFunc func() (*Shared, error)

// Cache is the process-wide bounded map from cache key to shared engine.
//
// The cache owns one reference per entry. When full, it evicts the least
// recently used entry that nothing else references; if every entry is pinned
// it evicts the plain oldest, whose holders keep it alive.
type Cache struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[domain.CacheKey, *Shared]
	capacity int
	evicted  []*Shared

	strict bool
	flight singleflight.Group
	logger ports.Logger
}

// NewCache creates a cache that holds at most capacity engines.
// With strict set, concurrent builds of one key are collapsed into a single build.
func NewCache(capacity int, strict bool, logger ports.Logger) (*Cache, error) {
	c := &Cache{capacity: capacity, strict: strict, logger: logger}
	lru, err := simplelru.NewLRU[domain.CacheKey, *Shared](capacity, func(_ domain.CacheKey, s *Shared) {
		c.evicted = append(c.evicted, s)
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create engine cache"), "capacity", capacity)
	}
	c.lru = lru
	return c, nil
}

// unlock releases the mutex and then drops the references of evicted entries,
// so engines are never closed while the cache is locked.
func (c *Cache) unlock() {
	evicted := c.evicted
	c.evicted = nil
	c.mu.Unlock()

	for _, s := range evicted {
		if err := s.Release(); err != nil {
			c.logger.Error(zerr.With(zerr.Wrap(err, "failed to close evicted engine"), "key", s.Key().Digest()))
		}
	}
}

// Get returns the engine cached under key with a reference owned by the caller.
func (c *Cache) Get(key domain.CacheKey) (*Shared, bool) {
	c.mu.Lock()
	defer c.unlock()
	return c.getLocked(key)
}

func (c *Cache) getLocked(key domain.CacheKey) (*Shared, bool) {
	s, ok := c.lru.Get(key)
	if !ok || !s.TryRetain() {
		return nil, false
	}
	return s, true
}

// Contains reports whether key is cached without touching its recency.
func (c *Cache) Contains(key domain.CacheKey) bool {
	c.mu.Lock()
	defer c.unlock()
	return c.lru.Contains(key)
}

// Insert stores s under its key and returns the engine callers should use.
//
// If another builder won the race, s is released and the existing engine is
// returned instead. Either way the returned handle carries the caller's reference.
func (c *Cache) Insert(s *Shared) *Shared {
	c.mu.Lock()
	if existing, ok := c.getLocked(s.Key()); ok {
		c.unlock()
		if err := s.Release(); err != nil {
			c.logger.Error(zerr.With(zerr.Wrap(err, "failed to close duplicate engine"), "key", s.Key().Digest()))
		}
		return existing
	}
	c.makeRoomLocked()
	c.lru.Add(s.Key(), s.Retain())
	c.unlock()
	return s
}

func (c *Cache) makeRoomLocked() {
	if c.lru.Len() < c.capacity {
		return
	}
	for _, k := range c.lru.Keys() {
		if s, ok := c.lru.Peek(k); ok && s.Refs() == 1 {
			c.lru.Remove(k)
			return
		}
	}
	c.lru.RemoveOldest()
}

// Acquire returns the engine for key, building it with build on a miss.
// The returned handle carries a reference owned by the caller; hit reports
// whether it came straight from the cache.
func (c *Cache) Acquire(key domain.CacheKey, build BuildFunc) (*Shared, bool, error) {
	if s, ok := c.Get(key); ok {
		return s, true, nil
	}
	if !c.strict {
		built, err := build()
		if err != nil {
			return nil, false, err
		}
		return c.Insert(built), false, nil
	}

	for {
		v, err, _ := c.flight.Do(key.String(), func() (any, error) {
			s, ok := c.Get(key)
			if !ok {
				built, err := build()
				if err != nil {
					return nil, err
				}
				s = c.Insert(built)
			}
			// Every waiter retains its own reference below; the cache keeps
			// the engine alive in between.
			return s, s.Release()
		})
		if err != nil {
			return nil, false, err
		}
		if shared, _ := v.(*Shared); shared.TryRetain() {
			return shared, false, nil
		}
	}
}

// LoadedLensDB returns the first loaded lens profile database among cached engines.
func (c *Cache) LoadedLensDB() (ports.LensProfileDB, bool) {
	c.mu.Lock()
	var held []*Shared
	for _, k := range c.lru.Keys() {
		if s, ok := c.lru.Peek(k); ok && s.TryRetain() {
			held = append(held, s)
		}
	}
	c.unlock()

	var (
		found ports.LensProfileDB
		errs  error
	)
	for _, s := range held {
		if found == nil {
			_ = s.View(func(e ports.Engine) error {
				if db := e.LensProfileDB(); db != nil && db.Loaded() {
					found = db
				}
				return nil
			})
		}
		errs = errors.Join(errs, s.Release())
	}
	if errs != nil {
		c.logger.Error(zerr.Wrap(errs, "failed to release engine"))
	}
	return found, found != nil
}

// PruneUnreferenced removes each of keys whose engine is held only by the cache.
func (c *Cache) PruneUnreferenced(keys []domain.CacheKey) int {
	c.mu.Lock()
	defer c.unlock()

	removed := 0
	for _, k := range keys {
		if s, ok := c.lru.Peek(k); ok && s.Refs() == 1 {
			c.lru.Remove(k)
			removed++
		}
	}
	return removed
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.unlock()
	c.lru.Purge()
}

// Len returns the number of cached engines.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.unlock()
	return c.lru.Len()
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache) Keys() []domain.CacheKey {
	c.mu.Lock()
	defer c.unlock()
	return c.lru.Keys()
}

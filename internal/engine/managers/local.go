package managers

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
)

// Local is the bounded set of engines one plugin instance has used.
// It holds one reference per entry and is not safe for concurrent use; the
// owning instance serializes access.
type Local struct {
	lru    *simplelru.LRU[domain.CacheKey, *Shared]
	logger ports.Logger
}

// NewLocal creates an instance-local cache holding at most capacity engines.
func NewLocal(capacity int, logger ports.Logger) (*Local, error) {
	l := &Local{logger: logger}
	lru, err := simplelru.NewLRU[domain.CacheKey, *Shared](capacity, l.release)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create instance cache"), "capacity", capacity)
	}
	l.lru = lru
	return l, nil
}

func (l *Local) release(key domain.CacheKey, s *Shared) {
	if err := s.Release(); err != nil {
		l.logger.Error(zerr.With(zerr.Wrap(err, "failed to close engine"), "key", key.Digest()))
	}
}

// Add records s under its key, retaining it, unless the key is already present.
func (l *Local) Add(s *Shared) {
	if _, ok := l.lru.Get(s.Key()); ok {
		return
	}
	l.lru.Add(s.Key(), s.Retain())
}

// Get returns the engine for key and marks it recently used. No reference is
// transferred to the caller.
func (l *Local) Get(key domain.CacheKey) (*Shared, bool) {
	return l.lru.Get(key)
}

// Oldest returns the least recently used engine.
func (l *Local) Oldest() (*Shared, bool) {
	_, s, ok := l.lru.GetOldest()
	return s, ok
}

// All returns the cached engines from least to most recently used.
func (l *Local) All() []*Shared {
	return l.lru.Values()
}

// Keys returns the cached keys from least to most recently used.
func (l *Local) Keys() []domain.CacheKey {
	return l.lru.Keys()
}

// Len returns the number of cached engines.
func (l *Local) Len() int {
	return l.lru.Len()
}

// Purge releases every entry and returns the keys that were held.
func (l *Local) Purge() []domain.CacheKey {
	keys := l.lru.Keys()
	l.lru.Purge()
	return keys
}

// Clone returns a cache with the same entries, each retained again.
func (l *Local) Clone(capacity int) (*Local, error) {
	c, err := NewLocal(capacity, l.logger)
	if err != nil {
		return nil, err
	}
	for _, s := range l.lru.Values() {
		c.Add(s)
	}
	return c, nil
}

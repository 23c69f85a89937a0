// Package managers keeps the engines shared between plugin instances alive
// exactly as long as something references them.
package managers

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
)

// Shared is a reference-counted engine handle.
//
// Every holder (the global cache, an instance-local cache, or a caller that
// acquired it) owns one reference. The engine is closed when the last
// reference is released.
type Shared struct {
	key    domain.CacheKey
	engine ports.Engine
	refs   atomic.Int64

	// guard serializes stage invalidation against pixel processing.
	guard sync.RWMutex
}

// NewShared wraps engine with a single reference owned by the caller.
func NewShared(key domain.CacheKey, engine ports.Engine) *Shared {
	s := &Shared{key: key, engine: engine}
	s.refs.Store(1)
	return s
}

// Key returns the cache key the engine was built for.
func (s *Shared) Key() domain.CacheKey {
	return s.key
}

// Refs returns the current number of strong references.
func (s *Shared) Refs() int64 {
	return s.refs.Load()
}

// Retain adds a reference. The caller must already hold one.
func (s *Shared) Retain() *Shared {
	s.refs.Add(1)
	return s
}

// TryRetain adds a reference unless the engine was already released for good.
func (s *Shared) TryRetain() bool {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return false
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release drops a reference and closes the engine when it was the last one.
func (s *Shared) Release() error {
	if s.refs.Add(-1) != 0 {
		return nil
	}
	s.guard.Lock()
	defer s.guard.Unlock()
	return s.engine.Close()
}

// Update runs fn with exclusive access to the engine.
func (s *Shared) Update(fn func(ports.Engine) error) error {
	s.guard.Lock()
	defer s.guard.Unlock()
	return fn(s.engine)
}

// View runs fn with shared access to the engine.
func (s *Shared) View(fn func(ports.Engine) error) error {
	s.guard.RLock()
	defer s.guard.RUnlock()
	return fn(s.engine)
}

// Package keyframes turns host parameter curves into the time-indexed table
// engines query while rendering.
package keyframes

import (
	"sync"

	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
)

// Params is the keyframe state shared by an instance and every engine it renders with.
type Params struct {
	mu                 sync.RWMutex
	useEngineKeyframes bool
	table              *domain.KeyframeTable
}

// NewParams returns an empty cell.
func NewParams() *Params {
	return &Params{table: domain.NewKeyframeTable()}
}

// Replace swaps in a freshly baked table.
func (p *Params) Replace(useEngineKeyframes bool, table *domain.KeyframeTable) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.useEngineKeyframes = useEngineKeyframes
	p.table = table
}

// SetUseEngineKeyframes toggles deferral to engine-native keyframes.
func (p *Params) SetUseEngineKeyframes(use bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.useEngineKeyframes = use
}

// UseEngineKeyframes reports whether engine-native keyframes take precedence.
func (p *Params) UseEngineKeyframes() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.useEngineKeyframes
}

// Table returns a copy of the current table.
func (p *Params) Table() *domain.KeyframeTable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table.Clone()
}

// Clone returns an independent cell with the same content.
func (p *Params) Clone() *Params {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &Params{useEngineKeyframes: p.useEngineKeyframes, table: p.table.Clone()}
}

// Provider returns the hook engines use to read the table.
func (p *Params) Provider() ports.KeyframeProvider {
	return provider{params: p}
}

type provider struct {
	params *Params
}

// ValueAt defers to the engine for quantities it animates itself when the
// instance uses engine keyframes.
func (pr provider) ValueAt(internal ports.InternalKeyframes, tag domain.KeyframeTag, timestampUs int64) (float64, bool) {
	pr.params.mu.RLock()
	defer pr.params.mu.RUnlock()

	if pr.params.useEngineKeyframes && internal != nil && internal.IsKeyframedInternally(tag) {
		return 0, false
	}
	return pr.params.table.ValueAt(tag, timestampUs)
}

package instance

import (
	"sync"

	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
)

// Record is one registered instance: its durable parameters and, once used,
// its Base.
type Record struct {
	mu     sync.Mutex
	stored *domain.StoredParams
	base   *Base
}

// Stored returns a copy of the durable parameters.
func (r *Record) Stored() domain.StoredParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneStored(r.stored)
}

// Update runs fn on the durable parameters.
func (r *Record) Update(fn func(*domain.StoredParams)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.stored)
}

// StoredAccess routes the instance id to the record and mirrors every
// successful write into the record's value snapshot.
type StoredAccess struct {
	ports.ParameterAccess
	record *Record
}

// NewStoredAccess decorates host with record.
func NewStoredAccess(host ports.ParameterAccess, record *Record) *StoredAccess {
	return &StoredAccess{ParameterAccess: host, record: record}
}

// GetString implements ports.ParameterAccess.
func (a *StoredAccess) GetString(p domain.Param) (string, error) {
	if p == domain.ParamInstanceID {
		a.record.mu.Lock()
		defer a.record.mu.Unlock()
		return a.record.stored.InstanceID, nil
	}
	return a.ParameterAccess.GetString(p)
}

// SetString implements ports.ParameterAccess.
func (a *StoredAccess) SetString(p domain.Param, value string) error {
	if p == domain.ParamInstanceID {
		a.record.Update(func(s *domain.StoredParams) { s.InstanceID = value })
		return nil
	}
	if err := a.ParameterAccess.SetString(p, value); err != nil {
		return err
	}
	a.record.Update(func(s *domain.StoredParams) { s.Values.String[p] = value })
	return nil
}

// SetBool implements ports.ParameterAccess.
func (a *StoredAccess) SetBool(p domain.Param, value bool) error {
	if err := a.ParameterAccess.SetBool(p, value); err != nil {
		return err
	}
	a.record.Update(func(s *domain.StoredParams) { s.Values.Bool[p] = value })
	return nil
}

// SetFloat implements ports.ParameterAccess.
func (a *StoredAccess) SetFloat(p domain.Param, value float64) error {
	if err := a.ParameterAccess.SetFloat(p, value); err != nil {
		return err
	}
	a.record.Update(func(s *domain.StoredParams) { s.Values.Float[p] = value })
	return nil
}

// SetInt implements ports.ParameterAccess.
func (a *StoredAccess) SetInt(p domain.Param, value int32) error {
	if err := a.ParameterAccess.SetInt(p, value); err != nil {
		return err
	}
	a.record.Update(func(s *domain.StoredParams) { s.Values.Int[p] = value })
	return nil
}

// SetFloatAt implements ports.ParameterAccess and records p as keyframed.
func (a *StoredAccess) SetFloatAt(p domain.Param, t domain.TimeRef, value float64) error {
	if err := a.ParameterAccess.SetFloatAt(p, t, value); err != nil {
		return err
	}
	a.record.Update(func(s *domain.StoredParams) { s.KeyframedParams[p] = true })
	return nil
}

// ClearKeyframes implements ports.ParameterAccess.
func (a *StoredAccess) ClearKeyframes(p domain.Param) error {
	if err := a.ParameterAccess.ClearKeyframes(p); err != nil {
		return err
	}
	a.record.Update(func(s *domain.StoredParams) { delete(s.KeyframedParams, p) })
	return nil
}

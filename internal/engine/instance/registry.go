package instance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
)

// Handle is a host's reference to an instance. Forking swaps the record it
// points to atomically, so concurrent readers always see a whole record.
type Handle struct {
	id atomic.Pointer[string]
}

func newHandle(id string) *Handle {
	h := &Handle{}
	h.id.Store(&id)
	return h
}

// ID returns the registry id the handle currently points to.
func (h *Handle) ID() string {
	return *h.id.Load()
}

// Registry maps registry ids to instance records.
type Registry struct {
	env *Env

	mu      sync.RWMutex
	records map[string]*Record
}

// NewRegistry creates an empty registry.
func NewRegistry(env *Env) *Registry {
	return &Registry{env: env, records: make(map[string]*Record)}
}

// Env returns the environment shared by the registry's instances.
func (r *Registry) Env() *Env {
	return r.env
}

// Create registers a fresh instance.
func (r *Registry) Create() (*Handle, error) {
	base, err := NewBase(r.env)
	if err != nil {
		return nil, err
	}
	stored := domain.NewStoredParams("")
	base.InitializeInstanceID(&stored.InstanceID)
	return newHandle(r.register(&Record{stored: stored, base: base})), nil
}

func (r *Registry) register(rec *Record) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.records[id] = rec
	r.mu.Unlock()
	return id
}

// Record returns the record h points to.
func (r *Registry) Record(h *Handle) (*Record, error) {
	id := h.ID()
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Join(domain.ErrUnknownInstance, zerr.With(errors.New("no record for handle"), "id", id))
	}
	return rec, nil
}

// Base returns the Base of h, creating it on first use for restored records.
func (r *Registry) Base(h *Handle) (*Base, error) {
	rec, err := r.Record(h)
	if err != nil {
		return nil, err
	}
	return r.baseOf(rec)
}

func (r *Registry) baseOf(rec *Record) (*Base, error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.base == nil {
		base, err := NewBase(r.env)
		if err != nil {
			return nil, err
		}
		base.InitializeInstanceID(&rec.stored.InstanceID)
		rec.base = base
	}
	return rec.base, nil
}

// Access returns host decorated with the record h points to.
func (r *Registry) Access(h *Handle, host ports.ParameterAccess) (*StoredAccess, error) {
	rec, err := r.Record(h)
	if err != nil {
		return nil, err
	}
	return NewStoredAccess(host, rec), nil
}

// UserChangedParam handles an edit of p made by the user.
//
// The first computational or output-size edit of an instance that was never
// changed forks it. Pending values other than p are then applied, and the
// instance reacts to the change. Finally the engine is warmed up so the next
// render finds it ready.
func (r *Registry) UserChangedParam(ctx context.Context, h *Handle, p domain.Param, host ports.ParameterAccess) error {
	if domain.ForksIdentity(p) || domain.IsOutputSize(p) {
		rec, err := r.Record(h)
		if err != nil {
			return err
		}
		if domain.IsOutputSize(p) {
			rec.Update(func(s *domain.StoredParams) { s.SequenceSize = domain.Size{} })
		}
		base, err := r.baseOf(rec)
		if err != nil {
			return err
		}
		if !base.EverChanged() {
			r.env.Logger.Warn("instance changed for the first time, forking a new identity")
			if err := r.Fork(h); err != nil {
				return err
			}
		}
	}

	rec, err := r.Record(h)
	if err != nil {
		return err
	}
	base, err := r.baseOf(rec)
	if err != nil {
		return err
	}
	access := NewStoredAccess(host, rec)
	r.applyPending(rec, access, p)

	if use, err := access.GetBool(domain.ParamUseEngineKeyframes); err == nil {
		base.Keyframes().SetUseEngineKeyframes(use)
	}
	if fps := base.State().FPS; fps > 0 {
		rec.Update(func(s *domain.StoredParams) { s.MediaFPS = fps })
	}

	changeErr := base.ParamChanged(ctx, access, p, true)
	if changeErr != nil {
		r.env.Logger.Error(zerr.With(zerr.Wrap(changeErr, "failed to apply parameter change"), "param", p.String()))
	}

	shared, err := base.AcquireOrBuild(ctx, access, domain.Size{})
	switch {
	case err == nil:
		if err := shared.Release(); err != nil {
			r.env.Logger.Error(zerr.Wrap(err, "failed to release engine"))
		}
	case !errors.Is(err, domain.ErrEmptyPath):
		r.env.Logger.Error(zerr.Wrap(err, "failed to prepare engine"))
	}
	return changeErr
}

// applyPending drops the pending value of p and writes every other pending value.
func (r *Registry) applyPending(rec *Record, access ports.ParameterAccess, p domain.Param) {
	var pending domain.ParamValues
	rec.Update(func(s *domain.StoredParams) {
		s.Pending.Delete(p)
		pending = cloneStored(s).Pending
	})

	var errs error
	for k, v := range pending.Float {
		errs = errors.Join(errs, access.SetFloat(k, v))
	}
	for k, v := range pending.Bool {
		errs = errors.Join(errs, access.SetBool(k, v))
	}
	for k, v := range pending.String {
		errs = errors.Join(errs, access.SetString(k, v))
	}
	for k, v := range pending.Int {
		errs = errors.Join(errs, access.SetInt(k, v))
	}
	if errs != nil {
		r.env.Logger.Warn(fmt.Sprintf("some pending parameters were rejected: %v", errs))
	}
}

// Fork gives h a new identity: the stored parameters are deep-copied under a
// new instance id and the Base is cloned as already changed. The previous
// record stays registered for holders of its id.
func (r *Registry) Fork(h *Handle) error {
	rec, err := r.Record(h)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	stored := cloneStored(rec.stored)
	base := rec.base
	rec.mu.Unlock()

	stored.InstanceID = uuid.NewString()

	var forked *Base
	if base != nil {
		forked, err = base.Clone()
	} else {
		forked, err = NewBase(r.env)
	}
	if err != nil {
		return err
	}
	forked.markChanged()

	id := r.register(&Record{stored: &stored, base: forked})
	h.id.Store(&id)
	return nil
}

// Delete drops h's record and releases its engines.
func (r *Registry) Delete(h *Handle) {
	id := h.ID()
	r.mu.Lock()
	rec, ok := r.records[id]
	delete(r.records, id)
	r.mu.Unlock()

	if !ok {
		return
	}
	rec.mu.Lock()
	base := rec.base
	rec.mu.Unlock()
	if base != nil {
		base.ClearManagers()
	}
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func cloneStored(s *domain.StoredParams) domain.StoredParams {
	var out domain.StoredParams
	_ = copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true})
	out.Normalize()
	return out
}

package instance

import (
	"errors"

	"github.com/google/uuid"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/zerr"
)

// document is the persisted form of an instance. Engines are never part of it.
type document struct {
	Stored *domain.StoredParams `json:"stored"`
	Base   *State               `json:"base,omitempty"`
}

// Flatten serializes the instance h points to.
func (r *Registry) Flatten(h *Handle) ([]byte, error) {
	rec, err := r.Record(h)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	stored := cloneStored(rec.stored)
	base := rec.base
	rec.mu.Unlock()

	doc := document{Stored: &stored}
	if base != nil {
		state := base.State()
		doc.Base = &state
	}
	blob, err := r.env.Codec.Encode(doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to flatten instance")
	}
	return blob, nil
}

// Unflatten restores an instance from blob. It never fails: unreadable data
// yields a fresh default instance. A record saved without base state gets its
// Base on first use.
func (r *Registry) Unflatten(blob []byte) *Handle {
	rec, err := r.decode(blob)
	if err != nil {
		r.env.Logger.Warn("discarding unreadable instance data: " + err.Error())
		rec = &Record{stored: domain.NewStoredParams(uuid.NewString())}
	}
	return newHandle(r.register(rec))
}

func (r *Registry) decode(blob []byte) (*Record, error) {
	var doc document
	if _, err := r.env.Codec.Decode(blob, &doc); err != nil {
		return nil, err
	}
	if doc.Stored == nil {
		return nil, errors.Join(domain.ErrDeserializeFailed, errors.New("missing stored parameters"))
	}
	doc.Stored.Normalize()

	rec := &Record{stored: doc.Stored}
	if doc.Base != nil {
		base, err := RestoreBase(r.env, *doc.Base)
		if err != nil {
			return nil, err
		}
		base.InitializeInstanceID(&rec.stored.InstanceID)
		rec.base = base
	}
	return rec, nil
}

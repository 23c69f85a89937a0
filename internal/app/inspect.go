package app

import (
	"context"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/engine/instance"
	"go.trai.ch/zerr"
)

// Inspection is the decoded content of a persisted instance blob.
type Inspection struct {
	Path string
	// Version is the blob format version; zero when the blob was unreadable.
	Version uint16
	// Recovered is set when the blob could not be decoded and a fresh default
	// instance was substituted.
	Recovered bool
	Stored    domain.StoredParams
	State     instance.State
}

// Inspect decodes the blob at path the way a host restoring a project does.
func (a *App) Inspect(ctx context.Context, path string) (*Inspection, error) {
	_, span := a.tracer.Start(ctx, "inspect", ports.WithAttribute("path", path))
	defer span.End()

	blob, err := afero.ReadFile(a.fs, path)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to read instance blob"), "path", path)
		span.RecordError(err)
		return nil, err
	}

	var probe map[string]any
	version, decodeErr := a.codec.Decode(blob, &probe)

	registry, err := a.newRegistry()
	if err != nil {
		return nil, err
	}
	h := registry.Unflatten(blob)
	rec, err := registry.Record(h)
	if err != nil {
		return nil, err
	}
	base, err := registry.Base(h)
	if err != nil {
		return nil, err
	}

	out := &Inspection{
		Path:      path,
		Recovered: decodeErr != nil,
		Stored:    rec.Stored(),
		State:     base.State(),
	}
	if decodeErr == nil {
		out.Version = version
	}
	return out, nil
}

// Package instance implements the lifecycle of plugin instances: acquiring
// shared engines, reacting to parameter edits, forking identities and
// persisting instance state.
package instance

import (
	"errors"
	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/engine/managers"
	"go.trai.ch/zerr"
)

// ProjectExtension marks files that are loaded as projects rather than media.
const ProjectExtension = ".gyroflow"

// Env holds the collaborators shared by every instance of a process.
type Env struct {
	Cache   *managers.Cache
	Factory ports.EngineFactory
	Codec   ports.InstanceCodec
	Fs      afero.Fs
	Logger  ports.Logger
	Tracer  ports.Tracer
	Config  domain.Config
}

// NewEnv builds the process-wide engine cache from cfg and bundles it with the
// given collaborators.
func NewEnv(
	cfg domain.Config,
	factory ports.EngineFactory,
	codec ports.InstanceCodec,
	fs afero.Fs,
	logger ports.Logger,
	tracer ports.Tracer,
) (*Env, error) {
	if cfg.Cache.InstanceCapacity <= 0 {
		return nil, errors.Join(domain.ErrInvalidConfig, zerr.With(zerr.New("instance capacity must be positive"), "instance_capacity", cfg.Cache.InstanceCapacity))
	}
	cache, err := managers.NewCache(cfg.Cache.GlobalCapacity, cfg.Cache.StrictConstruction, logger)
	if err != nil {
		return nil, err
	}
	return &Env{
		Cache:   cache,
		Factory: factory,
		Codec:   codec,
		Fs:      fs,
		Logger:  logger,
		Tracer:  tracer,
		Config:  cfg,
	}, nil
}

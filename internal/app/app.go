// Package app implements the application layer for steady.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/adapters/telemetry"
	"go.trai.ch/steady/internal/adapters/watcher"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/engine/instance"
	"go.trai.ch/zerr"
)

// App drives the instance core from host-event scripts.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	factory      ports.EngineFactory
	codec        ports.InstanceCodec
	watcher      ports.Watcher
	fs           afero.Fs

	cfg      domain.Config
	shutdown telemetry.ShutdownFunc
	debounce time.Duration
}

// New creates a new App instance running on the default configuration.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	factory ports.EngineFactory,
	codec ports.InstanceCodec,
	w ports.Watcher,
	fsys afero.Fs,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		factory:      factory,
		codec:        codec,
		watcher:      w,
		fs:           fsys,
		cfg:          domain.DefaultConfig(),
		shutdown:     func(context.Context) error { return nil },
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long Watch waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// Options are the global command line settings.
type Options struct {
	ConfigPath string
	LogFormat  string
}

type formatSetter interface {
	SetFormat(format domain.LogFormat)
}

// Configure loads the configuration, applies the log format and installs
// tracing when enabled. A non-empty LogFormat overrides the file.
func (a *App) Configure(opts Options) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = domain.LogFormat(opts.LogFormat)
		switch cfg.Log.Format {
		case domain.LogFormatAuto, domain.LogFormatPretty, domain.LogFormatJSON:
		default:
			return errors.Join(domain.ErrInvalidConfig, zerr.With(zerr.With(zerr.New("unsupported log format"), "key", "log.format"), "value", opts.LogFormat))
		}
	}
	if fs, ok := a.logger.(formatSetter); ok {
		fs.SetFormat(cfg.Log.Format)
	}

	a.cfg = cfg
	a.shutdown = telemetry.Install(cfg.Telemetry)
	return nil
}

// Config returns the active configuration.
func (a *App) Config() domain.Config {
	return a.cfg
}

// Close flushes tracing.
func (a *App) Close(ctx context.Context) error {
	return a.shutdown(ctx)
}

func (a *App) newRegistry() (*instance.Registry, error) {
	env, err := instance.NewEnv(a.cfg, a.factory, a.codec, a.fs, a.logger, a.tracer)
	if err != nil {
		return nil, err
	}
	return instance.NewRegistry(env), nil
}

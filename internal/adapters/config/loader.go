// Package config loads the runtime configuration from steady.yaml.
package config

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "steady.yaml"

// Loader implements ports.ConfigLoader on an afero filesystem.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys afero.Fs, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// Load reads the configuration at path. An empty path reads DefaultFilename
// and falls back to the defaults when it does not exist. An explicit path
// must exist.
func (l *Loader) Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	l.logger.Info("loaded configuration from " + path)
	return cfg, nil
}

// Parse decodes a configuration document over the defaults and validates it.
func Parse(data []byte) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return domain.Config{}, errors.Join(domain.ErrConfigReadFailed, err)
	}

	file.apply(&cfg)
	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (f *File) apply(cfg *domain.Config) {
	if c := f.Cache; c != nil {
		set(&cfg.Cache.GlobalCapacity, c.GlobalCapacity)
		set(&cfg.Cache.InstanceCapacity, c.InstanceCapacity)
		set(&cfg.Cache.StrictConstruction, c.StrictConstruction)
	}
	if k := f.Keyframes; k != nil {
		set(&cfg.Keyframes.Dense, k.Dense)
	}
	if i := f.Instance; i != nil {
		set(&cfg.Instance.AnamorphicAdjustSize, i.AnamorphicAdjustSize)
		set(&cfg.Instance.AlwaysSetInputRotation, i.AlwaysSetInputRotation)
		set(&cfg.Instance.FramebufferInverted, i.FramebufferInverted)
	}
	if lg := f.Log; lg != nil && lg.Format != nil {
		cfg.Log.Format = domain.LogFormat(*lg.Format)
	}
	if t := f.Telemetry; t != nil {
		set(&cfg.Telemetry.Enabled, t.Enabled)
		set(&cfg.Telemetry.ServiceName, t.ServiceName)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate rejects out-of-range values with domain.ErrInvalidConfig.
func Validate(cfg domain.Config) error {
	invalid := func(key string, value any) error {
		return errors.Join(domain.ErrInvalidConfig, zerr.With(zerr.With(zerr.New("value out of range"), "key", key), "value", value))
	}

	if cfg.Cache.GlobalCapacity < 1 {
		return invalid("cache.global_capacity", cfg.Cache.GlobalCapacity)
	}
	if cfg.Cache.InstanceCapacity < 1 {
		return invalid("cache.instance_capacity", cfg.Cache.InstanceCapacity)
	}
	switch cfg.Log.Format {
	case domain.LogFormatAuto, domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return invalid("log.format", string(cfg.Log.Format))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.ServiceName == "" {
		return invalid("telemetry.service_name", "")
	}
	return nil
}

package simengine

import (
	"sync/atomic"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/ports"
)

// DefaultLensDir is where engines look for lens profiles, relative to the working directory.
const DefaultLensDir = "lens_profiles"

// Factory creates engines that read from one filesystem.
type Factory struct {
	fs      afero.Fs
	lensDir string
	created atomic.Int64
	closed  atomic.Int64
}

// NewFactory returns a factory reading projects, media and lens profiles from fs.
func NewFactory(fs afero.Fs, lensDir string) *Factory {
	return &Factory{fs: fs, lensDir: lensDir}
}

// New returns an empty engine.
func (f *Factory) New() ports.Engine {
	f.created.Add(1)
	return newEngine(f)
}

// Created returns the number of engines handed out.
func (f *Factory) Created() int {
	return int(f.created.Load())
}

// Live returns the number of engines not yet closed.
func (f *Factory) Live() int {
	return int(f.created.Load() - f.closed.Load())
}

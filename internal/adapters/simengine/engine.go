// Package simengine is a deterministic reference engine.
// Projects, media probes and lens profiles are JSON documents read through afero.
package simengine

import (
	"encoding/json"
	"math"
	"path/filepath"
	"slices"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProjectVersion is written into exported projects.
const ProjectVersion = 1

var (
	errEngineClosed = zerr.New("engine is closed")
	errNoClip       = zerr.New("no clip loaded")
	errEmptyProject = zerr.New("project data is empty")
	errNoFrames     = zerr.New("media has no frames")
)

var stageOrder = []domain.Stage{domain.StageSmoothing, domain.StageZooming, domain.StageUndistortion}

// Engine implements ports.Engine.
type Engine struct {
	factory *Factory
	fs      afero.Fs
	lensDir string
	db      *LensDB

	clip     domain.ClipInfo
	defaults domain.ProjectDefaults
	native   map[domain.KeyframeTag][]domain.Keyframe
	lens     *LensProfile

	interpolation     domain.Interpolation
	integrationMethod int32
	inputRotation     float64
	overview          bool
	inverted          bool
	stretchDisabled   bool
	provider          ports.KeyframeProvider

	rampInverse bool
	rampSpeed   float64

	valid        domain.Stage
	recomputes   map[domain.Stage]int
	smoothing    []float64
	zooming      []float64
	undistortion []float64

	closed  bool
	renders atomic.Int64
}

func newEngine(f *Factory) *Engine {
	return &Engine{
		factory:    f,
		fs:         f.fs,
		lensDir:    f.lensDir,
		defaults:   DefaultProjectDefaults(),
		recomputes: make(map[domain.Stage]int),
	}
}

// LoadVideo opens a media probe document.
func (e *Engine) LoadVideo(path string) (domain.ClipInfo, error) {
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return domain.ClipInfo{}, zerr.With(zerr.Wrap(err, "failed to open media"), "path", path)
	}
	var probe Probe
	if err := json.Unmarshal(data, &probe); err != nil {
		return domain.ClipInfo{}, zerr.With(zerr.Wrap(err, "failed to probe media"), "path", path)
	}
	if probe.FPS <= 0 || probe.FrameCount <= 0 {
		return domain.ClipInfo{}, zerr.With(errNoFrames, "path", path)
	}
	if err := e.ensureLensDB(); err != nil {
		return domain.ClipInfo{}, err
	}

	e.applyProbe(probe)
	e.defaults = DefaultProjectDefaults()
	e.native = nil
	e.valid = domain.StageNone
	return e.Clip(), nil
}

// ImportProject loads a project or preset document.
func (e *Engine) ImportProject(data []byte, sourcePath string) error {
	if len(data) == 0 {
		return errEmptyProject
	}
	var doc Project
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse project"), "path", sourcePath)
	}
	if doc.Preset || (doc.Clip == nil && doc.Media == "") {
		e.applyPreset(doc)
		return nil
	}

	if doc.Clip != nil {
		if err := e.ensureLensDB(); err != nil {
			return err
		}
		e.applyProbe(*doc.Clip)
	} else {
		media := doc.Media
		if !filepath.IsAbs(media) {
			media = filepath.Join(filepath.Dir(sourcePath), media)
		}
		if _, err := e.LoadVideo(media); err != nil {
			return err
		}
	}

	e.defaults = DefaultProjectDefaults()
	if doc.Defaults != nil {
		e.defaults = *doc.Defaults
	}
	e.native = cloneSeries(doc.Keyframes)
	if doc.Output != nil && !doc.Output.IsZero() {
		e.clip.OutputSize = *doc.Output
	}
	if doc.Lens != nil {
		e.applyLens(*doc.Lens)
	}
	e.valid = domain.StageNone
	return nil
}

// ExportProject serializes the loaded clip and settings.
func (e *Engine) ExportProject() ([]byte, error) {
	if !e.clip.Loaded() {
		return nil, errNoClip
	}
	out := e.clip.OutputSize
	defaults := e.defaults
	doc := Project{
		Version: ProjectVersion,
		Clip: &Probe{
			Width:              e.clip.Size.Width,
			Height:             e.clip.Size.Height,
			FPS:                e.clip.FPS,
			FrameCount:         e.clip.FrameCount,
			Rotation:           e.clip.Rotation,
			Motion:             e.clip.HasMotion,
			AccurateTimestamps: e.clip.HasAccurateTimestamps,
		},
		Output:    &out,
		Defaults:  &defaults,
		Keyframes: e.native,
		Lens:      e.lens,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode project")
	}
	return data, nil
}

// LoadLensProfile applies a lens profile document.
func (e *Engine) LoadLensProfile(data []byte) error {
	var p LensProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return zerr.Wrap(err, "failed to parse lens profile")
	}
	e.applyLens(p)
	return nil
}

// LensProfileDB returns the engine's database, or nil before the first load.
func (e *Engine) LensProfileDB() ports.LensProfileDB {
	if e.db == nil {
		return nil
	}
	return e.db
}

// SetLensProfileDB shares db with this engine. Databases of other engine
// implementations are ignored.
func (e *Engine) SetLensProfileDB(db ports.LensProfileDB) {
	if d, ok := db.(*LensDB); ok && d != nil {
		e.db = d
	}
}

// Clip returns the loaded clip description.
func (e *Engine) Clip() domain.ClipInfo {
	c := e.clip
	if c.PresetOutputSize != nil {
		s := *c.PresetOutputSize
		c.PresetOutputSize = &s
	}
	return c
}

// ProjectDefaults returns the settings stored in the loaded project.
func (e *Engine) ProjectDefaults() domain.ProjectDefaults {
	return e.defaults
}

// NativeKeyframes returns a copy of the project's own keyframes.
func (e *Engine) NativeKeyframes() map[domain.KeyframeTag][]domain.Keyframe {
	return cloneSeries(e.native)
}

// IsKeyframedInternally reports whether the project animates tag.
func (e *Engine) IsKeyframedInternally(tag domain.KeyframeTag) bool {
	return len(e.native[tag]) > 0
}

// SourceTimestamp maps a ramped timestamp back to the clip timeline.
func (e *Engine) SourceTimestamp(rampedUs int64) int64 {
	if e.rampInverse || e.rampSpeed <= 0 {
		return rampedUs
	}
	return int64(math.Round(float64(rampedUs) * e.rampSpeed))
}

// SetInterpolation selects the resampling kernel.
func (e *Engine) SetInterpolation(i domain.Interpolation) { e.interpolation = i }

// SetIntegrationMethod selects the motion integration method.
func (e *Engine) SetIntegrationMethod(method int32) { e.integrationMethod = method }

// SetInputRotation sets the extra input rotation in degrees.
func (e *Engine) SetInputRotation(degrees float64) { e.inputRotation = degrees }

// SetFovOverview toggles the overview mode.
func (e *Engine) SetFovOverview(on bool) { e.overview = on }

// SetFramebufferInverted flips the vertical buffer orientation.
func (e *Engine) SetFramebufferInverted(inverted bool) { e.inverted = inverted }

// DisableLensStretch stops applying the lens input stretch. With adjustSize
// the output width is scaled by the stretch instead.
func (e *Engine) DisableLensStretch(adjustSize bool) {
	e.stretchDisabled = true
	if adjustSize && e.lens != nil && e.lens.InputStretch > 0 && e.lens.InputStretch != 1 {
		e.clip.OutputSize.Width = int(math.Round(float64(e.clip.OutputSize.Width) * e.lens.InputStretch))
	}
}

// SetOutputSize sets the output dimensions. A zero size resets to the clip size.
func (e *Engine) SetOutputSize(size domain.Size) {
	if size.IsZero() {
		size = e.clip.Size
	}
	e.clip.OutputSize = size
}

// SetKeyframeProvider installs the source of externally keyframed values.
func (e *Engine) SetKeyframeProvider(p ports.KeyframeProvider) { e.provider = p }

// CalculateRampedTimestamps samples the speed ramp. With inverse the ramp is
// left to the host and timestamps pass through unchanged.
func (e *Engine) CalculateRampedTimestamps(inverse bool) {
	e.rampInverse = inverse
	e.rampSpeed = e.sample(domain.TagVideoSpeed, 0)
}

// InvalidateSmoothing marks smoothing and every later stage stale.
func (e *Engine) InvalidateSmoothing() { e.invalidate(domain.StageSmoothing) }

// InvalidateZooming marks zooming and undistortion stale.
func (e *Engine) InvalidateZooming() { e.invalidate(domain.StageZooming) }

// InvalidateUndistortion marks undistortion stale.
func (e *Engine) InvalidateUndistortion() { e.invalidate(domain.StageUndistortion) }

func (e *Engine) invalidate(s domain.Stage) {
	e.valid &^= s.Downstream()
}

// RecomputeBlocking recomputes stale stages in dependency order.
func (e *Engine) RecomputeBlocking() error {
	if e.closed {
		return errEngineClosed
	}
	timestamps := e.frameTimestamps()
	for _, st := range stageOrder {
		if e.valid.Has(st) {
			continue
		}
		e.compute(st, timestamps)
		e.recomputes[st]++
		e.valid |= st
	}
	return nil
}

// ProcessPixels writes the stabilized input into the output buffer.
func (e *Engine) ProcessPixels(timestampUs int64, buffers *domain.Buffers) error {
	if e.closed {
		return errEngineClosed
	}
	if !e.valid.Has(domain.StageUndistortion) {
		return domain.ErrStagesPending
	}
	in, out := buffers.Input, buffers.Output
	if in.Source.Kind != domain.BufferCPU || out.Source.Kind != domain.BufferCPU {
		return domain.ErrUnsupportedBuffer
	}
	if in.Size != out.Size || len(in.Source.Data) != len(out.Source.Data) {
		return domain.ErrBufferSizeMismatch
	}

	k := e.offset(timestampUs)
	for i, b := range in.Source.Data {
		out.Source.Data[i] = b + k
	}
	e.renders.Add(1)
	return nil
}

// Close releases the stage tables.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.smoothing, e.zooming, e.undistortion = nil, nil, nil
	if e.factory != nil {
		e.factory.closed.Add(1)
	}
	return nil
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool { return e.closed }

// Valid returns the stages that are up to date.
func (e *Engine) Valid() domain.Stage { return e.valid }

// Recomputes returns how often stage was recomputed.
func (e *Engine) Recomputes(stage domain.Stage) int { return e.recomputes[stage] }

// Renders returns the number of successful ProcessPixels calls.
func (e *Engine) Renders() int64 { return e.renders.Load() }

// Interpolation returns the selected kernel.
func (e *Engine) Interpolation() domain.Interpolation { return e.interpolation }

// InputRotation returns the extra input rotation in degrees.
func (e *Engine) InputRotation() float64 { return e.inputRotation }

// Fingerprint hashes the exported project. Engines with the same clip and
// settings share a fingerprint.
func (e *Engine) Fingerprint() uint64 {
	data, err := e.ExportProject()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

func (e *Engine) ensureLensDB() error {
	if e.db == nil {
		e.db = NewLensDB()
	}
	if e.db.Loaded() {
		return nil
	}
	return e.db.Load(e.fs, e.lensDir)
}

func (e *Engine) applyProbe(p Probe) {
	size := domain.Size{Width: p.Width, Height: p.Height}
	e.clip = domain.ClipInfo{
		Size:                  size,
		OutputSize:            size,
		FrameCount:            p.FrameCount,
		FPS:                   p.FPS,
		Rotation:              p.Rotation,
		HasMotion:             p.Motion,
		HasAccurateTimestamps: p.AccurateTimestamps,
	}
	if p.FPS > 0 {
		e.clip.DurationMs = float64(p.FrameCount) / p.FPS * 1000
	}
}

func (e *Engine) applyPreset(doc Project) {
	if doc.Defaults != nil {
		e.defaults = *doc.Defaults
	}
	if len(doc.Keyframes) > 0 {
		e.native = cloneSeries(doc.Keyframes)
	}
	if doc.Name != "" {
		e.clip.PresetName = doc.Name
	}
	if doc.Output != nil && !doc.Output.IsZero() {
		s := *doc.Output
		e.clip.PresetOutputSize = &s
	}
	if doc.Lens != nil {
		e.applyLens(*doc.Lens)
	}
	e.valid = domain.StageNone
}

func (e *Engine) applyLens(p LensProfile) {
	if known, ok := e.lookupLens(p.Name); ok && len(p.Coefficients) == 0 {
		p = known
	}
	e.lens = &p
	e.clip.LensName = p.Name
	e.valid &^= domain.StageZooming.Downstream()
}

func (e *Engine) lookupLens(name string) (LensProfile, bool) {
	if e.db == nil {
		return LensProfile{}, false
	}
	return e.db.Lookup(name)
}

func (e *Engine) frameTimestamps() []int64 {
	n := e.clip.FrameCount
	if n <= 0 || e.clip.FPS <= 0 {
		return []int64{0}
	}
	ts := make([]int64, n)
	for i := range ts {
		ts[i] = domain.FrameToMicroseconds(float64(i), e.clip.FPS)
	}
	return ts
}

func (e *Engine) compute(st domain.Stage, timestamps []int64) {
	table := make([]float64, len(timestamps))
	switch st {
	case domain.StageSmoothing:
		for i, ts := range timestamps {
			table[i] = e.sample(domain.TagSmoothness, ts) +
				e.sample(domain.TagLockHorizonAmount, ts)/1000 +
				(e.sample(domain.TagAdditionalRotationX, ts)+
					e.sample(domain.TagAdditionalRotationY, ts)+
					e.sample(domain.TagLockHorizonRoll, ts))/3600
		}
		e.smoothing = table
	case domain.StageZooming:
		aspect := e.aspectFactor()
		for i, ts := range timestamps {
			table[i] = e.smoothing[i]*e.sample(domain.TagMaxZoom, ts)/100*
				e.sample(domain.TagLensCorrectionStrength, ts)*aspect +
				e.sample(domain.TagVideoRotation, ts)/360
		}
		e.zooming = table
	case domain.StageUndistortion:
		overview := 0.0
		if e.overview {
			overview = 0.5
		}
		for i, ts := range timestamps {
			table[i] = e.zooming[i]*e.sample(domain.TagFov, ts) + e.inputRotation/360 + overview
		}
		e.undistortion = table
	}
}

func (e *Engine) aspectFactor() float64 {
	in, out := e.clip.Size, e.clip.OutputSize
	if in.Width == 0 || in.Height == 0 || out.Width == 0 || out.Height == 0 {
		return 1
	}
	return (float64(out.Width) / float64(out.Height)) / (float64(in.Width) / float64(in.Height))
}

// sample resolves tag through the provider, then the native keyframes, then the defaults.
func (e *Engine) sample(tag domain.KeyframeTag, ts int64) float64 {
	if e.provider != nil {
		if v, ok := e.provider.ValueAt(e, tag, ts); ok {
			return v
		}
	}
	if v, ok := domain.InterpolateKeyframes(e.native[tag], ts); ok {
		return v
	}
	return e.defaultValue(tag)
}

func (e *Engine) defaultValue(tag domain.KeyframeTag) float64 {
	d := e.defaults
	switch tag {
	case domain.TagFov:
		return d.Fov
	case domain.TagMaxZoom:
		return d.MaxZoom
	case domain.TagSmoothness:
		return d.Smoothness
	case domain.TagLensCorrectionStrength:
		return d.LensCorrection
	case domain.TagLockHorizonAmount:
		if d.HorizonLock.Enabled {
			return d.HorizonLock.Amount
		}
	case domain.TagLockHorizonRoll:
		if d.HorizonLock.Enabled {
			return d.HorizonLock.Roll
		}
	case domain.TagVideoSpeed:
		return d.VideoSpeed
	case domain.TagVideoRotation:
		return d.VideoRotation
	case domain.TagAdditionalRotationX:
		return d.AdditionalYaw
	case domain.TagAdditionalRotationY:
		return d.AdditionalPitch
	}
	return 0
}

// offset returns the per-pixel delta for the frame nearest timestampUs.
func (e *Engine) offset(timestampUs int64) byte {
	if len(e.undistortion) == 0 {
		return 0
	}
	i := 0
	if e.clip.FPS > 0 {
		i = int(math.Round(domain.MicrosecondsToFrame(timestampUs, e.clip.FPS)))
	}
	i = min(max(i, 0), len(e.undistortion)-1)
	return byte(int64(math.Round(e.undistortion[i]*100)) & 0xff)
}

func cloneSeries(in map[domain.KeyframeTag][]domain.Keyframe) map[domain.KeyframeTag][]domain.Keyframe {
	if len(in) == 0 {
		return nil
	}
	out := make(map[domain.KeyframeTag][]domain.Keyframe, len(in))
	for tag, s := range in {
		out[tag] = slices.Clone(s)
	}
	return out
}

package instance

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/engine/managers"
	"go.trai.ch/zerr"
)

// AcquireOrBuild returns the engine for the instance's current project,
// building and loading it on a miss. size is the host's output size and seeds
// the timeline size on first use.
//
// The returned handle carries a reference owned by the caller, who must
// Release it.
func (b *Base) AcquireOrBuild(ctx context.Context, params ports.ParameterAccess, size domain.Size) (*managers.Shared, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx, span := b.env.Tracer.Start(ctx, "acquire_engine")
	defer span.End()

	shared, err := b.acquire(ctx, params, size, span)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return shared, nil
}

func (b *Base) acquire(ctx context.Context, params ports.ParameterAccess, size domain.Size, span ports.Span) (*managers.Shared, error) {
	disableStretch, err := getBool(params, domain.ParamDisableStretch)
	if err != nil {
		return nil, err
	}
	instanceID, err := getString(params, domain.ParamInstanceID)
	if err != nil {
		return nil, err
	}
	path, err := getString(params, domain.ParamProjectPath)
	if err != nil {
		return nil, err
	}
	if path == "" {
		b.updateLoadedState(params, false)
		return nil, domain.ErrEmptyPath
	}

	if b.state.TimelineSize.IsZero() {
		b.state.TimelineSize = size
	}

	key := domain.NewCacheKey(path, disableStretch, instanceID)
	span.SetAttribute("cache.key", key.Digest())

	shared, hit, err := b.env.Cache.Acquire(key, func() (*managers.Shared, error) {
		return b.build(ctx, params, key, size)
	})
	span.SetAttribute("cache.hit", hit)
	if err != nil {
		return nil, err
	}

	b.local.Add(shared)
	if hit {
		_ = shared.Update(func(e ports.Engine) error {
			e.SetKeyframeProvider(b.keyframes.Provider())
			return nil
		})
	}
	return shared, nil
}

func (b *Base) build(ctx context.Context, params ports.ParameterAccess, key domain.CacheKey, size domain.Size) (*managers.Shared, error) {
	_, span := b.env.Tracer.Start(ctx, "build_engine", ports.WithAttribute("cache.key", key.Digest()))
	defer span.End()

	b.env.Logger.Info(fmt.Sprintf("building engine for %s (key %s)", key.Path, key.Digest()))

	engine := b.env.Factory.New()
	if db, ok := b.env.Cache.LoadedLensDB(); ok {
		engine.SetLensProfileDB(db)
	}
	if interpolation, err := params.GetInt(domain.ParamInterpolation); err == nil {
		engine.SetInterpolation(domain.InterpolationFromIndex(interpolation))
	}

	if err := b.prepare(engine, params, key, size); err != nil {
		span.RecordError(err)
		if closeErr := engine.Close(); closeErr != nil {
			b.env.Logger.Error(zerr.Wrap(closeErr, "failed to close engine"))
		}
		return nil, err
	}
	return managers.NewShared(key, engine), nil
}

// prepare loads the project into engine and brings every stage up to date.
func (b *Base) prepare(engine ports.Engine, params ports.ParameterAccess, key domain.CacheKey, size domain.Size) error {
	path := key.Path.String()
	var err error
	if strings.HasSuffix(path, ProjectExtension) {
		err = b.loadProject(engine, params, path)
	} else {
		err = b.loadMedia(engine, params, path, size)
	}
	if err != nil {
		return err
	}

	engine.CalculateRampedTimestamps(false)
	clip := engine.Clip()
	b.state.OriginalVideoSize = clip.Size
	b.state.OriginalOutputSize = clip.OutputSize
	b.state.NumFrames = clip.FrameCount
	b.state.FPS = clip.FPS

	loaded := clip.Loaded()
	if loaded && b.state.ReloadPending {
		b.state.ReloadPending = false
		err := b.reloadValues(engine, params, clip)
		b.state.UserOwned = nil
		if err != nil {
			return err
		}
	}

	useEngineKeyframes, _ := params.GetBool(domain.ParamUseEngineKeyframes)
	b.bake(params, useEngineKeyframes)
	b.state.HasMotion = clip.HasMotion
	b.updateLoadedState(params, loaded)

	if key.DisableStretch {
		engine.DisableLensStretch(b.state.AnamorphicAdjustSize)
	}
	overview, err := getBool(params, domain.ParamToggleOverview)
	if err != nil {
		return err
	}
	engine.SetFovOverview(overview)
	engine.SetFramebufferInverted(b.state.FramebufferInverted)

	out, err := outputSize(params)
	if err != nil {
		return err
	}
	engine.SetOutputSize(out)
	engine.SetKeyframeProvider(b.keyframes.Provider())
	if method, err := params.GetInt(domain.ParamIntegrationMethod); err == nil {
		engine.SetIntegrationMethod(method)
	}

	engine.InvalidateSmoothing()
	if err := engine.RecomputeBlocking(); err != nil {
		b.env.Logger.Error(zerr.With(zerr.Wrap(err, "failed to compute stages"), "key", key.Digest()))
	}
	useEngineKeyframes, err = getBool(params, domain.ParamUseEngineKeyframes)
	if err != nil {
		return err
	}
	engine.CalculateRampedTimestamps(!(useEngineKeyframes && engine.IsKeyframedInternally(domain.TagVideoSpeed)))
	return nil
}

func (b *Base) loadProject(engine ports.Engine, params ports.ParameterAccess, path string) error {
	include, err := getBool(params, domain.ParamIncludeProjectData)
	if err != nil {
		return err
	}
	embedded, err := getString(params, domain.ParamProjectData)
	if err != nil {
		return err
	}

	var data []byte
	if include && embedded != "" {
		data = []byte(embedded)
	} else if raw, err := afero.ReadFile(b.env.Fs, path); err == nil {
		keep := ""
		if include {
			keep = string(raw)
		}
		if err := setString(params, domain.ParamProjectData, keep); err != nil {
			return err
		}
		data = raw
	}

	if err := engine.ImportProject(data, path); err != nil {
		b.updateLoadedState(params, false)
		return errors.Join(domain.ErrLoadFailed, zerr.With(err, "path", path))
	}
	if err := setString(params, domain.ParamLoadedProject, filepath.Base(path)); err != nil {
		return err
	}
	if b.state.AlwaysSetInputRotation {
		return b.applyInputRotation(engine, params, engine.Clip().Rotation)
	}
	return nil
}

func (b *Base) loadMedia(engine ports.Engine, params ports.ParameterAccess, path string, size domain.Size) error {
	clip, err := engine.LoadVideo(path)
	if err != nil {
		return b.loadEmbedded(engine, params, path, err)
	}

	if !size.IsZero() {
		engine.SetOutputSize(size)
	}
	if clip.PresetOutputSize != nil {
		engine.SetOutputSize(*clip.PresetOutputSize)
	}

	if lens, err := params.GetString(domain.ParamEmbeddedLensProfile); err == nil && lens != "" {
		if err := engine.LoadLensProfile([]byte(lens)); err != nil {
			b.env.Logger.Error(zerr.Wrap(err, "failed to load lens profile"))
		}
	}
	if preset, err := params.GetString(domain.ParamEmbeddedPreset); err == nil && preset != "" {
		if err := engine.ImportProject([]byte(preset), ""); err != nil {
			b.env.Logger.Error(zerr.Wrap(err, "failed to load preset"))
		}
	}

	include, err := getBool(params, domain.ParamIncludeProjectData)
	if err != nil {
		return err
	}
	if include {
		if data, err := engine.ExportProject(); err == nil {
			if err := setString(params, domain.ParamProjectData, string(data)); err != nil {
				return err
			}
		}
	}

	if err := b.applyInputRotation(engine, params, clip.Rotation); err != nil {
		return err
	}
	return setString(params, domain.ParamLoadedProject, filepath.Base(path))
}

// loadEmbedded falls back to project data stored in the host when the media
// file itself cannot be opened.
func (b *Base) loadEmbedded(engine ports.Engine, params ports.ParameterAccess, path string, cause error) error {
	embedded, err := getString(params, domain.ParamProjectData)
	if err != nil {
		return err
	}
	if embedded == "" {
		b.env.Logger.Error(zerr.With(zerr.Wrap(cause, "failed to open media"), "path", path))
		b.updateLoadedState(params, false)
		if err := setString(params, domain.ParamStatus, StatusLoadFailed); err != nil {
			return err
		}
		if err := params.SetHint(domain.ParamStatus, fmt.Sprintf("Error loading %s: %v.", path, cause)); err != nil {
			return accessFailed(err, domain.ParamStatus)
		}
		return errors.Join(domain.ErrLoadFailed, zerr.With(cause, "path", path))
	}

	if err := engine.ImportProject([]byte(embedded), path); err != nil {
		b.updateLoadedState(params, false)
		return errors.Join(domain.ErrLoadFailed, zerr.With(err, "path", path))
	}
	return nil
}

func (b *Base) applyInputRotation(engine ports.Engine, params ports.ParameterAccess, rotation int) error {
	if rotation == 0 || !b.state.ReloadPending {
		return nil
	}
	r := float64((360 - rotation%360) % 360)
	if err := setFloat(params, domain.ParamInputRotation, r); err != nil {
		return err
	}
	engine.SetInputRotation(r)
	return nil
}

// reloadValues copies the values saved in the project into the host, including
// the project's own keyframes. Params the user owns keep their host values.
func (b *Base) reloadValues(engine ports.Engine, params ports.ParameterAccess, clip domain.ClipInfo) error {
	d := engine.ProjectDefaults()
	owned := b.state.UserOwned

	var lockAmount, lockRoll float64
	if d.HorizonLock.Enabled {
		lockAmount, lockRoll = d.HorizonLock.Amount, d.HorizonLock.Roll
	}

	floats := []struct {
		param domain.Param
		value float64
	}{
		{domain.ParamFov, d.Fov},
		{domain.ParamSmoothness, d.Smoothness * 100},
		{domain.ParamZoomLimit, d.MaxZoom},
		{domain.ParamLensCorrectionStrength, min(d.LensCorrection*100, 100)},
		{domain.ParamHorizonLockAmount, lockAmount},
		{domain.ParamHorizonLockRoll, lockRoll},
		{domain.ParamVideoSpeed, d.VideoSpeed * 100},
		{domain.ParamAdditionalYaw, d.AdditionalYaw},
		{domain.ParamAdditionalPitch, d.AdditionalPitch},
		{domain.ParamRotation, d.VideoRotation},
		{domain.ParamOutputWidth, float64(b.state.OriginalOutputSize.Width)},
		{domain.ParamOutputHeight, float64(b.state.OriginalOutputSize.Height)},
	}
	for _, f := range floats {
		if owned[f.param] {
			continue
		}
		if err := setFloat(params, f.param, f.value); err != nil {
			return err
		}
	}
	ints := []struct {
		param domain.Param
		value int32
	}{
		{domain.ParamIntegrationMethod, d.IntegrationMethod},
		{domain.ParamInterpolation, int32(d.Interpolation)},
	}
	for _, i := range ints {
		if owned[i.param] {
			continue
		}
		if err := setInt(params, i.param, i.value); err != nil {
			return err
		}
	}

	native := engine.NativeKeyframes()
	if !owned[domain.ParamUseEngineKeyframes] {
		if err := setBool(params, domain.ParamUseEngineKeyframes, len(native) > 0); err != nil {
			return err
		}
	}
	if clip.PresetName != "" {
		if err := setString(params, domain.ParamLoadedPreset, clip.PresetName); err != nil {
			return err
		}
	}
	if err := setString(params, domain.ParamLoadedLens, clip.LensName); err != nil {
		return err
	}

	tags := make([]domain.KeyframeTag, 0, len(native))
	for tag := range native {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	for _, tag := range tags {
		series := native[tag]
		binding, ok := domain.BindingForTag(tag)
		if !ok || len(series) == 0 || owned[binding.Param] {
			continue
		}
		if err := params.ClearKeyframes(binding.Param); err != nil {
			return accessFailed(err, binding.Param)
		}
		for _, kf := range series {
			ts := kf.TimestampUs
			if tag == domain.TagVideoSpeed {
				ts = engine.SourceTimestamp(ts)
			}
			at := domain.AtFrame(domain.MicrosecondsToFrame(ts, clip.FPS))
			if err := params.SetFloatAt(binding.Param, at, kf.Value*binding.Scale); err != nil {
				return accessFailed(err, binding.Param)
			}
		}
	}
	return nil
}

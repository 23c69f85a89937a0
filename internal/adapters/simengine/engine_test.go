package simengine_test

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/adapters/simengine"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeJSON(t *testing.T, fs afero.Fs, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

func newFixture(t *testing.T) (afero.Fs, *simengine.Factory) {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeJSON(t, fs, "/media/clip.mp4", simengine.Probe{Width: 4, Height: 2, FPS: 10, FrameCount: 10, Motion: true})
	writeJSON(t, fs, "/lens/gopro.json", simengine.LensProfile{Name: "GoPro", InputStretch: 1.5})
	return fs, simengine.NewFactory(fs, "/lens")
}

func buffers(in []byte) *domain.Buffers {
	size := domain.Size{Width: len(in), Height: 1}
	return &domain.Buffers{
		Input:  domain.BufferDescription{Size: size, Stride: len(in), Source: domain.BufferSource{Kind: domain.BufferCPU, Data: in}},
		Output: domain.BufferDescription{Size: size, Stride: len(in), Source: domain.BufferSource{Kind: domain.BufferCPU, Data: make([]byte, len(in))}},
	}
}

func TestEngine_LoadVideo(t *testing.T) {
	_, f := newFixture(t)
	e := f.New().(*simengine.Engine)

	clip, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	assert.Equal(t, domain.Size{Width: 4, Height: 2}, clip.Size)
	assert.Equal(t, clip.Size, clip.OutputSize)
	assert.Equal(t, 10, clip.FrameCount)
	assert.InDelta(t, 1000.0, clip.DurationMs, 1e-9)
	assert.True(t, clip.HasMotion)
	assert.True(t, clip.Loaded())
	require.NotNil(t, e.LensProfileDB())
	assert.True(t, e.LensProfileDB().Loaded())
}

func TestEngine_LoadVideoMissing(t *testing.T) {
	_, f := newFixture(t)
	e := f.New()

	_, err := e.LoadVideo("/media/missing.mp4")
	require.Error(t, err)
	assert.False(t, e.Clip().Loaded())
}

func TestEngine_SharedLensDBLoadsOnce(t *testing.T) {
	_, f := newFixture(t)
	first := f.New()
	_, err := first.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	db, ok := first.LensProfileDB().(*simengine.LensDB)
	require.True(t, ok)
	assert.Equal(t, 1, db.Loads())
	assert.Equal(t, 1, db.Len())

	second := f.New()
	second.SetLensProfileDB(first.LensProfileDB())
	_, err = second.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	assert.Equal(t, 1, db.Loads())
	assert.Same(t, db, second.LensProfileDB())
}

func TestEngine_ImportProjectResolvesMedia(t *testing.T) {
	fs, f := newFixture(t)
	writeJSON(t, fs, "/media/edit.gyroflow", simengine.Project{
		Version: 1,
		Media:   "clip.mp4",
		Output:  &domain.Size{Width: 2, Height: 2},
		Keyframes: map[domain.KeyframeTag][]domain.Keyframe{
			domain.TagFov: {{TimestampUs: 0, Value: 1}, {TimestampUs: 500_000, Value: 2}},
		},
		Lens: &simengine.LensProfile{Name: "GoPro"},
	})
	data, err := afero.ReadFile(fs, "/media/edit.gyroflow")
	require.NoError(t, err)

	e := f.New()
	require.NoError(t, e.ImportProject(data, "/media/edit.gyroflow"))

	clip := e.Clip()
	assert.Equal(t, 10, clip.FrameCount)
	assert.Equal(t, domain.Size{Width: 2, Height: 2}, clip.OutputSize)
	assert.Equal(t, "GoPro", clip.LensName)
	assert.True(t, e.IsKeyframedInternally(domain.TagFov))
	assert.False(t, e.IsKeyframedInternally(domain.TagSmoothness))
	assert.Len(t, e.NativeKeyframes()[domain.TagFov], 2)
}

func TestEngine_ImportPreset(t *testing.T) {
	_, f := newFixture(t)
	e := f.New()
	_, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	defaults := simengine.DefaultProjectDefaults()
	defaults.Smoothness = 0.9
	preset, err := json.Marshal(simengine.Project{
		Preset:   true,
		Name:     "Smooth",
		Output:   &domain.Size{Width: 8, Height: 4},
		Defaults: &defaults,
	})
	require.NoError(t, err)
	require.NoError(t, e.ImportProject(preset, ""))

	clip := e.Clip()
	assert.Equal(t, "Smooth", clip.PresetName)
	require.NotNil(t, clip.PresetOutputSize)
	assert.Equal(t, domain.Size{Width: 8, Height: 4}, *clip.PresetOutputSize)
	assert.InDelta(t, 0.9, e.ProjectDefaults().Smoothness, 1e-9)
	assert.Equal(t, 10, clip.FrameCount)
}

func TestEngine_ImportProjectRejectsGarbage(t *testing.T) {
	_, f := newFixture(t)
	e := f.New()

	require.Error(t, e.ImportProject(nil, "/x.gyroflow"))
	require.Error(t, e.ImportProject([]byte("{"), "/x.gyroflow"))
}

func TestEngine_ExportRoundTrip(t *testing.T) {
	_, f := newFixture(t)
	src := f.New().(*simengine.Engine)
	_, err := src.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)
	src.SetOutputSize(domain.Size{Width: 2, Height: 2})

	data, err := src.ExportProject()
	require.NoError(t, err)

	dst := f.New().(*simengine.Engine)
	require.NoError(t, dst.ImportProject(data, "/elsewhere/copy.gyroflow"))

	assert.Equal(t, src.Clip().OutputSize, dst.Clip().OutputSize)
	assert.Equal(t, src.Fingerprint(), dst.Fingerprint())
	assert.NotZero(t, src.Fingerprint())
}

func TestEngine_ExportWithoutClip(t *testing.T) {
	_, f := newFixture(t)
	_, err := f.New().ExportProject()
	require.Error(t, err)
}

func TestEngine_StageInvalidation(t *testing.T) {
	_, f := newFixture(t)
	e := f.New().(*simengine.Engine)
	_, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	require.NoError(t, e.RecomputeBlocking())
	assert.Equal(t, domain.StageAll, e.Valid())

	e.InvalidateZooming()
	assert.Equal(t, domain.StageSmoothing, e.Valid())
	require.NoError(t, e.RecomputeBlocking())
	assert.Equal(t, 1, e.Recomputes(domain.StageSmoothing))
	assert.Equal(t, 2, e.Recomputes(domain.StageZooming))
	assert.Equal(t, 2, e.Recomputes(domain.StageUndistortion))

	e.InvalidateUndistortion()
	require.NoError(t, e.RecomputeBlocking())
	assert.Equal(t, 2, e.Recomputes(domain.StageZooming))
	assert.Equal(t, 3, e.Recomputes(domain.StageUndistortion))

	e.InvalidateSmoothing()
	assert.Equal(t, domain.StageNone, e.Valid())
	require.NoError(t, e.RecomputeBlocking())
	assert.Equal(t, 2, e.Recomputes(domain.StageSmoothing))
	assert.Equal(t, 4, e.Recomputes(domain.StageUndistortion))
}

func TestEngine_ProcessPixels(t *testing.T) {
	_, f := newFixture(t)
	e := f.New().(*simengine.Engine)
	_, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	b := buffers([]byte{1, 2, 3, 4})
	require.ErrorIs(t, e.ProcessPixels(0, b), domain.ErrStagesPending)

	require.NoError(t, e.RecomputeBlocking())
	require.NoError(t, e.ProcessPixels(0, b))

	// smoothness 0.5 * max zoom 130% * fov 1
	assert.Equal(t, []byte{66, 67, 68, 69}, b.Output.Source.Data)
	assert.Equal(t, int64(1), e.Renders())
}

func TestEngine_ProcessPixelsRejectsBuffers(t *testing.T) {
	_, f := newFixture(t)
	e := f.New()
	_, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)
	require.NoError(t, e.RecomputeBlocking())

	gpu := buffers([]byte{1})
	gpu.Input.Source.Kind = domain.BufferMetal
	require.ErrorIs(t, e.ProcessPixels(0, gpu), domain.ErrUnsupportedBuffer)

	mismatch := buffers([]byte{1, 2})
	mismatch.Output.Source.Data = make([]byte, 3)
	require.ErrorIs(t, e.ProcessPixels(0, mismatch), domain.ErrBufferSizeMismatch)
}

func TestEngine_ProviderOverridesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockKeyframeProvider(ctrl)
	provider.EXPECT().ValueAt(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, tag domain.KeyframeTag, _ int64) (float64, bool) {
			if tag == domain.TagSmoothness {
				return 0.8, true
			}
			return 0, false
		}).AnyTimes()

	_, f := newFixture(t)
	e := f.New()
	_, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)
	e.SetKeyframeProvider(provider)
	require.NoError(t, e.RecomputeBlocking())

	b := buffers([]byte{0})
	require.NoError(t, e.ProcessPixels(0, b))
	assert.Equal(t, []byte{104}, b.Output.Source.Data)
}

func TestEngine_RampedTimestamps(t *testing.T) {
	_, f := newFixture(t)
	e := f.New()
	_, err := e.LoadVideo("/media/clip.mp4")
	require.NoError(t, err)

	defaults := simengine.DefaultProjectDefaults()
	defaults.VideoSpeed = 2
	preset, err := json.Marshal(simengine.Project{Preset: true, Defaults: &defaults})
	require.NoError(t, err)
	require.NoError(t, e.ImportProject(preset, ""))

	e.CalculateRampedTimestamps(false)
	assert.Equal(t, int64(2000), e.SourceTimestamp(1000))

	e.CalculateRampedTimestamps(true)
	assert.Equal(t, int64(1000), e.SourceTimestamp(1000))
}

func TestFactory_CountsLiveEngines(t *testing.T) {
	_, f := newFixture(t)
	a := f.New()
	f.New()
	assert.Equal(t, 2, f.Created())

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, 1, f.Live())
	require.Error(t, a.RecomputeBlocking())
}

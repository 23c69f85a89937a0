package app_test

import (
	"context"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/engine/instance"
)

func passthroughChecksum(frames int) uint64 {
	d := xxhash.New()
	for range frames {
		_, _ = d.Write([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	}
	return d.Sum64()
}

func TestReplay_SharedEngine(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "shared.yaml", `
name: shared
fps: 10
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: save, instance: a}
  - {action: load, from: a, as: b}
  - {action: render, frames: 3}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, report.Instances, 2)
	assert.Equal(t, "shared", report.Script)
	assert.Equal(t, 1, report.CacheSize)

	a, _ := report.Instance("a")
	b, _ := report.Instance("b")
	assert.True(t, a.Loaded)
	assert.Equal(t, instance.StatusOK, a.Status)
	assert.Equal(t, 3, a.Frames)
	assert.Equal(t, a.InstanceID, b.InstanceID)
	assert.Equal(t, a.Key, b.Key)
	assert.NotEqual(t, a.RegistryID, b.RegistryID)
	assert.Equal(t, a.Checksum, b.Checksum)
	assert.NotEqual(t, passthroughChecksum(3), a.Checksum)
}

func TestReplay_EditForksIdentity(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "fork.yaml", `
fps: 10
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: duplicate, instance: a, as: b}
  - {action: render}
  - {action: edit, instance: b, param: Smoothness, value: 80}
  - {action: render}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
	require.NoError(t, err)

	a, _ := report.Instance("a")
	b, _ := report.Instance("b")
	assert.NotEqual(t, a.InstanceID, b.InstanceID)
	assert.NotEqual(t, a.Key, b.Key)
	assert.NotEqual(t, a.Checksum, b.Checksum)
	assert.True(t, b.EverChanged)
	assert.False(t, a.EverChanged)
	assert.Equal(t, 2, report.CacheSize)
}

func TestReplay_EmptyPathPassesThrough(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "empty.yaml", `
steps:
  - {action: create, instance: a}
  - {action: render, instance: a, frames: 2}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
	require.NoError(t, err)

	a, _ := report.Instance("a")
	assert.False(t, a.Loaded)
	assert.Empty(t, a.Key)
	assert.Equal(t, passthroughChecksum(2), a.Checksum)
	assert.Zero(t, report.CacheSize)
}

func TestReplay_MissingMediaPassesThrough(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "missing.yaml", `
steps:
  - {action: create, instance: a, project: gone.mp4}
  - {action: render, instance: a}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
	require.NoError(t, err)

	a, _ := report.Instance("a")
	assert.Equal(t, instance.StatusLoadFailed, a.Status)
	assert.Equal(t, passthroughChecksum(1), a.Checksum)
}

func TestReplay_Keyframes(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "keys.yaml", `
fps: 10
steps:
  - {action: create, instance: plain, project: clip.mp4}
  - {action: create, instance: keyed, project: clip.mp4}
  - {action: render, frames: 1}
  - {action: keyframe, instance: keyed, param: Smoothness, frame: 0, value: 80}
  - {action: keyframe, instance: keyed, param: Smoothness, frame: 9, value: 20}
  - {action: render, frames: 4}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
	require.NoError(t, err)

	plain, _ := report.Instance("plain")
	keyed, _ := report.Instance("keyed")
	assert.NotEqual(t, plain.Checksum, keyed.Checksum)
}

func TestReplay_SetAndIntOptions(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "set.yaml", `
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: set, instance: a, param: Interpolation, value: Bilinear}
  - {action: set, instance: a, param: DontDrawOutside, value: true}
  - {action: edit, instance: a, param: ReloadProject}
  - {action: render, instance: a}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
	require.NoError(t, err)
	a, _ := report.Instance("a")
	assert.True(t, a.Loaded)
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    error
		message string
	}{
		{
			name:   "unknown instance",
			script: "steps:\n  - {action: render, instance: ghost}\n",
			want:   domain.ErrUnknownInstance,
		},
		{
			name:   "render after delete",
			script: "steps:\n  - {action: create, instance: a}\n  - {action: delete, instance: a}\n  - {action: render, instance: a}\n",
			want:   domain.ErrUnknownInstance,
		},
		{
			name:    "unknown action",
			script:  "steps:\n  - {action: paint, instance: a}\n",
			message: domain.ErrUnknownStep.Error(),
		},
		{
			name:    "wrong value type",
			script:  "steps:\n  - {action: create, instance: a}\n  - {action: set, instance: a, param: Smoothness, value: soft}\n",
			message: domain.ErrParamTypeMismatch.Error(),
		},
		{
			name:    "unknown option",
			script:  "steps:\n  - {action: create, instance: a}\n  - {action: set, instance: a, param: Interpolation, value: Nearest}\n",
			message: domain.ErrParamTypeMismatch.Error(),
		},
		{
			name:    "unknown param",
			script:  "steps:\n  - {action: create, instance: a}\n  - {action: set, instance: a, param: Sharpness, value: 1}\n",
			message: domain.ErrUnknownParam.Error(),
		},
		{
			name:    "keyframe without time",
			script:  "steps:\n  - {action: create, instance: a}\n  - {action: keyframe, instance: a, param: Fov, value: 1}\n",
			message: domain.ErrInvalidTime.Error(),
		},
		{
			name:   "malformed yaml",
			script: "steps: [",
			want:   domain.ErrScriptReadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			path := f.script(t, "bad.yaml", tt.script)
			_, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestReplay_MissingScript(t *testing.T) {
	f := newFixture(t)
	_, err := f.app.Replay(context.Background(), "/proj/none.yaml", app.ReplayOptions{})
	require.ErrorIs(t, err, domain.ErrScriptReadFailed)
}

func TestReplay_SaveFileAndInspect(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "save.yaml", `
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: edit, instance: a, param: Fov, value: 1.5}
  - {action: save, instance: a, file: a.blob}
  - {action: load, file: a.blob, as: b}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{SavePath: "/out/final.blob"})
	require.NoError(t, err)
	b, _ := report.Instance("b")

	exists, err := afero.Exists(f.fs, "/proj/a.blob")
	require.NoError(t, err)
	assert.True(t, exists)

	inspection, err := f.app.Inspect(context.Background(), "/out/final.blob")
	require.NoError(t, err)
	assert.False(t, inspection.Recovered)
	assert.NotZero(t, inspection.Version)
	assert.Equal(t, b.InstanceID, inspection.Stored.InstanceID)
	assert.InDelta(t, 1.5, inspection.Stored.Values.Float[domain.ParamFov], 1e-9)
	assert.Equal(t, "/proj/clip.mp4", inspection.Stored.Values.String[domain.ParamProjectPath])
	assert.True(t, inspection.State.EverChanged)
}

func TestReplay_SaveWithoutInstances(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "none.yaml", "steps: []\n")
	_, err := f.app.Replay(context.Background(), path, app.ReplayOptions{SavePath: "/out/final.blob"})
	require.Error(t, err)
}

func TestReplay_DeleteReleasesEngines(t *testing.T) {
	f := newFixture(t)
	path := f.script(t, "delete.yaml", `
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: create, instance: b}
  - {action: render}
  - {action: delete, instance: a}
`)

	report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
	require.NoError(t, err)

	_, ok := report.Instance("a")
	assert.False(t, ok)
	require.Len(t, report.Instances, 1)
	assert.Zero(t, report.CacheSize)
	assert.Zero(t, f.factory.Live())
}

func TestReplay_EditBeforeFirstRenderChangesOutput(t *testing.T) {
	f := newFixture(t)
	checksums := make(map[uint64]string)
	for _, value := range []string{"0", "20", "80"} {
		path := f.script(t, "smooth"+value+".yaml", `
fps: 10
steps:
  - {action: create, instance: a, project: clip.mp4}
  - {action: edit, instance: a, param: Smoothness, value: `+value+`}
  - {action: render, frames: 3}
`)
		report, err := f.app.Replay(context.Background(), path, app.ReplayOptions{})
		require.NoError(t, err)
		a, _ := report.Instance("a")
		require.True(t, a.Loaded)

		prev, seen := checksums[a.Checksum]
		assert.False(t, seen, "smoothness %s renders like %s", value, prev)
		checksums[a.Checksum] = value
	}
}

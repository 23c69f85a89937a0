package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/cmd/steady/commands"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/build"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/engine/instance"
)

type mockApp struct {
	configured  *app.Options
	closed      bool
	configErr   error
	replayFunc  func(ctx context.Context, path string, opts app.ReplayOptions) (*app.Report, error)
	watchFunc   func(ctx context.Context, path string, opts app.ReplayOptions, onReport func(*app.Report)) error
	inspectFunc func(ctx context.Context, path string) (*app.Inspection, error)
	params      []app.ParamRow
}

func (m *mockApp) Configure(opts app.Options) error {
	m.configured = &opts
	return m.configErr
}

func (m *mockApp) Close(context.Context) error {
	m.closed = true
	return nil
}

func (m *mockApp) Replay(ctx context.Context, path string, opts app.ReplayOptions) (*app.Report, error) {
	if m.replayFunc != nil {
		return m.replayFunc(ctx, path, opts)
	}
	return &app.Report{}, nil
}

func (m *mockApp) Watch(ctx context.Context, path string, opts app.ReplayOptions, onReport func(*app.Report)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, path, opts, onReport)
	}
	return nil
}

func (m *mockApp) Inspect(ctx context.Context, path string) (*app.Inspection, error) {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx, path)
	}
	return &app.Inspection{}, nil
}

func (m *mockApp) Params() []app.ParamRow {
	return m.params
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cli := commands.New(m)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Replay(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ReplayOptions
		var capturedPath string
		mock := &mockApp{
			replayFunc: func(_ context.Context, path string, opts app.ReplayOptions) (*app.Report, error) {
				capturedPath = path
				capturedOpts = opts
				return &app.Report{
					Script:    "demo",
					CacheSize: 1,
					Instances: []app.InstanceReport{{
						Name:       "a",
						InstanceID: "0123456789abcdef",
						Key:        "k1",
						Status:     instance.StatusOK,
						Loaded:     true,
						Frames:     3,
						Checksum:   0xbeef,
					}},
				}, nil
			},
		}

		out, err := execute(t, mock, "--config", "custom.yaml", "--log-format", "json",
			"replay", "script.yaml", "-j", "2", "--save", "last.blob")
		require.NoError(t, err)

		assert.Equal(t, "script.yaml", capturedPath)
		assert.Equal(t, app.ReplayOptions{Concurrency: 2, SavePath: "last.blob"}, capturedOpts)
		require.NotNil(t, mock.configured)
		assert.Equal(t, app.Options{ConfigPath: "custom.yaml", LogFormat: "json"}, *mock.configured)
		assert.True(t, mock.closed)

		assert.Contains(t, out, "demo")
		assert.Contains(t, out, "engines cached: 1")
		assert.Contains(t, out, "01234567")
		assert.Contains(t, out, "000000000000beef")
	})

	t.Run("returns error on replay failure", func(t *testing.T) {
		mock := &mockApp{
			replayFunc: func(context.Context, string, app.ReplayOptions) (*app.Report, error) {
				return nil, errors.New("simulated error")
			},
		}
		_, err := execute(t, mock, "replay", "script.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("configuration failure skips the replay", func(t *testing.T) {
		mock := &mockApp{
			configErr: errors.New("bad config"),
			replayFunc: func(context.Context, string, app.ReplayOptions) (*app.Report, error) {
				panic("should not be called")
			},
		}
		_, err := execute(t, mock, "replay", "script.yaml")
		require.Error(t, err)
		assert.False(t, mock.closed)
	})

	t.Run("requires a script", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "replay")
		require.Error(t, err)
	})
}

func TestCommands_Watch(t *testing.T) {
	var reports int
	mock := &mockApp{
		watchFunc: func(_ context.Context, path string, _ app.ReplayOptions, onReport func(*app.Report)) error {
			assert.Equal(t, "script.yaml", path)
			onReport(&app.Report{Script: "first"})
			onReport(&app.Report{Script: "second"})
			reports = 2
			return nil
		},
	}

	out, err := execute(t, mock, "watch", "script.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, reports)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestCommands_Inspect(t *testing.T) {
	stored := domain.NewStoredParams("abc")
	stored.MediaFilePath = "/media/clip.mp4"
	stored.Values.Float[domain.ParamSmoothness] = 70

	mock := &mockApp{
		inspectFunc: func(_ context.Context, path string) (*app.Inspection, error) {
			return &app.Inspection{Path: path, Version: 1, Stored: *stored}, nil
		},
	}

	out, err := execute(t, mock, "inspect", "a.blob")
	require.NoError(t, err)
	assert.Contains(t, out, "format v1")
	assert.Contains(t, out, "/media/clip.mp4")
	assert.Contains(t, out, "Smoothness")
	assert.Contains(t, out, "70")
}

func TestCommands_InspectRecovered(t *testing.T) {
	mock := &mockApp{
		inspectFunc: func(context.Context, string) (*app.Inspection, error) {
			return &app.Inspection{Recovered: true, Stored: *domain.NewStoredParams("x")}, nil
		},
	}

	out, err := execute(t, mock, "inspect", "bad.blob")
	require.NoError(t, err)
	assert.Contains(t, out, "unreadable blob")
}

func TestCommands_Params(t *testing.T) {
	mock := &mockApp{params: []app.ParamRow{
		{Name: "Smoothness", Kind: "float", Range: "1..300", Default: "50"},
		{Name: "InstanceId", Kind: "string", Hidden: true},
	}}

	out, err := execute(t, mock, "params")
	require.NoError(t, err)
	assert.Contains(t, out, "Smoothness")
	assert.NotContains(t, out, "InstanceId")

	out, err = execute(t, mock, "params", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "InstanceId")
	assert.Nil(t, mock.configured)
}

func TestCommands_Version(t *testing.T) {
	version, commit, date := build.Version, build.Commit, build.Date
	t.Cleanup(func() { build.Version, build.Commit, build.Date = version, commit, date })

	build.Version = "v1.0.0"
	build.Commit = "abc1234"
	build.Date = "2026-01-01"

	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "steady version v1.0.0 (commit: abc1234, date: 2026-01-01)\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "steady version v1.0.0 (commit: abc1234, date: 2026-01-01)\n", out)

	out, err = execute(t, &mockApp{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0\n", out)
}

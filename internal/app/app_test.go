package app_test

import (
	"encoding/json"
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/adapters/codec"
	"go.trai.ch/steady/internal/adapters/simengine"
	"go.trai.ch/steady/internal/adapters/telemetry"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app     *app.App
	fs      afero.Fs
	factory *simengine.Factory
	loader  *mocks.MockConfigLoader
	watcher *mocks.MockWatcher
}

// newFixture builds an app over an in-memory filesystem holding a 4x2 clip at
// /proj/clip.mp4 with ten frames at 10 fps.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	fs := afero.NewMemMapFs()
	probe, err := json.Marshal(simengine.Probe{Width: 4, Height: 2, FPS: 10, FrameCount: 10, Motion: true})
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/proj/clip.mp4", probe, 0o644))

	c, err := codec.New()
	require.NoError(t, err)
	factory := simengine.NewFactory(fs, "/lens")
	loader := mocks.NewMockConfigLoader(ctrl)
	w := mocks.NewMockWatcher(ctrl)

	return &fixture{
		app:     app.New(loader, logger, telemetry.NewNoOpTracer(), factory, c, w, fs),
		fs:      fs,
		factory: factory,
		loader:  loader,
		watcher: w,
	}
}

// script writes content to /proj/name and returns its path.
func (f *fixture) script(t *testing.T, name, content string) string {
	t.Helper()
	p := path.Join("/proj", name)
	require.NoError(t, afero.WriteFile(f.fs, p, []byte(content), 0o644))
	return p
}

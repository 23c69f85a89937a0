package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/steady/internal/adapters/simengine"
	"go.trai.ch/steady/internal/adapters/telemetry"
	"go.trai.ch/steady/internal/app"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	fs := afero.NewMemMapFs()

	application := app.New(
		loader,
		logger,
		telemetry.NewNoOpTracer(),
		simengine.NewFactory(fs, ""),
		mocks.NewMockInstanceCodec(ctrl),
		mocks.NewMockWatcher(ctrl),
		fs,
	)
	return &app.Components{App: application, Logger: logger}, loader, logger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _ := newComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "steady version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	components, loader, logger := newComponents(t)
	loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"replay", "/missing.yaml"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}

// TestRun_ConfigError verifies that a configuration failure stops the command.
func TestRun_ConfigError(t *testing.T) {
	components, loader, logger := newComponents(t)
	loader.EXPECT().Load("/etc/steady.yaml").Return(domain.Config{}, domain.ErrConfigReadFailed)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	args := []string{"--config", "/etc/steady.yaml", "replay", "script.yaml"}
	exitCode := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

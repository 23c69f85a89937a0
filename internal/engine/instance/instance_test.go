package instance_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/steady/internal/adapters/codec"
	"go.trai.ch/steady/internal/adapters/hostparams"
	"go.trai.ch/steady/internal/adapters/simengine"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/core/ports/mocks"
	"go.trai.ch/steady/internal/engine/instance"
	"go.uber.org/mock/gomock"
)

const clipPath = "/media/clip.mp4"

type fixture struct {
	fs       afero.Fs
	factory  *simengine.Factory
	env      *instance.Env
	registry *instance.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	fs := afero.NewMemMapFs()
	probe, err := json.Marshal(simengine.Probe{Width: 4, Height: 2, FPS: 10, FrameCount: 10, Motion: true})
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, clipPath, probe, 0o644))

	c, err := codec.New()
	require.NoError(t, err)
	factory := simengine.NewFactory(fs, "/lens")

	env, err := instance.NewEnv(domain.DefaultConfig(), factory, c, fs, logger, tracer)
	require.NoError(t, err)

	return &fixture{fs: fs, factory: factory, env: env, registry: instance.NewRegistry(env)}
}

// create registers an instance whose host points at path.
func (f *fixture) create(t *testing.T, path string) (*instance.Handle, *hostparams.Host) {
	t.Helper()
	h, err := f.registry.Create()
	require.NoError(t, err)
	host := hostparams.New(hostparams.WithFPS(10))
	require.NoError(t, host.SetString(domain.ParamProjectPath, path))
	return h, host
}

func (f *fixture) base(t *testing.T, h *instance.Handle) *instance.Base {
	t.Helper()
	base, err := f.registry.Base(h)
	require.NoError(t, err)
	return base
}

func (f *fixture) access(t *testing.T, h *instance.Handle, host ports.ParameterAccess) *instance.StoredAccess {
	t.Helper()
	access, err := f.registry.Access(h, host)
	require.NoError(t, err)
	return access
}

// engineOf acquires the instance's engine and returns the reference implementation behind it.
func engineOf(t *testing.T, base *instance.Base, params ports.ParameterAccess) *simengine.Engine {
	t.Helper()
	shared, err := base.AcquireOrBuild(context.Background(), params, domain.Size{})
	require.NoError(t, err)
	defer func() { require.NoError(t, shared.Release()) }()

	var engine *simengine.Engine
	require.NoError(t, shared.View(func(e ports.Engine) error {
		engine = e.(*simengine.Engine)
		return nil
	}))
	return engine
}

func render(t *testing.T, base *instance.Base, params ports.ParameterAccess) []byte {
	t.Helper()
	size := domain.Size{Width: 2, Height: 1}
	buffers := &domain.Buffers{
		Input:  domain.BufferDescription{Size: size, Stride: 2, Source: domain.BufferSource{Kind: domain.BufferCPU, Data: []byte{0, 1}}},
		Output: domain.BufferDescription{Size: size, Stride: 2, Source: domain.BufferSource{Kind: domain.BufferCPU, Data: make([]byte, 2)}},
	}
	require.NoError(t, base.Render(context.Background(), params, 0, size, buffers))
	return buffers.Output.Source.Data
}

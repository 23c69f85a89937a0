package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/steady/internal/adapters/telemetry"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
}

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return rec, telemetry.NewOTelTracerFrom(provider, "test")
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_StartAttributes(t *testing.T) {
	rec, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "build_engine",
		ports.WithAttribute("cache.key", uint64(0xabc)),
		ports.WithAttribute("instance", 3),
	)
	span.SetAttribute("cache.hit", false)
	span.SetAttribute("path", "/media/clip.mp4")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "build_engine", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "0000000000000abc", attrs["cache.key"].AsString())
	assert.Equal(t, int64(3), attrs["instance"].AsInt64())
	assert.False(t, attrs["cache.hit"].AsBool())
	assert.Equal(t, "/media/clip.mp4", attrs["path"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	rec, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "render")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	rec, tracer := newRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "acquire_engine")
	_, child := tracer.Start(ctx, "build_engine")
	child.End()
	parent.End()

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestInstall_Disabled(t *testing.T) {
	shutdown := telemetry.Install(domain.TelemetryConfig{})
	require.NoError(t, shutdown(context.Background()))
}

func TestInstall_Enabled(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	shutdown := telemetry.Install(domain.TelemetryConfig{Enabled: true, ServiceName: "steady-test"},
		sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "replay")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "replay", ended[0].Name())
}

package ports

import "go.trai.ch/steady/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// InternalKeyframes reports which quantities an engine animates on its own.
type InternalKeyframes interface {
	IsKeyframedInternally(tag domain.KeyframeTag) bool
}

// KeyframeProvider lets an engine pull externally keyframed values while rendering.
// ok is false when the engine should fall back to its own value.
type KeyframeProvider interface {
	ValueAt(internal InternalKeyframes, tag domain.KeyframeTag, timestampUs int64) (value float64, ok bool)
}

// LensProfileDB is a lens profile database that engines can share.
type LensProfileDB interface {
	Loaded() bool
}

// Engine is one loaded project or clip with its smoothing, zooming and
// undistortion state. It is expensive to construct and safe to share.
// Mutating calls must not run concurrently with each other; ProcessPixels may
// run concurrently with other ProcessPixels calls.
type Engine interface {
	InternalKeyframes

	// LoadVideo opens a media file directly.
	LoadVideo(path string) (domain.ClipInfo, error)
	// ImportProject loads project data; sourcePath resolves relative media references.
	ImportProject(data []byte, sourcePath string) error
	// ExportProject serializes the loaded project including motion data.
	ExportProject() ([]byte, error)
	// LoadLensProfile applies a lens profile document.
	LoadLensProfile(data []byte) error

	LensProfileDB() LensProfileDB
	SetLensProfileDB(db LensProfileDB)

	Clip() domain.ClipInfo
	ProjectDefaults() domain.ProjectDefaults
	NativeKeyframes() map[domain.KeyframeTag][]domain.Keyframe
	// SourceTimestamp maps a ramped timestamp back to the source clip timeline.
	SourceTimestamp(rampedUs int64) int64

	SetInterpolation(i domain.Interpolation)
	SetIntegrationMethod(method int32)
	SetInputRotation(degrees float64)
	SetFovOverview(on bool)
	SetFramebufferInverted(inverted bool)
	DisableLensStretch(adjustSize bool)
	SetOutputSize(size domain.Size)
	SetKeyframeProvider(p KeyframeProvider)
	CalculateRampedTimestamps(inverse bool)

	InvalidateSmoothing()
	InvalidateZooming()
	InvalidateUndistortion()
	// RecomputeBlocking recomputes every stale stage before returning.
	RecomputeBlocking() error

	ProcessPixels(timestampUs int64, buffers *domain.Buffers) error

	// Close releases resources once the last holder drops the engine.
	Close() error
}

// EngineFactory constructs empty engines.
type EngineFactory interface {
	New() Engine
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPath is returned when no project or media path is configured.
	// It is a "not ready" state rather than a failure.
	ErrEmptyPath = zerr.New("project path is empty")

	// ErrLoadFailed is returned when the project or media file could not be loaded.
	ErrLoadFailed = zerr.New("failed to load project")

	// ErrParameterAccessFailed is returned when the host parameter system rejects a read or write.
	ErrParameterAccessFailed = zerr.New("parameter access failed")

	// ErrDeserializeFailed is returned when a persisted instance blob cannot be decoded.
	ErrDeserializeFailed = zerr.New("failed to deserialize instance")

	// ErrNoEngineBound is returned when an engine operation is requested but no engine is cached.
	ErrNoEngineBound = zerr.New("no engine bound to instance")

	// ErrUnsupportedBuffer is returned when a buffer source kind cannot be processed.
	ErrUnsupportedBuffer = zerr.New("unsupported buffer source")

	// ErrBufferSizeMismatch is returned when input and output buffers disagree in size.
	ErrBufferSizeMismatch = zerr.New("input and output buffer sizes differ")

	// ErrStagesPending is returned when pixels are requested before a stale stage was recomputed.
	ErrStagesPending = zerr.New("computation stages pending recompute")

	// ErrInvalidTime is returned when a time reference carries neither a frame nor a timestamp.
	ErrInvalidTime = zerr.New("time reference has no value")

	// ErrUnknownTag is returned when a keyframe tag name cannot be resolved.
	ErrUnknownTag = zerr.New("unknown keyframe tag")

	// ErrUnknownParam is returned when a parameter name cannot be resolved.
	ErrUnknownParam = zerr.New("unknown parameter")

	// ErrParamTypeMismatch is returned when a parameter is accessed with the wrong value type.
	ErrParamTypeMismatch = zerr.New("parameter type mismatch")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrInvalidConfig is returned when the configuration contains out-of-range values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrScriptReadFailed is returned when a replay script cannot be read or parsed.
	ErrScriptReadFailed = zerr.New("failed to read replay script")

	// ErrUnknownInstance is returned when a replay step references an instance that does not exist.
	ErrUnknownInstance = zerr.New("unknown instance")

	// ErrUnknownStep is returned when a replay step has an unrecognized action.
	ErrUnknownStep = zerr.New("unknown replay step")
)

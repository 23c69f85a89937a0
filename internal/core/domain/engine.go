package domain

// Size is a pixel dimension pair.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ClipInfo describes the clip an engine has loaded.
type ClipInfo struct {
	Size                  Size
	OutputSize            Size
	PresetOutputSize      *Size
	FrameCount            int
	FPS                   float64
	DurationMs            float64
	Rotation              int
	HasMotion             bool
	HasAccurateTimestamps bool
	PresetName            string
	LensName              string
}

// Loaded reports whether the clip has a usable duration.
func (c ClipInfo) Loaded() bool {
	return c.DurationMs > 0
}

// HorizonLock holds the horizon-lock settings of a project.
type HorizonLock struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount"`
	Roll    float64 `json:"roll"`
}

// ProjectDefaults are the adjustable values saved in a project, in engine units.
type ProjectDefaults struct {
	Fov               float64       `json:"fov"`
	Smoothness        float64       `json:"smoothness"`
	MaxZoom           float64       `json:"max_zoom"`
	LensCorrection    float64       `json:"lens_correction"`
	HorizonLock       HorizonLock   `json:"horizon_lock"`
	VideoSpeed        float64       `json:"video_speed"`
	AdditionalYaw     float64       `json:"additional_yaw"`
	AdditionalPitch   float64       `json:"additional_pitch"`
	VideoRotation     float64       `json:"video_rotation"`
	IntegrationMethod int32         `json:"integration_method"`
	Interpolation     Interpolation `json:"interpolation"`
}

// BufferKind identifies where pixel data lives.
type BufferKind uint8

// Buffer source kinds.
const (
	BufferCPU BufferKind = iota
	BufferCUDA
	BufferMetal
	BufferOpenCL
	BufferWGPU
	BufferOpenGL
	BufferD3D11
)

// String returns the kind name.
func (k BufferKind) String() string {
	switch k {
	case BufferCPU:
		return "cpu"
	case BufferCUDA:
		return "cuda"
	case BufferMetal:
		return "metal"
	case BufferOpenCL:
		return "opencl"
	case BufferWGPU:
		return "wgpu"
	case BufferOpenGL:
		return "opengl"
	case BufferD3D11:
		return "d3d11"
	default:
		return "unknown"
	}
}

// BufferSource is either CPU memory or an opaque GPU handle with its queue.
type BufferSource struct {
	Kind   BufferKind
	Data   []byte
	Handle uintptr
	Queue  uintptr
}

// Rect is a sub-region of a buffer.
type Rect struct {
	X, Y, Width, Height int
}

// BufferDescription is the uniform handoff between host buffers and the engine.
type BufferDescription struct {
	Size        Size
	Stride      int
	Rect        *Rect
	Source      BufferSource
	Rotation    *float32
	TextureCopy bool
}

// Buffers pairs the input and output of one render call.
type Buffers struct {
	Input  BufferDescription
	Output BufferDescription
}

package simengine

import (
	"go.trai.ch/steady/internal/core/domain"
)

// Probe is the JSON document a media file contains for the reference engine.
type Probe struct {
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	FPS                float64 `json:"fps"`
	FrameCount         int     `json:"frame_count"`
	Rotation           int     `json:"rotation,omitempty"`
	Motion             bool    `json:"motion,omitempty"`
	AccurateTimestamps bool    `json:"accurate_timestamps,omitempty"`
}

// Project is a project or preset file.
type Project struct {
	Version int `json:"version"`
	// Preset marks a document that only carries settings.
	Preset bool   `json:"preset,omitempty"`
	Name   string `json:"name,omitempty"`
	// Media references the clip, relative to the project file.
	Media     string                                   `json:"media,omitempty"`
	Clip      *Probe                                   `json:"clip,omitempty"`
	Output    *domain.Size                             `json:"output_size,omitempty"`
	Defaults  *domain.ProjectDefaults                  `json:"stabilization,omitempty"`
	Keyframes map[domain.KeyframeTag][]domain.Keyframe `json:"keyframes,omitempty"`
	Lens      *LensProfile                             `json:"lens,omitempty"`
}

// LensProfile is a lens calibration document.
type LensProfile struct {
	Name         string       `json:"name"`
	InputStretch float64      `json:"input_stretch,omitempty"`
	OutputSize   *domain.Size `json:"output_size,omitempty"`
	Coefficients []float64    `json:"coefficients,omitempty"`
}

// DefaultProjectDefaults are the settings of a clip opened without a project.
func DefaultProjectDefaults() domain.ProjectDefaults {
	return domain.ProjectDefaults{
		Fov:               1,
		Smoothness:        0.5,
		MaxZoom:           130,
		LensCorrection:    1,
		VideoSpeed:        1,
		IntegrationMethod: 2,
	}
}

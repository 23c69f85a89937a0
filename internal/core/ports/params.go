package ports

import "go.trai.ch/steady/internal/core/domain"

// ParameterAccess reads and writes host parameters.
// Implementations report host rejections as errors; callers wrap them as
// domain.ErrParameterAccessFailed.
//
//go:generate go run go.uber.org/mock/mockgen -source=params.go -destination=mocks/mock_params.go -package=mocks
type ParameterAccess interface {
	GetString(p domain.Param) (string, error)
	SetString(p domain.Param, value string) error
	GetBool(p domain.Param) (bool, error)
	SetBool(p domain.Param, value bool) error
	GetFloat(p domain.Param) (float64, error)
	SetFloat(p domain.Param, value float64) error
	GetInt(p domain.Param) (int32, error)
	SetInt(p domain.Param, value int32) error

	// GetFloatAt returns the value of a possibly keyframed parameter at t.
	GetFloatAt(p domain.Param, t domain.TimeRef) (float64, error)
	// GetBoolAt returns the value of a possibly keyframed checkbox at t.
	GetBoolAt(p domain.Param, t domain.TimeRef) (bool, error)
	// SetFloatAt adds or replaces a host keyframe.
	SetFloatAt(p domain.Param, t domain.TimeRef, value float64) error

	SetLabel(p domain.Param, label string) error
	SetHint(p domain.Param, hint string) error
	SetEnabled(p domain.Param, enabled bool) error

	// IsKeyframed reports whether the host animates p.
	IsKeyframed(p domain.Param) bool
	// Keyframes returns the host keyframes of p in host time units.
	Keyframes(p domain.Param) []domain.HostKeyframe
	// ClearKeyframes removes every host keyframe of p.
	ClearKeyframes(p domain.Param) error
}

package domain

import "strings"

// Stage is a set of engine computation stages.
// Each stage depends on the ones before it: smoothing, then zooming, then undistortion.
type Stage uint8

// Engine computation stages.
const (
	StageSmoothing Stage = 1 << iota
	StageZooming
	StageUndistortion

	StageNone Stage = 0
	StageAll        = StageSmoothing | StageZooming | StageUndistortion
)

// Has reports whether s contains every stage in o.
func (s Stage) Has(o Stage) bool {
	return s&o == o && o != 0
}

// Downstream returns s plus every stage that depends on it.
func (s Stage) Downstream() Stage {
	switch {
	case s&StageSmoothing != 0:
		return StageAll
	case s&StageZooming != 0:
		return StageZooming | StageUndistortion
	default:
		return s
	}
}

// String lists the stages in dependency order.
func (s Stage) String() string {
	if s == StageNone {
		return "none"
	}
	var parts []string
	if s&StageSmoothing != 0 {
		parts = append(parts, "smoothing")
	}
	if s&StageZooming != 0 {
		parts = append(parts, "zooming")
	}
	if s&StageUndistortion != 0 {
		parts = append(parts, "undistortion")
	}
	return strings.Join(parts, "+")
}

// InvalidatedStages returns the stages a user edit of p makes stale.
func InvalidatedStages(p Param) Stage {
	switch p {
	case ParamSmoothness, ParamZoomLimit, ParamHorizonLockAmount, ParamHorizonLockRoll,
		ParamAdditionalPitch, ParamAdditionalYaw, ParamRecalculateKeyframes, ParamIntegrationMethod:
		return StageAll
	case ParamLensCorrectionStrength, ParamRotation:
		return StageZooming | StageUndistortion
	case ParamFov, ParamInputRotation, ParamVideoSpeed, ParamUseEngineKeyframes, ParamToggleOverview:
		return StageUndistortion
	case ParamOutputWidth, ParamOutputHeight, ParamOutputSizeSwap, ParamOutputSizeToTimeline:
		return StageZooming
	default:
		return StageNone
	}
}

// AffectsSpeedRamp reports whether an edit of p requires recomputing ramped timestamps.
func AffectsSpeedRamp(p Param) bool {
	return p == ParamVideoSpeed || p == ParamUseEngineKeyframes || p == ParamRecalculateKeyframes
}

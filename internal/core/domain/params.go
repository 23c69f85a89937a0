package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Param identifies a host parameter exposed by the plugin.
type Param uint8

// Host parameters. The zero value is reserved for "no parameter".
const (
	ParamInstanceID Param = iota + 1
	ParamProjectData
	ParamEmbeddedLensProfile
	ParamEmbeddedPreset
	ParamProjectPath
	ParamBrowse
	ParamLoadLens
	ParamReloadProject
	ParamStatus
	ParamFov
	ParamSmoothness
	ParamZoomLimit
	ParamLensCorrectionStrength
	ParamHorizonLockAmount
	ParamHorizonLockRoll
	ParamAdditionalPitch
	ParamAdditionalYaw
	ParamInputRotation
	ParamRotation
	ParamVideoSpeed
	ParamDisableStretch
	ParamIntegrationMethod
	ParamUseEngineKeyframes
	ParamRecalculateKeyframes
	ParamOutputWidth
	ParamOutputHeight
	ParamOutputSizeToTimeline
	ParamOutputSizeSwap
	ParamToggleOverview
	ParamDontDrawOutside
	ParamIncludeProjectData
	ParamLoadedProject
	ParamLoadedPreset
	ParamLoadedLens
	ParamInterpolation

	paramSentinel
)

var paramNames = [...]string{
	ParamInstanceID:             "InstanceId",
	ParamProjectData:            "ProjectData",
	ParamEmbeddedLensProfile:    "EmbeddedLensProfile",
	ParamEmbeddedPreset:         "EmbeddedPreset",
	ParamProjectPath:            "ProjectPath",
	ParamBrowse:                 "Browse",
	ParamLoadLens:               "LoadLens",
	ParamReloadProject:          "ReloadProject",
	ParamStatus:                 "Status",
	ParamFov:                    "Fov",
	ParamSmoothness:             "Smoothness",
	ParamZoomLimit:              "ZoomLimit",
	ParamLensCorrectionStrength: "LensCorrectionStrength",
	ParamHorizonLockAmount:      "HorizonLockAmount",
	ParamHorizonLockRoll:        "HorizonLockRoll",
	ParamAdditionalPitch:        "AdditionalPitch",
	ParamAdditionalYaw:          "AdditionalYaw",
	ParamInputRotation:          "InputRotation",
	ParamRotation:               "Rotation",
	ParamVideoSpeed:             "VideoSpeed",
	ParamDisableStretch:         "DisableStretch",
	ParamIntegrationMethod:      "IntegrationMethod",
	ParamUseEngineKeyframes:     "UseEngineKeyframes",
	ParamRecalculateKeyframes:   "RecalculateKeyframes",
	ParamOutputWidth:            "OutputWidth",
	ParamOutputHeight:           "OutputHeight",
	ParamOutputSizeToTimeline:   "OutputSizeToTimeline",
	ParamOutputSizeSwap:         "OutputSizeSwap",
	ParamToggleOverview:         "ToggleOverview",
	ParamDontDrawOutside:        "DontDrawOutside",
	ParamIncludeProjectData:     "IncludeProjectData",
	ParamLoadedProject:          "LoadedProject",
	ParamLoadedPreset:           "LoadedPreset",
	ParamLoadedLens:             "LoadedLens",
	ParamInterpolation:          "Interpolation",
}

var paramsByName = func() map[string]Param {
	m := make(map[string]Param, len(paramNames))
	for p := Param(1); p < paramSentinel; p++ {
		m[paramNames[p]] = p
	}
	return m
}()

// String returns the stable identifier of the parameter.
func (p Param) String() string {
	if p == 0 || p >= paramSentinel {
		return "Unknown"
	}
	return paramNames[p]
}

// Valid reports whether p names a known parameter.
func (p Param) Valid() bool {
	return p > 0 && p < paramSentinel
}

// MarshalText implements encoding.TextMarshaler so params can key JSON maps.
func (p Param) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.Join(ErrUnknownParam, zerr.With(errors.New("parameter out of range"), "param", int(p)))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Param) UnmarshalText(text []byte) error {
	parsed, err := ParseParam(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseParam resolves a parameter by its identifier.
func ParseParam(name string) (Param, error) {
	p, ok := paramsByName[name]
	if !ok {
		return 0, errors.Join(ErrUnknownParam, zerr.With(errors.New("no parameter with this name"), "param", name))
	}
	return p, nil
}

// AllParams returns every known parameter in declaration order.
func AllParams() []Param {
	out := make([]Param, 0, int(paramSentinel)-1)
	for p := Param(1); p < paramSentinel; p++ {
		out = append(out, p)
	}
	return out
}

// ForksIdentity reports whether a user edit of p changes computed results,
// and therefore must not perturb a cache entry shared with another instance.
func ForksIdentity(p Param) bool {
	switch p {
	case ParamFov, ParamSmoothness, ParamZoomLimit, ParamLensCorrectionStrength,
		ParamHorizonLockAmount, ParamHorizonLockRoll,
		ParamAdditionalPitch, ParamAdditionalYaw,
		ParamRotation, ParamInputRotation, ParamVideoSpeed, ParamIntegrationMethod,
		ParamUseEngineKeyframes, ParamRecalculateKeyframes:
		return true
	default:
		return false
	}
}

// IsOutputSize reports whether p belongs to the output-size group.
func IsOutputSize(p Param) bool {
	switch p {
	case ParamOutputWidth, ParamOutputHeight, ParamOutputSizeSwap, ParamOutputSizeToTimeline:
		return true
	default:
		return false
	}
}

// AdjustableParams are enabled only while a project is loaded.
var AdjustableParams = []Param{
	ParamFov,
	ParamSmoothness,
	ParamZoomLimit,
	ParamLensCorrectionStrength,
	ParamHorizonLockAmount,
	ParamHorizonLockRoll,
	ParamAdditionalPitch,
	ParamAdditionalYaw,
	ParamRotation,
	ParamVideoSpeed,
	ParamDisableStretch,
	ParamIntegrationMethod,
	ParamToggleOverview,
	ParamReloadProject,
	ParamOutputWidth,
	ParamOutputHeight,
	ParamOutputSizeToTimeline,
	ParamOutputSizeSwap,
}

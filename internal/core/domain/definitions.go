package domain

// ParamKind is the value type a host stores for a parameter.
type ParamKind uint8

const (
	// KindString is a visible or hidden text value.
	KindString ParamKind = iota
	// KindFloat is a slider value.
	KindFloat
	// KindBool is a checkbox value.
	KindBool
	// KindInt is a select value holding an option index.
	KindInt
	// KindButton has no value; it only produces change events.
	KindButton
)

// String returns the kind name.
func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// ParamDef describes how a host presents a parameter.
type ParamDef struct {
	Param   Param
	Kind    ParamKind
	Label   string
	Hint    string
	Hidden  bool
	Min     float64
	Max     float64
	Float   float64
	Bool    bool
	Int     int32
	String  string
	Options []string
}

// IntegrationMethods are the options of ParamIntegrationMethod.
var IntegrationMethods = []string{
	"None", "Complementary", "VQF", "Simple gyro", "Simple gyro + accel", "Mahony", "Madgwick",
}

// Interpolation selects the pixel resampling kernel.
type Interpolation int32

// Interpolation kernels, in host option order.
const (
	InterpolationLanczos4 Interpolation = iota
	InterpolationRobidouxSharp
	InterpolationBilinear
	InterpolationBicubic
	InterpolationRobidoux
	InterpolationMitchell
	InterpolationCatmullRom
)

// InterpolationNames are the options of ParamInterpolation.
var InterpolationNames = []string{
	"Lanczos4", "RobidouxSharp", "Bilinear", "Bicubic", "Robidoux", "Mitchell", "CatmullRom",
}

// InterpolationFromIndex maps a host option index to a kernel, defaulting to Lanczos4.
func InterpolationFromIndex(i int32) Interpolation {
	if i < 0 || int(i) >= len(InterpolationNames) {
		return InterpolationLanczos4
	}
	return Interpolation(i)
}

// String returns the kernel name.
func (i Interpolation) String() string {
	if i < 0 || int(i) >= len(InterpolationNames) {
		return InterpolationNames[0]
	}
	return InterpolationNames[i]
}

// Definitions returns the parameter definitions in host presentation order.
func Definitions() []ParamDef {
	return []ParamDef{
		{Param: ParamInstanceID, Kind: KindString, Hidden: true},
		{Param: ParamProjectPath, Kind: KindString, Hidden: true},
		{Param: ParamProjectData, Kind: KindString, Hidden: true},
		{Param: ParamEmbeddedLensProfile, Kind: KindString, Hidden: true},
		{Param: ParamEmbeddedPreset, Kind: KindString, Hidden: true},
		{Param: ParamStatus, Kind: KindString, Label: "Status", Hint: "Status"},
		{Param: ParamBrowse, Kind: KindButton, Label: "Browse", Hint: "Browse for the project file"},
		{Param: ParamLoadLens, Kind: KindButton, Label: "Load preset/lens profile", Hint: "Browse for the lens profile or a preset"},
		{Param: ParamReloadProject, Kind: KindButton, Label: "Reload project", Hint: "Reload currently loaded project"},
		{Param: ParamSmoothness, Kind: KindFloat, Label: "Smoothness", Hint: "Smoothness", Min: 1, Max: 300, Float: 50},
		{Param: ParamZoomLimit, Kind: KindFloat, Label: "Zoom limit", Hint: "Zoom limit", Min: 51, Max: 300, Float: 130},
		{Param: ParamLensCorrectionStrength, Kind: KindFloat, Label: "Lens correction", Hint: "Lens correction", Min: 0, Max: 100, Float: 100},
		{Param: ParamHorizonLockAmount, Kind: KindFloat, Label: "Horizon lock", Hint: "Horizon lock amount", Min: 0, Max: 100, Float: 0},
		{Param: ParamHorizonLockRoll, Kind: KindFloat, Label: "Horizon roll", Hint: "Horizon lock roll adjustment", Min: -100, Max: 100, Float: 0},
		{Param: ParamAdditionalPitch, Kind: KindFloat, Label: "Additional pitch", Hint: "Additional pitch rotation", Min: -180, Max: 180, Float: 0},
		{Param: ParamAdditionalYaw, Kind: KindFloat, Label: "Additional yaw", Hint: "Additional yaw rotation", Min: -180, Max: 180, Float: 0},
		{Param: ParamRotation, Kind: KindFloat, Label: "Video rotation", Hint: "Video rotation", Min: -360, Max: 360, Float: 0},
		{Param: ParamInputRotation, Kind: KindFloat, Label: "Input rotation", Hint: "Input rotation", Min: -360, Max: 360, Float: 0},
		{Param: ParamFov, Kind: KindFloat, Label: "FOV", Hint: "FOV", Min: 0.1, Max: 3, Float: 1},
		{Param: ParamVideoSpeed, Kind: KindFloat, Label: "Video speed", Hint: "Change video speed or keyframe it", Min: 0.0001, Max: 1000, Float: 100},
		{Param: ParamDisableStretch, Kind: KindBool, Label: "Disable stretch", Hint: "Disable the lens profile input stretch"},
		{Param: ParamIntegrationMethod, Kind: KindInt, Label: "Integration method", Hint: "IMU integration method", Options: IntegrationMethods, Int: 2},
		{Param: ParamUseEngineKeyframes, Kind: KindBool, Label: "Use project keyframes", Hint: "Use the project's keyframes instead of the host ones"},
		{Param: ParamRecalculateKeyframes, Kind: KindButton, Label: "Recalculate keyframes", Hint: "Recalculate keyframes after adjusting the splines"},
		{Param: ParamOutputWidth, Kind: KindFloat, Label: "Width", Hint: "Width", Min: 1, Max: 16384, Float: 3840},
		{Param: ParamOutputHeight, Kind: KindFloat, Label: "Height", Hint: "Height", Min: 1, Max: 16384, Float: 2160},
		{Param: ParamOutputSizeToTimeline, Kind: KindButton, Label: "Fit to timeline", Hint: "Set the output size to the timeline dimensions"},
		{Param: ParamOutputSizeSwap, Kind: KindButton, Label: "Swap", Hint: "Swap width and height"},
		{Param: ParamInterpolation, Kind: KindInt, Label: "Interpolation", Hint: "Scaling interpolation method", Options: InterpolationNames},
		{Param: ParamToggleOverview, Kind: KindBool, Label: "Stabilization overview", Hint: "Zooms out the view to see the stabilization results"},
		{Param: ParamDontDrawOutside, Kind: KindBool, Label: "Don't draw outside source clip", Hint: "Draw inside the source clip when aspect ratios differ"},
		{Param: ParamIncludeProjectData, Kind: KindBool, Label: "Embed project data", Hint: "Embed the project data including motion data in the host project"},
		{Param: ParamLoadedProject, Kind: KindString, Label: "Loaded project", Hint: "Loaded project or video file"},
		{Param: ParamLoadedPreset, Kind: KindString, Label: "Loaded preset", Hint: "Loaded preset"},
		{Param: ParamLoadedLens, Kind: KindString, Label: "Loaded lens profile", Hint: "Loaded lens profile"},
	}
}

// Definition returns the definition of p.
func Definition(p Param) (ParamDef, bool) {
	for _, d := range Definitions() {
		if d.Param == p {
			return d, true
		}
	}
	return ParamDef{}, false
}

package domain

// Default capacities of the engine caches.
const (
	DefaultGlobalCapacity   = 8
	DefaultInstanceCapacity = 20
)

// Config is the resolved runtime configuration.
type Config struct {
	Cache     CacheConfig
	Keyframes KeyframeConfig
	Instance  InstanceConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// CacheConfig sizes the engine caches.
type CacheConfig struct {
	GlobalCapacity   int
	InstanceCapacity int
	// StrictConstruction builds each missing key exactly once instead of
	// letting concurrent callers race and discarding the losers.
	StrictConstruction bool
}

// KeyframeConfig controls keyframe baking.
type KeyframeConfig struct {
	// Dense samples keyframed parameters on every frame instead of only at host keyframes.
	Dense bool
}

// InstanceConfig holds per-host tweaks applied to every plugin instance.
type InstanceConfig struct {
	AnamorphicAdjustSize   bool
	AlwaysSetInputRotation bool
	FramebufferInverted    bool
}

// LogFormat selects the log output encoding.
type LogFormat string

// Log formats.
const (
	LogFormatAuto   LogFormat = "auto"
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// LogConfig controls logging.
type LogConfig struct {
	Format LogFormat
}

// TelemetryConfig controls tracing.
type TelemetryConfig struct {
	Enabled     bool
	ServiceName string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			GlobalCapacity:   DefaultGlobalCapacity,
			InstanceCapacity: DefaultInstanceCapacity,
		},
		Keyframes: KeyframeConfig{Dense: true},
		Instance:  InstanceConfig{AnamorphicAdjustSize: true},
		Log:       LogConfig{Format: LogFormatAuto},
		Telemetry: TelemetryConfig{ServiceName: "steady"},
	}
}

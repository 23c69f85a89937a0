package config

// File is the structure of steady.yaml. Absent fields keep their defaults.
type File struct {
	Cache     *CacheDTO     `yaml:"cache"`
	Keyframes *KeyframesDTO `yaml:"keyframes"`
	Instance  *InstanceDTO  `yaml:"instance"`
	Log       *LogDTO       `yaml:"log"`
	Telemetry *TelemetryDTO `yaml:"telemetry"`
}

// CacheDTO sizes the engine caches.
type CacheDTO struct {
	GlobalCapacity     *int  `yaml:"global_capacity"`
	InstanceCapacity   *int  `yaml:"instance_capacity"`
	StrictConstruction *bool `yaml:"strict_construction"`
}

// KeyframesDTO controls keyframe baking.
type KeyframesDTO struct {
	Dense *bool `yaml:"dense"`
}

// InstanceDTO holds per-host tweaks.
type InstanceDTO struct {
	AnamorphicAdjustSize   *bool `yaml:"anamorphic_adjust_size"`
	AlwaysSetInputRotation *bool `yaml:"always_set_input_rotation"`
	FramebufferInverted    *bool `yaml:"framebuffer_inverted"`
}

// LogDTO controls logging.
type LogDTO struct {
	Format *string `yaml:"format"`
}

// TelemetryDTO controls tracing.
type TelemetryDTO struct {
	Enabled     *bool   `yaml:"enabled"`
	ServiceName *string `yaml:"service_name"`
}

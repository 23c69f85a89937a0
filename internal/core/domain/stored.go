package domain

// StoredParamsVersion is the current version of the StoredParams layout.
const StoredParamsVersion = 1

// ParamValues is a snapshot of host parameter values by type.
type ParamValues struct {
	Float  map[Param]float64 `json:"float,omitempty"`
	Bool   map[Param]bool    `json:"bool,omitempty"`
	String map[Param]string  `json:"string,omitempty"`
	Int    map[Param]int32   `json:"int,omitempty"`
}

// NewParamValues returns an empty snapshot.
func NewParamValues() ParamValues {
	return ParamValues{
		Float:  make(map[Param]float64),
		Bool:   make(map[Param]bool),
		String: make(map[Param]string),
		Int:    make(map[Param]int32),
	}
}

// Delete removes p from every map.
func (v *ParamValues) Delete(p Param) {
	delete(v.Float, p)
	delete(v.Bool, p)
	delete(v.String, p)
	delete(v.Int, p)
}

// Len returns the number of stored values.
func (v ParamValues) Len() int {
	return len(v.Float) + len(v.Bool) + len(v.String) + len(v.Int)
}

// StoredParams is the durable part of a plugin instance.
// Engines are never part of it; they are rebuilt from these values.
type StoredParams struct {
	Version         int            `json:"version"`
	MediaFilePath   string         `json:"media_file_path"`
	InstanceID      string         `json:"instance_id"`
	SequenceSize    Size           `json:"sequence_size"`
	MediaFPS        float64        `json:"media_fps"`
	Pending         ParamValues    `json:"pending"`
	KeyframedParams map[Param]bool `json:"keyframed_params,omitempty"`
	Values          ParamValues    `json:"values"`
}

// NewStoredParams returns the default durable state for instanceID.
func NewStoredParams(instanceID string) *StoredParams {
	s := &StoredParams{
		Version:         StoredParamsVersion,
		InstanceID:      instanceID,
		Pending:         NewParamValues(),
		KeyframedParams: make(map[Param]bool),
		Values:          NewParamValues(),
	}
	s.Pending.String[ParamStatus] = "---"
	return s
}

// Normalize fills maps a decoder may have left nil.
func (s *StoredParams) Normalize() {
	if s.Version == 0 {
		s.Version = StoredParamsVersion
	}
	fill := func(v *ParamValues) {
		if v.Float == nil {
			v.Float = make(map[Param]float64)
		}
		if v.Bool == nil {
			v.Bool = make(map[Param]bool)
		}
		if v.String == nil {
			v.String = make(map[Param]string)
		}
		if v.Int == nil {
			v.Int = make(map[Param]int32)
		}
	}
	fill(&s.Pending)
	fill(&s.Values)
	if s.KeyframedParams == nil {
		s.KeyframedParams = make(map[Param]bool)
	}
}

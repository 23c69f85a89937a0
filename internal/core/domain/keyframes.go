package domain

import (
	"errors"
	"slices"
	"sort"

	"go.trai.ch/zerr"
)

// KeyframeTag identifies a keyframable engine quantity.
type KeyframeTag uint8

// Keyframable engine quantities.
const (
	TagFov KeyframeTag = iota + 1
	TagMaxZoom
	TagSmoothness
	TagLensCorrectionStrength
	TagLockHorizonAmount
	TagLockHorizonRoll
	TagVideoSpeed
	TagVideoRotation
	TagAdditionalRotationX
	TagAdditionalRotationY
)

var tagNames = map[KeyframeTag]string{
	TagFov:                    "Fov",
	TagMaxZoom:                "MaxZoom",
	TagSmoothness:             "Smoothness",
	TagLensCorrectionStrength: "LensCorrectionStrength",
	TagLockHorizonAmount:      "LockHorizonAmount",
	TagLockHorizonRoll:        "LockHorizonRoll",
	TagVideoSpeed:             "VideoSpeed",
	TagVideoRotation:          "VideoRotation",
	TagAdditionalRotationX:    "AdditionalRotationX",
	TagAdditionalRotationY:    "AdditionalRotationY",
}

// String returns the tag name.
func (t KeyframeTag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t KeyframeTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *KeyframeTag) UnmarshalText(text []byte) error {
	for tag, name := range tagNames {
		if name == string(text) {
			*t = tag
			return nil
		}
	}
	return errors.Join(ErrUnknownTag, zerr.With(errors.New("unknown keyframe tag"), "tag", string(text)))
}

// KeyframeBinding maps a host parameter onto an engine keyframe tag.
// Host values are divided by Scale to obtain engine units.
type KeyframeBinding struct {
	Tag   KeyframeTag
	Param Param
	Scale float64
}

// KeyframeBindings lists every baked parameter.
var KeyframeBindings = []KeyframeBinding{
	{Tag: TagFov, Param: ParamFov, Scale: 1},
	{Tag: TagMaxZoom, Param: ParamZoomLimit, Scale: 1},
	{Tag: TagSmoothness, Param: ParamSmoothness, Scale: 100},
	{Tag: TagLensCorrectionStrength, Param: ParamLensCorrectionStrength, Scale: 100},
	{Tag: TagLockHorizonAmount, Param: ParamHorizonLockAmount, Scale: 1},
	{Tag: TagLockHorizonRoll, Param: ParamHorizonLockRoll, Scale: 1},
	{Tag: TagVideoSpeed, Param: ParamVideoSpeed, Scale: 100},
	{Tag: TagVideoRotation, Param: ParamRotation, Scale: 1},
	{Tag: TagAdditionalRotationX, Param: ParamAdditionalYaw, Scale: 1},
	{Tag: TagAdditionalRotationY, Param: ParamAdditionalPitch, Scale: 1},
}

// BindingForTag returns the binding of tag.
func BindingForTag(tag KeyframeTag) (KeyframeBinding, bool) {
	for _, b := range KeyframeBindings {
		if b.Tag == tag {
			return b, true
		}
	}
	return KeyframeBinding{}, false
}

// Keyframe is one sample of a baked series.
type Keyframe struct {
	TimestampUs int64   `json:"ts"`
	Value       float64 `json:"v"`
}

// HostKeyframe is a keyframe as reported by the host, in host time units.
type HostKeyframe struct {
	Time  TimeRef `json:"time"`
	Value float64 `json:"value"`
}

// KeyframeTable is a time-indexed set of series, one per tag.
// Timestamps are microseconds since clip start.
type KeyframeTable struct {
	series map[KeyframeTag][]Keyframe
}

// NewKeyframeTable returns an empty table.
func NewKeyframeTable() *KeyframeTable {
	return &KeyframeTable{series: make(map[KeyframeTag][]Keyframe)}
}

// Set stores value at timestamp, replacing an existing sample at the same timestamp.
func (t *KeyframeTable) Set(tag KeyframeTag, timestampUs int64, value float64) {
	s := t.series[tag]
	i := sort.Search(len(s), func(i int) bool { return s[i].TimestampUs >= timestampUs })
	if i < len(s) && s[i].TimestampUs == timestampUs {
		s[i].Value = value
		return
	}
	s = slices.Insert(s, i, Keyframe{TimestampUs: timestampUs, Value: value})
	t.series[tag] = s
}

// Series returns a copy of the samples of tag.
func (t *KeyframeTable) Series(tag KeyframeTag) []Keyframe {
	if t == nil {
		return nil
	}
	return slices.Clone(t.series[tag])
}

// Tags returns the tags present in the table, in ascending order.
func (t *KeyframeTable) Tags() []KeyframeTag {
	if t == nil {
		return nil
	}
	tags := make([]KeyframeTag, 0, len(t.series))
	for tag := range t.series {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Len returns the number of samples stored for tag.
func (t *KeyframeTable) Len(tag KeyframeTag) int {
	if t == nil {
		return 0
	}
	return len(t.series[tag])
}

// ValueAt returns the value of tag at timestampUs.
// Values between samples are interpolated linearly; outside the sampled range
// the nearest sample is held.
func (t *KeyframeTable) ValueAt(tag KeyframeTag, timestampUs int64) (float64, bool) {
	if t == nil {
		return 0, false
	}
	return InterpolateKeyframes(t.series[tag], timestampUs)
}

// InterpolateKeyframes evaluates a sorted series at timestampUs.
func InterpolateKeyframes(s []Keyframe, timestampUs int64) (float64, bool) {
	switch {
	case len(s) == 0:
		return 0, false
	case len(s) == 1, timestampUs <= s[0].TimestampUs:
		return s[0].Value, true
	case timestampUs >= s[len(s)-1].TimestampUs:
		return s[len(s)-1].Value, true
	}

	i := sort.Search(len(s), func(i int) bool { return s[i].TimestampUs >= timestampUs })
	next := s[i]
	if next.TimestampUs == timestampUs {
		return next.Value, true
	}
	prev := s[i-1]
	alpha := float64(timestampUs-prev.TimestampUs) / float64(next.TimestampUs-prev.TimestampUs)
	return prev.Value + (next.Value-prev.Value)*alpha, true
}

// Clone returns a deep copy of the table.
func (t *KeyframeTable) Clone() *KeyframeTable {
	out := NewKeyframeTable()
	if t == nil {
		return out
	}
	for tag, s := range t.series {
		out.series[tag] = slices.Clone(s)
	}
	return out
}

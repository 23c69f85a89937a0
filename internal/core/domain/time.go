package domain

import (
	"errors"
	"math"

	"go.trai.ch/zerr"
)

// TimeKind tells which unit a host uses for a time reference.
type TimeKind uint8

const (
	// TimeFrame is a (possibly fractional) frame index.
	TimeFrame TimeKind = iota
	// TimeMilliseconds is a millisecond offset from clip start.
	TimeMilliseconds
	// TimeMicroseconds is a microsecond offset from clip start.
	TimeMicroseconds
	// TimeFrameOrMicrosecond carries a frame, a microsecond hint, or both.
	TimeFrameOrMicrosecond
)

var timeKindNames = []string{"frame", "ms", "us", "frame_or_us"}

// String returns the short name of the kind.
func (k TimeKind) String() string {
	if int(k) < len(timeKindNames) {
		return timeKindNames[k]
	}
	return "unknown"
}

// ParseTimeKind resolves a name returned by TimeKind.String.
func ParseTimeKind(name string) (TimeKind, error) {
	for i, n := range timeKindNames {
		if n == name {
			return TimeKind(i), nil
		}
	}
	return 0, errors.Join(ErrInvalidTime, zerr.With(errors.New("unknown time kind"), "kind", name))
}

// TimeRef is a host time value in one of the supported representations.
type TimeRef struct {
	Kind         TimeKind `json:"kind"`
	Frame        float64  `json:"frame,omitempty"`
	Milliseconds float64  `json:"ms,omitempty"`
	Microseconds int64    `json:"us,omitempty"`
	HasFrame     bool     `json:"has_frame,omitempty"`
	HasMicros    bool     `json:"has_us,omitempty"`
}

// AtFrame returns a frame-based time reference.
func AtFrame(frame float64) TimeRef {
	return TimeRef{Kind: TimeFrame, Frame: frame, HasFrame: true}
}

// AtMilliseconds returns a millisecond-based time reference.
func AtMilliseconds(ms float64) TimeRef {
	return TimeRef{Kind: TimeMilliseconds, Milliseconds: ms}
}

// AtMicroseconds returns a microsecond-based time reference.
func AtMicroseconds(us int64) TimeRef {
	return TimeRef{Kind: TimeMicroseconds, Microseconds: us, HasMicros: true}
}

// AtFrameOrMicrosecond returns a reference carrying both a frame and its timestamp.
func AtFrameOrMicrosecond(frame float64, us int64) TimeRef {
	return TimeRef{Kind: TimeFrameOrMicrosecond, Frame: frame, Microseconds: us, HasFrame: true, HasMicros: true}
}

// FrameToMicroseconds converts a frame index at fps to microseconds since clip start.
func FrameToMicroseconds(frame, fps float64) int64 {
	return int64(math.Round(frame / fps * 1_000_000.0))
}

// MicrosecondsToFrame converts a timestamp to the nearest frame index at fps.
func MicrosecondsToFrame(us int64, fps float64) float64 {
	return math.Round(float64(us) / 1000.0 * fps / 1000.0)
}

// ToMicroseconds normalizes the reference to absolute microseconds since clip start.
// A FrameOrMicrosecond reference prefers its microsecond value.
func (t TimeRef) ToMicroseconds(fps float64) (int64, error) {
	switch t.Kind {
	case TimeFrame:
		return FrameToMicroseconds(t.Frame, fps), nil
	case TimeMilliseconds:
		return int64(math.Round(t.Milliseconds * 1000.0)), nil
	case TimeMicroseconds:
		return t.Microseconds, nil
	case TimeFrameOrMicrosecond:
		if t.HasMicros {
			return t.Microseconds, nil
		}
		if t.HasFrame {
			return FrameToMicroseconds(t.Frame, fps), nil
		}
	}
	return 0, errors.Join(ErrInvalidTime, zerr.With(errors.New("time reference carries no value"), "kind", int(t.Kind)))
}

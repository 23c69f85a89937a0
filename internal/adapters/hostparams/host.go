// Package hostparams provides an in-memory host parameter store.
package hostparams

import (
	"errors"
	"slices"
	"sync"

	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultFPS is the frame rate used to translate frame-based host times when
// none is configured.
const DefaultFPS = 30.0

type value struct {
	kind domain.ParamKind
	f    float64
	b    bool
	s    string
	i    int32
}

type keyframe struct {
	us    int64
	value float64
}

// Host implements ports.ParameterAccess in memory. It keeps keyframes in a
// single host time representation, the way real hosts do, and is safe for
// concurrent use.
type Host struct {
	mu        sync.RWMutex
	timeKind  domain.TimeKind
	fps       float64
	values    map[domain.Param]value
	keyframes map[domain.Param][]keyframe
	labels    map[domain.Param]string
	hints     map[domain.Param]string
	enabled   map[domain.Param]bool
	rejected  map[domain.Param]error
}

// Option configures a Host.
type Option func(*Host)

// WithTimeKind sets the time representation the host reports keyframes in.
func WithTimeKind(kind domain.TimeKind) Option {
	return func(h *Host) { h.timeKind = kind }
}

// WithFPS sets the frame rate used to convert frame-based times.
func WithFPS(fps float64) Option {
	return func(h *Host) {
		if fps > 0 {
			h.fps = fps
		}
	}
}

// New creates a Host seeded with the default of every parameter definition.
func New(opts ...Option) *Host {
	h := &Host{
		timeKind:  domain.TimeFrame,
		fps:       DefaultFPS,
		values:    make(map[domain.Param]value),
		keyframes: make(map[domain.Param][]keyframe),
		labels:    make(map[domain.Param]string),
		hints:     make(map[domain.Param]string),
		enabled:   make(map[domain.Param]bool),
		rejected:  make(map[domain.Param]error),
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, def := range domain.Definitions() {
		h.values[def.Param] = value{kind: def.Kind, f: def.Float, b: def.Bool, s: def.String, i: def.Int}
		h.labels[def.Param] = def.Label
		h.hints[def.Param] = def.Hint
		h.enabled[def.Param] = true
	}
	return h
}

// Reject makes every access to p fail with err, as a host does for a
// parameter it does not expose. A nil err clears the rejection.
func (h *Host) Reject(p domain.Param, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		delete(h.rejected, p)
		return
	}
	h.rejected[p] = err
}

// FPS returns the frame rate used for frame-based times.
func (h *Host) FPS() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.fps
}

// SetFPS changes the frame rate used for frame-based times.
func (h *Host) SetFPS(fps float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if fps > 0 {
		h.fps = fps
	}
}

func (h *Host) lookup(p domain.Param, kind domain.ParamKind) (value, error) {
	if err, ok := h.rejected[p]; ok {
		return value{}, err
	}
	v, ok := h.values[p]
	if !ok {
		return value{}, errors.Join(domain.ErrUnknownParam, zerr.With(zerr.New("parameter not defined by the host"), "param", p.String()))
	}
	if v.kind != kind {
		return value{}, errors.Join(domain.ErrParamTypeMismatch, zerr.With(zerr.With(zerr.New("parameter has another kind"), "param", p.String()), "kind", v.kind.String()))
	}
	return v, nil
}

func (h *Host) store(p domain.Param, kind domain.ParamKind, update func(*value)) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, err := h.lookup(p, kind)
	if err != nil {
		return err
	}
	update(&v)
	h.values[p] = v
	return nil
}

// GetString implements ports.ParameterAccess.
func (h *Host) GetString(p domain.Param) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, err := h.lookup(p, domain.KindString)
	return v.s, err
}

// SetString implements ports.ParameterAccess.
func (h *Host) SetString(p domain.Param, s string) error {
	return h.store(p, domain.KindString, func(v *value) { v.s = s })
}

// GetBool implements ports.ParameterAccess.
func (h *Host) GetBool(p domain.Param) (bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, err := h.lookup(p, domain.KindBool)
	return v.b, err
}

// SetBool implements ports.ParameterAccess.
func (h *Host) SetBool(p domain.Param, b bool) error {
	return h.store(p, domain.KindBool, func(v *value) { v.b = b })
}

// GetFloat implements ports.ParameterAccess.
func (h *Host) GetFloat(p domain.Param) (float64, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, err := h.lookup(p, domain.KindFloat)
	return v.f, err
}

// SetFloat implements ports.ParameterAccess.
func (h *Host) SetFloat(p domain.Param, f float64) error {
	return h.store(p, domain.KindFloat, func(v *value) { v.f = f })
}

// GetInt implements ports.ParameterAccess.
func (h *Host) GetInt(p domain.Param) (int32, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, err := h.lookup(p, domain.KindInt)
	return v.i, err
}

// SetInt implements ports.ParameterAccess.
func (h *Host) SetInt(p domain.Param, i int32) error {
	return h.store(p, domain.KindInt, func(v *value) { v.i = i })
}

// GetFloatAt implements ports.ParameterAccess. Between keyframes the value is
// interpolated linearly; outside them the nearest keyframe holds.
func (h *Host) GetFloatAt(p domain.Param, t domain.TimeRef) (float64, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	v, err := h.lookup(p, domain.KindFloat)
	if err != nil {
		return 0, err
	}
	kfs := h.keyframes[p]
	if len(kfs) == 0 {
		return v.f, nil
	}
	us, err := t.ToMicroseconds(h.fps)
	if err != nil {
		return 0, err
	}
	series := make([]domain.Keyframe, len(kfs))
	for i, kf := range kfs {
		series[i] = domain.Keyframe{TimestampUs: kf.us, Value: kf.value}
	}
	out, _ := domain.InterpolateKeyframes(series, us)
	return out, nil
}

// GetBoolAt implements ports.ParameterAccess. Checkboxes are never animated here.
func (h *Host) GetBoolAt(p domain.Param, _ domain.TimeRef) (bool, error) {
	return h.GetBool(p)
}

// SetFloatAt implements ports.ParameterAccess.
func (h *Host) SetFloatAt(p domain.Param, t domain.TimeRef, f float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.lookup(p, domain.KindFloat); err != nil {
		return err
	}
	us, err := t.ToMicroseconds(h.fps)
	if err != nil {
		return err
	}
	kfs := h.keyframes[p]
	i, found := slices.BinarySearchFunc(kfs, us, func(kf keyframe, us int64) int {
		switch {
		case kf.us < us:
			return -1
		case kf.us > us:
			return 1
		default:
			return 0
		}
	})
	if found {
		kfs[i].value = f
	} else {
		kfs = slices.Insert(kfs, i, keyframe{us: us, value: f})
	}
	h.keyframes[p] = kfs
	return nil
}

// IsKeyframed implements ports.ParameterAccess.
func (h *Host) IsKeyframed(p domain.Param) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.keyframes[p]) > 0
}

// Keyframes implements ports.ParameterAccess. Times are reported in the
// host's time representation.
func (h *Host) Keyframes(p domain.Param) []domain.HostKeyframe {
	h.mu.RLock()
	defer h.mu.RUnlock()

	kfs := h.keyframes[p]
	out := make([]domain.HostKeyframe, 0, len(kfs))
	for _, kf := range kfs {
		out = append(out, domain.HostKeyframe{Time: h.hostTime(kf.us), Value: kf.value})
	}
	return out
}

func (h *Host) hostTime(us int64) domain.TimeRef {
	switch h.timeKind {
	case domain.TimeMilliseconds:
		return domain.AtMilliseconds(float64(us) / 1000)
	case domain.TimeMicroseconds:
		return domain.AtMicroseconds(us)
	case domain.TimeFrameOrMicrosecond:
		return domain.AtFrameOrMicrosecond(domain.MicrosecondsToFrame(us, h.fps), us)
	default:
		return domain.AtFrame(domain.MicrosecondsToFrame(us, h.fps))
	}
}

// ClearKeyframes implements ports.ParameterAccess.
func (h *Host) ClearKeyframes(p domain.Param) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err, ok := h.rejected[p]; ok {
		return err
	}
	delete(h.keyframes, p)
	return nil
}

// SetLabel implements ports.ParameterAccess.
func (h *Host) SetLabel(p domain.Param, label string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.labels[p] = label
	return nil
}

// SetHint implements ports.ParameterAccess.
func (h *Host) SetHint(p domain.Param, hint string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hints[p] = hint
	return nil
}

// SetEnabled implements ports.ParameterAccess.
func (h *Host) SetEnabled(p domain.Param, enabled bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enabled[p] = enabled
	return nil
}

// Label returns the current label of p.
func (h *Host) Label(p domain.Param) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.labels[p]
}

// Hint returns the current hint of p.
func (h *Host) Hint(p domain.Param) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.hints[p]
}

// Enabled reports whether p is currently enabled.
func (h *Host) Enabled(p domain.Param) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.enabled[p]
}

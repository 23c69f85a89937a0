package keyframes

import (
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
)

// Baker samples host parameters into a keyframe table.
type Baker struct {
	// Dense samples keyframed parameters at every frame; otherwise only the
	// host's own keyframes are copied.
	Dense  bool
	logger ports.Logger
}

// NewBaker creates a Baker.
func NewBaker(dense bool, logger ports.Logger) *Baker {
	return &Baker{Dense: dense, logger: logger}
}

// Bake builds a table for a clip of frames frames at fps.
// Parameters that fail to read are logged and left out.
func (b *Baker) Bake(params ports.ParameterAccess, frames int, fps float64) *domain.KeyframeTable {
	if fps <= 0 {
		fps = 1
	}

	table := domain.NewKeyframeTable()
	for _, binding := range domain.KeyframeBindings {
		if !params.IsKeyframed(binding.Param) {
			v, err := params.GetFloat(binding.Param)
			if err != nil {
				b.warn(err, binding)
				continue
			}
			table.Set(binding.Tag, 0, v/binding.Scale)
			continue
		}

		if b.Dense {
			b.bakeDense(table, params, binding, frames, fps)
		} else {
			b.bakeSparse(table, params, binding, fps)
		}
	}
	return table
}

func (b *Baker) bakeDense(table *domain.KeyframeTable, params ports.ParameterAccess, binding domain.KeyframeBinding, frames int, fps float64) {
	for f := range frames {
		frame := float64(f)
		ts := domain.FrameToMicroseconds(frame, fps)
		v, err := params.GetFloatAt(binding.Param, domain.AtFrameOrMicrosecond(frame, ts))
		if err != nil {
			b.warn(zerr.With(err, "frame", f), binding)
			continue
		}
		table.Set(binding.Tag, ts, v/binding.Scale)
	}
}

func (b *Baker) bakeSparse(table *domain.KeyframeTable, params ports.ParameterAccess, binding domain.KeyframeBinding, fps float64) {
	for _, kf := range params.Keyframes(binding.Param) {
		ts, err := kf.Time.ToMicroseconds(fps)
		if err != nil {
			b.warn(err, binding)
			continue
		}
		table.Set(binding.Tag, ts, kf.Value/binding.Scale)
	}
}

func (b *Baker) warn(err error, binding domain.KeyframeBinding) {
	b.logger.Error(zerr.With(zerr.Wrap(err, "failed to read keyframed parameter"), "param", binding.Param.String()))
}

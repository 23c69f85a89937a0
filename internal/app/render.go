package app

import (
	"context"
	"errors"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/sourcegraph/conc/pool"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/zerr"
)

// Default render geometry used when a render step leaves it out.
const (
	defaultRenderWidth  = 4
	defaultRenderHeight = 2
)

type frameJob struct {
	inst  *scriptInstance
	index int
	frame int
}

func (s *session) render(ctx context.Context, step *Step) error {
	var targets []*scriptInstance
	if step.Instance != "" {
		inst, err := s.lookup(step.Instance)
		if err != nil {
			return err
		}
		targets = append(targets, inst)
	} else {
		for _, name := range s.order {
			targets = append(targets, s.instances[name])
		}
	}
	return s.renderInstances(ctx, targets, step)
}

// renderInstances renders the frames of step for every target in parallel and
// records a per-instance checksum of the outputs in frame order.
func (s *session) renderInstances(ctx context.Context, targets []*scriptInstance, step *Step) error {
	frames := max(step.Frames, 1)
	size := domain.Size{Width: step.Width, Height: step.Height}
	if size.Width <= 0 || size.Height <= 0 {
		size = domain.Size{Width: defaultRenderWidth, Height: defaultRenderHeight}
	}

	outputs := make(map[*scriptInstance][][]byte, len(targets))
	var jobs []frameJob
	for _, inst := range targets {
		outputs[inst] = make([][]byte, frames)
		for i := range frames {
			jobs = append(jobs, frameJob{inst: inst, index: i, frame: step.Start + i})
		}
	}

	workers := s.opts.Concurrency
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers).WithCancelOnError().WithFirstError()
	for _, job := range jobs {
		out := outputs[job.inst]
		p.Go(func(ctx context.Context) error {
			data, err := s.renderFrame(ctx, job.inst, job.frame, size)
			if err != nil {
				return zerr.With(zerr.With(err, "instance", job.inst.name), "frame", job.frame)
			}
			out[job.index] = data
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	for _, inst := range targets {
		d := xxhash.New()
		for _, data := range outputs[inst] {
			_, _ = d.Write(data)
		}
		inst.checksum = d.Sum64()
		inst.frames = frames
		inst.lastRender = step
	}
	return nil
}

// renderFrame renders one frame through the instance. An instance without a
// usable project passes its input through, as a host shows the source clip.
func (s *session) renderFrame(ctx context.Context, inst *scriptInstance, frame int, size domain.Size) ([]byte, error) {
	base, err := s.registry.Base(inst.handle)
	if err != nil {
		return nil, err
	}
	access, err := s.registry.Access(inst.handle, inst.host)
	if err != nil {
		return nil, err
	}

	n := size.Width * size.Height
	in := make([]byte, n)
	for i := range in {
		in[i] = byte(i)
	}
	buffers := &domain.Buffers{
		Input: domain.BufferDescription{
			Size: size, Stride: size.Width,
			Source: domain.BufferSource{Kind: domain.BufferCPU, Data: in},
		},
		Output: domain.BufferDescription{
			Size: size, Stride: size.Width,
			Source: domain.BufferSource{Kind: domain.BufferCPU, Data: make([]byte, n)},
		},
	}

	ts := domain.FrameToMicroseconds(float64(frame), s.script.FPS)
	err = base.Render(ctx, access, ts, size, buffers)
	switch {
	case err == nil:
		return buffers.Output.Source.Data, nil
	case errors.Is(err, domain.ErrEmptyPath), errors.Is(err, domain.ErrLoadFailed):
		return in, nil
	default:
		return nil, err
	}
}

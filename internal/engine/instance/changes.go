package instance

import (
	"context"

	"github.com/google/uuid"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
)

// ParamChanged reacts to a change of p. Project, reload, lens and
// project-data changes are handled for any change; size, computational,
// overview and interpolation changes only when userEdited is set.
//
// Invalidation applies to every engine the instance holds, since several
// entries may represent pieces of the same clip.
func (b *Base) ParamChanged(ctx context.Context, params ports.ParameterAccess, p domain.Param, userEdited bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, span := b.env.Tracer.Start(ctx, "param_changed",
		ports.WithAttribute("param", p.String()),
		ports.WithAttribute("user_edited", userEdited),
	)
	defer span.End()

	if err := b.paramChanged(params, p, userEdited); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (b *Base) paramChanged(params ports.ParameterAccess, p domain.Param, userEdited bool) error {
	switch p {
	case domain.ParamProjectPath, domain.ParamReloadProject:
		b.state.ReloadPending = true
		b.state.UserOwned = nil
		b.clearManagers()
	case domain.ParamDontDrawOutside:
		b.clearManagers()
	case domain.ParamIncludeProjectData:
		if err := b.includeProjectData(params); err != nil {
			return err
		}
	}

	if !userEdited {
		return nil
	}
	b.ownParam(p)

	if domain.IsOutputSize(p) {
		if err := b.outputSizeChanged(params, p); err != nil {
			return err
		}
	}
	if domain.ForksIdentity(p) {
		if err := b.computationChanged(params, p); err != nil {
			return err
		}
	}
	switch p {
	case domain.ParamToggleOverview:
		on, err := getBool(params, domain.ParamToggleOverview)
		if err != nil {
			return err
		}
		b.invalidate(domain.StageUndistortion, func(e ports.Engine) { e.SetFovOverview(on) }, nil)
	case domain.ParamInterpolation:
		b.clearAll()
	}
	return nil
}

func (b *Base) includeProjectData(params ports.ParameterAccess) error {
	include, _ := params.GetBool(domain.ParamIncludeProjectData)
	if !include {
		return setString(params, domain.ParamProjectData, "")
	}

	oldest, ok := b.local.Oldest()
	if !ok {
		return nil
	}
	var data []byte
	if err := oldest.View(func(e ports.Engine) error {
		var err error
		data, err = e.ExportProject()
		return err
	}); err != nil {
		b.env.Logger.Error(zerr.Wrap(err, "failed to export project data"))
		return nil
	}
	return setString(params, domain.ParamProjectData, string(data))
}

func (b *Base) outputSizeChanged(params ports.ParameterAccess, p domain.Param) error {
	switch p {
	case domain.ParamOutputSizeSwap:
		size, err := outputSize(params)
		if err != nil {
			return err
		}
		if err := setFloat(params, domain.ParamOutputWidth, float64(size.Height)); err != nil {
			return err
		}
		if err := setFloat(params, domain.ParamOutputHeight, float64(size.Width)); err != nil {
			return err
		}
	case domain.ParamOutputSizeToTimeline:
		if err := setFloat(params, domain.ParamOutputWidth, float64(b.state.TimelineSize.Width)); err != nil {
			return err
		}
		if err := setFloat(params, domain.ParamOutputHeight, float64(b.state.TimelineSize.Height)); err != nil {
			return err
		}
	}

	size, err := outputSize(params)
	if err != nil {
		return err
	}
	b.invalidate(domain.InvalidatedStages(p), func(e ports.Engine) { e.SetOutputSize(size) }, nil)
	return nil
}

func (b *Base) computationChanged(params ports.ParameterAccess, p domain.Param) error {
	if err := setString(params, domain.ParamStatus, StatusCalculating); err != nil {
		return err
	}
	if !b.state.EverChanged {
		b.state.EverChanged = true
		if err := setString(params, domain.ParamInstanceID, uuid.NewString()); err != nil {
			return err
		}
		b.clearManagers()
	}

	useEngineKeyframes, _ := params.GetBool(domain.ParamUseEngineKeyframes)
	b.bake(params, useEngineKeyframes)

	var before, after func(ports.Engine)
	if p == domain.ParamIntegrationMethod {
		if method, err := params.GetInt(domain.ParamIntegrationMethod); err == nil {
			before = func(e ports.Engine) { e.SetIntegrationMethod(method) }
		}
	}
	if domain.AffectsSpeedRamp(p) {
		after = func(e ports.Engine) {
			e.CalculateRampedTimestamps(!(useEngineKeyframes && e.IsKeyframedInternally(domain.TagVideoSpeed)))
		}
	}
	b.invalidate(domain.InvalidatedStages(p), before, after)

	return setString(params, domain.ParamStatus, StatusOK)
}

// invalidate marks stages stale on every local engine and recomputes them.
// before runs ahead of the invalidation, after once recompute finished.
func (b *Base) invalidate(stages domain.Stage, before, after func(ports.Engine)) {
	engines := b.local.All()
	if len(engines) == 0 {
		b.env.Logger.Warn(domain.ErrNoEngineBound.Error() + ": skipping " + stages.String() + " invalidation")
		return
	}

	for _, s := range engines {
		err := s.Update(func(e ports.Engine) error {
			if before != nil {
				before(e)
			}
			if stages&domain.StageSmoothing != 0 {
				e.InvalidateSmoothing()
			}
			if stages&domain.StageZooming != 0 {
				e.InvalidateZooming()
			}
			if stages&domain.StageUndistortion != 0 {
				e.InvalidateUndistortion()
			}
			if err := e.RecomputeBlocking(); err != nil {
				return err
			}
			if after != nil {
				after(e)
			}
			return nil
		})
		if err != nil {
			b.env.Logger.Error(zerr.With(zerr.Wrap(err, "failed to recompute stages"), "key", s.Key().Digest()))
		}
	}
}

// ownParam protects a user edit from the project values copied in by a
// pending reload.
func (b *Base) ownParam(p domain.Param) {
	if !b.state.ReloadPending || p == domain.ParamProjectPath || p == domain.ParamReloadProject {
		return
	}
	owned := []domain.Param{p}
	if domain.IsOutputSize(p) {
		owned = []domain.Param{domain.ParamOutputWidth, domain.ParamOutputHeight}
	}
	if b.state.UserOwned == nil {
		b.state.UserOwned = make(map[domain.Param]bool)
	}
	for _, q := range owned {
		b.state.UserOwned[q] = true
	}
}

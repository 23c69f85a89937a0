package app

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/steady/internal/adapters/watcher"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch replays the script, then reloads and re-renders the instances whose
// project file changes until ctx is canceled. onReport receives the report
// after the replay and after every reload.
func (a *App) Watch(ctx context.Context, path string, opts ReplayOptions, onReport func(*Report)) error {
	s, err := a.replay(ctx, path, opts)
	if err != nil {
		return err
	}
	onReport(s.report())

	watched := s.projectPaths()
	if len(watched) == 0 {
		a.logger.Warn("script references no project files, nothing to watch")
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	if err := a.watcher.Start(gctx, slices.Sorted(maps.Keys(watched))); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to stop file watcher"))
		}
	}()

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-gctx.Done():
		}
	})
	defer debouncer.Stop()

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if event.Operation == ports.OpRemove {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-batches:
				if err := s.reload(gctx, watched, paths); err != nil {
					return err
				}
				onReport(s.report())
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// projectPaths maps every project path referenced by a live instance to the
// names of those instances.
func (s *session) projectPaths() map[string][]string {
	out := make(map[string][]string)
	for _, name := range s.order {
		path, err := s.instances[name].host.GetString(domain.ParamProjectPath)
		if err != nil || path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		out[path] = append(out[path], name)
	}
	return out
}

// reload sends a reload edit to the instances using the changed paths and
// repeats their last render.
func (s *session) reload(ctx context.Context, watched map[string][]string, paths []string) error {
	for _, path := range paths {
		for _, name := range watched[path] {
			inst, ok := s.instances[name]
			if !ok {
				continue
			}
			s.app.logger.Info("reloading " + name + " after change to " + path)
			if err := s.registry.UserChangedParam(ctx, inst.handle, domain.ParamReloadProject, inst.host); err != nil {
				s.app.logger.Error(zerr.With(err, "instance", name))
				continue
			}
			if inst.lastRender == nil {
				continue
			}
			if err := s.renderInstances(ctx, []*scriptInstance{inst}, inst.lastRender); err != nil {
				return err
			}
		}
	}
	return nil
}

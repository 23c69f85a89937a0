package app

import (
	"context"
	"errors"
	"slices"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/adapters/hostparams"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/engine/instance"
	"go.trai.ch/zerr"
)

// ReplayOptions tune a replay run.
type ReplayOptions struct {
	// Concurrency bounds the number of frames rendered in parallel. Zero uses one per CPU.
	Concurrency int
	// SavePath receives the flattened state of the last live instance.
	SavePath string
}

// scriptInstance is an instance created by a script, together with the host
// holding its parameter values.
type scriptInstance struct {
	name   string
	handle *instance.Handle
	host   *hostparams.Host

	lastRender *Step
	frames     int
	checksum   uint64
}

type session struct {
	app      *App
	script   *Script
	registry *instance.Registry
	opts     ReplayOptions

	instances map[string]*scriptInstance
	order     []string
	blobs     map[string][]byte
}

// Replay runs the script at path against a fresh instance registry.
func (a *App) Replay(ctx context.Context, path string, opts ReplayOptions) (*Report, error) {
	s, err := a.replay(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return s.report(), nil
}

func (a *App) replay(ctx context.Context, path string, opts ReplayOptions) (*session, error) {
	script, err := LoadScript(a.fs, path)
	if err != nil {
		return nil, err
	}
	registry, err := a.newRegistry()
	if err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "replay",
		ports.WithAttribute("script", path),
		ports.WithAttribute("steps", len(script.Steps)),
	)
	defer span.End()

	s := &session{
		app:       a,
		script:    script,
		registry:  registry,
		opts:      opts,
		instances: make(map[string]*scriptInstance),
		blobs:     make(map[string][]byte),
	}
	for i := range script.Steps {
		if err := s.run(ctx, &script.Steps[i]); err != nil {
			err = zerr.With(zerr.With(err, "step", i), "action", script.Steps[i].Action)
			span.RecordError(err)
			return nil, err
		}
	}

	if opts.SavePath != "" {
		if err := s.saveLast(opts.SavePath); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	return s, nil
}

func (s *session) run(ctx context.Context, step *Step) error {
	switch step.Action {
	case ActionCreate:
		return s.create(ctx, step)
	case ActionSet:
		return s.set(ctx, step, false)
	case ActionEdit:
		return s.set(ctx, step, true)
	case ActionKeyframe:
		return s.keyframe(ctx, step)
	case ActionRender:
		return s.render(ctx, step)
	case ActionSave:
		return s.save(step)
	case ActionLoad:
		return s.load(step)
	case ActionDuplicate:
		return s.duplicate(step)
	case ActionDelete:
		return s.delete(step)
	default:
		return errors.Join(domain.ErrUnknownStep, zerr.With(zerr.New("no handler for action"), "action", step.Action))
	}
}

func unknownInstance(name string) error {
	return errors.Join(domain.ErrUnknownInstance, zerr.With(zerr.New("instance not defined by the script"), "instance", name))
}

func (s *session) lookup(name string) (*scriptInstance, error) {
	inst, ok := s.instances[name]
	if !ok {
		return nil, unknownInstance(name)
	}
	return inst, nil
}

func (s *session) newHost() *hostparams.Host {
	return hostparams.New(
		hostparams.WithFPS(s.script.FPS),
		hostparams.WithTimeKind(s.script.timeKind()),
	)
}

func (s *session) add(name string, h *instance.Handle, host *hostparams.Host) *scriptInstance {
	if _, exists := s.instances[name]; !exists {
		s.order = append(s.order, name)
	}
	inst := &scriptInstance{name: name, handle: h, host: host}
	s.instances[name] = inst
	return inst
}

func (s *session) create(ctx context.Context, step *Step) error {
	h, err := s.registry.Create()
	if err != nil {
		return err
	}
	inst := s.add(step.Instance, h, s.newHost())
	if step.Project == "" {
		return nil
	}
	return s.apply(ctx, inst, domain.ParamProjectPath, step.Project, false)
}

func (s *session) set(ctx context.Context, step *Step, userEdited bool) error {
	inst, err := s.lookup(step.Instance)
	if err != nil {
		return err
	}
	p, err := domain.ParseParam(step.Param)
	if err != nil {
		return err
	}
	return s.apply(ctx, inst, p, step.Value, userEdited)
}

// apply writes v as the host would and delivers the change notification.
func (s *session) apply(ctx context.Context, inst *scriptInstance, p domain.Param, v any, userEdited bool) error {
	def, ok := domain.Definition(p)
	if !ok {
		return errors.Join(domain.ErrUnknownParam, zerr.With(zerr.New("parameter has no definition"), "param", p.String()))
	}
	value, err := paramValue(def, v)
	if err != nil {
		return err
	}
	if p == domain.ParamProjectPath {
		value = s.script.resolve(value.(string))
	}

	access, err := s.registry.Access(inst.handle, inst.host)
	if err != nil {
		return err
	}
	if err := writeParam(access, p, value); err != nil {
		return err
	}

	if userEdited {
		return s.registry.UserChangedParam(ctx, inst.handle, p, inst.host)
	}
	base, err := s.registry.Base(inst.handle)
	if err != nil {
		return err
	}
	return base.ParamChanged(ctx, access, p, false)
}

func writeParam(access ports.ParameterAccess, p domain.Param, value any) error {
	switch v := value.(type) {
	case float64:
		return access.SetFloat(p, v)
	case bool:
		return access.SetBool(p, v)
	case string:
		return access.SetString(p, v)
	case int32:
		return access.SetInt(p, v)
	default:
		return nil
	}
}

func (s *session) keyframe(ctx context.Context, step *Step) error {
	inst, err := s.lookup(step.Instance)
	if err != nil {
		return err
	}
	p, err := domain.ParseParam(step.Param)
	if err != nil {
		return err
	}
	def, _ := domain.Definition(p)
	value, err := paramValue(def, step.Value)
	if err != nil {
		return err
	}
	f, ok := value.(float64)
	if !ok {
		return errors.Join(domain.ErrParamTypeMismatch, zerr.With(zerr.New("only float parameters take keyframes"), "param", p.String()))
	}

	var at domain.TimeRef
	switch {
	case step.Frame != nil:
		at = domain.AtFrame(*step.Frame)
	case step.AtUs != nil:
		at = domain.AtMicroseconds(*step.AtUs)
	default:
		return errors.Join(domain.ErrInvalidTime, zerr.With(zerr.New("keyframe needs frame or at_us"), "param", p.String()))
	}

	access, err := s.registry.Access(inst.handle, inst.host)
	if err != nil {
		return err
	}
	if err := access.SetFloatAt(p, at, f); err != nil {
		return err
	}
	return s.registry.UserChangedParam(ctx, inst.handle, p, inst.host)
}

func (s *session) save(step *Step) error {
	inst, err := s.lookup(step.Instance)
	if err != nil {
		return err
	}
	blob, err := s.registry.Flatten(inst.handle)
	if err != nil {
		return err
	}
	s.blobs[inst.name] = blob
	if step.File == "" {
		return nil
	}
	path := s.script.resolve(step.File)
	if err := afero.WriteFile(s.app.fs, path, blob, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write instance blob"), "path", path)
	}
	return nil
}

func (s *session) load(step *Step) error {
	if step.As == "" {
		return errors.Join(domain.ErrScriptReadFailed, zerr.With(zerr.New("step needs a target name"), "missing", "as"))
	}
	var blob []byte
	switch {
	case step.File != "":
		path := s.script.resolve(step.File)
		data, err := afero.ReadFile(s.app.fs, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read instance blob"), "path", path)
		}
		blob = data
	default:
		saved, ok := s.blobs[step.From]
		if !ok {
			return unknownInstance(step.From)
		}
		blob = saved
	}
	return s.restore(step.As, blob)
}

func (s *session) duplicate(step *Step) error {
	if step.As == "" {
		return errors.Join(domain.ErrScriptReadFailed, zerr.With(zerr.New("step needs a target name"), "missing", "as"))
	}
	inst, err := s.lookup(step.Instance)
	if err != nil {
		return err
	}
	blob, err := s.registry.Flatten(inst.handle)
	if err != nil {
		return err
	}
	return s.restore(step.As, blob)
}

// restore registers blob as a new instance whose host carries the stored
// parameter values, as a host reopening a saved project does.
func (s *session) restore(name string, blob []byte) error {
	h := s.registry.Unflatten(blob)
	rec, err := s.registry.Record(h)
	if err != nil {
		return err
	}
	host := s.newHost()
	seedHost(host, rec.Stored().Values)
	s.add(name, h, host)
	return nil
}

func seedHost(host *hostparams.Host, values domain.ParamValues) {
	for p, v := range values.Float {
		_ = host.SetFloat(p, v)
	}
	for p, v := range values.Bool {
		_ = host.SetBool(p, v)
	}
	for p, v := range values.String {
		_ = host.SetString(p, v)
	}
	for p, v := range values.Int {
		_ = host.SetInt(p, v)
	}
}

func (s *session) delete(step *Step) error {
	inst, err := s.lookup(step.Instance)
	if err != nil {
		return err
	}
	s.registry.Delete(inst.handle)
	delete(s.instances, inst.name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == inst.name })
	return nil
}

func (s *session) saveLast(path string) error {
	if len(s.order) == 0 {
		return zerr.With(zerr.New("no live instance to save"), "path", path)
	}
	inst := s.instances[s.order[len(s.order)-1]]
	blob, err := s.registry.Flatten(inst.handle)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.app.fs, path, blob, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write instance blob"), "path", path)
	}
	return nil
}

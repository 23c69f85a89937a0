package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Step actions.
const (
	ActionCreate    = "create"
	ActionSet       = "set"
	ActionEdit      = "edit"
	ActionKeyframe  = "keyframe"
	ActionRender    = "render"
	ActionSave      = "save"
	ActionLoad      = "load"
	ActionDuplicate = "duplicate"
	ActionDelete    = "delete"
)

// Script is a recorded sequence of host events.
type Script struct {
	Name     string  `yaml:"name"`
	FPS      float64 `yaml:"fps"`
	TimeKind string  `yaml:"time_kind"`
	Steps    []Step  `yaml:"steps"`

	dir string
}

// Step is one host event. Which fields apply depends on Action.
type Step struct {
	Action   string `yaml:"action"`
	Instance string `yaml:"instance"`
	// Project is set as the project path when creating an instance.
	Project string `yaml:"project"`
	Param   string `yaml:"param"`
	Value   any    `yaml:"value"`
	// Frame and AtUs locate a keyframe.
	Frame *float64 `yaml:"frame"`
	AtUs  *int64   `yaml:"at_us"`
	// Start, Frames, Width and Height describe a render.
	Start  int `yaml:"start"`
	Frames int `yaml:"frames"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// From names a saved instance to load, File a blob on disk, As the new instance.
	From string `yaml:"from"`
	File string `yaml:"file"`
	As   string `yaml:"as"`
}

// LoadScript reads and validates the script at path.
func LoadScript(fsys afero.Fs, path string) (*Script, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Join(domain.ErrScriptReadFailed, zerr.With(err, "path", path))
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	script.dir = filepath.Dir(path)
	return script, nil
}

var knownActions = []string{
	ActionCreate, ActionSet, ActionEdit, ActionKeyframe, ActionRender,
	ActionSave, ActionLoad, ActionDuplicate, ActionDelete,
}

// ParseScript decodes a script document.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.Join(domain.ErrScriptReadFailed, err)
	}
	if script.FPS == 0 {
		script.FPS = 30
	}
	if script.FPS < 0 {
		return nil, errors.Join(domain.ErrScriptReadFailed, zerr.With(zerr.New("fps must be positive"), "fps", script.FPS))
	}
	if script.TimeKind != "" {
		if _, err := domain.ParseTimeKind(script.TimeKind); err != nil {
			return nil, errors.Join(domain.ErrScriptReadFailed, err)
		}
	}

	for i, step := range script.Steps {
		if !slices.Contains(knownActions, step.Action) {
			return nil, errors.Join(domain.ErrUnknownStep, zerr.With(zerr.With(zerr.New("unsupported action"), "step", i), "action", step.Action))
		}
		needsInstance := step.Action != ActionLoad && step.Action != ActionRender
		if needsInstance && step.Instance == "" {
			return nil, errors.Join(domain.ErrScriptReadFailed, zerr.With(zerr.With(zerr.New("step needs an instance"), "step", i), "missing", "instance"))
		}
	}
	return &script, nil
}

// resolve makes p relative to the script directory unless it is absolute.
func (s *Script) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || s.dir == "" {
		return p
	}
	return filepath.Join(s.dir, p)
}

// timeKind returns the host time representation of the script.
func (s *Script) timeKind() domain.TimeKind {
	kind, _ := domain.ParseTimeKind(s.TimeKind)
	return kind
}

// paramValue converts a decoded YAML value to the type def stores.
func paramValue(def domain.ParamDef, v any) (any, error) {
	mismatch := func() error {
		return errors.Join(domain.ErrParamTypeMismatch, zerr.With(zerr.With(zerr.New("value does not fit the parameter kind"), "param", def.Param.String()), "value", fmt.Sprint(v)))
	}

	switch def.Kind {
	case domain.KindFloat:
		switch n := v.(type) {
		case int:
			return float64(n), nil
		case float64:
			return n, nil
		}
	case domain.KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case domain.KindString:
		if v == nil {
			return "", nil
		}
		if s, ok := v.(string); ok {
			return s, nil
		}
	case domain.KindInt:
		switch n := v.(type) {
		case int:
			return int32(n), nil
		case string:
			if i := slices.Index(def.Options, n); i >= 0 {
				return int32(i), nil
			}
		}
	case domain.KindButton:
		return nil, nil
	}
	return nil, mismatch()
}

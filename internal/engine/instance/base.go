package instance

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/steady/internal/core/domain"
	"go.trai.ch/steady/internal/core/ports"
	"go.trai.ch/steady/internal/engine/keyframes"
	"go.trai.ch/steady/internal/engine/managers"
	"go.trai.ch/zerr"
)

// Host status strings.
const (
	StatusOK          = "OK"
	StatusNotLoaded   = "Project not loaded"
	StatusCalculating = "Calculating..."
	StatusLoadFailed  = "Failed to load file info!"
)

// State is the serializable part of a Base.
type State struct {
	ReloadPending          bool        `json:"reload_pending"`
	EverChanged            bool        `json:"ever_changed"`
	OriginalVideoSize      domain.Size `json:"original_video_size"`
	OriginalOutputSize     domain.Size `json:"original_output_size"`
	TimelineSize           domain.Size `json:"timeline_size"`
	NumFrames              int         `json:"num_frames"`
	FPS                    float64     `json:"fps"`
	HasMotion              bool        `json:"has_motion"`
	DenseKeyframes         bool        `json:"dense_keyframes"`
	FramebufferInverted    bool        `json:"framebuffer_inverted"`
	AnamorphicAdjustSize   bool        `json:"anamorphic_adjust_size"`
	AlwaysSetInputRotation bool        `json:"always_set_input_rotation"`
	// UserOwned lists params the user edited while a project reload was
	// pending. The reload keeps their host values.
	UserOwned map[domain.Param]bool `json:"user_owned,omitempty"`
}

func (s State) clone() State {
	s.UserOwned = maps.Clone(s.UserOwned)
	return s
}

// DefaultState returns the state of a fresh instance under cfg.
func DefaultState(cfg domain.Config) State {
	return State{
		ReloadPending:          true,
		DenseKeyframes:         cfg.Keyframes.Dense,
		FramebufferInverted:    cfg.Instance.FramebufferInverted,
		AnamorphicAdjustSize:   cfg.Instance.AnamorphicAdjustSize,
		AlwaysSetInputRotation: cfg.Instance.AlwaysSetInputRotation,
	}
}

// Base is the per-instance state machine. It owns the instance-local engine
// cache and the keyframe cell installed into every engine it uses.
// All methods are safe for concurrent use; parameter and lifecycle operations
// are serialized per instance.
type Base struct {
	mu        sync.Mutex
	env       *Env
	state     State
	local     *managers.Local
	keyframes *keyframes.Params
}

// NewBase creates a Base in its default state.
func NewBase(env *Env) (*Base, error) {
	return RestoreBase(env, DefaultState(env.Config))
}

// RestoreBase creates a Base from persisted state. No engine is built until
// the instance is first used.
func RestoreBase(env *Env, state State) (*Base, error) {
	local, err := managers.NewLocal(env.Config.Cache.InstanceCapacity, env.Logger)
	if err != nil {
		return nil, err
	}
	return &Base{
		env:       env,
		state:     state,
		local:     local,
		keyframes: keyframes.NewParams(),
	}, nil
}

// State returns a snapshot of the serializable state.
func (b *Base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.clone()
}

// EverChanged reports whether the instance has been meaningfully edited.
func (b *Base) EverChanged() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.EverChanged
}

// LocalKeys returns the keys of the engines this instance holds.
func (b *Base) LocalKeys() []domain.CacheKey {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.local.Keys()
}

// Keyframes returns the keyframe cell shared with the instance's engines.
func (b *Base) Keyframes() *keyframes.Params {
	return b.keyframes
}

// InitializeInstanceID assigns a fresh id when id is empty.
func (b *Base) InitializeInstanceID(id *string) {
	if *id != "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	*id = uuid.NewString()
	b.state.EverChanged = false
}

// Clone returns a copy that shares the engines of b and an independent keyframe cell.
func (b *Base) Clone() (*Base, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	local, err := b.local.Clone(b.env.Config.Cache.InstanceCapacity)
	if err != nil {
		return nil, err
	}
	return &Base{
		env:       b.env,
		state:     b.state.clone(),
		local:     local,
		keyframes: b.keyframes.Clone(),
	}, nil
}

func (b *Base) markChanged() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.EverChanged = true
}

// UpdateLoadedState enables the adjustable parameters and reports the status.
func (b *Base) UpdateLoadedState(params ports.ParameterAccess, loaded bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updateLoadedState(params, loaded)
}

func (b *Base) updateLoadedState(params ports.ParameterAccess, loaded bool) {
	for _, p := range domain.AdjustableParams {
		_ = params.SetEnabled(p, loaded)
	}
	status := StatusNotLoaded
	if loaded {
		status = StatusOK
	}
	_ = params.SetString(domain.ParamStatus, status)
}

// SetStatus reports status with hint when it differs from the current one.
// With ok set, the loaded state is refreshed as well.
func (b *Base) SetStatus(params ports.ParameterAccess, status, hint string, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if current, _ := params.GetString(domain.ParamStatus); current == status {
		return
	}
	_ = params.SetString(domain.ParamStatus, status)
	_ = params.SetHint(domain.ParamStatus, hint)
	if ok {
		b.updateLoadedState(params, ok)
	}
}

// ClearManagers drops the instance's engines and removes each from the global
// cache when nothing else holds it.
func (b *Base) ClearManagers() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearManagers()
}

func (b *Base) clearManagers() {
	keys := b.local.Purge()
	b.env.Cache.PruneUnreferenced(keys)
}

// ClearAll drops the instance's engines and empties the global cache.
func (b *Base) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearAll()
}

func (b *Base) clearAll() {
	b.local.Purge()
	b.env.Cache.Clear()
}

// LoadLensData embeds a lens profile (.json) or preset and schedules a reload.
func (b *Base) LoadLensData(params ports.ParameterAccess, fileName, contents string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	target := domain.ParamEmbeddedPreset
	if strings.HasSuffix(strings.ToLower(fileName), ".json") {
		target = domain.ParamEmbeddedLensProfile
	}
	if err := setString(params, target, contents); err != nil {
		return err
	}
	b.state.ReloadPending = true
	b.clearManagers()
	return nil
}

// Render processes one frame at timestampUs with the engine for the current
// project. Pixel processing runs concurrently with other renders of the engine.
func (b *Base) Render(
	ctx context.Context,
	params ports.ParameterAccess,
	timestampUs int64,
	size domain.Size,
	buffers *domain.Buffers,
) error {
	ctx, span := b.env.Tracer.Start(ctx, "render", ports.WithAttribute("timestamp_us", timestampUs))
	defer span.End()

	shared, err := b.AcquireOrBuild(ctx, params, size)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer func() {
		if err := shared.Release(); err != nil {
			b.env.Logger.Error(zerr.Wrap(err, "failed to release engine"))
		}
	}()

	if err := shared.View(func(e ports.Engine) error {
		return e.ProcessPixels(timestampUs, buffers)
	}); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// bake rebuilds the keyframe table from the host parameters.
func (b *Base) bake(params ports.ParameterAccess, useEngineKeyframes bool) {
	fps := max(b.state.FPS, 1)
	table := keyframes.NewBaker(b.state.DenseKeyframes, b.env.Logger).Bake(params, b.state.NumFrames, fps)
	b.keyframes.Replace(useEngineKeyframes, table)
}

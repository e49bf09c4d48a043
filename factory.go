package cinder

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
)

// ErrTemplateNotFound is wrapped by Factory.Create when the id is not
// registered. The returned error lists the available ids.
var ErrTemplateNotFound = errors.New("template not found")

// ValidationError aggregates every violated rule of one validation pass into
// a single failure.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "cinder: invalid projectile config: " + strings.Join(e.Problems, "; ")
}

// ValidationResult is the outcome of Factory.Validate. Errors block the
// configuration; warnings are logged and let it through.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the configuration passed without errors.
func (v ValidationResult) OK() bool { return len(v.Errors) == 0 }

// Err returns the aggregated validation error, or nil when OK.
func (v ValidationResult) Err() error {
	if v.OK() {
		return nil
	}
	return &ValidationError{Problems: v.Errors}
}

// Params carries the per-cast runtime parameters merged over a template's
// output: endpoints, optional timing, and callbacks.
type Params struct {
	From, To Point
	// Duration and Delay override the template when non-zero.
	Duration time.Duration
	Delay    time.Duration

	OnProgress func(Progress, *ProjectileState)
	OnMutate   func(index int, state *ProjectileState)
	OnComplete func()
}

// Overrides are explicit final-say adjustments. Only set fields apply:
// pointer fields when non-nil, slices and funcs when non-nil.
type Overrides struct {
	Shape     *Shape
	Color     *string
	Size      *float64
	Duration  *time.Duration
	Delay     *time.Duration
	Easing    ease.TweenFunc
	Motion    MotionFunc
	Effects   []string
	Mutations []Mutation
}

// Factory turns registered templates into validated projectile configs.
type Factory struct {
	reg *Registry
}

// NewFactory creates a Factory over a registry.
func NewFactory(reg *Registry) *Factory {
	return &Factory{reg: reg}
}

// Create looks up a template, invokes it with the cast endpoints, and merges
// in strict precedence order: built-in defaults, template output, runtime
// params, explicit overrides — later sources win only for fields they
// actually set. The merged config is validated before being returned;
// warnings are logged, errors abort.
func (f *Factory) Create(id string, params Params, overrides *Overrides) (ProjectileConfig, error) {
	tmpl, ok := f.reg.Get(id)
	if !ok {
		return ProjectileConfig{}, fmt.Errorf(
			"cinder: %w: %q (available: %s)",
			ErrTemplateNotFound, id, strings.Join(f.reg.IDs(), ", "))
	}
	cfg := tmpl.Build(params.From, params.To)
	cfg.From = params.From
	cfg.To = params.To
	applyDefaults(&cfg)
	applyParams(&cfg, params)
	applyOverrides(&cfg, overrides)
	return f.finish(cfg)
}

// CreateBatch maps one template over a list of runtime parameter sets.
// The first failure aborts the batch.
func (f *Factory) CreateBatch(id string, params []Params, overrides *Overrides) ([]ProjectileConfig, error) {
	out := make([]ProjectileConfig, 0, len(params))
	for i, p := range params {
		cfg, err := f.Create(id, p, overrides)
		if err != nil {
			return nil, fmt.Errorf("cinder: batch item %d: %w", i, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

// CreateCustom validates a hand-built configuration without touching the
// registry.
func (f *Factory) CreateCustom(cfg ProjectileConfig) (ProjectileConfig, error) {
	return f.finish(cfg)
}

// Clone re-merges overrides onto an existing configuration and re-validates.
func (f *Factory) Clone(cfg ProjectileConfig, overrides *Overrides) (ProjectileConfig, error) {
	out := cfg
	out.Effects = append([]string(nil), cfg.Effects...)
	out.Mutations = append([]Mutation(nil), cfg.Mutations...)
	applyOverrides(&out, overrides)
	return f.finish(out)
}

func (f *Factory) finish(cfg ProjectileConfig) (ProjectileConfig, error) {
	result := f.Validate(cfg)
	for _, w := range result.Warnings {
		log.Printf("cinder: config warning: %s", w)
	}
	if err := result.Err(); err != nil {
		return ProjectileConfig{}, err
	}
	return cfg, nil
}

// Validate checks a configuration against the build-time rules. It never
// mutates the config; callers decide what to do with warnings.
func (f *Factory) Validate(cfg ProjectileConfig) ValidationResult {
	var v ValidationResult

	if !finitePoint(cfg.From) {
		v.Errors = append(v.Errors, "from must be a finite point")
	}
	if !finitePoint(cfg.To) {
		v.Errors = append(v.Errors, "to must be a finite point")
	}
	if cfg.Shape > ShapeCustom {
		v.Errors = append(v.Errors, fmt.Sprintf("unknown shape %d", cfg.Shape))
	}
	if cfg.Color == "" {
		v.Errors = append(v.Errors, "color is required")
	} else if _, err := ParseColor(cfg.Color); err != nil {
		v.Errors = append(v.Errors, fmt.Sprintf("invalid color format %q", cfg.Color))
	}
	if cfg.Size <= 0 {
		v.Errors = append(v.Errors, "size must be positive")
	}
	if cfg.Duration <= 0 {
		v.Errors = append(v.Errors, "duration must be positive")
	}
	if cfg.Delay < 0 {
		v.Errors = append(v.Errors, "delay must not be negative")
	}

	for _, tag := range cfg.Effects {
		if !knownEffectTag(tag) {
			v.Warnings = append(v.Warnings, fmt.Sprintf("unknown effect type %q", tag))
		}
	}
	if cfg.Size > 100 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("size %.0f is unusually large", cfg.Size))
	}
	if cfg.Duration > 10*time.Second {
		v.Warnings = append(v.Warnings, fmt.Sprintf("duration %s is unusually long", cfg.Duration))
	}
	if len(cfg.Mutations) > 5 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%d mutations on one projectile", len(cfg.Mutations)))
	}
	return v
}

func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func applyDefaults(cfg *ProjectileConfig) {
	if cfg.Color == "" {
		cfg.Color = "#ffffff"
	}
	if cfg.Size == 0 {
		cfg.Size = DefaultProjectileSize
	}
	if cfg.Duration == 0 {
		cfg.Duration = DefaultDuration
	}
}

func applyParams(cfg *ProjectileConfig, p Params) {
	if p.Duration != 0 {
		cfg.Duration = p.Duration
	}
	if p.Delay != 0 {
		cfg.Delay = p.Delay
	}
	if p.OnProgress != nil {
		cfg.OnProgress = p.OnProgress
	}
	if p.OnMutate != nil {
		cfg.OnMutate = p.OnMutate
	}
	if p.OnComplete != nil {
		cfg.OnComplete = p.OnComplete
	}
}

func applyOverrides(cfg *ProjectileConfig, o *Overrides) {
	if o == nil {
		return
	}
	if o.Shape != nil {
		cfg.Shape = *o.Shape
	}
	if o.Color != nil {
		cfg.Color = *o.Color
	}
	if o.Size != nil {
		cfg.Size = *o.Size
	}
	if o.Duration != nil {
		cfg.Duration = *o.Duration
	}
	if o.Delay != nil {
		cfg.Delay = *o.Delay
	}
	if o.Easing != nil {
		cfg.Easing = o.Easing
	}
	if o.Motion != nil {
		cfg.Motion = o.Motion
	}
	if o.Effects != nil {
		cfg.Effects = append([]string(nil), o.Effects...)
	}
	if o.Mutations != nil {
		cfg.Mutations = append([]Mutation(nil), o.Mutations...)
	}
}

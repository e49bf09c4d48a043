package cinder

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Projectile unifies a motion generator, effect attachments, and a mutation
// list into one spawn→travel→impact lifecycle driving a single scene node.

// Effect tags a projectile config may carry. Unknown tags validate with a
// warning and are ignored at runtime.
const (
	EffectTrail     = "trail"
	EffectGlow      = "glow"
	EffectPulse     = "pulse"
	EffectFlash     = "flash"
	EffectParticles = "particles"
)

// knownEffectTag reports whether tag names a supported effect attachment.
func knownEffectTag(tag string) bool {
	switch tag {
	case EffectTrail, EffectGlow, EffectPulse, EffectFlash, EffectParticles:
		return true
	}
	return false
}

// ProjectileConfig is the complete description of one projectile flight.
// Factory.Create produces validated instances of it from templates.
type ProjectileConfig struct {
	From, To Point
	Shape    Shape
	// Color is a CSS-style color string; parsed and validated at build time.
	Color string
	// Size is the projectile's nominal size in map units. Default 8.
	Size float64
	// Duration is the flight time. Default 1s.
	Duration time.Duration
	Delay    time.Duration
	// Easing shapes flight progress. Default linear.
	Easing ease.TweenFunc
	// Motion overrides the trajectory. Nil flies the straight line From→To.
	Motion MotionFunc
	// Effects lists effect tags active during flight.
	Effects []string
	// Mutations transform the projectile mid-flight.
	Mutations []Mutation

	OnProgress func(Progress, *ProjectileState)
	OnMutate   func(index int, state *ProjectileState)
	OnComplete func()
}

// DefaultProjectileSize is used when a config leaves Size at zero.
const DefaultProjectileSize = 8.0

// impactDuration is the length of the fade/scale-up finish transition.
const impactDuration = 0.18

// Projectile is one in-flight instance. Create with NewProjectile and drive
// it from a Runner or by calling Update directly.
type Projectile struct {
	node   Node
	cfg    ProjectileConfig
	motion MotionFunc
	state  ProjectileState
	clk    clock

	baseSize float64
	spawned  bool
	impact   *gween.Tween
	trail    *Trail
	glow     *Glow
	done     bool
}

// NewProjectile builds a projectile instance from a config. The node starts
// hidden; it becomes visible at the From position once any delay elapses.
// The color string is parsed here, so an invalid color fails fast rather
// than at tick time.
func NewProjectile(node Node, cfg ProjectileConfig) (*Projectile, error) {
	if cfg.Size <= 0 {
		cfg.Size = DefaultProjectileSize
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	color := ColorWhite
	if cfg.Color != "" {
		var err error
		color, err = ParseColor(cfg.Color)
		if err != nil {
			return nil, fmt.Errorf("cinder: projectile: %w", err)
		}
	}
	motion := cfg.Motion
	if motion == nil {
		motion = LinearMotion(cfg.From, cfg.To)
	}
	p := &Projectile{
		node:   node,
		cfg:    cfg,
		motion: motion,
		clk: newClock(AnimConfig{
			Duration: cfg.Duration,
			Delay:    cfg.Delay,
			Easing:   cfg.Easing,
		}),
		baseSize: cfg.Size,
		state: ProjectileState{
			Position: cfg.From,
			Shape:    cfg.Shape,
			Color:    color,
			Size:     cfg.Size,
			Effects:  append([]string(nil), cfg.Effects...),
		},
	}
	node.SetVisible(false)
	node.SetPosition(cfg.From)
	return p, nil
}

// State returns the projectile's live state record. Read-only for callers.
func (p *Projectile) State() *ProjectileState { return &p.state }

func (p *Projectile) Update(dt float64) bool {
	if p.done {
		return true
	}
	if p.node.IsDisposed() {
		p.teardown()
		return true
	}
	if p.impact != nil {
		return p.updateImpact(dt)
	}

	eased, active, finished := p.clk.advance(dt)
	if !active {
		return false
	}
	if !p.spawned {
		p.spawn()
	}

	prev := p.state.Position
	pos := p.motion(eased)
	p.state.Position = pos
	p.state.Progress = Clamp(p.clk.elapsed/p.clk.dur, 0, 1)
	p.state.Elapsed = p.clk.elapsed
	p.state.DistanceTraveled += Distance(prev, pos)

	for _, idx := range ProcessMutations(p.cfg.Mutations, &p.state, p.cfg.From) {
		if p.cfg.OnMutate != nil {
			p.cfg.OnMutate(idx, &p.state)
		}
	}
	p.applyState()
	p.syncAttachments(dt)

	if p.cfg.OnProgress != nil {
		p.cfg.OnProgress(p.clk.progress(eased), &p.state)
	}

	if finished {
		p.impact = gween.New(0, 1, impactDuration, ease.OutQuad)
	}
	return false
}

// spawn makes the node visible in its initial state.
func (p *Projectile) spawn() {
	p.spawned = true
	p.node.SetVisible(true)
	p.applyState()
}

// applyState pushes the current shape/color/size onto the node.
func (p *Projectile) applyState() {
	p.node.SetPosition(p.state.Position)
	p.node.SetFill(p.state.Color)
	factor := p.state.Size / p.baseSize
	p.node.SetScale(factor, factor)
	if sn, ok := p.node.(ShapeNode); ok {
		sn.SetShape(p.state.Shape)
	}
	p.node.Repaint()
}

// syncAttachments starts or stops trail/glow sub-visuals so they track the
// state's active effect tags, which mutations may change mid-flight.
func (p *Projectile) syncAttachments(dt float64) {
	wantTrail := p.hasEffect(EffectTrail)
	wantGlow := p.hasEffect(EffectGlow)

	if wantTrail && p.trail == nil {
		if pn, ok := p.node.(PathNode); ok {
			// Outlives the flight; cancelled explicitly at teardown.
			p.trail = NewTrail(pn, TrailConfig{
				AnimConfig: AnimConfig{Duration: p.cfg.Duration + time.Second},
			})
		}
	}
	if !wantTrail && p.trail != nil {
		p.trail.Cancel()
		p.trail = nil
	}
	if p.trail != nil {
		p.trail.Update(dt)
	}

	if wantGlow && p.glow == nil {
		if sn, ok := p.node.(ShadowNode); ok {
			p.glow = NewGlow(sn, GlowConfig{
				AnimConfig: AnimConfig{Duration: p.cfg.Duration + time.Second},
				Color:      p.state.Color,
			})
		}
	}
	if !wantGlow && p.glow != nil {
		p.glow.Cancel()
		p.glow = nil
	}
	if p.glow != nil {
		p.glow.Update(dt)
	}
}

func (p *Projectile) hasEffect(tag string) bool {
	for _, e := range p.state.Effects {
		if e == tag {
			return true
		}
	}
	return false
}

// updateImpact plays the brief fade/scale-up finish, then hides the node and
// completes.
func (p *Projectile) updateImpact(dt float64) bool {
	v, fin := p.impact.Update(float32(dt))
	t := float64(v)
	p.node.SetOpacity(1 - t)
	factor := p.state.Size / p.baseSize * (1 + 0.5*t)
	p.node.SetScale(factor, factor)
	p.node.Repaint()
	if fin {
		p.teardown()
		if p.cfg.OnComplete != nil {
			p.cfg.OnComplete()
		}
		return true
	}
	return false
}

// teardown stops attachments and hides the node.
func (p *Projectile) teardown() {
	if p.trail != nil {
		p.trail.Cancel()
		p.trail = nil
	}
	if p.glow != nil {
		p.glow.Cancel()
		p.glow = nil
	}
	if !p.node.IsDisposed() {
		p.node.SetVisible(false)
		p.node.SetOpacity(1)
		p.node.Repaint()
	}
	p.done = true
}

// Cancel stops the projectile immediately, hiding the node and restoring any
// effect overrides. OnComplete does not fire.
func (p *Projectile) Cancel() {
	if p.done {
		return
	}
	p.teardown()
}

// Done reports whether the projectile has impacted or been cancelled.
func (p *Projectile) Done() bool { return p.done }

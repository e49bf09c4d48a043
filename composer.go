package cinder

import (
	"log"
	"time"
)

// Composers schedule multiple primitive steps against one target node.
// Steps are PrimitiveConfig values; a step that cannot be built (missing
// variant, or a handle shape the node does not implement) is logged and
// treated as an immediately-completed no-op so sequencing and completion
// counts stay correct rather than stalling the composition.

// clone duplicates the variant pointer so composer-side adjustments (progress
// chaining, stagger delays) never leak into the caller's config.
func (c PrimitiveConfig) clone() PrimitiveConfig {
	switch c.Type {
	case PrimitiveMove:
		if c.Move != nil {
			v := *c.Move
			c.Move = &v
		}
	case PrimitiveRotate:
		if c.Rotate != nil {
			v := *c.Rotate
			c.Rotate = &v
		}
	case PrimitiveScale:
		if c.Scale != nil {
			v := *c.Scale
			c.Scale = &v
		}
	case PrimitiveColor:
		if c.Color != nil {
			v := *c.Color
			c.Color = &v
		}
	case PrimitiveFade:
		if c.Fade != nil {
			v := *c.Fade
			c.Fade = &v
		}
	case PrimitiveTrail:
		if c.Trail != nil {
			v := *c.Trail
			c.Trail = &v
		}
	case PrimitiveGlow:
		if c.Glow != nil {
			v := *c.Glow
			c.Glow = &v
		}
	case PrimitivePulse:
		if c.Pulse != nil {
			v := *c.Pulse
			c.Pulse = &v
		}
	case PrimitiveFlash:
		if c.Flash != nil {
			v := *c.Flash
			c.Flash = &v
		}
	case PrimitiveParticles:
		if c.Particles != nil {
			v := *c.Particles
			c.Particles = &v
		}
	}
	return c
}

// animRef returns the embedded AnimConfig of the active variant, or nil when
// the variant pointer is missing.
func (c *PrimitiveConfig) animRef() *AnimConfig {
	switch c.Type {
	case PrimitiveMove:
		if c.Move != nil {
			return &c.Move.AnimConfig
		}
	case PrimitiveRotate:
		if c.Rotate != nil {
			return &c.Rotate.AnimConfig
		}
	case PrimitiveScale:
		if c.Scale != nil {
			return &c.Scale.AnimConfig
		}
	case PrimitiveColor:
		if c.Color != nil {
			return &c.Color.AnimConfig
		}
	case PrimitiveFade:
		if c.Fade != nil {
			return &c.Fade.AnimConfig
		}
	case PrimitiveTrail:
		if c.Trail != nil {
			return &c.Trail.AnimConfig
		}
	case PrimitiveGlow:
		if c.Glow != nil {
			return &c.Glow.AnimConfig
		}
	case PrimitivePulse:
		if c.Pulse != nil {
			return &c.Pulse.AnimConfig
		}
	case PrimitiveFlash:
		if c.Flash != nil {
			return &c.Flash.AnimConfig
		}
	case PrimitiveParticles:
		if c.Particles != nil {
			return &c.Particles.AnimConfig
		}
	}
	return nil
}

// SequentialConfig parametrizes a Sequential composer.
type SequentialConfig struct {
	Steps []PrimitiveConfig
	// Gap is an optional pause between the end of one step and the start of
	// the next.
	Gap time.Duration
	// OnStepStart fires when a step begins; OnStepComplete when it ends.
	OnStepStart    func(index int)
	OnStepComplete func(index int)
	// OnProgress receives aggregate progress across all steps in [0, 1].
	OnProgress func(float64)
	OnComplete func()
}

// Sequential executes its steps one at a time, in order.
type Sequential struct {
	node    Node
	cfg     SequentialConfig
	cursor  int
	current Anim
	gapLeft float64
	done    bool
}

// NewSequential creates a Sequential composer targeting node.
func NewSequential(node Node, cfg SequentialConfig) *Sequential {
	return &Sequential{node: node, cfg: cfg}
}

func (s *Sequential) Update(dt float64) bool {
	if s.done {
		return true
	}
	if s.gapLeft > 0 {
		s.gapLeft -= dt
		if s.gapLeft > 0 {
			return false
		}
		dt = -s.gapLeft
		s.gapLeft = 0
	}
	for s.current == nil {
		if s.cursor >= len(s.cfg.Steps) {
			s.done = true
			if s.cfg.OnComplete != nil {
				s.cfg.OnComplete()
			}
			return true
		}
		s.startStep()
	}
	if s.current.Update(dt) {
		idx := s.cursor
		s.current = nil
		s.cursor++
		if s.cfg.OnStepComplete != nil {
			s.cfg.OnStepComplete(idx)
		}
		if s.cursor >= len(s.cfg.Steps) {
			s.done = true
			if s.cfg.OnProgress != nil {
				s.cfg.OnProgress(1)
			}
			if s.cfg.OnComplete != nil {
				s.cfg.OnComplete()
			}
			return true
		}
		s.gapLeft = s.cfg.Gap.Seconds()
	}
	return s.done
}

// startStep builds the cursor step, skipping (with a diagnostic) steps that
// cannot run on this node.
func (s *Sequential) startStep() {
	idx := s.cursor
	step := s.cfg.Steps[idx].clone()
	if ref := step.animRef(); ref != nil && s.cfg.OnProgress != nil {
		n := float64(len(s.cfg.Steps))
		inner := ref.OnProgress
		report := s.cfg.OnProgress
		ref.OnProgress = func(p Progress) {
			report((float64(idx) + p.Ratio) / n)
			if inner != nil {
				inner(p)
			}
		}
	}
	if s.cfg.OnStepStart != nil {
		s.cfg.OnStepStart(idx)
	}
	anim, err := step.Build(s.node)
	if err != nil {
		log.Printf("cinder: sequential step %d (%s) skipped: %v", idx, step.Type, err)
		s.cursor++
		if s.cfg.OnStepComplete != nil {
			s.cfg.OnStepComplete(idx)
		}
		return
	}
	s.current = anim
}

// Cancel stops the in-flight step and abandons the rest.
func (s *Sequential) Cancel() {
	if s.done {
		return
	}
	if s.current != nil {
		s.current.Cancel()
		s.current = nil
	}
	s.done = true
}

// Done reports whether all steps have completed.
func (s *Sequential) Done() bool { return s.done }

// ParallelConfig parametrizes a Parallel composer.
type ParallelConfig struct {
	Steps []PrimitiveConfig
	// Stagger delays each successive step's start by a fixed amount.
	Stagger time.Duration
	// OnStepComplete fires once per step as it finishes, in arrival order.
	OnStepComplete func(index int)
	// OnComplete fires exactly once, after every step has completed.
	OnComplete func()
}

// Parallel runs all steps concurrently against the same node.
type Parallel struct {
	node      Node
	cfg       ParallelConfig
	anims     []Anim // nil entries are finished or skipped
	remaining int
	started   bool
	done      bool
}

// NewParallel creates a Parallel composer targeting node.
func NewParallel(node Node, cfg ParallelConfig) *Parallel {
	return &Parallel{node: node, cfg: cfg}
}

func (p *Parallel) Update(dt float64) bool {
	if p.done {
		return true
	}
	if !p.started {
		p.start()
	}
	for i, a := range p.anims {
		if a == nil {
			continue
		}
		if a.Update(dt) {
			p.anims[i] = nil
			p.stepDone(i)
		}
	}
	if p.remaining == 0 {
		p.finish()
	}
	return p.done
}

func (p *Parallel) start() {
	p.started = true
	p.anims = make([]Anim, len(p.cfg.Steps))
	p.remaining = len(p.cfg.Steps)
	stagger := p.cfg.Stagger.Seconds()
	for i, step := range p.cfg.Steps {
		sc := step.clone()
		if ref := sc.animRef(); ref != nil && stagger > 0 {
			ref.Delay += time.Duration(float64(i) * stagger * float64(time.Second))
		}
		anim, err := sc.Build(p.node)
		if err != nil {
			log.Printf("cinder: parallel step %d (%s) skipped: %v", i, sc.Type, err)
			p.stepDone(i)
			continue
		}
		p.anims[i] = anim
	}
	if p.remaining == 0 {
		p.finish()
	}
}

func (p *Parallel) stepDone(i int) {
	p.remaining--
	if p.cfg.OnStepComplete != nil {
		p.cfg.OnStepComplete(i)
	}
}

func (p *Parallel) finish() {
	if p.done {
		return
	}
	p.done = true
	if p.cfg.OnComplete != nil {
		p.cfg.OnComplete()
	}
}

// Cancel stops every in-flight step.
func (p *Parallel) Cancel() {
	if p.done {
		return
	}
	for i, a := range p.anims {
		if a != nil {
			a.Cancel()
			p.anims[i] = nil
		}
	}
	p.done = true
}

// Done reports whether every step has completed.
func (p *Parallel) Done() bool { return p.done }

// CompositionMode selects how a Conditional runs its chosen branch.
type CompositionMode uint8

const (
	ComposeSequential CompositionMode = iota
	ComposeParallel
)

// ConditionalConfig parametrizes a Conditional composer.
type ConditionalConfig struct {
	// Predicate is evaluated against the target node exactly once, on the
	// first update. A panicking predicate is recovered and treated as false.
	Predicate func(Node) bool
	// Then runs when the predicate is true, Else when it is false. An empty
	// chosen branch falls back to Fallback; when that is also empty the
	// composer completes immediately.
	Then     []PrimitiveConfig
	Else     []PrimitiveConfig
	Fallback []PrimitiveConfig
	// Mode selects sequential or parallel execution of the chosen branch.
	Mode CompositionMode
	// Gap applies in sequential mode, Stagger in parallel mode.
	Gap     time.Duration
	Stagger time.Duration

	OnComplete func()
}

// Conditional picks a branch of steps based on a predicate and delegates to
// a Sequential or Parallel composer.
type Conditional struct {
	node      Node
	cfg       ConditionalConfig
	inner     Anim
	evaluated bool
	done      bool
}

// NewConditional creates a Conditional composer targeting node.
func NewConditional(node Node, cfg ConditionalConfig) *Conditional {
	return &Conditional{node: node, cfg: cfg}
}

func (c *Conditional) Update(dt float64) bool {
	if c.done {
		return true
	}
	if !c.evaluated {
		c.choose()
		if c.done {
			return true
		}
	}
	if c.inner.Update(dt) {
		c.done = true
	}
	return c.done
}

func (c *Conditional) choose() {
	c.evaluated = true
	result := c.evalPredicate()
	steps := c.cfg.Then
	if !result {
		steps = c.cfg.Else
	}
	if len(steps) == 0 {
		steps = c.cfg.Fallback
	}
	if len(steps) == 0 {
		c.done = true
		if c.cfg.OnComplete != nil {
			c.cfg.OnComplete()
		}
		return
	}
	if c.cfg.Mode == ComposeParallel {
		c.inner = NewParallel(c.node, ParallelConfig{
			Steps:      steps,
			Stagger:    c.cfg.Stagger,
			OnComplete: c.cfg.OnComplete,
		})
		return
	}
	c.inner = NewSequential(c.node, SequentialConfig{
		Steps:      steps,
		Gap:        c.cfg.Gap,
		OnComplete: c.cfg.OnComplete,
	})
}

// evalPredicate runs the predicate, converting a panic into a false result.
func (c *Conditional) evalPredicate() (result bool) {
	if c.cfg.Predicate == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("cinder: conditional predicate panicked: %v; treating as false", r)
			result = false
		}
	}()
	return c.cfg.Predicate(c.node)
}

// Cancel stops the chosen branch.
func (c *Conditional) Cancel() {
	if c.done {
		return
	}
	if c.inner != nil {
		c.inner.Cancel()
	}
	c.done = true
}

// Done reports whether the chosen branch has completed.
func (c *Conditional) Done() bool { return c.done }

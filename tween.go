package cinder

// The five motion primitives: Move, Rotate, Scale, ColorFade, Fade. Each
// owns a clock (delay + eased 0→1 tween) and writes one visual property of
// its node every update until completion. The final update always writes the
// exact end value — gween clamps the last tween step — so repeated float
// accumulation can never leave a node short of its target.

// MoveConfig parametrizes a Move primitive.
type MoveConfig struct {
	AnimConfig
	From, To Point
	// Path overrides the trajectory. Nil uses the straight line From→To.
	Path MotionFunc
}

// Move animates a node's position along a motion path.
type Move struct {
	node Node
	path MotionFunc
	clock
}

// NewMove creates a Move primitive targeting node.
func NewMove(node Node, cfg MoveConfig) *Move {
	path := cfg.Path
	if path == nil {
		path = LinearMotion(cfg.From, cfg.To)
	}
	return &Move{node: node, path: path, clock: newClock(cfg.AnimConfig)}
}

func (m *Move) Update(dt float64) bool {
	if m.done {
		return true
	}
	if m.node.IsDisposed() {
		m.finish()
		return true
	}
	eased, active, finished := m.advance(dt)
	if !active {
		return false
	}
	m.node.SetPosition(m.path(eased))
	m.node.Repaint()
	m.notify(eased)
	if finished {
		m.complete()
	}
	return finished
}

// Cancel stops the move where it is. Position is left as last written.
func (m *Move) Cancel() {
	m.finish()
}

// RotateConfig parametrizes a Rotate primitive. Angles are in degrees.
type RotateConfig struct {
	AnimConfig
	From, To float64
	// Absolute interpolates the raw angle values. The default takes the
	// shortest angular path, so 350°→10° turns 20° forward, not 340° back.
	Absolute bool
}

// Rotate animates a node's rotation.
type Rotate struct {
	node  Node
	cfg   RotateConfig
	delta float64
	clock
}

// NewRotate creates a Rotate primitive targeting node.
func NewRotate(node Node, cfg RotateConfig) *Rotate {
	r := &Rotate{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
	if cfg.Absolute {
		r.delta = cfg.To - cfg.From
	} else {
		r.delta = ShortestAngle(cfg.From, cfg.To)
	}
	return r
}

func (r *Rotate) Update(dt float64) bool {
	if r.done {
		return true
	}
	if r.node.IsDisposed() {
		r.finish()
		return true
	}
	eased, active, finished := r.advance(dt)
	if !active {
		return false
	}
	r.node.SetRotation(r.cfg.From + r.delta*eased)
	r.node.Repaint()
	r.notify(eased)
	if finished {
		r.complete()
	}
	return finished
}

// Cancel stops the rotation where it is.
func (r *Rotate) Cancel() {
	r.finish()
}

// ScaleConfig parametrizes a Scale primitive. Zero To values are treated as
// literal targets; use NewScaleUniform for the common single-factor case.
type ScaleConfig struct {
	AnimConfig
	FromX, FromY float64
	ToX, ToY     float64
	// Min and Max clamp the interpolated factors when Max > 0.
	Min, Max float64
	// Origin, when set, keeps that map point fixed while the node scales:
	// the node's position is adjusted so growth appears centered on Origin.
	Origin *Point
}

// Scale animates a node's scale factors, uniformly or per axis.
type Scale struct {
	node     Node
	cfg      ScaleConfig
	startPos Point
	started  bool
	clock
}

// NewScale creates a Scale primitive targeting node.
func NewScale(node Node, cfg ScaleConfig) *Scale {
	return &Scale{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
}

// NewScaleUniform creates a Scale animating both axes between two factors.
func NewScaleUniform(node Node, from, to float64, cfg AnimConfig) *Scale {
	return NewScale(node, ScaleConfig{
		AnimConfig: cfg,
		FromX:      from, FromY: from,
		ToX: to, ToY: to,
	})
}

func (s *Scale) Update(dt float64) bool {
	if s.done {
		return true
	}
	if s.node.IsDisposed() {
		s.finish()
		return true
	}
	eased, active, finished := s.advance(dt)
	if !active {
		return false
	}
	if !s.started {
		s.started = true
		s.startPos = s.node.Position()
	}
	sx := Lerp(s.cfg.FromX, s.cfg.ToX, eased)
	sy := Lerp(s.cfg.FromY, s.cfg.ToY, eased)
	if s.cfg.Max > 0 {
		sx = Clamp(sx, s.cfg.Min, s.cfg.Max)
		sy = Clamp(sy, s.cfg.Min, s.cfg.Max)
	}
	s.node.SetScale(sx, sy)
	if o := s.cfg.Origin; o != nil {
		// Keep the origin point fixed: shift the node opposite to growth.
		s.node.SetPosition(o.Add(s.startPos.Sub(*o).Scale(sx)))
	}
	s.node.Repaint()
	s.notify(eased)
	if finished {
		s.complete()
	}
	return finished
}

// Cancel stops the scale where it is.
func (s *Scale) Cancel() {
	s.finish()
}

// ColorConfig parametrizes a ColorFade primitive.
type ColorConfig struct {
	AnimConfig
	From, To Color
	// FromOpacity/ToOpacity optionally animate node opacity alongside the
	// fill. Both must be set for the pair to take effect.
	FromOpacity, ToOpacity *float64
}

// ColorFade animates a node's fill color, with an optional independent
// opacity ramp.
type ColorFade struct {
	node Node
	cfg  ColorConfig
	clock
}

// NewColorFade creates a ColorFade primitive targeting node.
func NewColorFade(node Node, cfg ColorConfig) *ColorFade {
	return &ColorFade{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
}

func (c *ColorFade) Update(dt float64) bool {
	if c.done {
		return true
	}
	if c.node.IsDisposed() {
		c.finish()
		return true
	}
	eased, active, finished := c.advance(dt)
	if !active {
		return false
	}
	c.node.SetFill(LerpColor(c.cfg.From, c.cfg.To, eased))
	if c.cfg.FromOpacity != nil && c.cfg.ToOpacity != nil {
		c.node.SetOpacity(Lerp(*c.cfg.FromOpacity, *c.cfg.ToOpacity, eased))
	}
	c.node.Repaint()
	c.notify(eased)
	if finished {
		c.complete()
	}
	return finished
}

// Cancel stops the fade where it is.
func (c *ColorFade) Cancel() {
	c.finish()
}

// FadeConfig parametrizes a Fade primitive.
type FadeConfig struct {
	AnimConfig
	From, To float64
}

// Fade animates a node's opacity.
type Fade struct {
	node Node
	cfg  FadeConfig
	clock
}

// NewFade creates a Fade primitive targeting node.
func NewFade(node Node, cfg FadeConfig) *Fade {
	return &Fade{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
}

func (f *Fade) Update(dt float64) bool {
	if f.done {
		return true
	}
	if f.node.IsDisposed() {
		f.finish()
		return true
	}
	eased, active, finished := f.advance(dt)
	if !active {
		return false
	}
	f.node.SetOpacity(Clamp(Lerp(f.cfg.From, f.cfg.To, eased), 0, 1))
	f.node.Repaint()
	f.notify(eased)
	if finished {
		f.complete()
	}
	return finished
}

// Cancel stops the fade where it is.
func (f *Fade) Cancel() {
	f.finish()
}

package cinder

import "math"

// The effect primitives: Trail, Glow, Pulse, Flash. Unlike the motion
// primitives they do not drive a value from A to B; they decorate the node
// for their duration and put back whatever they overrode when they finish or
// are cancelled, so a cancelled effect never leaves residual visual state.

// trailPoint is one pooled entry of a trail's position history.
type trailPoint struct {
	pos     Point
	opacity float64
}

// TrailConfig parametrizes a Trail primitive.
type TrailConfig struct {
	AnimConfig
	// MaxSegments caps the point history. Default 10.
	MaxSegments int
	// FadeRate is opacity lost per second by every history point. Default 3.
	FadeRate float64
}

// Trail maintains a capped, fading history of the node's own instantaneous
// position — not of any motion generator — and renders it as a poly-line
// whose overall opacity is the average of the surviving points.
type Trail struct {
	node    PathNode
	cfg     TrailConfig
	pool    *Pool[trailPoint]
	points  []*trailPoint
	scratch []Point
	clock
}

// NewTrail creates a Trail primitive targeting node.
func NewTrail(node PathNode, cfg TrailConfig) *Trail {
	if cfg.MaxSegments <= 0 {
		cfg.MaxSegments = 10
	}
	if cfg.FadeRate <= 0 {
		cfg.FadeRate = 3
	}
	return &Trail{
		node:    node,
		cfg:     cfg,
		pool:    NewPool[trailPoint](cfg.MaxSegments+1, nil, nil),
		points:  make([]*trailPoint, 0, cfg.MaxSegments),
		scratch: make([]Point, 0, cfg.MaxSegments),
		clock:   newClock(cfg.AnimConfig),
	}
}

func (t *Trail) Update(dt float64) bool {
	if t.done {
		return true
	}
	if t.node.IsDisposed() {
		t.release()
		t.finish()
		return true
	}
	eased, active, finished := t.advance(dt)
	if !active {
		return false
	}

	// Decay existing points, dropping the dead ones in place.
	keep := t.points[:0]
	for _, p := range t.points {
		p.opacity -= t.cfg.FadeRate * dt
		if p.opacity <= 0 {
			t.pool.Release(p)
			continue
		}
		keep = append(keep, p)
	}
	t.points = keep

	// Prepend the node's current position at full opacity.
	head := t.pool.Acquire()
	head.pos = t.node.Position()
	head.opacity = 1
	t.points = append(t.points, nil)
	copy(t.points[1:], t.points)
	t.points[0] = head
	if len(t.points) > t.cfg.MaxSegments {
		last := len(t.points) - 1
		t.pool.Release(t.points[last])
		t.points[last] = nil
		t.points = t.points[:last]
	}

	t.scratch = t.scratch[:0]
	sum := 0.0
	for _, p := range t.points {
		t.scratch = append(t.scratch, p.pos)
		sum += p.opacity
	}
	t.node.SetPath(t.scratch, sum/float64(len(t.points)))
	t.node.Repaint()
	t.notify(eased)
	if finished {
		t.release()
		t.complete()
	}
	return finished
}

// Cancel drops the trail immediately and clears the node's path.
func (t *Trail) Cancel() {
	if t.done {
		return
	}
	t.release()
	t.finish()
}

func (t *Trail) release() {
	for i, p := range t.points {
		t.pool.Release(p)
		t.points[i] = nil
	}
	t.points = t.points[:0]
	if !t.node.IsDisposed() {
		t.node.ClearPath()
		t.node.Repaint()
	}
}

// GlowPulse layers a sine oscillation on top of a glow's base opacity.
type GlowPulse struct {
	// Speed is the oscillation rate in cycles per second.
	Speed float64
	// Min and Max bound the pulsing opacity.
	Min, Max float64
}

// GlowConfig parametrizes a Glow primitive.
type GlowConfig struct {
	AnimConfig
	Color Color
	// Blur is the halo radius. Default 10.
	Blur float64
	// Opacity is the base halo opacity. Default 0.8.
	Opacity float64
	// Pulse optionally oscillates the opacity between Pulse.Min and
	// Pulse.Max instead of holding it at Opacity.
	Pulse *GlowPulse
}

// Glow drives a shadow-style halo on a ShadowNode for its duration, then
// restores the original shadow state.
type Glow struct {
	node   ShadowNode
	cfg    GlowConfig
	saved  bool
	sColor Color
	sBlur  float64
	sAlpha float64
	clock
}

// NewGlow creates a Glow primitive targeting node.
func NewGlow(node ShadowNode, cfg GlowConfig) *Glow {
	if cfg.Blur <= 0 {
		cfg.Blur = 10
	}
	if cfg.Opacity <= 0 {
		cfg.Opacity = 0.8
	}
	return &Glow{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
}

func (g *Glow) Update(dt float64) bool {
	if g.done {
		return true
	}
	if g.node.IsDisposed() {
		g.finish()
		return true
	}
	eased, active, finished := g.advance(dt)
	if !active {
		return false
	}
	if !g.saved {
		g.saved = true
		g.sColor, g.sBlur, g.sAlpha = g.node.Shadow()
	}
	opacity := g.cfg.Opacity
	if p := g.cfg.Pulse; p != nil && p.Speed > 0 {
		s := math.Sin(2 * math.Pi * p.Speed * g.elapsed)
		opacity = MapRange(s, -1, 1, p.Min, p.Max)
	}
	g.node.SetShadow(g.cfg.Color, g.cfg.Blur, opacity)
	g.node.Repaint()
	g.notify(eased)
	if finished {
		g.restore()
		g.complete()
	}
	return finished
}

// Cancel restores the node's original shadow state immediately.
func (g *Glow) Cancel() {
	if g.done {
		return
	}
	g.restore()
	g.finish()
}

func (g *Glow) restore() {
	if g.saved && !g.node.IsDisposed() {
		g.node.SetShadow(g.sColor, g.sBlur, g.sAlpha)
		g.node.Repaint()
	}
}

// PulseConfig parametrizes a Pulse primitive.
type PulseConfig struct {
	AnimConfig
	// ScaleMin and ScaleMax bound the oscillating scale factor.
	// Defaults 0.9 and 1.1.
	ScaleMin, ScaleMax float64
	// Frequency is the oscillation rate in cycles per second. Default 1.
	Frequency float64
	// OpacityMin/OpacityMax optionally oscillate opacity in phase with the
	// scale. Active when OpacityMax > 0.
	OpacityMin, OpacityMax float64
}

// Pulse oscillates a node's scale (and optionally opacity) around its resting
// state, then restores both.
type Pulse struct {
	node     Node
	cfg      PulseConfig
	saved    bool
	sSX, sSY float64
	sAlpha   float64
	clock
}

// NewPulse creates a Pulse primitive targeting node.
func NewPulse(node Node, cfg PulseConfig) *Pulse {
	if cfg.ScaleMin == 0 && cfg.ScaleMax == 0 {
		cfg.ScaleMin, cfg.ScaleMax = 0.9, 1.1
	}
	if cfg.Frequency <= 0 {
		cfg.Frequency = 1
	}
	return &Pulse{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
}

func (p *Pulse) Update(dt float64) bool {
	if p.done {
		return true
	}
	if p.node.IsDisposed() {
		p.finish()
		return true
	}
	eased, active, finished := p.advance(dt)
	if !active {
		return false
	}
	if !p.saved {
		p.saved = true
		p.sSX, p.sSY = p.node.Scale()
		p.sAlpha = p.node.Opacity()
	}
	s := math.Sin(2 * math.Pi * p.cfg.Frequency * p.elapsed)
	factor := MapRange(s, -1, 1, p.cfg.ScaleMin, p.cfg.ScaleMax)
	p.node.SetScale(p.sSX*factor, p.sSY*factor)
	if p.cfg.OpacityMax > 0 {
		p.node.SetOpacity(MapRange(s, -1, 1, p.cfg.OpacityMin, p.cfg.OpacityMax))
	}
	p.node.Repaint()
	p.notify(eased)
	if finished {
		p.restore()
		p.complete()
	}
	return finished
}

// Cancel restores the node's original scale and opacity immediately.
func (p *Pulse) Cancel() {
	if p.done {
		return
	}
	p.restore()
	p.finish()
}

func (p *Pulse) restore() {
	if p.saved && !p.node.IsDisposed() {
		p.node.SetScale(p.sSX, p.sSY)
		p.node.SetOpacity(p.sAlpha)
		p.node.Repaint()
	}
}

// FlashConfig parametrizes a Flash primitive.
type FlashConfig struct {
	AnimConfig
	// Count is the number of rise-fall spikes across the duration. Default 3.
	Count int
	// Intensity scales the spikes in [0, 1]. Default 1.
	Intensity float64
	// Color optionally flashes the fill toward this color at spike peaks.
	Color *Color
}

// Flash repeats an eased rise-fall opacity spike across its duration, then
// restores the original opacity (and fill, when flashing a color).
type Flash struct {
	node   Node
	cfg    FlashConfig
	saved  bool
	sAlpha float64
	sFill  Color
	clock
}

// NewFlash creates a Flash primitive targeting node.
func NewFlash(node Node, cfg FlashConfig) *Flash {
	if cfg.Count <= 0 {
		cfg.Count = 3
	}
	if cfg.Intensity <= 0 || cfg.Intensity > 1 {
		cfg.Intensity = 1
	}
	return &Flash{node: node, cfg: cfg, clock: newClock(cfg.AnimConfig)}
}

func (f *Flash) Update(dt float64) bool {
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
	if !f.saved {
		f.saved = true
		f.sAlpha = f.node.Opacity()
		f.sFill = f.node.Fill()
	}
	ratio := Clamp(f.elapsed/f.dur, 0, 1)
	cycle := ratio * float64(f.cfg.Count)
	local := cycle - math.Floor(cycle)
	// Sine arch gives the eased rise and fall of one spike.
	spike := math.Sin(local*math.Pi) * f.cfg.Intensity
	f.node.SetOpacity(Lerp(f.sAlpha, 1, spike))
	if f.cfg.Color != nil {
		f.node.SetFill(LerpColor(f.sFill, *f.cfg.Color, spike))
	}
	f.node.Repaint()
	f.notify(eased)
	if finished {
		f.restore()
		f.complete()
	}
	return finished
}

// Cancel restores the node's original opacity and fill immediately.
func (f *Flash) Cancel() {
	if f.done {
		return
	}
	f.restore()
	f.finish()
}

func (f *Flash) restore() {
	if f.saved && !f.node.IsDisposed() {
		f.node.SetOpacity(f.sAlpha)
		if f.cfg.Color != nil {
			f.node.SetFill(f.sFill)
		}
		f.node.Repaint()
	}
}

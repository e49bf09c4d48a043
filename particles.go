package cinder

import (
	"math"
	"math/rand"
)

// Particle is one pooled particle. Fields are exported so particle surfaces
// can draw without accessor overhead; hosts must treat them as read-only.
type Particle struct {
	ID       uint32
	X, Y     float64
	VelX     float64
	VelY     float64
	Size     float64
	Color    Color
	Opacity  float64
	Lifetime float64 // seconds
	Age      float64 // seconds
}

// rnd is the package random source. Particle randomness is cosmetic; it does
// not participate in the deterministic seeded-curve guarantees.
func rnd() float64 { return rand.Float64() }

// ParticlesConfig parametrizes a Particles primitive.
type ParticlesConfig struct {
	AnimConfig
	// EmissionRate is particles spawned per second. Default 20.
	EmissionRate float64
	// Lifetime is the per-particle lifetime range in seconds. Default 0.5–1.
	Lifetime Range
	// Colors is the palette particles pick from. Empty means white.
	Colors []Color
	// Size is the particle size range in map units. Default 2–4.
	Size Range
	// Speed is the initial speed range in units per second. Default 20–60.
	Speed Range
	// Angle is the emission angle range in degrees. Default 0–360.
	Angle Range
	// Gravity is a constant acceleration applied to every particle.
	Gravity Point
	// MaxParticles caps the pool's free list. Default 128.
	MaxParticles int
}

// Particles emits pooled particles from a fixed origin. Emission stops when
// the duration elapses, but the primitive only completes once every live
// particle has aged out, so bursts never vanish mid-air.
type Particles struct {
	node    ParticleSurface
	cfg     ParticlesConfig
	origin  Point
	pool    *Pool[Particle]
	alive   []*Particle
	accum   float64
	nextID  uint32
	stopped bool
	done    bool
	clock   clock
}

// NewParticles creates a Particles primitive emitting from origin.
func NewParticles(node ParticleSurface, origin Point, cfg ParticlesConfig) *Particles {
	if cfg.EmissionRate <= 0 {
		cfg.EmissionRate = 20
	}
	if cfg.Lifetime == (Range{}) {
		cfg.Lifetime = Range{Min: 0.5, Max: 1}
	}
	if cfg.Size == (Range{}) {
		cfg.Size = Range{Min: 2, Max: 4}
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = Range{Min: 20, Max: 60}
	}
	if cfg.Angle == (Range{}) {
		cfg.Angle = Range{Min: 0, Max: 360}
	}
	if cfg.MaxParticles <= 0 {
		cfg.MaxParticles = 128
	}
	return &Particles{
		node:   node,
		cfg:    cfg,
		origin: origin,
		pool:   NewPool[Particle](cfg.MaxParticles, nil, nil),
		alive:  make([]*Particle, 0, cfg.MaxParticles),
		clock:  newClock(cfg.AnimConfig),
	}
}

// AliveCount returns the number of live particles.
func (e *Particles) AliveCount() int { return len(e.alive) }

func (e *Particles) Update(dt float64) bool {
	if e.done {
		return true
	}
	if e.node.IsDisposed() {
		e.releaseAll()
		e.done = true
		return true
	}

	eased, active, emitDone := e.clock.advance(dt)
	if emitDone {
		e.stopped = true
	}
	if !active && !e.stopped && len(e.alive) == 0 {
		// Still in the delay window.
		return false
	}

	// Age and move existing particles, swap-removing the dead.
	i := 0
	for i < len(e.alive) {
		p := e.alive[i]
		p.Age += dt
		if p.Age >= p.Lifetime {
			last := len(e.alive) - 1
			e.alive[i] = e.alive[last]
			e.alive[last] = nil
			e.alive = e.alive[:last]
			e.pool.Release(p)
			continue
		}
		p.VelX += e.cfg.Gravity.X * dt
		p.VelY += e.cfg.Gravity.Y * dt
		p.X += p.VelX * dt
		p.Y += p.VelY * dt
		p.Opacity = 1 - p.Age/p.Lifetime
		i++
	}

	// Emit while the clock runs.
	if active && !e.clock.done {
		e.accum += e.cfg.EmissionRate * dt
		for e.accum >= 1 {
			e.accum--
			e.spawn()
		}
	}

	e.node.DrawParticles(e.alive)
	e.node.Repaint()
	if active {
		e.clock.notify(eased)
	}

	if e.stopped && len(e.alive) == 0 {
		e.done = true
		e.node.DrawParticles(nil)
		e.node.Repaint()
		e.clock.complete()
		return true
	}
	return false
}

// Cancel releases every particle and clears the surface immediately.
func (e *Particles) Cancel() {
	if e.done {
		return
	}
	e.releaseAll()
	e.done = true
	e.clock.finish()
}

// Done reports whether the emitter finished or was cancelled.
func (e *Particles) Done() bool { return e.done }

func (e *Particles) spawn() {
	p := e.pool.Acquire()
	e.nextID++
	p.ID = e.nextID
	p.X = e.origin.X
	p.Y = e.origin.Y
	angle := e.cfg.Angle.Random() * math.Pi / 180
	speed := e.cfg.Speed.Random()
	p.VelX = math.Cos(angle) * speed
	p.VelY = math.Sin(angle) * speed
	p.Size = e.cfg.Size.Random()
	p.Lifetime = e.cfg.Lifetime.Random()
	if p.Lifetime <= 0 {
		p.Lifetime = 1
	}
	p.Age = 0
	p.Opacity = 1
	if len(e.cfg.Colors) > 0 {
		p.Color = e.cfg.Colors[rand.Intn(len(e.cfg.Colors))]
	} else {
		p.Color = ColorWhite
	}
	e.alive = append(e.alive, p)
}

func (e *Particles) releaseAll() {
	for i, p := range e.alive {
		e.pool.Release(p)
		e.alive[i] = nil
	}
	e.alive = e.alive[:0]
	if !e.node.IsDisposed() {
		e.node.DrawParticles(nil)
		e.node.Repaint()
	}
}

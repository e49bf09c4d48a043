package cinder

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Anim is the shared contract of every primitive, composer, and projectile.
// Update advances the instance by dt seconds and reports true when the
// instance finished during (or before) this call. Finished instances treat
// further updates as no-ops. Cancel stops an in-flight instance; primitives
// that temporarily override a node property restore the pre-animation value
// before returning.
type Anim interface {
	Update(dt float64) bool
	Cancel()
	Done() bool
}

// Progress is the per-tick progress record handed to OnProgress callbacks.
// It is recomputed every tick and never retained by the engine.
type Progress struct {
	Elapsed  float64 // seconds past the delay
	Duration float64 // total active duration in seconds
	Ratio    float64 // raw progress, clamped to [0, 1]
	Eased    float64 // progress after easing
	Done     bool
}

// AnimConfig carries the timing fields shared by every primitive.
type AnimConfig struct {
	// Duration is the active animation time. Zero falls back to one second.
	Duration time.Duration
	// Delay postpones the first node write. No values are written and no
	// progress is reported while the delay is being consumed.
	Delay time.Duration
	// Easing defaults to linear.
	Easing ease.TweenFunc
	// Repeat is the number of extra runs after the first; negative loops
	// forever. Completion callbacks fire only when the final run finishes.
	Repeat int
	// OnProgress fires once per update while the animation is active.
	OnProgress func(Progress)
	// OnComplete fires exactly once, after the final value write.
	OnComplete func()
}

// DefaultDuration is used when a config leaves Duration at zero.
const DefaultDuration = time.Second

// clock implements the shared primitive lifecycle: consume the delay, then
// advance a 0→1 gween tween through the configured easing, tracking raw and
// eased progress. Embedded by every primitive.
type clock struct {
	cfg     AnimConfig
	delay   float64
	dur     float64
	elapsed float64
	tween   *gween.Tween
	repeats int
	done    bool
}

func newClock(cfg AnimConfig) clock {
	fn := cfg.Easing
	if fn == nil {
		fn = ease.Linear
	}
	d := cfg.Duration
	if d <= 0 {
		d = DefaultDuration
	}
	dur := d.Seconds()
	return clock{
		cfg:     cfg,
		delay:   cfg.Delay.Seconds(),
		dur:     dur,
		tween:   gween.New(0, 1, float32(dur), fn),
		repeats: cfg.Repeat,
	}
}

// advance consumes dt. active reports whether a value should be written this
// tick; finished reports that the final run completed during this call.
func (c *clock) advance(dt float64) (eased float64, active, finished bool) {
	if c.done {
		return 0, false, false
	}
	if c.delay > 0 {
		c.delay -= dt
		if c.delay > 0 {
			return 0, false, false
		}
		// Spend the remainder of this tick on the animation itself.
		dt = -c.delay
		c.delay = 0
	}
	c.elapsed += dt
	v, fin := c.tween.Update(float32(dt))
	if fin && c.repeats != 0 {
		if c.repeats > 0 {
			c.repeats--
		}
		c.tween.Reset()
		c.elapsed = 0
		return float64(v), true, false
	}
	if fin {
		c.done = true
	}
	return float64(v), true, fin
}

// progress builds the Progress record for the current tick.
func (c *clock) progress(eased float64) Progress {
	return Progress{
		Elapsed:  min(c.elapsed, c.dur),
		Duration: c.dur,
		Ratio:    Clamp(c.elapsed/c.dur, 0, 1),
		Eased:    eased,
		Done:     c.done,
	}
}

// finish marks the clock done without waiting out the duration. Used by
// Cancel and by disposed-node detection.
func (c *clock) finish() {
	c.done = true
}

// Done reports whether the final run has completed.
func (c *clock) Done() bool { return c.done }

func (c *clock) notify(eased float64) {
	if c.cfg.OnProgress != nil {
		c.cfg.OnProgress(c.progress(eased))
	}
}

func (c *clock) complete() {
	if c.cfg.OnComplete != nil {
		c.cfg.OnComplete()
	}
}

// Runner is the central ticking authority. All active instances registered
// with a Runner advance with one shared delta per frame, which keeps sibling
// effects in lockstep and makes global pause and deterministic single-step
// (for tests) trivial. Instances remain directly usable via Update for hosts
// that prefer per-instance driving.
//
// Runner is not safe for concurrent use; tick it from the host's frame loop.
type Runner struct {
	anims  []Anim
	paused bool
}

// NewRunner returns an empty Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Add registers an instance. Finished instances are removed automatically on
// the update after they complete.
func (r *Runner) Add(a Anim) {
	r.anims = append(r.anims, a)
}

// Update advances all registered instances by dt seconds. No-op while paused.
func (r *Runner) Update(dt float64) {
	if r.paused {
		return
	}
	// Swap-remove finished instances; order among siblings is not part of
	// the contract.
	i := 0
	for i < len(r.anims) {
		if r.anims[i].Update(dt) || r.anims[i].Done() {
			last := len(r.anims) - 1
			r.anims[i] = r.anims[last]
			r.anims[last] = nil
			r.anims = r.anims[:last]
			continue
		}
		i++
	}
}

// Step advances the runner n times by a fixed dt, ignoring pause. Intended
// for deterministic tests and editor single-stepping.
func (r *Runner) Step(n int, dt float64) {
	paused := r.paused
	r.paused = false
	for i := 0; i < n; i++ {
		r.Update(dt)
	}
	r.paused = paused
}

// Pause suspends Update calls until Resume.
func (r *Runner) Pause() { r.paused = true }

// Resume lifts a pause.
func (r *Runner) Resume() { r.paused = false }

// Paused reports whether the runner is paused.
func (r *Runner) Paused() bool { return r.paused }

// Len returns the number of registered (unfinished) instances.
func (r *Runner) Len() int { return len(r.anims) }

// CancelAll cancels and drops every registered instance.
func (r *Runner) CancelAll() {
	for _, a := range r.anims {
		a.Cancel()
	}
	r.anims = r.anims[:0]
}

package cinder

import (
	"math"
	"testing"
	"time"
)

func TestTrailRecordsPositionHistory(t *testing.T) {
	n := NewMemo()
	tr := NewTrail(n, TrailConfig{
		AnimConfig: AnimConfig{Duration: time.Second},
		FadeRate:   0.5,
	})
	positions := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}
	for _, p := range positions {
		n.Pos = p
		tr.Update(0.1)
	}
	if len(n.Path) != 4 {
		t.Fatalf("path length = %d, want 4", len(n.Path))
	}
	// Newest point leads the path.
	if n.Path[0] != (Point{30, 0}) {
		t.Errorf("path head = %v, want {30 0}", n.Path[0])
	}
	if n.Path[3] != (Point{0, 0}) {
		t.Errorf("path tail = %v, want {0 0}", n.Path[3])
	}
	// Older points have faded, so the average opacity sits below 1.
	if n.PathOpacity >= 1 {
		t.Errorf("path opacity = %f, want < 1", n.PathOpacity)
	}
}

func TestTrailCapsSegments(t *testing.T) {
	n := NewMemo()
	tr := NewTrail(n, TrailConfig{
		AnimConfig:  AnimConfig{Duration: 10 * time.Second},
		MaxSegments: 3,
		FadeRate:    0.01,
	})
	for i := 0; i < 8; i++ {
		n.Pos = Point{float64(i), 0}
		tr.Update(0.1)
	}
	if len(n.Path) != 3 {
		t.Errorf("path length = %d, want capped at 3", len(n.Path))
	}
	if n.Path[0] != (Point{7, 0}) {
		t.Errorf("path head = %v, want the newest position", n.Path[0])
	}
}

func TestTrailDropsFadedPoints(t *testing.T) {
	n := NewMemo()
	tr := NewTrail(n, TrailConfig{
		AnimConfig: AnimConfig{Duration: 10 * time.Second},
		FadeRate:   10, // a point dies after 0.1s
	})
	tr.Update(0.2)
	tr.Update(0.2)
	// The first point fully faded before the second update kept it.
	if len(n.Path) != 1 {
		t.Errorf("path length = %d, want 1 after decay", len(n.Path))
	}
}

func TestTrailClearsOnFinishAndCancel(t *testing.T) {
	n := NewMemo()
	tr := NewTrail(n, TrailConfig{AnimConfig: AnimConfig{Duration: 200 * time.Millisecond}})
	tr.Update(0.1)
	tr.Update(0.1)
	if !tr.Done() {
		t.Fatal("trail not done after duration")
	}
	if len(n.Path) != 0 {
		t.Errorf("path not cleared on finish: %d points", len(n.Path))
	}

	n2 := NewMemo()
	tr2 := NewTrail(n2, TrailConfig{AnimConfig: AnimConfig{Duration: time.Second}})
	tr2.Update(0.1)
	tr2.Cancel()
	if len(n2.Path) != 0 {
		t.Errorf("path not cleared on cancel: %d points", len(n2.Path))
	}
	if tr2.pool.InUse() != 0 {
		t.Errorf("%d trail points leaked after cancel", tr2.pool.InUse())
	}
}

func TestGlowSetsAndRestoresShadow(t *testing.T) {
	n := NewMemo()
	n.SetShadow(MustColor("#123456"), 2, 0.1)
	gold := MustColor("#ffd700")
	g := NewGlow(n, GlowConfig{
		AnimConfig: AnimConfig{Duration: 200 * time.Millisecond},
		Color:      gold,
		Blur:       15,
		Opacity:    0.9,
	})
	g.Update(0.1)
	c, blur, op := n.Shadow()
	if c != gold || blur != 15 || op != 0.9 {
		t.Errorf("active shadow = %+v/%f/%f, want gold/15/0.9", c, blur, op)
	}
	g.Update(0.1)
	if !g.Done() {
		t.Fatal("glow not done")
	}
	c, blur, op = n.Shadow()
	if c != MustColor("#123456") || blur != 2 || op != 0.1 {
		t.Errorf("shadow not restored: %+v/%f/%f", c, blur, op)
	}
}

func TestGlowPulseOscillatesOpacity(t *testing.T) {
	n := NewMemo()
	g := NewGlow(n, GlowConfig{
		AnimConfig: AnimConfig{Duration: 10 * time.Second},
		Color:      ColorWhite,
		Pulse:      &GlowPulse{Speed: 1, Min: 0.2, Max: 1.0},
	})
	// Quarter cycle of a 1 Hz sine: peak.
	g.Update(0.25)
	_, _, op := n.Shadow()
	if math.Abs(op-1.0) > 1e-6 {
		t.Errorf("opacity at quarter cycle = %f, want 1.0", op)
	}
	// Three-quarter cycle: trough.
	g.Update(0.5)
	_, _, op = n.Shadow()
	if math.Abs(op-0.2) > 1e-6 {
		t.Errorf("opacity at three-quarter cycle = %f, want 0.2", op)
	}
}

func TestGlowCancelRestores(t *testing.T) {
	n := NewMemo()
	g := NewGlow(n, GlowConfig{
		AnimConfig: AnimConfig{Duration: time.Second},
		Color:      ColorWhite,
	})
	g.Update(0.1)
	g.Cancel()
	if _, blur, op := n.Shadow(); blur != 0 || op != 0 {
		t.Errorf("shadow not restored on cancel: blur=%f opacity=%f", blur, op)
	}
}

func TestPulseOscillatesAroundRestingScale(t *testing.T) {
	n := NewMemo()
	n.SX, n.SY = 2, 2
	p := NewPulse(n, PulseConfig{
		AnimConfig: AnimConfig{Duration: 10 * time.Second},
		ScaleMin:   0.5, ScaleMax: 1.5,
		Frequency: 1,
	})
	p.Update(0.25) // sine peak
	if math.Abs(n.SX-3) > 1e-6 {
		t.Errorf("scale at peak = %f, want 2*1.5 = 3", n.SX)
	}
	p.Update(0.5) // sine trough
	if math.Abs(n.SX-1) > 1e-6 {
		t.Errorf("scale at trough = %f, want 2*0.5 = 1", n.SX)
	}
}

func TestPulseRestoresOnFinish(t *testing.T) {
	n := NewMemo()
	n.SX, n.SY = 2, 2
	n.Alpha = 0.7
	p := NewPulse(n, PulseConfig{
		AnimConfig: AnimConfig{Duration: 300 * time.Millisecond},
		OpacityMin: 0.2, OpacityMax: 1,
	})
	for i := 0; i < 3; i++ {
		p.Update(0.1)
	}
	if !p.Done() {
		t.Fatal("pulse not done")
	}
	if n.SX != 2 || n.SY != 2 {
		t.Errorf("scale not restored: %f,%f", n.SX, n.SY)
	}
	if n.Alpha != 0.7 {
		t.Errorf("opacity not restored: %f", n.Alpha)
	}
}

func TestFlashSpikesAndRestores(t *testing.T) {
	n := NewMemo()
	n.Alpha = 0.4
	f := NewFlash(n, FlashConfig{
		AnimConfig: AnimConfig{Duration: time.Second},
		Count:      1,
	})
	// Spike peak at the middle of the single cycle.
	f.Update(0.5)
	if math.Abs(n.Alpha-1) > 1e-6 {
		t.Errorf("opacity at spike peak = %f, want 1", n.Alpha)
	}
	f.Update(0.5)
	if !f.Done() {
		t.Fatal("flash not done")
	}
	if n.Alpha != 0.4 {
		t.Errorf("opacity not restored: %f", n.Alpha)
	}
}

func TestFlashColorBlends(t *testing.T) {
	n := NewMemo()
	n.FillColor = MustColor("#000000")
	red := MustColor("#ff0000")
	f := NewFlash(n, FlashConfig{
		AnimConfig: AnimConfig{Duration: time.Second},
		Count:      1,
		Color:      &red,
	})
	f.Update(0.5)
	if !colorNear(n.FillColor, red) {
		t.Errorf("fill at spike peak = %+v, want red", n.FillColor)
	}
	f.Update(0.5)
	if !colorNear(n.FillColor, MustColor("#000000")) {
		t.Errorf("fill not restored: %+v", n.FillColor)
	}
}

func TestFlashHalfIntensity(t *testing.T) {
	n := NewMemo()
	n.Alpha = 0
	f := NewFlash(n, FlashConfig{
		AnimConfig: AnimConfig{Duration: time.Second},
		Count:      1,
		Intensity:  0.5,
	})
	f.Update(0.5)
	if math.Abs(n.Alpha-0.5) > 1e-6 {
		t.Errorf("opacity at half intensity = %f, want 0.5", n.Alpha)
	}
}

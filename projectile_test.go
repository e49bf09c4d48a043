package cinder

import (
	"math"
	"testing"
	"time"
)

func TestProjectileLifecycle(t *testing.T) {
	n := NewMemo()
	completed := false
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Color:      "#ff0000",
		Duration:   time.Second,
		OnComplete: func() { completed = true },
	})
	if err != nil {
		t.Fatal(err)
	}
	// Hidden until the first active tick.
	if n.Shown {
		t.Error("node visible before spawn")
	}
	p.Update(0.5)
	if !n.Shown {
		t.Error("node not visible after spawn")
	}
	if math.Abs(n.Pos.X-50) > 1e-6 {
		t.Errorf("mid-flight X = %f, want 50", n.Pos.X)
	}
	if !colorNear(n.FillColor, MustColor("#ff0000")) {
		t.Errorf("fill = %+v, want red", n.FillColor)
	}
	p.Update(0.5) // travel finishes, impact begins
	if p.Done() || completed {
		t.Fatal("projectile done before the impact transition played")
	}
	if n.Pos != (Point{100, 0}) {
		t.Errorf("position at travel end = %v, want {100 0}", n.Pos)
	}
	// Impact: opacity falls, scale grows, then the node hides.
	p.Update(0.1)
	if n.Alpha >= 1 {
		t.Error("opacity did not fall during impact")
	}
	if n.SX <= 1 {
		t.Error("scale did not grow during impact")
	}
	for i := 0; i < 5 && !p.Done(); i++ {
		p.Update(0.1)
	}
	if !p.Done() || !completed {
		t.Fatal("projectile never completed")
	}
	if n.Shown {
		t.Error("node still visible after impact")
	}
	if n.Alpha != 1 {
		t.Errorf("opacity not reset after impact: %f", n.Alpha)
	}
}

func TestProjectileRejectsBadColor(t *testing.T) {
	if _, err := NewProjectile(NewMemo(), ProjectileConfig{Color: "chartreuse"}); err == nil {
		t.Error("invalid color accepted")
	}
}

func TestProjectileDefaults(t *testing.T) {
	n := NewMemo()
	p, err := NewProjectile(n, ProjectileConfig{To: Point{10, 0}})
	if err != nil {
		t.Fatal(err)
	}
	st := p.State()
	if st.Size != DefaultProjectileSize {
		t.Errorf("default size = %f, want %f", st.Size, DefaultProjectileSize)
	}
	if st.Color != ColorWhite {
		t.Errorf("default color = %+v, want white", st.Color)
	}
}

func TestProjectileStateTracking(t *testing.T) {
	n := NewMemo()
	var ratios []float64
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Duration: time.Second,
		OnProgress: func(pr Progress, st *ProjectileState) {
			ratios = append(ratios, pr.Ratio)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(0.25)
	p.Update(0.25)
	st := p.State()
	if math.Abs(st.Progress-0.5) > 1e-6 {
		t.Errorf("Progress = %f, want 0.5", st.Progress)
	}
	if math.Abs(st.DistanceTraveled-50) > 1e-6 {
		t.Errorf("DistanceTraveled = %f, want 50", st.DistanceTraveled)
	}
	if math.Abs(st.Elapsed-0.5) > 1e-6 {
		t.Errorf("Elapsed = %f, want 0.5", st.Elapsed)
	}
	if len(ratios) != 2 || math.Abs(ratios[1]-0.5) > 1e-6 {
		t.Errorf("OnProgress ratios = %v", ratios)
	}
}

func TestProjectileMutationMidFlight(t *testing.T) {
	n := NewMemo()
	grown := 16.0
	star := ShapeStar
	var mutatedAt []int
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Shape:    ShapeCircle,
		Size:     8,
		Duration: time.Second,
		Mutations: []Mutation{
			{
				Trigger: ProgressTrigger(0.5),
				Size:    &grown,
				Shape:   &star,
			},
		},
		OnMutate: func(i int, st *ProjectileState) { mutatedAt = append(mutatedAt, i) },
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(0.25)
	if n.CurShape != ShapeCircle || n.SX != 1 {
		t.Errorf("pre-mutation shape=%v scale=%f", n.CurShape, n.SX)
	}
	p.Update(0.25) // progress hits 0.5
	if n.CurShape != ShapeStar {
		t.Errorf("shape after mutation = %v, want star", n.CurShape)
	}
	if math.Abs(n.SX-2) > 1e-6 {
		t.Errorf("scale after mutation = %f, want 16/8 = 2", n.SX)
	}
	if len(mutatedAt) != 1 || mutatedAt[0] != 0 {
		t.Errorf("OnMutate indices = %v, want [0]", mutatedAt)
	}
	p.Update(0.25)
	if len(mutatedAt) != 1 {
		t.Error("mutation fired twice")
	}
}

func TestProjectileEffectAttachments(t *testing.T) {
	n := NewMemo()
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Duration: time.Second,
		Effects:  []string{EffectTrail, EffectGlow},
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(0.25)
	p.Update(0.25)
	if len(n.Path) == 0 {
		t.Error("trail attachment wrote no path")
	}
	if _, _, op := n.Shadow(); op == 0 {
		t.Error("glow attachment wrote no shadow")
	}
	// Run through impact; attachments are cancelled and their writes undone.
	for i := 0; i < 12 && !p.Done(); i++ {
		p.Update(0.1)
	}
	if !p.Done() {
		t.Fatal("projectile never completed")
	}
	if len(n.Path) != 0 {
		t.Error("trail path not cleared at teardown")
	}
	if _, _, op := n.Shadow(); op != 0 {
		t.Error("glow shadow not restored at teardown")
	}
}

func TestProjectileMutationSwapsEffects(t *testing.T) {
	n := NewMemo()
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Duration: time.Second,
		Effects:  []string{EffectTrail},
		Mutations: []Mutation{
			{
				Trigger: ProgressTrigger(0.5),
				Effects: []string{EffectGlow},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(0.25)
	if len(n.Path) == 0 {
		t.Fatal("trail inactive before mutation")
	}
	p.Update(0.25) // mutation replaces trail with glow
	p.Update(0.05)
	if len(n.Path) != 0 {
		t.Error("trail still active after effects swap")
	}
	if _, _, op := n.Shadow(); op == 0 {
		t.Error("glow not started by effects swap")
	}
}

func TestProjectileCancelSkipsOnComplete(t *testing.T) {
	n := NewMemo()
	completed := false
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Duration:   time.Second,
		OnComplete: func() { completed = true },
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(0.25)
	p.Cancel()
	if !p.Done() {
		t.Error("Done false after Cancel")
	}
	if completed {
		t.Error("OnComplete fired on Cancel")
	}
	if n.Shown {
		t.Error("node visible after Cancel")
	}
}

func TestProjectileDisposedNodeStops(t *testing.T) {
	n := NewMemo()
	p, err := NewProjectile(n, ProjectileConfig{
		From: Point{0, 0}, To: Point{100, 0},
		Duration: time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(0.25)
	n.Dispose()
	if !p.Update(0.25) {
		t.Error("Update on disposed node returned false")
	}
	if !p.Done() {
		t.Error("projectile not done after disposal")
	}
}

func TestProjectileSeededMotion(t *testing.T) {
	from, to := Point{0, 0}, Point{200, 100}
	n := NewMemo()
	p, err := NewProjectile(n, ProjectileConfig{
		From: from, To: to,
		Duration: time.Second,
		Motion:   MissileMotion(from, to, "magic-missile"),
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Update(1)
	if !pointNear(n.Pos, to, 1e-6) {
		t.Errorf("seeded flight final position = %v, want %v", n.Pos, to)
	}
}

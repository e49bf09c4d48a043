package cinder

// Node is the scene-node handle the engine writes computed values into. The
// handle is owned by the host's rendering layer; the engine never walks a
// render tree or draws pixels, it only pushes values through this interface
// and requests repaints.
//
// A disposed node stops every animation that targets it: primitives check
// IsDisposed before each write and finish immediately when it reports true.
type Node interface {
	Position() Point
	SetPosition(Point)

	Rotation() float64
	SetRotation(deg float64)

	Scale() (sx, sy float64)
	SetScale(sx, sy float64)

	Opacity() float64
	SetOpacity(float64)

	Fill() Color
	SetFill(Color)

	Stroke() Color
	SetStroke(Color)

	Visible() bool
	SetVisible(bool)

	// Repaint asks the owning surface to redraw this node.
	Repaint()

	IsDisposed() bool
}

// ShadowNode is implemented by handles that expose a shadow-style halo.
// The Glow primitive requires it; on a plain Node the glow step is skipped.
type ShadowNode interface {
	Node
	Shadow() (color Color, blur, opacity float64)
	SetShadow(color Color, blur, opacity float64)
}

// PathNode is implemented by handles that can display a poly-line. The Trail
// primitive writes its decaying point history through it.
type PathNode interface {
	Node
	SetPath(points []Point, opacity float64)
	ClearPath()
}

// ParticleSurface is implemented by handles that can display a particle set.
// The slice passed to DrawParticles is only valid for the duration of the
// call; surfaces that retain particles must copy them.
type ParticleSurface interface {
	Node
	DrawParticles(particles []*Particle)
}

// ShapeNode is implemented by handles that can switch their drawn form.
// Projectiles forward shape changes (including mid-flight mutations) to it.
type ShapeNode interface {
	Node
	SetShape(Shape)
}

// Memo is an in-memory Node implementing every optional handle extension.
// It records the last written values and counts repaints, which makes it the
// natural double for tests and a reasonable default for headless hosts.
type Memo struct {
	Pos         Point
	Rot         float64
	SX, SY      float64
	Alpha       float64
	FillColor   Color
	StrokeColor Color
	Shown       bool
	CurShape    Shape
	ShadowColor Color
	ShadowBlur  float64
	ShadowAlpha float64
	Path        []Point
	PathOpacity float64
	Particles   []*Particle
	Repaints    int
	disposed    bool
}

// NewMemo returns a visible Memo node with identity transform and full
// opacity, mirroring the defaults a freshly created scene node carries.
func NewMemo() *Memo {
	return &Memo{SX: 1, SY: 1, Alpha: 1, Shown: true, FillColor: ColorWhite, StrokeColor: ColorWhite}
}

func (m *Memo) Position() Point           { return m.Pos }
func (m *Memo) SetPosition(p Point)       { m.Pos = p }
func (m *Memo) Rotation() float64         { return m.Rot }
func (m *Memo) SetRotation(deg float64)   { m.Rot = deg }
func (m *Memo) Scale() (float64, float64) { return m.SX, m.SY }
func (m *Memo) SetScale(sx, sy float64)   { m.SX, m.SY = sx, sy }
func (m *Memo) Opacity() float64          { return m.Alpha }
func (m *Memo) SetOpacity(a float64)      { m.Alpha = a }
func (m *Memo) Fill() Color               { return m.FillColor }
func (m *Memo) SetFill(c Color)           { m.FillColor = c }
func (m *Memo) Stroke() Color             { return m.StrokeColor }
func (m *Memo) SetStroke(c Color)         { m.StrokeColor = c }
func (m *Memo) Visible() bool             { return m.Shown }
func (m *Memo) SetVisible(v bool)         { m.Shown = v }
func (m *Memo) Repaint()                  { m.Repaints++ }
func (m *Memo) IsDisposed() bool          { return m.disposed }

// Dispose marks the node dead. Animations targeting it finish on their next
// update without writing.
func (m *Memo) Dispose() { m.disposed = true }

func (m *Memo) Shadow() (Color, float64, float64) {
	return m.ShadowColor, m.ShadowBlur, m.ShadowAlpha
}

func (m *Memo) SetShadow(c Color, blur, opacity float64) {
	m.ShadowColor, m.ShadowBlur, m.ShadowAlpha = c, blur, opacity
}

func (m *Memo) SetPath(points []Point, opacity float64) {
	m.Path = append(m.Path[:0], points...)
	m.PathOpacity = opacity
}

func (m *Memo) ClearPath() {
	m.Path = m.Path[:0]
	m.PathOpacity = 0
}

func (m *Memo) DrawParticles(ps []*Particle) {
	m.Particles = append(m.Particles[:0], ps...)
}

func (m *Memo) SetShape(s Shape) { m.CurShape = s }

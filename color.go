package cinder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default projectile tint.
var ColorWhite = Color{1, 1, 1, 1}

// ParseColor parses a CSS-style color string: "#rgb", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)" or "rgba(r, g, b, a)". Hex parsing is delegated to
// go-colorful; the 8-digit and functional forms are layered on top.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[4:len(s)-1], false)
	}
	return Color{}, fmt.Errorf("cinder: invalid color format %q", s)
}

func parseHex(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("cinder: invalid color format %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("cinder: invalid color format %q", s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseRGB(args string, hasAlpha bool) (Color, error) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("cinder: invalid color format %q", args)
	}
	var comps [4]float64
	comps[3] = 1
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Color{}, fmt.Errorf("cinder: invalid color format %q", args)
		}
		if i < 3 {
			comps[i] = Clamp(v, 0, 255) / 255
		} else {
			comps[i] = Clamp(v, 0, 1)
		}
	}
	return Color{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

// MustColor parses a color string and panics on failure. Intended for
// compile-time-constant colors in templates and examples.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// LerpColor interpolates between two colors component-wise, including alpha.
// RGB blending is done in RGB space via go-colorful to match the straight
// per-channel interpolation the editor has always used.
func LerpColor(a, b Color, t float64) Color {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	m := ca.BlendRgb(cb, t)
	return Color{R: m.R, G: m.G, B: m.B, A: Lerp(a.A, b.A, t)}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp(a, 0, 1)
	return c
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// String returns the color in rgba() functional notation.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(Clamp(c.R, 0, 1)*255+0.5),
		int(Clamp(c.G, 0, 1)*255+0.5),
		int(Clamp(c.B, 0, 1)*255+0.5),
		strconv.FormatFloat(Clamp(c.A, 0, 1), 'g', 3, 64))
}

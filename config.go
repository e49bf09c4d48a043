package cinder

import "fmt"

// PrimitiveType tags a PrimitiveConfig variant. The set is closed: composers
// and validators switch over it exhaustively.
type PrimitiveType uint8

const (
	PrimitiveMove PrimitiveType = iota
	PrimitiveRotate
	PrimitiveScale
	PrimitiveColor
	PrimitiveFade
	PrimitiveTrail
	PrimitiveGlow
	PrimitivePulse
	PrimitiveFlash
	PrimitiveParticles
)

// String returns the lowercase primitive name.
func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveMove:
		return "move"
	case PrimitiveRotate:
		return "rotate"
	case PrimitiveScale:
		return "scale"
	case PrimitiveColor:
		return "color"
	case PrimitiveFade:
		return "fade"
	case PrimitiveTrail:
		return "trail"
	case PrimitiveGlow:
		return "glow"
	case PrimitivePulse:
		return "pulse"
	case PrimitiveFlash:
		return "flash"
	case PrimitiveParticles:
		return "particles"
	}
	return "unknown"
}

// PrimitiveConfig is the tagged union composers schedule. Type selects which
// variant pointer is consulted; the others are ignored. Use the Step*
// constructors to build well-formed values.
type PrimitiveConfig struct {
	Type PrimitiveType

	Move      *MoveConfig
	Rotate    *RotateConfig
	Scale     *ScaleConfig
	Color     *ColorConfig
	Fade      *FadeConfig
	Trail     *TrailConfig
	Glow      *GlowConfig
	Pulse     *PulseConfig
	Flash     *FlashConfig
	Particles *ParticlesConfig

	// ParticlesOrigin is the emission origin for a particles step.
	ParticlesOrigin Point
}

func StepMove(cfg MoveConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveMove, Move: &cfg}
}

func StepRotate(cfg RotateConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveRotate, Rotate: &cfg}
}

func StepScale(cfg ScaleConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveScale, Scale: &cfg}
}

func StepColor(cfg ColorConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveColor, Color: &cfg}
}

func StepFade(cfg FadeConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveFade, Fade: &cfg}
}

func StepTrail(cfg TrailConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveTrail, Trail: &cfg}
}

func StepGlow(cfg GlowConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveGlow, Glow: &cfg}
}

func StepPulse(cfg PulseConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitivePulse, Pulse: &cfg}
}

func StepFlash(cfg FlashConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveFlash, Flash: &cfg}
}

func StepParticles(origin Point, cfg ParticlesConfig) PrimitiveConfig {
	return PrimitiveConfig{Type: PrimitiveParticles, Particles: &cfg, ParticlesOrigin: origin}
}

// Build instantiates the configured primitive against node. It fails when
// the variant pointer for Type is missing, or when the primitive requires a
// handle shape the node does not implement (Glow needs ShadowNode, Trail
// needs PathNode, Particles needs ParticleSurface). Composers treat such a
// failure as a logged, immediately-completed no-op step.
func (c PrimitiveConfig) Build(node Node) (Anim, error) {
	switch c.Type {
	case PrimitiveMove:
		if c.Move == nil {
			return nil, fmt.Errorf("cinder: move step missing config")
		}
		return NewMove(node, *c.Move), nil
	case PrimitiveRotate:
		if c.Rotate == nil {
			return nil, fmt.Errorf("cinder: rotate step missing config")
		}
		return NewRotate(node, *c.Rotate), nil
	case PrimitiveScale:
		if c.Scale == nil {
			return nil, fmt.Errorf("cinder: scale step missing config")
		}
		return NewScale(node, *c.Scale), nil
	case PrimitiveColor:
		if c.Color == nil {
			return nil, fmt.Errorf("cinder: color step missing config")
		}
		return NewColorFade(node, *c.Color), nil
	case PrimitiveFade:
		if c.Fade == nil {
			return nil, fmt.Errorf("cinder: fade step missing config")
		}
		return NewFade(node, *c.Fade), nil
	case PrimitiveTrail:
		if c.Trail == nil {
			return nil, fmt.Errorf("cinder: trail step missing config")
		}
		pn, ok := node.(PathNode)
		if !ok {
			return nil, fmt.Errorf("cinder: trail step requires a PathNode handle")
		}
		return NewTrail(pn, *c.Trail), nil
	case PrimitiveGlow:
		if c.Glow == nil {
			return nil, fmt.Errorf("cinder: glow step missing config")
		}
		sn, ok := node.(ShadowNode)
		if !ok {
			return nil, fmt.Errorf("cinder: glow step requires a ShadowNode handle")
		}
		return NewGlow(sn, *c.Glow), nil
	case PrimitivePulse:
		if c.Pulse == nil {
			return nil, fmt.Errorf("cinder: pulse step missing config")
		}
		return NewPulse(node, *c.Pulse), nil
	case PrimitiveFlash:
		if c.Flash == nil {
			return nil, fmt.Errorf("cinder: flash step missing config")
		}
		return NewFlash(node, *c.Flash), nil
	case PrimitiveParticles:
		if c.Particles == nil {
			return nil, fmt.Errorf("cinder: particles step missing config")
		}
		ps, ok := node.(ParticleSurface)
		if !ok {
			return nil, fmt.Errorf("cinder: particles step requires a ParticleSurface handle")
		}
		return NewParticles(ps, c.ParticlesOrigin, *c.Particles), nil
	}
	return nil, fmt.Errorf("cinder: unknown primitive type %d", c.Type)
}

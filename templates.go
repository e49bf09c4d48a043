package cinder

import (
	"time"

	"github.com/tanema/gween/ease"
)

// RegisterBuiltins installs the stock spell effect templates. Hosts can
// overwrite or unregister any of them; ids are stable and safe to persist
// in map files.
func RegisterBuiltins(r *Registry) error {
	for _, t := range builtinTemplates() {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func builtinTemplates() []Template {
	return []Template{
		{
			ID:          "magic-missile",
			Name:        "Magic Missile",
			Description: "Seeded wobbling bolt with a fading trail.",
			Category:    "attack",
			Tags:        []string{"arcane", "bolt", "seeded"},
			Version:     "1",
			Build: func(from, to Point) ProjectileConfig {
				return ProjectileConfig{
					From: from, To: to,
					Shape:    ShapeCircle,
					Color:    "#b388ff",
					Size:     6,
					Duration: 700 * time.Millisecond,
					Motion:   MissileMotion(from, to, "magic-missile"),
					Effects:  []string{EffectTrail, EffectGlow},
				}
			},
		},
		{
			ID:          "fireball",
			Name:        "Fireball",
			Description: "Arcing ball of flame that flares as it closes in.",
			Category:    "attack",
			Tags:        []string{"fire", "area"},
			Version:     "1",
			Build: func(from, to Point) ProjectileConfig {
				size := 10.0
				grown := 16.0
				hot := MustColor("#ff9d2e")
				return ProjectileConfig{
					From: from, To: to,
					Shape:    ShapeCircle,
					Color:    "#ff4500",
					Size:     size,
					Duration: time.Second,
					Easing:   ease.InQuad,
					Motion:   ArcMotion(from, to, -40),
					Effects:  []string{EffectGlow},
					Mutations: []Mutation{
						{
							Trigger: ProgressTrigger(0.75),
							Size:    &grown,
							Color:   &hot,
						},
					},
				}
			},
		},
		{
			ID:          "stone-rain",
			Name:        "Stone Rain",
			Description: "Boulder accelerating straight down onto the target.",
			Category:    "attack",
			Tags:        []string{"earth", "area"},
			Version:     "1",
			Build: func(from, to Point) ProjectileConfig {
				return ProjectileConfig{
					From: from, To: to,
					Shape:    ShapeRectangle,
					Color:    "#8d6e63",
					Size:     12,
					Duration: 800 * time.Millisecond,
					Motion:   GravityMotion(from, to),
				}
			},
		},
		{
			ID:          "frost-bolt",
			Name:        "Frost Bolt",
			Description: "Straight shard that ices over at half range.",
			Category:    "attack",
			Tags:        []string{"frost", "bolt"},
			Version:     "1",
			Build: func(from, to Point) ProjectileConfig {
				iced := MustColor("#e0f7ff")
				star := ShapeStar
				return ProjectileConfig{
					From: from, To: to,
					Shape:    ShapeTriangle,
					Color:    "#4fc3f7",
					Size:     8,
					Duration: 600 * time.Millisecond,
					Effects:  []string{EffectTrail},
					Mutations: []Mutation{
						{
							Trigger: ProgressTrigger(0.5),
							Color:   &iced,
							Shape:   &star,
						},
					},
				}
			},
		},
		{
			ID:          "heal-burst",
			Name:        "Heal Burst",
			Description: "Gentle orb circling in before settling on the ally.",
			Category:    "support",
			Tags:        []string{"holy", "ally"},
			Version:     "1",
			Build: func(from, to Point) ProjectileConfig {
				return ProjectileConfig{
					From: from, To: to,
					Shape:    ShapeCircle,
					Color:    "#a5d6a7",
					Size:     7,
					Duration: 900 * time.Millisecond,
					Easing:   ease.OutQuad,
					Motion:   SpiralMotion(to, 60, 0, 1, 90, false),
					Effects:  []string{EffectGlow},
				}
			},
		},
	}
}

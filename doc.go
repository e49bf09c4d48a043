// Package cinder is the animation composition engine of the mapforge
// battle-map editor.
//
// Cinder computes time-driven visual effects — projectiles, trails, glows,
// particle bursts — and writes the results through a scene-node handle owned
// by the host's rendering layer. The engine never draws pixels itself.
//
// # Driving animations
//
// Every animation implements [Anim]: call Update once per frame with the
// elapsed seconds, or register instances with a [Runner] and tick that:
//
//	runner := cinder.NewRunner()
//	runner.Add(cinder.NewMove(node, cinder.MoveConfig{
//		From: a, To: b,
//		AnimConfig: cinder.AnimConfig{Duration: time.Second, Easing: ease.OutCubic},
//	}))
//	// each frame:
//	runner.Update(dt)
//
// The Runner distributes one shared delta to all active instances, supports
// global pause/resume, and single-steps deterministically for tests.
//
// # Primitives and composers
//
// Ten primitives animate one visual property each: [Move], [Rotate],
// [Scale], [ColorFade], [Fade], [Trail], [Glow], [Pulse], [Flash], and
// [Particles]. Composers schedule lists of primitive steps: [Sequential],
// [Parallel], and [Conditional].
//
// # Templates and projectiles
//
// A [Registry] holds named, tagged effect templates; a [Factory] merges a
// template's output with runtime parameters and overrides, validates the
// result, and hands back a [ProjectileConfig] ready for [NewProjectile]:
//
//	reg := cinder.NewRegistry()
//	cinder.RegisterBuiltins(reg)
//	factory := cinder.NewFactory(reg)
//	cfg, err := factory.Create("fireball", cinder.Params{From: a, To: b}, nil)
//
// Projectiles run a spawn→travel→impact lifecycle, can carry effect
// attachments (trail, glow), and mutate mid-flight when [Mutation] triggers
// fire.
//
// Easing is expressed as gween's ease.TweenFunc throughout, so the stock
// [gween] easings combine freely with cinder's combinators (EaseReverse,
// EaseMirror, EaseChain, EaseBezier, EaseElastic, EaseStepped, EaseScale).
//
// [gween]: https://github.com/tanema/gween
package cinder

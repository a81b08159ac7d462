// Package ember is the update core of a 2D particle and animation engine.
//
// Ember has no renderer of its own. It stores particles as flat float64
// buffers, runs them through a pipeline of pluggable modules once per
// logical tick, and schedules time-windowed animations against virtual
// clocks. The ebitenhost sub-package drives a [Scene] from an [Ebitengine]
// game loop and draws particles as tinted quads.
//
// # Quick start
//
//	scene, err := ember.NewScene(ember.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	ps := scene.NewParticleSystem()
//	pos := ps.MustBind(2)
//	vel := ps.MustBind(2)
//	ps.AddUpdateModule(ember.VelocityModule{Position: pos, Velocity: vel})
//
//	ps.Add(60, 100, 100, 1, -2) // lifetime, then pos and vel
//
//	for {
//		scene.Tick()     // once per logical tick
//		scene.Frame(0.5) // once per rendered frame
//	}
//
// # Particles
//
// A [Particle] is a []float64. Field 0 holds the remaining lifetime and
// field 1 the age, both in ticks. Further fields are reserved with
// [ParticleSystem.Bind], which returns a [Binding] naming a contiguous
// range. The layout is fixed once the first particle is added.
//
// Each [ParticleSystem.Update] ages every particle by one tick, removes
// the ones whose lifetime ran out, and runs the [UpdateModule] list on
// the rest followed by the [BatchUpdateModule] list. Survivors keep their
// relative order. Removed buffers go to a bounded pool and are reused by
// later calls to [ParticleSystem.Add], which may safely be made from
// inside a module.
//
// [ParticleSystem.Render] hands the live particles and the
// [RenderPrepModule] list to each [RenderModule]. Built-in modules cover
// velocity, acceleration, drag and eased interpolation over a particle's
// life. An [Emitter] spawns particles at a steady or fractional rate.
//
// # Animation
//
// An [Animator] holds animations ordered by start time and updates the
// ones whose window [start, end) contains its clock's time. Expired
// animations receive one final update at their end value and, when
// [Animator.DeletePastAnimations] is set, are removed. Each update only
// visits animations that have already started.
//
// [Animation] drives a [Property] between two values with an optional
// [gween] easing. Properties can be built from pointers, closures, or
// resolved by dotted path from a [PropertyRegistry]:
//
//	reg := ember.NewPropertyRegistry[*Sprite]()
//	ember.Register(reg, "pos.x",
//		func(s *Sprite) float64 { return s.X },
//		func(s *Sprite, v float64) { s.X = v })
//
//	x, err := ember.Resolve[*Sprite, float64](reg, hero, "pos.x")
//	anim := ember.NewAnimation(x, 0, 320, ember.LerpFloat64, 0, 60)
//	anim.Easing = ease.OutBounce
//	animator.Add(anim)
//
// # Time
//
// [TickCounters] count screen ticks, which always advance, and world
// ticks, which stop while paused. Each animator owns a [Clock] that maps
// one of them to virtual time with its own offset and speed. Changing the
// time, speed or source never makes the clock jump.
//
// # Configuration and logging
//
// [Config] is loaded from YAML with [LoadConfig] or [LoadConfigFile] and
// sets the pool size, animator defaults, debug mode and log output.
// Logging uses [zap]; in debug mode the scene logs per-tick and per-frame
// stats.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [zap]: https://pkg.go.dev/go.uber.org/zap
package ember

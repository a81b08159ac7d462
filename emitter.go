package ember

// Ticker is anything a Scene advances once per logical tick before its
// particle systems update.
type Ticker interface {
	Tick()
}

// SpawnFunc initializes a freshly added particle. It receives the particle
// after its lifetime and age are set and every other field is zero.
type SpawnFunc func(p Particle)

// Emitter spawns particles into a ParticleSystem at a steady rate.
// Fractional rates accumulate across ticks, so a Rate of 0.5 spawns one
// particle every other tick.
type Emitter struct {
	// Rate is the number of particles spawned per tick.
	Rate float64
	// Lifetime is the range of particle lifetimes in ticks.
	Lifetime Range
	// Spawn sets up each new particle. May be nil.
	Spawn SpawnFunc

	system *ParticleSystem
	accum  float64
	active bool
}

// NewEmitter creates a stopped emitter feeding system.
func NewEmitter(system *ParticleSystem, rate float64, lifetime Range, spawn SpawnFunc) *Emitter {
	return &Emitter{
		Rate:     rate,
		Lifetime: lifetime,
		Spawn:    spawn,
		system:   system,
	}
}

// Start begins emitting particles.
func (e *Emitter) Start() {
	e.active = true
}

// Stop stops emitting new particles. Existing particles live out.
func (e *Emitter) Stop() {
	e.active = false
	e.accum = 0
}

// Active reports whether the emitter is currently emitting.
func (e *Emitter) Active() bool {
	return e.active
}

// Tick spawns however many particles have accumulated this tick.
func (e *Emitter) Tick() {
	if !e.active || e.Rate <= 0 {
		return
	}
	e.accum += e.Rate
	for e.accum >= 1.0 {
		e.accum -= 1.0
		e.Burst(1)
	}
}

// Burst spawns n particles immediately, regardless of whether the emitter
// is active.
func (e *Emitter) Burst(n int) {
	for range n {
		life := e.Lifetime.Random()
		if life <= 0 {
			life = 1
		}
		p := e.system.Add(life)
		if e.Spawn != nil {
			e.Spawn(p)
		}
	}
}

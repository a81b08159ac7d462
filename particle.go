package ember

import "go.uber.org/zap"

// Particle is a fixed-length record of simulation fields. Field 0 is the
// remaining lifetime and field 1 the age, both in ticks; the rest belong to
// whichever module bound them.
type Particle []float64

// defaultPoolSize is the number of expired buffers kept for reuse when no
// size is configured.
const defaultPoolSize = 1000

// ParticleSystem owns a set of live particles, a pool of recycled buffers,
// and the module pipeline that simulates and renders them.
//
// A ParticleSystem is driven from a single goroutine. Add may be called from
// inside update modules; the new particle joins the live set but is not
// updated until the next pass.
type ParticleSystem struct {
	// PoolSize caps how many expired buffers are retained for reuse. It does
	// not limit how many particles may be live at once.
	PoolSize int

	particles  []Particle
	pool       []Particle
	fieldCount int
	frozen     bool

	updateModules      []UpdateModule
	batchUpdateModules []BatchUpdateModule
	renderPrepModules  []RenderPrepModule
	renderModules      []RenderModule

	log *zap.Logger
}

// NewParticleSystem creates an empty system with only the reserved lifetime
// and age fields in its layout.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		PoolSize:   defaultPoolSize,
		fieldCount: reservedFields,
		log:        zap.NewNop(),
	}
}

// SetLogger replaces the system's logger. A nil logger disables logging.
func (s *ParticleSystem) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// Add creates a particle with the given lifetime in ticks. values fill the
// fields after the reserved prefix in layout order; missing values are zero
// and surplus values are dropped. The returned particle may be mutated
// further by the caller.
func (s *ParticleSystem) Add(lifetime float64, values ...float64) Particle {
	s.frozen = true

	var p Particle
	if n := len(s.pool); n > 0 {
		p = s.pool[n-1]
		s.pool[n-1] = nil
		s.pool = s.pool[:n-1]
	} else {
		p = make(Particle, s.fieldCount)
	}

	p[0] = lifetime
	p[1] = 0
	n := copy(p[reservedFields:], values)
	clear(p[reservedFields+n:])

	if n < len(values) {
		if ce := s.log.Check(zap.DebugLevel, "particle values truncated"); ce != nil {
			ce.Write(zap.Int("supplied", len(values)), zap.Int("accepted", n))
		}
	}

	s.particles = append(s.particles, p)
	return p
}

// Update advances every live particle by one tick. Particles whose lifetime
// runs out are removed before any module sees them; the rest age by one
// tick and pass through each UpdateModule in registration order. Batch
// modules then run once over the surviving set.
func (s *ParticleSystem) Update() {
	n := len(s.particles)
	w := 0
	for i := 0; i < n; i++ {
		p := s.particles[i]
		life := p[0] - 1
		if life <= 0 {
			s.recycle(p)
			continue
		}
		p[0] = life
		p[1]++

		// Keep the survivor before running modules so a module that grows
		// the slice copies it along.
		s.particles[w] = p
		w++
		for _, m := range s.updateModules {
			m.Update(p)
		}
	}

	// Particles added during the pass sit after index n; slide them down
	// behind the survivors.
	total := len(s.particles)
	added := copy(s.particles[w:], s.particles[n:total])
	live := w + added
	clear(s.particles[live:total])
	s.particles = s.particles[:live]

	for _, m := range s.batchUpdateModules {
		m.UpdateBatch(s.particles)
	}
}

// Render invokes each RenderModule in registration order with the live
// particles and the render-prep modules.
func (s *ParticleSystem) Render() {
	for _, m := range s.renderModules {
		m.Render(s.particles, s.renderPrepModules)
	}
}

// recycle returns p to the pool if there is room under PoolSize.
func (s *ParticleSystem) recycle(p Particle) {
	if len(s.pool) < s.PoolSize {
		s.pool = append(s.pool, p)
	}
}

// Clear removes every live particle, returning buffers to the pool.
func (s *ParticleSystem) Clear() {
	for _, p := range s.particles {
		s.recycle(p)
	}
	clear(s.particles)
	s.particles = s.particles[:0]
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The returned slice MUST NOT be
// appended to or reordered; it is invalidated by the next Update or Add.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// PooledCount returns the number of buffers waiting for reuse.
func (s *ParticleSystem) PooledCount() int {
	return len(s.pool)
}

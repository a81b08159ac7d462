package ember

// UpdateModule runs once per live particle per tick.
type UpdateModule interface {
	Update(p Particle)
}

// BatchUpdateModule runs once per tick over the whole live set, after every
// UpdateModule has run. Suited to spatial partitioning or global forces.
type BatchUpdateModule interface {
	UpdateBatch(particles []Particle)
}

// RenderPrepModule prepares a particle for drawing. Render modules decide
// when to invoke prep modules, typically once per particle.
type RenderPrepModule interface {
	Prepare(p Particle)
}

// RenderModule draws the live particles. prep is the system's ordered list
// of RenderPrepModules; see RunPrep.
type RenderModule interface {
	Render(particles []Particle, prep []RenderPrepModule)
}

// UpdateFunc adapts a function to UpdateModule.
type UpdateFunc func(p Particle)

// Update calls f(p).
func (f UpdateFunc) Update(p Particle) { f(p) }

// BatchUpdateFunc adapts a function to BatchUpdateModule.
type BatchUpdateFunc func(particles []Particle)

// UpdateBatch calls f(particles).
func (f BatchUpdateFunc) UpdateBatch(particles []Particle) { f(particles) }

// RenderPrepFunc adapts a function to RenderPrepModule.
type RenderPrepFunc func(p Particle)

// Prepare calls f(p).
func (f RenderPrepFunc) Prepare(p Particle) { f(p) }

// RenderFunc adapts a function to RenderModule.
type RenderFunc func(particles []Particle, prep []RenderPrepModule)

// Render calls f(particles, prep).
func (f RenderFunc) Render(particles []Particle, prep []RenderPrepModule) { f(particles, prep) }

// RunPrep runs every prep module against p in order.
func RunPrep(prep []RenderPrepModule, p Particle) {
	for _, m := range prep {
		m.Prepare(p)
	}
}

// AddUpdateModule appends m to the per-particle update pipeline.
func (s *ParticleSystem) AddUpdateModule(m UpdateModule) {
	s.updateModules = append(s.updateModules, m)
}

// AddBatchUpdateModule appends m to the batch update pipeline.
func (s *ParticleSystem) AddBatchUpdateModule(m BatchUpdateModule) {
	s.batchUpdateModules = append(s.batchUpdateModules, m)
}

// AddRenderPrepModule appends m to the render-prep list handed to render
// modules.
func (s *ParticleSystem) AddRenderPrepModule(m RenderPrepModule) {
	s.renderPrepModules = append(s.renderPrepModules, m)
}

// AddRenderModule appends m to the render pipeline.
func (s *ParticleSystem) AddRenderModule(m RenderModule) {
	s.renderModules = append(s.renderModules, m)
}

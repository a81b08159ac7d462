package ember

import (
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Scene is the owning context that drives particle systems and animators.
// The host calls Tick once per logical tick and Frame once per rendered
// frame. Removing an animator or particle system from the scene stops it
// from being driven immediately.
type Scene struct {
	cfg      Config
	counters TickCounters
	log      *zap.Logger
	debug    bool

	animators     []*Animator
	animatorIndex *intmap.Map[uint64, int] // animator id -> index in animators
	frameBuf      []*Animator

	systems []*ParticleSystem
	tickers []Ticker
}

// NewScene creates a scene configured by cfg.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &Scene{
		cfg:           cfg,
		log:           logger,
		debug:         cfg.Debug,
		animatorIndex: intmap.New[uint64, int](16),
	}, nil
}

// SetLogger replaces the scene's logger. Systems and animators created
// afterwards inherit it. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *zap.Logger {
	return s.log
}

// SetDebugMode enables or disables per-tick and per-frame stats logging.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Counters returns the tick counters the scene's animators read time from.
func (s *Scene) Counters() *TickCounters {
	return &s.counters
}

// SetPaused pauses or resumes world time. Animators using world time stop
// advancing while paused; particle systems keep ticking.
func (s *Scene) SetPaused(paused bool) {
	s.counters.SetPaused(paused)
}

// NewParticleSystem creates a particle system using the scene's pool size
// and logger, and registers it with the scene.
func (s *Scene) NewParticleSystem() *ParticleSystem {
	ps := NewParticleSystem()
	ps.PoolSize = s.cfg.PoolSize
	ps.SetLogger(s.log.Named("particles"))
	s.AddParticleSystem(ps)
	return ps
}

// AddParticleSystem registers ps to be updated each tick and rendered each
// frame. Adding a system twice has no effect.
func (s *Scene) AddParticleSystem(ps *ParticleSystem) {
	if slices.Contains(s.systems, ps) {
		return
	}
	s.systems = append(s.systems, ps)
}

// RemoveParticleSystem stops driving ps.
func (s *Scene) RemoveParticleSystem(ps *ParticleSystem) {
	for i, p := range s.systems {
		if p == ps {
			s.systems = append(s.systems[:i], s.systems[i+1:]...)
			return
		}
	}
}

// ParticleSystems returns the registered systems. The returned slice MUST
// NOT be mutated.
func (s *Scene) ParticleSystems() []*ParticleSystem {
	return s.systems
}

// NewAnimator creates an animator on the scene's tick counters with the
// configured defaults, and registers it with the scene.
func (s *Scene) NewAnimator() *Animator {
	a := NewAnimator(&s.counters)
	a.DeletePastAnimations = s.cfg.Animator.DeletePastAnimations
	a.SetUseWorldTime(s.cfg.Animator.UseWorldTime)
	if sp := s.cfg.Animator.Speed; sp != 1 {
		a.SetSpeed(sp)
	}
	a.SetLogger(s.log.Named("animator"))
	s.AddAnimator(a)
	return a
}

// AddAnimator registers a to be updated each frame. Adding an animator
// twice has no effect.
func (s *Scene) AddAnimator(a *Animator) {
	if _, ok := s.animatorIndex.Get(a.id); ok {
		return
	}
	s.animatorIndex.Put(a.id, len(s.animators))
	s.animators = append(s.animators, a)
	s.log.Debug("animator registered", zap.Uint64("id", a.id), zap.Int("count", len(s.animators)))
}

// RemoveAnimator stops driving a. Its animations stay attached to it.
func (s *Scene) RemoveAnimator(a *Animator) {
	i, ok := s.animatorIndex.Get(a.id)
	if !ok {
		return
	}
	last := len(s.animators) - 1
	if i != last {
		moved := s.animators[last]
		s.animators[i] = moved
		s.animatorIndex.Put(moved.id, i)
	}
	s.animators[last] = nil
	s.animators = s.animators[:last]
	s.animatorIndex.Del(a.id)
	s.log.Debug("animator removed", zap.Uint64("id", a.id), zap.Int("count", len(s.animators)))
}

// Animators returns the registered animators. Order is not significant.
// The returned slice MUST NOT be mutated.
func (s *Scene) Animators() []*Animator {
	return s.animators
}

// AddTicker registers t to run at the start of every Tick.
func (s *Scene) AddTicker(t Ticker) {
	s.tickers = append(s.tickers, t)
}

// RemoveTicker unregisters t.
func (s *Scene) RemoveTicker(t Ticker) {
	for i, x := range s.tickers {
		if x == t {
			s.tickers = append(s.tickers[:i], s.tickers[i+1:]...)
			return
		}
	}
}

// Tick advances one logical tick: counters first, then tickers such as
// emitters, then every particle system's update pipeline.
func (s *Scene) Tick() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.counters.Tick()
	for _, t := range s.tickers {
		t.Tick()
	}
	for _, ps := range s.systems {
		ps.Update()
	}

	if s.debug {
		stats := tickStats{updateTime: time.Since(t0), systems: len(s.systems)}
		for _, ps := range s.systems {
			stats.particles += ps.Len()
			stats.pooled += ps.PooledCount()
		}
		s.debugLogTick(stats)
	}
}

// Frame advances one rendered frame. partial is the fraction of the current
// tick that has elapsed; animators are updated against it, then every
// particle system renders.
func (s *Scene) Frame(partial float64) {
	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.counters.SetPartial(partial)

	// Iterate a snapshot so animation callbacks may add or remove animators.
	s.frameBuf = append(s.frameBuf[:0], s.animators...)
	for _, a := range s.frameBuf {
		if _, ok := s.animatorIndex.Get(a.id); !ok {
			continue
		}
		a.Update()
	}
	clear(s.frameBuf)

	if s.debug {
		stats.animateTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, ps := range s.systems {
		ps.Render()
	}

	if s.debug {
		stats.renderTime = time.Since(t0)
		stats.animators = len(s.animators)
		stats.systems = len(s.systems)
		for _, a := range s.animators {
			stats.animations += a.Len()
		}
		for _, ps := range s.systems {
			stats.particles += ps.Len()
		}
		s.debugLogFrame(stats)
	}
}

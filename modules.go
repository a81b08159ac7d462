package ember

import "github.com/tanema/gween/ease"

// VelocityModule adds Velocity to Position each tick. Both bindings must
// have the same size; extra components of the larger one are ignored.
type VelocityModule struct {
	Position Binding
	Velocity Binding
}

// Update moves p by one tick of velocity.
func (m VelocityModule) Update(p Particle) {
	n := min(m.Position.Size, m.Velocity.Size)
	for i := 0; i < n; i++ {
		p[m.Position.Offset+i] += p[m.Velocity.Offset+i]
	}
}

// AccelerationModule adds a per-particle Acceleration to Velocity each tick.
type AccelerationModule struct {
	Velocity     Binding
	Acceleration Binding
}

// Update applies one tick of acceleration.
func (m AccelerationModule) Update(p Particle) {
	n := min(m.Velocity.Size, m.Acceleration.Size)
	for i := 0; i < n; i++ {
		p[m.Velocity.Offset+i] += p[m.Acceleration.Offset+i]
	}
}

// ConstantAccelerationModule adds the same Vector to every particle's
// Velocity each tick, e.g. gravity.
type ConstantAccelerationModule struct {
	Velocity Binding
	Vector   []float64
}

// Update applies one tick of the constant acceleration.
func (m ConstantAccelerationModule) Update(p Particle) {
	n := min(m.Velocity.Size, len(m.Vector))
	for i := 0; i < n; i++ {
		p[m.Velocity.Offset+i] += m.Vector[i]
	}
}

// DragModule scales Velocity by Factor each tick. A factor of 1 has no
// effect; 0 stops the particle.
type DragModule struct {
	Velocity Binding
	Factor   float64
}

// Update applies one tick of drag.
func (m DragModule) Update(p Particle) {
	v := m.Velocity.Fields(p)
	for i := range v {
		v[i] *= m.Factor
	}
}

// EaseModule interpolates Target between the From and To bindings over the
// particle's life. Progress is age/(age+lifetime), shaped by Easing; a nil
// Easing is linear. All three bindings should share a size.
type EaseModule struct {
	From   Binding
	To     Binding
	Target Binding
	Easing ease.TweenFunc
}

// Update writes the eased value for p's current age.
func (m EaseModule) Update(p Particle) {
	t := lifeProgress(p)
	if m.Easing != nil {
		t = float64(m.Easing(float32(t), 0, 1, 1))
	}
	n := min(m.Target.Size, m.From.Size, m.To.Size)
	for i := 0; i < n; i++ {
		p[m.Target.Offset+i] = lerp(p[m.From.Offset+i], p[m.To.Offset+i], t)
	}
}

// lifeProgress returns how far p is through its life, in [0, 1].
func lifeProgress(p Particle) float64 {
	age, life := p[1], p[0]
	total := age + life
	if total <= 0 {
		return 1
	}
	return clamp01(age / total)
}

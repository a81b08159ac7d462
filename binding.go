package ember

import "github.com/pkg/errors"

var (
	// ErrLayoutFrozen is returned by Bind once the system has created a
	// particle. Existing buffers are never migrated to a wider layout.
	ErrLayoutFrozen = errors.New("ember: particle layout is frozen")
	// ErrInvalidBindingSize is returned by Bind for a size less than one.
	ErrInvalidBindingSize = errors.New("ember: binding size must be positive")
)

// Binding is a named view into a particle's field buffer covering
// [Offset, Offset+Size). Bindings are plain values; any module holding one
// may read or write the fields it addresses.
type Binding struct {
	Offset int
	Size   int
}

// Reserved bindings present in every particle system.
var (
	// LifetimeBinding addresses the remaining lifetime, in ticks.
	LifetimeBinding = Binding{Offset: 0, Size: 1}
	// AgeBinding addresses the number of ticks the particle has lived.
	AgeBinding = Binding{Offset: 1, Size: 1}
)

// reservedFields is the number of fields owned by the system itself.
const reservedFields = 2

// Get returns component i of the binding within p.
func (b Binding) Get(p Particle, i int) float64 {
	return p[b.Offset+i]
}

// Set writes component i of the binding within p.
func (b Binding) Set(p Particle, i int, v float64) {
	p[b.Offset+i] = v
}

// Fields returns the sub-slice of p addressed by the binding. Writes through
// the returned slice modify the particle.
func (b Binding) Fields(p Particle) []float64 {
	return p[b.Offset : b.Offset+b.Size : b.Offset+b.Size]
}

// Load copies the bound fields into dst and returns the number copied.
func (b Binding) Load(p Particle, dst []float64) int {
	return copy(dst, b.Fields(p))
}

// Store copies src into the bound fields and returns the number copied.
// Extra values in src are ignored.
func (b Binding) Store(p Particle, src []float64) int {
	return copy(b.Fields(p), src)
}

// Bind allocates size new fields at the end of the particle layout and
// returns a Binding addressing them. Fields are never released.
func (s *ParticleSystem) Bind(size int) (Binding, error) {
	if size <= 0 {
		return Binding{}, ErrInvalidBindingSize
	}
	if s.frozen {
		return Binding{}, ErrLayoutFrozen
	}
	b := Binding{Offset: s.fieldCount, Size: size}
	s.fieldCount += size
	return b, nil
}

// MustBind is like Bind but panics on error. Intended for setup code where
// the layout is assembled before any particle exists.
func (s *ParticleSystem) MustBind(size int) Binding {
	b, err := s.Bind(size)
	if err != nil {
		panic(err)
	}
	return b
}

// FieldCount returns the number of fields in every particle created by s.
func (s *ParticleSystem) FieldCount() int {
	return s.fieldCount
}

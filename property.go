package ember

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownProperty is returned when a key path names a segment that
	// no registered accessor covers.
	ErrUnknownProperty = errors.New("ember: unknown property")
	// ErrPropertyType is returned when a key path exists but holds a value
	// of a different type than requested.
	ErrPropertyType = errors.New("ember: property type mismatch")
	// ErrDuplicateProperty is returned when registering a key path twice.
	ErrDuplicateProperty = errors.New("ember: property already registered")
)

// Property is a resolved get/set pair for a single animatable value.
type Property[T any] interface {
	Get() T
	Set(v T)
}

// PropertyFunc adapts a getter and setter pair to Property.
type PropertyFunc[T any] struct {
	GetFunc func() T
	SetFunc func(T)
}

// Get calls GetFunc.
func (p PropertyFunc[T]) Get() T { return p.GetFunc() }

// Set calls SetFunc.
func (p PropertyFunc[T]) Set(v T) { p.SetFunc(v) }

// PointerProperty returns a Property reading and writing *ptr.
func PointerProperty[T any](ptr *T) Property[T] {
	return PropertyFunc[T]{
		GetFunc: func() T { return *ptr },
		SetFunc: func(v T) { *ptr = v },
	}
}

// accessor holds the hand-written getter and setter for one key path on
// targets of type O.
type accessor[O, T any] struct {
	get func(O) T
	set func(O, T)
}

// PropertyRegistry maps dotted key paths such as "pos.x" to accessors on
// targets of type O. Paths are resolved once, when an animation is built,
// so typos fail at registration rather than every frame.
type PropertyRegistry[O any] struct {
	accessors map[string]any
}

// NewPropertyRegistry creates an empty registry for targets of type O.
func NewPropertyRegistry[O any]() *PropertyRegistry[O] {
	return &PropertyRegistry[O]{accessors: make(map[string]any)}
}

// Register adds an accessor for path on targets of type O with values of
// type T.
func Register[O, T any](reg *PropertyRegistry[O], path string, get func(O) T, set func(O, T)) error {
	if _, ok := reg.accessors[path]; ok {
		return errors.Wrapf(ErrDuplicateProperty, "register %q", path)
	}
	reg.accessors[path] = accessor[O, T]{get: get, set: set}
	return nil
}

// Resolve binds path to target, returning a Property for it.
func Resolve[O, T any](reg *PropertyRegistry[O], target O, path string) (Property[T], error) {
	raw, ok := reg.accessors[path]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProperty, "resolve %q: segment %q", path, reg.unknownSegment(path))
	}
	acc, ok := raw.(accessor[O, T])
	if !ok {
		var want T
		return nil, errors.Wrapf(ErrPropertyType, "resolve %q as %T", path, want)
	}
	return PropertyFunc[T]{
		GetFunc: func() T { return acc.get(target) },
		SetFunc: func(v T) { acc.set(target, v) },
	}, nil
}

// unknownSegment returns the first segment of path that no registered path
// passes through.
func (reg *PropertyRegistry[O]) unknownSegment(path string) string {
	segs := strings.Split(path, ".")
	for i := range segs {
		prefix := strings.Join(segs[:i+1], ".")
		if !reg.hasPrefix(prefix) {
			return segs[i]
		}
	}
	return segs[len(segs)-1]
}

func (reg *PropertyRegistry[O]) hasPrefix(prefix string) bool {
	for p := range reg.accessors {
		if p == prefix || strings.HasPrefix(p, prefix+".") {
			return true
		}
	}
	return false
}

// Paths returns every registered key path in sorted order.
func (reg *PropertyRegistry[O]) Paths() []string {
	paths := make([]string, 0, len(reg.accessors))
	for p := range reg.accessors {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

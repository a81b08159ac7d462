package ember

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
)

// ErrAlreadyAttached is returned when adding an animation that already
// belongs to an animator, or when changing the window of one.
var ErrAlreadyAttached = errors.New("ember: animation already attached to an animator")

// nextAnimationID orders animations that share a start time by creation.
var nextAnimationID atomic.Uint64

// Scheduled is an animation an Animator can run. Implementations embed the
// timing window provided by NewAnimation or NewFuncAnimation.
type Scheduled interface {
	// Start returns the virtual time at which the animation becomes active.
	Start() float64
	// End returns the virtual time at which the animation expires.
	End() float64

	sched() *timing
	update(t float64)
}

// timing is the scheduling state shared by every animation type.
type timing struct {
	start    float64
	end      float64
	id       uint64
	animator *Animator
	settled  bool // received its update on entering the expired state
}

func newTiming(start, duration float64) timing {
	return timing{
		start: start,
		end:   start + max(duration, 0),
		id:    nextAnimationID.Add(1),
	}
}

// Start returns the virtual time at which the animation becomes active.
func (w *timing) Start() float64 { return w.start }

// End returns the virtual time at which the animation expires.
func (w *timing) End() float64 { return w.end }

// Duration returns End - Start.
func (w *timing) Duration() float64 { return w.end - w.start }

// Attached reports whether the animation has been added to an animator.
func (w *timing) Attached() bool { return w.animator != nil }

// SetWindow moves the animation's active window. Only valid before the
// animation is attached.
func (w *timing) SetWindow(start, duration float64) error {
	if w.animator != nil {
		return ErrAlreadyAttached
	}
	w.start = start
	w.end = start + max(duration, 0)
	return nil
}

func (w *timing) sched() *timing { return w }

// progress returns how far t is through the window, clamped to [0, 1].
// Zero-length windows are complete as soon as they are reached.
func (w *timing) progress(t float64) float64 {
	d := w.end - w.start
	if d <= 0 {
		if t >= w.end {
			return 1
		}
		return 0
	}
	return clamp01((t - w.start) / d)
}

// Lerper interpolates between from and to by t in [0, 1].
type Lerper[T any] func(from, to T, t float64) T

// Number is the set of numeric types LerpNumber supports.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// LerpNumber interpolates any numeric type, rounding for integer types.
func LerpNumber[N Number](from, to N, t float64) N {
	v := lerp(float64(from), float64(to), t)
	half := 0.5
	if N(half) != 0 { // floating point
		return N(v)
	}
	return N(math.Round(v))
}

// LerpFloat64 interpolates float64 values.
func LerpFloat64(from, to, t float64) float64 { return lerp(from, to, t) }

// LerpFloat32 interpolates float32 values.
func LerpFloat32(from, to float32, t float64) float32 {
	return float32(lerp(float64(from), float64(to), t))
}

// LerpInt interpolates int values, rounding to the nearest integer.
func LerpInt(from, to int, t float64) int { return LerpNumber(from, to, t) }

// LerpVec2 interpolates each component of a Vec2.
func LerpVec2(from, to Vec2, t float64) Vec2 {
	return Vec2{X: lerp(from.X, to.X, t), Y: lerp(from.Y, to.Y, t)}
}

// Animation drives a Property from From to To over [Start, End) in the
// animator's virtual time. Easing shapes the progress; nil is linear.
type Animation[T any] struct {
	timing

	Property Property[T]
	From     T
	To       T
	Lerp     Lerper[T]
	Easing   ease.TweenFunc
	// OnComplete runs once when the animation reaches its end value. It
	// runs again if time moves back into the window and out again.
	OnComplete func()

	completed bool
}

// NewAnimation creates an animation of prop from from to to, starting at
// start and lasting duration units of virtual time.
func NewAnimation[T any](prop Property[T], from, to T, lerp Lerper[T], start, duration float64) *Animation[T] {
	return &Animation[T]{
		timing:   newTiming(start, duration),
		Property: prop,
		From:     from,
		To:       to,
		Lerp:     lerp,
	}
}

func (a *Animation[T]) update(t float64) {
	frac := a.progress(t)
	eased := frac
	if a.Easing != nil {
		eased = float64(a.Easing(float32(frac), 0, 1, 1))
	}
	a.Property.Set(a.Lerp(a.From, a.To, eased))

	if frac < 1 {
		a.completed = false
		return
	}
	if !a.completed {
		a.completed = true
		if a.OnComplete != nil {
			a.OnComplete()
		}
	}
}

// FuncAnimation calls a function with the current time and progress on
// every update while active.
type FuncAnimation struct {
	timing

	fn func(t, progress float64)
}

// NewFuncAnimation creates an animation that calls fn with the virtual time
// and the progress through its window in [0, 1].
func NewFuncAnimation(start, duration float64, fn func(t, progress float64)) *FuncAnimation {
	return &FuncAnimation{timing: newTiming(start, duration), fn: fn}
}

func (a *FuncAnimation) update(t float64) {
	a.fn(t, a.progress(t))
}

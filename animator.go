package ember

import (
	"sync/atomic"

	"github.com/google/btree"
	"go.uber.org/zap"
)

// btreeDegree is the B-tree branching factor for the animation set.
const btreeDegree = 16

// nextAnimatorID identifies animators in a Scene's registry.
var nextAnimatorID atomic.Uint64

// Animator schedules animations against a virtual clock. A single animator
// is generally used per context, e.g. one per screen.
//
// Animations are kept ordered by start time, then creation order, so each
// update only visits animations that have already started. An animation is
// active while start <= time < end.
type Animator struct {
	// DeletePastAnimations removes expired animations after giving them one
	// final update. When false, expired animations stay scheduled, become
	// active again if time moves back into their window, and get another
	// settle update each time they expire again, even if time jumped over
	// the window. Defaults to true.
	DeletePastAnimations bool

	clock      *Clock
	animations *btree.BTreeG[Scheduled]
	active     []Scheduled
	expired    []Scheduled
	settling   []Scheduled
	lastTime   float64

	id  uint64
	log *zap.Logger
}

func lessScheduled(a, b Scheduled) bool {
	wa, wb := a.sched(), b.sched()
	if wa.start != wb.start {
		return wa.start < wb.start
	}
	return wa.id < wb.id
}

// NewAnimator creates an animator whose clock starts at 0 on source's
// screen time.
func NewAnimator(source TimeSource) *Animator {
	return &Animator{
		DeletePastAnimations: true,
		clock:                NewClock(source),
		animations:           btree.NewG(btreeDegree, lessScheduled),
		id:                   nextAnimatorID.Add(1),
		log:                  zap.NewNop(),
	}
}

// SetLogger replaces the animator's logger. A nil logger disables logging.
func (a *Animator) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	a.log = l
}

// Add attaches animations to this animator. If any of them is already
// attached to an animator, or appears twice, none are added and
// ErrAlreadyAttached is returned.
func (a *Animator) Add(anims ...Scheduled) error {
	for i, s := range anims {
		if s.sched().animator != nil {
			return ErrAlreadyAttached
		}
		for _, prev := range anims[:i] {
			if prev.sched() == s.sched() {
				return ErrAlreadyAttached
			}
		}
	}
	for _, s := range anims {
		w := s.sched()
		w.animator = a
		w.settled = false
		a.animations.ReplaceOrInsert(s)
	}
	return nil
}

// AddRelative shifts each animation's window by the current time and then
// adds it, so a Start of 5 means five units from now.
func (a *Animator) AddRelative(anims ...Scheduled) error {
	for _, s := range anims {
		if s.sched().animator != nil {
			return ErrAlreadyAttached
		}
	}
	now := a.Time()
	shifted := make([]*timing, 0, len(anims))
	for _, s := range anims {
		w := s.sched()
		if containsTiming(shifted, w) {
			return ErrAlreadyAttached
		}
		shifted = append(shifted, w)
	}
	for _, w := range shifted {
		w.start += now
		w.end += now
	}
	return a.Add(anims...)
}

func containsTiming(ws []*timing, w *timing) bool {
	for _, x := range ws {
		if x == w {
			return true
		}
	}
	return false
}

// Update advances every animation whose window contains the current time.
// Expired animations are settled at their end value and, when
// DeletePastAnimations is set, removed.
func (a *Animator) Update() {
	t := a.clock.Time()
	a.collect(t)

	for _, s := range a.expired {
		s.update(t)
	}
	for _, s := range a.expired {
		a.animations.Delete(s)
		s.sched().animator = nil
	}
	if n := len(a.expired); n > 0 {
		if ce := a.log.Check(zap.DebugLevel, "expired animations removed"); ce != nil {
			ce.Write(zap.Int("count", n), zap.Int("remaining", a.animations.Len()), zap.Float64("time", t))
		}
	}
	clear(a.expired)
	a.expired = a.expired[:0]

	for _, s := range a.settling {
		s.sched().settled = true
		s.update(t)
	}
	clear(a.settling)
	a.settling = a.settling[:0]

	for _, s := range a.active {
		s.update(t)
	}
}

// collect classifies started animations at time t into the active, expired
// and settling lists. The scan stops at the first animation that has not
// started, since every later one starts no earlier. After the clock moves
// backwards it visits the pending animations too, re-arming their settle
// update.
func (a *Animator) collect(t float64) {
	clear(a.active)
	a.active = a.active[:0]
	rewound := t < a.lastTime
	a.lastTime = t

	a.animations.Ascend(func(s Scheduled) bool {
		w := s.sched()
		if w.start > t {
			if !rewound {
				return false
			}
			w.settled = false
			return true
		}
		if t >= w.end {
			switch {
			case a.DeletePastAnimations:
				a.expired = append(a.expired, s)
			case !w.settled:
				a.settling = append(a.settling, s)
			}
			return true
		}
		w.settled = false
		a.active = append(a.active, s)
		return true
	})
}

// Active returns the animations found active by the last Update, in start
// order. The returned slice MUST NOT be mutated.
func (a *Animator) Active() []Scheduled {
	return a.active
}

// Len returns the number of attached animations.
func (a *Animator) Len() int {
	return a.animations.Len()
}

// Animations returns every attached animation in start order.
func (a *Animator) Animations() []Scheduled {
	out := make([]Scheduled, 0, a.animations.Len())
	a.animations.Ascend(func(s Scheduled) bool {
		out = append(out, s)
		return true
	})
	return out
}

// Clock returns the animator's virtual clock.
func (a *Animator) Clock() *Clock {
	return a.clock
}

// Time returns the current virtual time.
func (a *Animator) Time() float64 {
	return a.clock.Time()
}

// SetTime moves the virtual clock to v.
func (a *Animator) SetTime(v float64) {
	a.clock.SetTime(v)
}

// Speed returns the clock's speed multiplier.
func (a *Animator) Speed() float64 {
	return a.clock.Speed()
}

// SetSpeed changes the clock's speed multiplier without a jump in time.
func (a *Animator) SetSpeed(v float64) {
	a.clock.SetSpeed(v)
}

// UseWorldTime reports whether the animator pauses with the world.
func (a *Animator) UseWorldTime() bool {
	return a.clock.UseWorldTime()
}

// SetUseWorldTime selects the pausable world time (true) or the screen
// time (false) as the animator's raw source.
func (a *Animator) SetUseWorldTime(world bool) {
	a.clock.SetUseWorldTime(world)
}

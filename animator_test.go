package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a FuncAnimation that remembers every update it received.
type recorder struct {
	*FuncAnimation
	times    []float64
	progress []float64
}

func newRecorder(start, end float64) *recorder {
	r := &recorder{}
	r.FuncAnimation = NewFuncAnimation(start, end-start, func(t, p float64) {
		r.times = append(r.times, t)
		r.progress = append(r.progress, p)
	})
	return r
}

func (r *recorder) last() float64 {
	if len(r.progress) == 0 {
		return -1
	}
	return r.progress[len(r.progress)-1]
}

func newTestAnimator() (*Animator, *manualSource) {
	src := &manualSource{}
	return NewAnimator(src), src
}

func activeSet(a *Animator) []Scheduled {
	return append([]Scheduled(nil), a.Active()...)
}

func TestAnimatorWindowsScenario(t *testing.T) {
	a, _ := newTestAnimator()
	first := newRecorder(0, 10)
	second := newRecorder(5, 8)
	third := newRecorder(9, 12)

	require.NoError(t, a.Add(third, first, second))
	require.Equal(t, 3, a.Len())

	a.SetTime(6)
	a.Update()
	assert.Equal(t, []Scheduled{first, second}, activeSet(a))
	assert.Equal(t, []float64{6}, first.times)
	assert.Equal(t, []float64{6}, second.times)
	assert.Empty(t, third.times)

	a.SetTime(11)
	a.Update()
	assert.Equal(t, []Scheduled{third}, activeSet(a))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []Scheduled{third}, a.Animations())

	// Removed animations got exactly one final update and settled at 1.
	assert.Equal(t, []float64{6, 11}, first.times)
	assert.Equal(t, 1.0, first.last())
	assert.Equal(t, 1.0, second.last())
	assert.False(t, first.Attached())
	assert.False(t, second.Attached())

	a.SetTime(6)
	a.Update()
	assert.Empty(t, a.Active(), "deleted animations never come back")
	assert.Len(t, first.times, 2)
}

func TestAnimatorEndBoundaryIsExclusive(t *testing.T) {
	a, _ := newTestAnimator()
	anim := newRecorder(0, 10)
	require.NoError(t, a.Add(anim))

	a.SetTime(9.999)
	a.Update()
	assert.Len(t, a.Active(), 1)

	a.SetTime(10)
	a.Update()
	assert.Empty(t, a.Active())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1.0, anim.last(), "final update at end settles to 1")
}

func TestAnimatorStartBoundaryIsInclusive(t *testing.T) {
	a, _ := newTestAnimator()
	anim := newRecorder(5, 10)
	require.NoError(t, a.Add(anim))

	a.SetTime(4.999)
	a.Update()
	assert.Empty(t, a.Active())

	a.SetTime(5)
	a.Update()
	assert.Equal(t, []Scheduled{anim}, activeSet(a))
	assert.Equal(t, 0.0, anim.last())
}

func TestAnimatorOrdersEqualStartsByCreation(t *testing.T) {
	a, _ := newTestAnimator()
	x := newRecorder(1, 5)
	y := newRecorder(1, 5)
	z := newRecorder(1, 5)

	require.NoError(t, a.Add(z, x))
	require.NoError(t, a.Add(y))

	a.SetTime(2)
	a.Update()
	assert.Equal(t, []Scheduled{x, y, z}, activeSet(a))
}

func TestAnimatorAddAlreadyAttached(t *testing.T) {
	a, _ := newTestAnimator()
	b, _ := newTestAnimator()
	anim := newRecorder(0, 1)

	require.NoError(t, a.Add(anim))
	assert.ErrorIs(t, a.Add(anim), ErrAlreadyAttached)
	assert.ErrorIs(t, b.Add(anim), ErrAlreadyAttached)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestAnimatorAddDuplicateInOneCallAddsNothing(t *testing.T) {
	a, _ := newTestAnimator()
	ok := newRecorder(0, 1)
	dup := newRecorder(0, 1)

	assert.ErrorIs(t, a.Add(ok, dup, dup), ErrAlreadyAttached)
	assert.Equal(t, 0, a.Len())
	assert.False(t, ok.Attached())
}

func TestAnimatorDeletedAnimationCanBeReattached(t *testing.T) {
	a, _ := newTestAnimator()
	anim := newRecorder(0, 1)
	require.NoError(t, a.Add(anim))

	a.SetTime(2)
	a.Update()
	require.False(t, anim.Attached())

	b, _ := newTestAnimator()
	assert.NoError(t, b.Add(anim))
}

func TestAnimatorKeepPastAnimations(t *testing.T) {
	a, _ := newTestAnimator()
	a.DeletePastAnimations = false
	anim := newRecorder(0, 10)
	require.NoError(t, a.Add(anim))

	a.SetTime(5)
	a.Update()
	a.SetTime(15)
	a.Update()
	assert.Empty(t, a.Active())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []float64{5, 15}, anim.times, "one settle update on expiry")

	a.Update()
	a.SetTime(20)
	a.Update()
	assert.Len(t, anim.times, 2, "expired animations are not updated again")

	// Moving time back re-activates it, and expiring again settles again.
	a.SetTime(3)
	a.Update()
	assert.Equal(t, []Scheduled{anim}, activeSet(a))
	a.SetTime(30)
	a.Update()
	assert.Equal(t, []float64{5, 15, 3, 30}, anim.times)
}

func TestAnimatorKeepPastSettlesAgainAfterJumpOverWindow(t *testing.T) {
	a, _ := newTestAnimator()
	a.DeletePastAnimations = false
	anim := newRecorder(5, 10)
	require.NoError(t, a.Add(anim))

	a.SetTime(12)
	a.Update()
	assert.Equal(t, []float64{12}, anim.times)

	// Back before the start, then past the end without landing inside.
	a.SetTime(2)
	a.Update()
	assert.Equal(t, []float64{12}, anim.times, "pending animations are not updated")
	a.SetTime(14)
	a.Update()
	assert.Equal(t, []float64{12, 14}, anim.times)
	assert.Equal(t, 1.0, anim.last())

	a.Update()
	assert.Len(t, anim.times, 2)
}

func TestAnimatorZeroDurationAnimation(t *testing.T) {
	a, _ := newTestAnimator()
	anim := newRecorder(4, 4)
	require.NoError(t, a.Add(anim))

	a.SetTime(3)
	a.Update()
	assert.Empty(t, anim.times)

	a.SetTime(4)
	a.Update()
	assert.Equal(t, []float64{4}, anim.times)
	assert.Equal(t, 1.0, anim.last())
	assert.Equal(t, 0, a.Len())
}

func TestAnimatorFollowsSource(t *testing.T) {
	a, src := newTestAnimator()
	anim := newRecorder(1, 3)
	require.NoError(t, a.Add(anim))

	src.advance(0.5)
	a.Update()
	assert.Empty(t, a.Active())

	src.advance(1)
	a.Update()
	assert.Equal(t, []float64{1.5}, anim.times)
	assert.InDelta(t, 0.25, anim.last(), 1e-9)

	a.SetSpeed(2)
	src.advance(0.5)
	a.Update()
	assert.InDelta(t, 2.5, anim.times[1], 1e-9)
}

func TestAnimatorAddDuringUpdate(t *testing.T) {
	a, _ := newTestAnimator()
	late := newRecorder(0, 10)

	var addErr error
	trigger := NewFuncAnimation(0, 10, func(t, _ float64) {
		if !late.Attached() {
			addErr = a.Add(late)
		}
	})
	require.NoError(t, a.Add(trigger))

	a.SetTime(1)
	require.NotPanics(t, a.Update)
	require.NoError(t, addErr)
	assert.Empty(t, late.times, "added during the pass, not updated until the next one")
	assert.Equal(t, 2, a.Len())

	a.Update()
	assert.Equal(t, []float64{1}, late.times)
}

func TestAnimatorAddDuringFinalUpdate(t *testing.T) {
	a, _ := newTestAnimator()
	next := newRecorder(10, 20)

	done := NewFuncAnimation(0, 5, func(_, p float64) {
		if p == 1 && !next.Attached() {
			require.NoError(t, a.Add(next))
		}
	})
	require.NoError(t, a.Add(done))

	a.SetTime(12)
	a.Update()
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, []Scheduled{next}, a.Animations())

	a.Update()
	assert.Equal(t, []float64{12}, next.times)
}

func TestAnimatorAddRelative(t *testing.T) {
	a, _ := newTestAnimator()
	a.SetTime(100)

	anim := newRecorder(5, 7)
	require.NoError(t, a.AddRelative(anim))
	assert.Equal(t, 105.0, anim.Start())
	assert.Equal(t, 107.0, anim.End())

	assert.ErrorIs(t, a.AddRelative(anim), ErrAlreadyAttached)
	assert.Equal(t, 105.0, anim.Start(), "window untouched on error")
}

func TestAnimatorSetWindowAfterAttach(t *testing.T) {
	a, _ := newTestAnimator()
	anim := newRecorder(0, 1)
	require.NoError(t, anim.SetWindow(2, 3))
	assert.Equal(t, 5.0, anim.End())

	require.NoError(t, a.Add(anim))
	assert.ErrorIs(t, anim.SetWindow(0, 1), ErrAlreadyAttached)
}

func TestAnimatorPrefixCullMatchesFullScan(t *testing.T) {
	a, _ := newTestAnimator()
	a.DeletePastAnimations = false

	windows := [][2]float64{{0, 3}, {1, 2}, {2, 9}, {4, 5}, {4, 8}, {6, 7}, {7, 12}, {11, 13}}
	var anims []*recorder
	for i := len(windows) - 1; i >= 0; i-- {
		r := newRecorder(windows[i][0], windows[i][1])
		anims = append(anims, r)
		require.NoError(t, a.Add(r))
	}

	for tm := -1.0; tm <= 14; tm += 0.5 {
		a.SetTime(tm)
		a.Update()

		var want []Scheduled
		for _, s := range a.Animations() {
			if s.Start() <= tm && tm < s.End() {
				want = append(want, s)
			}
		}
		assert.Equal(t, want, activeSet(a), "time %v", tm)
	}
}

func TestAnimatorUseWorldTime(t *testing.T) {
	var counters TickCounters
	a := NewAnimator(&counters)
	a.SetUseWorldTime(true)
	assert.True(t, a.UseWorldTime())

	counters.Tick()
	counters.SetPaused(true)
	counters.Tick()
	assert.Equal(t, 1.0, a.Time())
	assert.Same(t, a.Clock(), a.Clock())
}

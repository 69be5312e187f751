package tilery

import (
	"fmt"
	"time"
)

// Animatable is anything the animator can drive: a target exposing
// named float properties. The key type is chosen by the caller; UI
// nodes use [UIProperty].
type Animatable[K comparable] interface {
	Set(id K, value float32)
}

// AnimationState reports whether an animator still has time left.
// It is derived from the wall clock on every query, never stored.
type AnimationState uint8

const (
	// AnimationPlaying means elapsed time is still within the total duration.
	AnimationPlaying AnimationState = iota
	// AnimationOver means the total duration has fully elapsed.
	AnimationOver
)

// Window is the sub-interval of an animator's normalized progress
// during which one property actively interpolates. Outside the window
// the property holds its start or end value.
type Window struct {
	Start, End float32
}

// TimedProperty describes one animated property: the target key, the
// value range (From may exceed To — the property then animates
// backwards), the easing curve, and the active window within the
// animator's shared duration.
type TimedProperty[K comparable] struct {
	ID     K
	From   float32
	To     float32
	Curve  Curve
	Window Window
}

// validate panics on a malformed window. Windows are configuration,
// not runtime data; a bad one is a programmer error.
func (p TimedProperty[K]) validate() {
	if p.Window.Start >= p.Window.End || p.Window.Start < 0 || p.Window.End > 1 {
		panic(fmt.Sprintf("tilery: invalid animation window [%v, %v] for property %v",
			p.Window.Start, p.Window.End, p.ID))
	}
}

// reversed returns the property played backwards: swapped curve family,
// swapped value range, and the window mirrored around the midpoint.
func (p TimedProperty[K]) reversed() TimedProperty[K] {
	return TimedProperty[K]{
		ID:     p.ID,
		From:   p.To,
		To:     p.From,
		Curve:  p.Curve.Reversed(),
		Window: Window{Start: 1 - p.Window.End, End: 1 - p.Window.Start},
	}
}

// evaluate computes the property's output value at the animator's
// global progress: clamp to the window, rescale onto [0, 1], ease,
// then lerp the value range.
func (p TimedProperty[K]) evaluate(progress float32) float32 {
	clamped := clamp32(progress, p.Window.Start, p.Window.End)
	t := (clamped - p.Window.Start) / (p.Window.End - p.Window.Start)
	e := p.Curve.Apply(t)
	return p.From*(1-e) + p.To*e
}

// Animator drives an ordered set of [TimedProperty] values sharing one
// wall-clock duration and one start instant. A fresh Animator starts in
// the finished state; call [Animator.Reset] to play it.
//
// Within one Animate call properties apply in slice order, so if two
// entries share an ID the later one wins.
type Animator[K comparable] struct {
	props    []TimedProperty[K]
	duration time.Duration
	start    time.Time
}

// NewAnimator builds an animator over the given properties. Every
// window is validated eagerly; a malformed window panics. The returned
// animator reports itself as not playing until Reset is called.
func NewAnimator[K comparable](props []TimedProperty[K], duration time.Duration) *Animator[K] {
	for _, p := range props {
		p.validate()
	}

	// Start at the end.
	return &Animator[K]{
		props:    props,
		duration: duration,
		start:    time.Now().Add(-duration),
	}
}

// Reset restarts the animation: it plays for the full duration from now.
func (a *Animator[K]) Reset() {
	a.start = time.Now()
}

// IsPlaying reports whether the total duration has not yet elapsed.
func (a *Animator[K]) IsPlaying() bool {
	return time.Since(a.start) <= a.duration
}

// Animate applies every property's current value to the target and
// returns the state for this call. It writes every property on every
// call, even when a value has not changed since the previous tick, so
// repeated calls at the same instant leave the target identical.
// Calling it after the animation is over keeps emitting the end-of-range
// values; over-polling is safe.
func (a *Animator[K]) Animate(target Animatable[K]) AnimationState {
	progress := float32(time.Since(a.start).Seconds() / a.duration.Seconds())
	if progress > 1 {
		progress = 1
	}

	for _, p := range a.props {
		target.Set(p.ID, p.evaluate(progress))
	}

	if progress >= 1 {
		return AnimationOver
	}
	return AnimationPlaying
}

// Reversed returns an independent animator that undoes this one: each
// property gets a swapped curve family, a swapped value range, and a
// mirrored window. The original is not touched. Like a fresh animator,
// the result starts in the finished state.
func (a *Animator[K]) Reversed() *Animator[K] {
	props := make([]TimedProperty[K], len(a.props))
	for i, p := range a.props {
		props[i] = p.reversed()
	}

	return &Animator[K]{
		props:    props,
		duration: a.duration,
		start:    time.Now().Add(-a.duration),
	}
}

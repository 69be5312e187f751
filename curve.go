package tilery

import "github.com/chewxy/math32"

// curveKind selects the easing family of a Curve.
type curveKind uint8

const (
	curveLinear curveKind = iota
	curveEaseIn
	curveEaseOut
)

// Curve maps normalized progress in [0, 1] to eased progress. It is a
// comparable value type; construct one with [Linear], [EaseIn], or
// [EaseOut]. Strengths must be positive — a non-positive strength
// produces a non-monotonic curve and is a caller bug.
type Curve struct {
	kind     curveKind
	strength float32
}

// Linear returns the identity curve.
func Linear() Curve {
	return Curve{kind: curveLinear}
}

// EaseIn returns the curve t^strength, slow at the start.
func EaseIn(strength float32) Curve {
	return Curve{kind: curveEaseIn, strength: strength}
}

// EaseOut returns the curve 1-(1-t)^strength, slow at the end.
func EaseOut(strength float32) Curve {
	return Curve{kind: curveEaseOut, strength: strength}
}

// Apply evaluates the curve at t. The input is clamped to [0, 1] first,
// so Apply is total. All three families are monotonic non-decreasing on
// the clamped domain for positive strengths.
func (c Curve) Apply(t float32) float32 {
	t = clamp32(t, 0, 1)

	switch c.kind {
	case curveEaseIn:
		return math32.Pow(t, c.strength)
	case curveEaseOut:
		return 1 - math32.Pow(1-t, c.strength)
	default:
		return t
	}
}

// Reversed returns the curve played backwards: Linear stays Linear,
// EaseIn and EaseOut swap families keeping the strength. Reversed is
// involutive. Note the swap is a structural reversal, not the exact
// functional inverse of t^s; animations reversed this way look right
// but do not retrace their eased path sample for sample.
func (c Curve) Reversed() Curve {
	switch c.kind {
	case curveEaseIn:
		return Curve{kind: curveEaseOut, strength: c.strength}
	case curveEaseOut:
		return Curve{kind: curveEaseIn, strength: c.strength}
	default:
		return c
	}
}

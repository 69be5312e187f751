package tilery

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestCurveLinearIsIdentity(t *testing.T) {
	c := Linear()
	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := c.Apply(v); got != v {
			t.Errorf("Apply(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestCurveClampsInput(t *testing.T) {
	for _, c := range []Curve{Linear(), EaseIn(2), EaseOut(2)} {
		if got := c.Apply(-0.5); got != 0 {
			t.Errorf("%v.Apply(-0.5) = %v, want 0", c, got)
		}
		if got := c.Apply(1.5); got != 1 {
			t.Errorf("%v.Apply(1.5) = %v, want 1", c, got)
		}
	}
}

func TestCurveEaseValues(t *testing.T) {
	in := EaseIn(2)
	if got := in.Apply(0.5); math32.Abs(got-0.25) > 1e-6 {
		t.Errorf("EaseIn(2).Apply(0.5) = %v, want 0.25", got)
	}

	out := EaseOut(2)
	if got := out.Apply(0.5); math32.Abs(got-0.75) > 1e-6 {
		t.Errorf("EaseOut(2).Apply(0.5) = %v, want 0.75", got)
	}

	// Fractional strengths are valid too.
	frac := EaseIn(0.7)
	want := math32.Pow(0.5, 0.7)
	if got := frac.Apply(0.5); math32.Abs(got-want) > 1e-6 {
		t.Errorf("EaseIn(0.7).Apply(0.5) = %v, want %v", got, want)
	}
}

func TestCurveMonotonic(t *testing.T) {
	for _, c := range []Curve{Linear(), EaseIn(0.7), EaseIn(3), EaseOut(0.9), EaseOut(2)} {
		prev := c.Apply(0)
		for i := 1; i <= 100; i++ {
			cur := c.Apply(float32(i) / 100)
			if cur < prev {
				t.Fatalf("%v not monotonic at t=%v: %v < %v", c, float32(i)/100, cur, prev)
			}
			prev = cur
		}
	}
}

func TestCurveReversedSwapsFamily(t *testing.T) {
	if got := Linear().Reversed(); got != Linear() {
		t.Errorf("Linear().Reversed() = %v, want Linear", got)
	}
	if got := EaseIn(0.7).Reversed(); got != EaseOut(0.7) {
		t.Errorf("EaseIn(0.7).Reversed() = %v, want EaseOut(0.7)", got)
	}
	if got := EaseOut(2.5).Reversed(); got != EaseIn(2.5) {
		t.Errorf("EaseOut(2.5).Reversed() = %v, want EaseIn(2.5)", got)
	}
}

func TestCurveReversedInvolutive(t *testing.T) {
	for _, c := range []Curve{Linear(), EaseIn(0.7), EaseOut(1.3)} {
		if got := c.Reversed().Reversed(); got != c {
			t.Errorf("%v.Reversed().Reversed() = %v, want original", c, got)
		}
	}
}

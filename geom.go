package tilery

import "github.com/chewxy/math32"

// Vec2 is a 2D vector used for positions, sizes, and offsets throughout
// the API. All geometry is single precision.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for constructing a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a Vec2 with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns v + o componentwise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o componentwise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns the componentwise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div returns the componentwise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Floor returns v with both components rounded toward negative infinity.
func (v Vec2) Floor() Vec2 {
	return Vec2{math32.Floor(v.X), math32.Floor(v.Y)}
}

// Point returns v truncated to integer grid coordinates via Floor.
func (v Vec2) Point() Point {
	return Point{X: int(math32.Floor(v.X)), Y: int(math32.Floor(v.Y))}
}

// Point is an integer 2D coordinate, used for tile grid positions.
type Point struct {
	X, Y int
}

// Pt is shorthand for constructing a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o componentwise.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o componentwise.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Vec2 converts p to floating point coordinates.
func (p Point) Vec2() Vec2 {
	return Vec2{float32(p.X), float32(p.Y)}
}

// Rect is an axis-aligned rectangle in the fractional UI coordinate
// space (origin bottom-left, Y increasing upward).
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// Contains reports whether pos lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(pos Vec2) bool {
	return pos.X >= r.Pos.X && pos.X <= r.Pos.X+r.Size.X &&
		pos.Y >= r.Pos.Y && pos.Y <= r.Pos.Y+r.Size.Y
}

// clamp32 limits v to [lo, hi].
func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

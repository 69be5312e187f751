package tilery

import (
	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera is the view into the board: a world-space position and the
// number of world units visible vertically. Larger Height means more
// of the board on screen.
type Camera struct {
	// Pos is the world-space point the camera centers on.
	Pos Vec2
	// Height is the vertical extent of the view in world units.
	Height float32

	zoomTween *gween.Tween
}

// NewCamera returns a camera at the origin with the given view height.
func NewCamera(height float32) *Camera {
	return &Camera{Height: height}
}

// Pan moves the camera by delta world units.
func (c *Camera) Pan(delta Vec2) {
	c.Pos = c.Pos.Add(delta)
}

// PanSpeed returns the per-millisecond pan speed scaled to the current
// zoom, so panning covers screen distance at a steady rate regardless
// of how far out the camera is.
func (c *Camera) PanSpeed(dt float32) float32 {
	return 0.002 * math32.Sqrt(c.Height) * dt
}

// ZoomBy scales the view height immediately and cancels any zoom
// animation in flight.
func (c *Camera) ZoomBy(factor float32) {
	c.zoomTween = nil
	c.Height *= factor
}

// ZoomTo animates the view height to the target over duration seconds.
func (c *Camera) ZoomTo(height float32, duration float32) {
	c.zoomTween = gween.New(c.Height, height, duration, ease.OutQuad)
}

// Update advances the zoom animation. Call once per tick.
func (c *Camera) Update(dt float32) {
	if c.zoomTween == nil {
		return
	}
	height, done := c.zoomTween.Update(dt)
	c.Height = height
	if done {
		c.zoomTween = nil
	}
}

// ScreenToTile maps a pixel position (top-left origin, as reported by
// the backend) to the world tile under it.
func (c *Camera) ScreenToTile(screen Vec2, windowSize Vec2) Point {
	pos := screen.Div(windowSize)
	pos.Y = 1 - pos.Y

	scaled := c.Pos.Scale(1 / c.Height)

	return pos.Add(scaled).Sub(Splat(0.5)).Scale(c.Height).Point()
}

// TileToView maps a world tile position to fractional view coordinates
// (bottom-left origin), where [0,1]×[0,1] is the visible window.
func (c *Camera) TileToView(p Point) Vec2 {
	return p.Vec2().Scale(1 / c.Height).Sub(c.Pos.Scale(1 / c.Height)).Add(Splat(0.5))
}

// TileViewSize returns the fractional view size of one tile.
func (c *Camera) TileViewSize() Vec2 {
	return Splat(1 / c.Height)
}

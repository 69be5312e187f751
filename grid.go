package tilery

// Grid is a generic 2D container over row-major flat storage
// (index = y*width + x). Bounds are fixed; [Board] handles growth.
type Grid[T any] struct {
	data   []T
	width  int
	height int
}

// NewGrid returns a width×height grid of zero values.
func NewGrid[T any](width, height int) *Grid[T] {
	return &Grid[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
	}
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Point {
	return Point{X: g.width, Y: g.height}
}

// Contains reports whether p is a valid grid coordinate.
func (g *Grid[T]) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the value at p. Out-of-range coordinates panic.
func (g *Grid[T]) At(p Point) T {
	return g.data[g.index(p)]
}

// Set stores v at p. Out-of-range coordinates panic.
func (g *Grid[T]) Set(p Point, v T) {
	g.data[g.index(p)] = v
}

// ForEach visits every cell in row-major order.
func (g *Grid[T]) ForEach(f func(p Point, v T)) {
	for i, v := range g.data {
		f(Point{X: i % g.width, Y: i / g.width}, v)
	}
}

func (g *Grid[T]) index(p Point) int {
	if !g.Contains(p) {
		panic("tilery: grid coordinate out of range")
	}
	return p.Y*g.width + p.X
}

// Board is a tile scene: a [Grid] of tiles addressed in world
// coordinates, growing on demand in any direction. The offset maps
// world coordinates (which may be negative) onto grid storage.
type Board struct {
	grid   *Grid[Tile]
	offset Point
}

// NewBoard returns an empty board with no storage; the first Set
// allocates it.
func NewBoard() *Board {
	return &Board{grid: NewGrid[Tile](0, 0)}
}

// Size returns the current storage dimensions.
func (b *Board) Size() Point {
	return b.grid.Size()
}

// At returns the tile at world position p. Positions outside the
// current storage read as empty.
func (b *Board) At(p Point) Tile {
	local := p.Add(b.offset)
	if !b.grid.Contains(local) {
		return NoTile()
	}
	return b.grid.At(local)
}

// Set stores t at world position p, extending the storage first if p
// lies outside it.
func (b *Board) Set(p Point, t Tile) {
	b.extendToContain(p)
	b.grid.Set(p.Add(b.offset), t)
}

// ForEach visits every stored cell, yielding world coordinates.
func (b *Board) ForEach(f func(p Point, t Tile)) {
	b.grid.ForEach(func(p Point, t Tile) {
		f(p.Sub(b.offset), t)
	})
}

// extendToContain grows the storage so that world position p indexes a
// valid cell. Growth below or left of the origin shifts the offset and
// re-homes existing cells; existing tiles keep their world positions.
func (b *Board) extendToContain(p Point) {
	local := p.Add(b.offset)
	size := b.grid.Size()

	distance := Point{
		X: growDistance(local.X, size.X),
		Y: growDistance(local.Y, size.Y),
	}
	if distance == (Point{}) {
		return
	}

	shift := Point{X: min(distance.X, 0), Y: min(distance.Y, 0)}
	b.offset = b.offset.Sub(shift)

	grown := NewGrid[Tile](size.X+abs(distance.X), size.Y+abs(distance.Y))
	b.grid.ForEach(func(p Point, t Tile) {
		grown.Set(p.Sub(shift), t)
	})
	b.grid = grown
}

// growDistance returns how far pos falls outside [0, size): positive
// for overflow past the end, negative for underflow below zero.
func growDistance(pos, size int) int {
	if pos >= size {
		return pos - size + 1
	}
	if pos < 0 {
		return pos
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

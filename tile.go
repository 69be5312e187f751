package tilery

// Tile is one cell of a [Board]. The zero value is the empty tile;
// occupied tiles store a palette index shifted by one so that the
// zero value stays meaningful.
type Tile struct {
	id int
}

// NewTile returns the tile for palette index id.
func NewTile(id int) Tile {
	return Tile{id: id + 1}
}

// NoTile returns the empty tile.
func NoTile() Tile {
	return Tile{}
}

// IsNone reports whether the tile is empty.
func (t Tile) IsNone() bool {
	return t.id == 0
}

// Index returns the palette index. Calling it on an empty tile panics.
func (t Tile) Index() int {
	if t.IsNone() {
		panic("tilery: empty tile has no palette index")
	}
	return t.id - 1
}

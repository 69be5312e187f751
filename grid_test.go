package tilery

import "testing"

func TestGridRowMajorStorage(t *testing.T) {
	g := NewGrid[int](3, 2)
	g.Set(Pt(2, 0), 7)
	g.Set(Pt(0, 1), 9)

	if got := g.At(Pt(2, 0)); got != 7 {
		t.Errorf("At(2,0) = %d, want 7", got)
	}
	if got := g.At(Pt(0, 1)); got != 9 {
		t.Errorf("At(0,1) = %d, want 9", got)
	}

	var visited []Point
	g.ForEach(func(p Point, _ int) {
		visited = append(visited, p)
	})
	if len(visited) != 6 {
		t.Fatalf("visited %d cells, want 6", len(visited))
	}
	if visited[0] != Pt(0, 0) || visited[1] != Pt(1, 0) || visited[3] != Pt(0, 1) {
		t.Errorf("iteration order not row-major: %v", visited)
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid[int](2, 2)
	defer func() {
		if recover() == nil {
			t.Error("At outside the grid should panic")
		}
	}()
	g.At(Pt(2, 0))
}

func TestBoardGrowsForward(t *testing.T) {
	b := NewBoard()
	b.Set(Pt(3, 1), NewTile(0))

	if got := b.Size(); got != Pt(4, 2) {
		t.Errorf("Size = %v, want (4, 2)", got)
	}
	if b.At(Pt(3, 1)).IsNone() {
		t.Error("tile lost after growth")
	}
	if !b.At(Pt(0, 0)).IsNone() {
		t.Error("unset cell should be empty")
	}
}

func TestBoardGrowsNegativeKeepingPositions(t *testing.T) {
	b := NewBoard()
	b.Set(Pt(1, 1), NewTile(3))
	b.Set(Pt(-2, -1), NewTile(5))

	if got := b.At(Pt(1, 1)); got != NewTile(3) {
		t.Errorf("At(1,1) = %v after negative growth, want tile 3", got)
	}
	if got := b.At(Pt(-2, -1)); got != NewTile(5) {
		t.Errorf("At(-2,-1) = %v, want tile 5", got)
	}
	if got := b.Size(); got != Pt(4, 3) {
		t.Errorf("Size = %v, want (4, 3)", got)
	}
}

func TestBoardReadsOutsideAsEmpty(t *testing.T) {
	b := NewBoard()
	b.Set(Pt(0, 0), NewTile(0))

	if !b.At(Pt(100, -100)).IsNone() {
		t.Error("reads outside storage should be empty")
	}
	// Reading must not grow the board.
	if got := b.Size(); got != Pt(1, 1) {
		t.Errorf("Size = %v after read, want (1, 1)", got)
	}
}

func TestBoardForEachYieldsWorldCoords(t *testing.T) {
	b := NewBoard()
	b.Set(Pt(-1, 0), NewTile(2))

	found := false
	b.ForEach(func(p Point, tile Tile) {
		if !tile.IsNone() {
			if p != Pt(-1, 0) {
				t.Errorf("tile reported at %v, want (-1, 0)", p)
			}
			found = true
		}
	})
	if !found {
		t.Error("painted tile not visited")
	}
}

func TestTileEncoding(t *testing.T) {
	if !NoTile().IsNone() {
		t.Error("zero tile should be empty")
	}
	if NewTile(0).IsNone() {
		t.Error("palette tile 0 should not be empty")
	}
	if got := NewTile(4).Index(); got != 4 {
		t.Errorf("Index = %d, want 4", got)
	}

	var zero Tile
	if !zero.IsNone() {
		t.Error("zero value should be the empty tile")
	}
}

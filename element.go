package tilery

import (
	"fmt"
	"strings"
)

// ElementID addresses one node in a [UI] forest as a path of child
// indices: the first index selects a root, each following index
// descends one level. IDs are immutable values; Push copies.
//
// Identity is purely positional. The UI never removes nodes, so an ID
// handed out by [UI.Push] or [UI.PushChild] stays valid for the life of
// the tree.
type ElementID struct {
	path []int
}

// NewElementID returns a one-level path addressing root index.
func NewElementID(index int) ElementID {
	return ElementID{path: []int{index}}
}

// Push returns a new ID one level deeper: the same path with index
// appended. It descends to a child, never adds a sibling.
func (id ElementID) Push(index int) ElementID {
	path := make([]int, len(id.path)+1)
	copy(path, id.path)
	path[len(id.path)] = index
	return ElementID{path: path}
}

// Equal reports whether both IDs address the same position: equal
// length and equal indices at every level.
func (id ElementID) Equal(other ElementID) bool {
	if len(id.path) != len(other.path) {
		return false
	}
	for i, v := range id.path {
		if v != other.path[i] {
			return false
		}
	}
	return true
}

// Depth returns the number of levels in the path.
func (id ElementID) Depth() int {
	return len(id.path)
}

// String renders the path as "0/2/1" for diagnostics.
func (id ElementID) String() string {
	var b strings.Builder
	for i, v := range id.path {
		if i > 0 {
			b.WriteByte('/')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

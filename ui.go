package tilery

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// ElementKind distinguishes hit-test behavior for a UI element.
type ElementKind uint8

const (
	// KindPanel is decorative: it never matches a hit test, though its
	// children still can.
	KindPanel ElementKind = iota
	// KindButton is interactive: a hit test may stop on it.
	KindButton
)

// UIProperty names one animatable scalar of a UI node's intrinsic
// geometry. It is the key type UI nodes accept through [Animatable].
type UIProperty uint8

const (
	PropScaleX    UIProperty = iota // intrinsic width
	PropScaleY                      // intrinsic height
	PropPositionX                   // intrinsic X position
	PropPositionY                   // intrinsic Y position
)

// Element is the published description of a UI node: its kind, its
// geometry as fractions of the parent's absolute rectangle, and the
// texture it draws with.
type Element struct {
	Kind    ElementKind
	Pos     Vec2
	Size    Vec2
	Texture TextureID
}

// UINode is one element in a [UI] forest. It stores the intrinsic
// (parent-relative) geometry from [Element] plus a cached absolute
// rectangle, which is kept consistent with every ancestor immediately
// after any mutation — there is no deferred recomputation.
//
// The parent link is a plain non-owning pointer used only to dispatch
// recomputation upward; children are the owning edges.
type UINode struct {
	kind    ElementKind
	pos     Vec2
	size    Vec2
	texture TextureID

	globalPos  Vec2
	globalSize Vec2

	parent   *UINode
	index    int
	children []*UINode
}

func newRootNode(elem Element) *UINode {
	return newNode(nil, 0, elem)
}

func newNode(parent *UINode, index int, elem Element) *UINode {
	return &UINode{
		kind:    elem.Kind,
		pos:     elem.Pos,
		size:    elem.Size,
		texture: elem.Texture,

		// Roots have no parent to scale by; children are recomputed by
		// the caller right after insertion.
		globalPos:  elem.Pos,
		globalSize: elem.Size,

		parent: parent,
		index:  index,
	}
}

// Set implements [Animatable] for UIProperty keys: it mutates one
// scalar of the intrinsic geometry, then recomputes the absolute
// geometry of this node and every descendant. Siblings and ancestors
// are untouched.
func (n *UINode) Set(id UIProperty, value float32) {
	switch id {
	case PropScaleX:
		n.size.X = value
	case PropScaleY:
		n.size.Y = value
	case PropPositionX:
		n.pos.X = value
	case PropPositionY:
		n.pos.Y = value
	default:
		panic(fmt.Sprintf("tilery: unknown UI property %d", id))
	}

	n.update()
}

// SetTexture replaces the node's texture.
func (n *UINode) SetTexture(id TextureID) {
	n.texture = id
}

// Texture returns the node's texture.
func (n *UINode) Texture() TextureID {
	return n.texture
}

// GlobalRect returns the node's cached absolute rectangle.
func (n *UINode) GlobalRect() Rect {
	return Rect{Pos: n.globalPos, Size: n.globalSize}
}

// update recomputes this node's subtree. A child asks its parent to
// recompute it against the parent's current absolute geometry; a root
// derives its absolute geometry directly from its intrinsic one.
func (n *UINode) update() {
	if n.parent != nil {
		n.parent.updateChild(n.index)
		return
	}

	n.globalPos = n.pos
	n.globalSize = n.size
	n.updateChildren()
}

// updateChild recomputes one child's absolute geometry from this
// node's current absolute geometry, then recurses into the child's
// descendants.
func (n *UINode) updateChild(index int) {
	child := n.children[index]

	child.globalPos = n.globalPos.Add(child.pos.Mul(n.globalSize))
	child.globalSize = child.size.Mul(n.globalSize)

	child.updateChildren()
}

func (n *UINode) updateChildren() {
	for i := range n.children {
		n.updateChild(i)
	}
}

// pushChild appends a new exclusively-owned child and returns its index.
func (n *UINode) pushChild(elem Element) int {
	index := len(n.children)
	n.children = append(n.children, newNode(n, index, elem))
	n.updateChild(index)
	return index
}

// get resolves the remainder of a path below this node.
func (n *UINode) get(path []int) *UINode {
	if len(path) == 0 {
		return n
	}
	index := path[0]
	if index < 0 || index >= len(n.children) {
		panic(fmt.Sprintf("tilery: element child index %d out of range", index))
	}
	return n.children[index].get(path[1:])
}

// walk visits this node then its children depth-first, left to right.
// The visitor returns true to stop; walk reports whether it stopped.
func (n *UINode) walk(id ElementID, f func(ElementID, *UINode) bool) bool {
	if f(id, n) {
		return true
	}
	for i, child := range n.children {
		if child.walk(id.Push(i), f) {
			return true
		}
	}
	return false
}

// UI owns a forest of [UINode] roots. It is created empty and grows
// only by append; nodes are never removed, which is what keeps every
// issued [ElementID] valid.
type UI struct {
	roots []*UINode
}

// NewUI returns an empty UI forest.
func NewUI() *UI {
	return &UI{}
}

// Push inserts a new root. A root's absolute geometry is its intrinsic
// geometry verbatim.
func (u *UI) Push(elem Element) ElementID {
	id := len(u.roots)
	u.roots = append(u.roots, newRootNode(elem))
	return NewElementID(id)
}

// PushChild inserts a new child under the node addressed by parent and
// returns parent extended with the child's index. The child's absolute
// geometry is computed against the parent's current absolute geometry.
func (u *UI) PushChild(parent ElementID, elem Element) ElementID {
	index := u.Get(parent).pushChild(elem)
	return parent.Push(index)
}

// Get resolves an ID to its node. A malformed or hand-constructed ID
// that indexes out of range at any level panics: the UI never
// invalidates IDs itself, so a bad one is a caller bug, and failing
// fast beats silently violating the geometry invariant.
func (u *UI) Get(id ElementID) *UINode {
	root := id.path[0]
	if root < 0 || root >= len(u.roots) {
		panic(fmt.Sprintf("tilery: element root index %d out of range", root))
	}
	return u.roots[root].get(id.path[1:])
}

// walk runs f over the whole forest pre-order, stopping early if f
// returns true.
func (u *UI) walk(f func(ElementID, *UINode) bool) bool {
	for i, root := range u.roots {
		if root.walk(NewElementID(i), f) {
			return true
		}
	}
	return false
}

// Draw blits every node in pre-order, one draw per node, with no
// culling. Fractional bottom-left-origin geometry maps to pixels here:
// the Y axis flips and positions round to whole pixels.
func (u *UI) Draw(screen *ebiten.Image, assets *Assets) {
	bounds := screen.Bounds()
	windowSize := V(float32(bounds.Dx()), float32(bounds.Dy()))

	u.walk(func(_ ElementID, n *UINode) bool {
		img := assets.Image(n.texture)

		pos := n.globalPos
		pos.Y = 1 - pos.Y - n.globalSize.Y

		scaledPos := pos.Mul(windowSize)
		scaledSize := n.globalSize.Mul(windowSize)

		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(
			float64(math32.Round(scaledSize.X))/float64(w),
			float64(math32.Round(scaledSize.Y))/float64(h),
		)
		op.GeoM.Translate(
			float64(math32.Round(scaledPos.X)),
			float64(math32.Round(scaledPos.Y)),
		)
		screen.DrawImage(img, &op)

		return false
	})
}

// Click hit-tests the forest at pos (fractional window coordinates,
// bottom-left origin): pre-order traversal, first interactive node
// whose absolute rectangle contains pos wins, and traversal does not
// descend into a matching node. Edges count as inside. A decorative
// node never matches but its children are still searched. The second
// return is false when nothing matched.
func (u *UI) Click(pos Vec2) (ElementID, bool) {
	var hit ElementID

	found := u.walk(func(id ElementID, n *UINode) bool {
		if n.kind != KindButton {
			return false
		}
		if n.GlobalRect().Contains(pos) {
			hit = id
			return true
		}
		return false
	})

	return hit, found
}

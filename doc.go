// Package tilery is a small tile-map editor built on [Ebitengine].
//
// The editor is a thin application shell around two reusable subsystems:
//
//   - a retained-mode [UI] tree whose elements store parent-relative
//     geometry and keep a cached absolute rectangle consistent after
//     every mutation, with pre-order hit testing ([UI.Click]), and
//   - a generic, wall-clock driven [Animator] that drives named float
//     properties on any [Animatable] target through independently
//     windowed and eased [TimedProperty] curves, including reversal
//     ([Animator.Reversed]).
//
// Everything else — the growable tile [Board], the [Camera], the texture
// [Assets] registry, and the [Editor] game loop — exists to support
// those two subsystems.
//
// A minimal run looks like:
//
//	cfg, err := tilery.LoadConfig("tilery.yaml")
//	// ... handle err ...
//	ed, err := tilery.NewEditor(cfg)
//	// ... handle err ...
//	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
//	ebiten.RunGame(ed)
//
// # Coordinate spaces
//
// UI geometry is fractional with a bottom-left origin: an element's
// position and size are fractions of its parent's absolute rectangle
// (of the window, for roots). Pixel conversion and the Y flip happen
// only at draw and hit-test boundaries. The board lives in world space
// measured in tiles; the [Camera] maps between world and view space.
//
// [Ebitengine]: https://ebitengine.org
package tilery

package tilery

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pickerDuration is how long the tile picker takes to open or close.
const pickerDuration = 200 * time.Millisecond

// Editor is the application: it owns the boards, the camera, the HUD
// and tile-picker UI trees, and the picker's open/close animators, and
// implements [ebiten.Game]. Everything runs on the game loop's single
// goroutine.
type Editor struct {
	cfg    Config
	assets *Assets
	input  *InputState
	camera *Camera

	boards       []*Board
	currentBoard int
	currentTile  Tile

	hud        *UI
	nextButton ElementID
	prevButton ElementID
	tileButton ElementID

	picker      *UI
	panel       ElementID
	tileButtons []ElementID
	openAnim    *Animator[UIProperty]
	closeAnim   *Animator[UIProperty]
	pickerOpen  bool
	drawPicker  bool

	// uiCaptured is set while a press that landed on the HUD is still
	// held, so a button click does not also paint the tile under it.
	uiCaptured bool
}

// NewEditor loads the configured assets and builds the editor with one
// empty board.
func NewEditor(cfg Config) (*Editor, error) {
	assets := NewAssets()
	if err := assets.LoadDir(cfg.TilesDir, true); err != nil {
		return nil, err
	}
	if err := assets.LoadDir(cfg.UIDir, false); err != nil {
		return nil, err
	}
	if assets.TileCount() == 0 {
		return nil, fmt.Errorf("tilery: no tiles found in %q", cfg.TilesDir)
	}

	input, err := NewInputState(cfg.Bindings)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		cfg:         cfg,
		assets:      assets,
		input:       input,
		camera:      NewCamera(10),
		boards:      []*Board{NewBoard()},
		currentTile: NewTile(0),
	}

	e.buildHUD()
	e.buildPicker()
	e.syncCurrentTile()

	return e, nil
}

// uiTexture resolves a texture from the configured UI directory.
func (e *Editor) uiTexture(name string) TextureID {
	return e.assets.TextureID(filepath.Join(e.cfg.UIDir, name))
}

// aspect returns width/height of the window.
func (e *Editor) aspect() float32 {
	return float32(e.cfg.Window.Width) / float32(e.cfg.Window.Height)
}

// buildHUD lays out the always-visible controls: board prev/next
// buttons in the top-right corner and the current-tile widget in the
// top-left.
func (e *Editor) buildHUD() {
	aspect := e.aspect()

	e.hud = NewUI()

	e.nextButton = e.hud.Push(Element{
		Kind:    KindButton,
		Pos:     V(1-0.08, 1-0.07*aspect),
		Size:    V(0.08, 0.07*aspect),
		Texture: e.uiTexture("plus.png"),
	})

	e.prevButton = e.hud.Push(Element{
		Kind:    KindButton,
		Pos:     V(1-0.08*2-0.02, 1-0.07*aspect),
		Size:    V(0.08, 0.07*aspect),
		Texture: e.uiTexture("minus.png"),
	})

	const size = 0.1
	const margin = size * 0.1

	e.hud.Push(Element{
		Kind:    KindPanel,
		Pos:     V(0, 1-(size+margin)*aspect),
		Size:    V(size+margin, (size+margin)*aspect),
		Texture: e.uiTexture("white.png"),
	})

	e.hud.Push(Element{
		Kind:    KindPanel,
		Pos:     V(0, 1-size*aspect),
		Size:    V(size, size*aspect),
		Texture: e.uiTexture("background.png"),
	})

	e.tileButton = e.hud.Push(Element{
		Kind:    KindButton,
		Pos:     V(0, 1-size*aspect),
		Size:    V(size, size*aspect),
		Texture: e.assets.TileTexture(e.currentTile),
	})
}

// buildPicker lays out the tile-picker panel with one button per
// palette tile, plus the open animator and its reversal.
func (e *Editor) buildPicker() {
	aspect := e.aspect()

	e.picker = NewUI()

	const margin = 0.1
	side := float32(1 - margin*2)
	if aspect >= 1 {
		side /= aspect
	}

	panelSize := V(side, side*aspect)
	panelPos := V((1-panelSize.X)*0.5, (1-panelSize.Y)*0.5)

	e.panel = e.picker.Push(Element{
		Kind:    KindPanel,
		Pos:     panelPos,
		Size:    panelSize,
		Texture: e.uiTexture("panel.png"),
	})

	tiles := e.assets.TileCount()
	perRow := int(math32.Ceil(math32.Sqrt(float32(tiles))))

	e.tileButtons = make([]ElementID, 0, tiles)
	for i := 0; i < tiles; i++ {
		const itemMargin = 0.045
		const paddingRatio = 0.1

		rowSize := float32(perRow) + float32(perRow-1)*paddingRatio
		tileSize := (1 - itemMargin*2) / rowSize
		padding := tileSize * paddingRatio

		pos := Pt(i%perRow, i/perRow).Vec2().Scale(tileSize + padding)
		pos.Y = 1 - pos.Y - tileSize - itemMargin
		pos.X += itemMargin

		id := e.picker.PushChild(e.panel, Element{
			Kind:    KindButton,
			Pos:     pos,
			Size:    Splat(tileSize),
			Texture: e.assets.TileTexture(NewTile(i)),
		})
		e.tileButtons = append(e.tileButtons, id)
	}

	// The panel grows out of a thin horizontal line: width first, then
	// height, each eased and centered on the panel's midpoint.
	thinLine := panelSize.Y * 0.02

	xCurve := EaseIn(0.7)
	yCurve := EaseIn(0.9)

	const yStart = 0.2
	const xEnd = 0.4

	e.openAnim = NewAnimator([]TimedProperty[UIProperty]{
		{
			ID:     PropScaleY,
			From:   thinLine,
			To:     panelSize.Y,
			Curve:  yCurve,
			Window: Window{Start: yStart, End: 1},
		},
		{
			ID:     PropPositionY,
			From:   panelSize.Y/2 + panelPos.Y,
			To:     panelPos.Y,
			Curve:  yCurve,
			Window: Window{Start: yStart, End: 1},
		},
		{
			ID:     PropScaleX,
			From:   0,
			To:     panelSize.X,
			Curve:  xCurve,
			Window: Window{Start: 0, End: xEnd},
		},
		{
			ID:     PropPositionX,
			From:   panelSize.X/2 + panelPos.X,
			To:     panelPos.X,
			Curve:  xCurve,
			Window: Window{Start: 0, End: xEnd},
		},
	}, pickerDuration)

	e.closeAnim = e.openAnim.Reversed()
}

// syncCurrentTile shows the selected tile on the HUD widget.
func (e *Editor) syncCurrentTile() {
	e.hud.Get(e.tileButton).SetTexture(e.assets.TileTexture(e.currentTile))
}

// board returns the current board, growing the list on demand so board
// switching never runs off the end.
func (e *Editor) board() *Board {
	for len(e.boards) <= e.currentBoard {
		e.boards = append(e.boards, NewBoard())
	}
	return e.boards[e.currentBoard]
}

// windowSize returns the logical window size in pixels.
func (e *Editor) windowSize() Vec2 {
	return V(float32(e.cfg.Window.Width), float32(e.cfg.Window.Height))
}

// cursorUI returns the cursor in fractional window coordinates with a
// bottom-left origin, the space the UI trees live in.
func (e *Editor) cursorUI() Vec2 {
	x, y := ebiten.CursorPosition()
	pos := V(float32(x), float32(y)).Div(e.windowSize())
	pos.Y = 1 - pos.Y
	return pos
}

// Update runs one editor tick: poll input, move the camera, route
// clicks, paint tiles, and advance the picker animators.
func (e *Editor) Update() error {
	e.input.Poll()

	dtMs := 1000 / float32(ebiten.TPS())

	e.updateCamera(dtMs)
	e.updateClicks()
	e.updatePainting()
	e.updatePicker()

	return nil
}

func (e *Editor) updateCamera(dtMs float32) {
	speed := e.camera.PanSpeed(dtMs)

	if e.input.Held(ActionPanUp) {
		e.camera.Pan(V(0, speed))
	} else if e.input.Held(ActionPanDown) {
		e.camera.Pan(V(0, -speed))
	}

	if e.input.Held(ActionPanRight) {
		e.camera.Pan(V(speed, 0))
	} else if e.input.Held(ActionPanLeft) {
		e.camera.Pan(V(-speed, 0))
	}

	zoomScale := math32.Pow(0.9, 0.05*dtMs)
	if e.input.Held(ActionZoomOut) {
		e.camera.ZoomBy(1 / zoomScale)
	} else if e.input.Held(ActionZoomIn) {
		e.camera.ZoomBy(zoomScale)
	}

	// Wheel zoom glides instead of stepping.
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		target := e.camera.Height * math32.Pow(0.8, float32(wheelY))
		e.camera.ZoomTo(target, 0.15)
	}

	e.camera.Update(dtMs / 1000)
}

func (e *Editor) updateClicks() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		e.uiCaptured = false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	pos := e.cursorUI()

	if id, ok := e.hud.Click(pos); ok {
		e.uiCaptured = true
		e.handleHUDClick(id)
		return
	}

	if e.pickerOpen {
		e.uiCaptured = true
		if id, ok := e.picker.Click(pos); ok {
			e.handlePickerClick(id)
		}
	}
}

func (e *Editor) handleHUDClick(id ElementID) {
	switch {
	case id.Equal(e.nextButton):
		e.currentBoard++
		log.Printf("tilery: board %d", e.currentBoard)
	case id.Equal(e.prevButton):
		if e.currentBoard > 0 {
			e.currentBoard--
		}
		log.Printf("tilery: board %d", e.currentBoard)
	case id.Equal(e.tileButton):
		e.togglePicker()
	default:
		panic(fmt.Sprintf("tilery: unhandled HUD element %v", id))
	}
}

func (e *Editor) handlePickerClick(id ElementID) {
	for i, button := range e.tileButtons {
		if button.Equal(id) {
			e.currentTile = NewTile(i)
			e.syncCurrentTile()
			return
		}
	}
	panic(fmt.Sprintf("tilery: unhandled picker element %v", id))
}

func (e *Editor) togglePicker() {
	if e.pickerOpen {
		e.closeAnim.Reset()
	} else {
		e.openAnim.Reset()
	}
	e.pickerOpen = !e.pickerOpen
}

// updatePainting writes or clears the tile under the cursor while a
// paint action is held. Painting pauses while the picker is open or
// while a press that hit the HUD is still held.
func (e *Editor) updatePainting() {
	if e.pickerOpen || e.uiCaptured {
		return
	}

	paint := e.input.Held(ActionPaint)
	if !paint && !e.input.Held(ActionErase) {
		return
	}

	x, y := ebiten.CursorPosition()
	tilePos := e.camera.ScreenToTile(V(float32(x), float32(y)), e.windowSize())

	if paint {
		e.board().Set(tilePos, e.currentTile)
	} else {
		e.board().Set(tilePos, NoTile())
	}
}

// updatePicker drives the open or close animator against the panel
// node. The close animation keeps drawing until it finishes; a closed,
// settled picker is skipped entirely.
func (e *Editor) updatePicker() {
	panel := e.picker.Get(e.panel)

	switch {
	case e.pickerOpen:
		e.openAnim.Animate(panel)
		e.drawPicker = true
	case e.closeAnim.IsPlaying():
		e.closeAnim.Animate(panel)
		e.drawPicker = true
	default:
		e.drawPicker = false
	}
}

// Draw renders the board through the camera, then the HUD, then the
// picker when it is open or still closing.
func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	e.drawBoard(screen)
	e.hud.Draw(screen, e.assets)
	if e.drawPicker {
		e.picker.Draw(screen, e.assets)
	}

	if e.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// drawBoard blits every occupied tile of the current board. Tile sizes
// round up a pixel so adjacent tiles never show seams at fractional
// zoom levels.
func (e *Editor) drawBoard(screen *ebiten.Image) {
	windowSize := e.windowSize()
	size := e.camera.TileViewSize()

	e.board().ForEach(func(p Point, t Tile) {
		if t.IsNone() {
			return
		}

		pos := e.camera.TileToView(p)
		pos.Y = 1 - pos.Y - size.Y

		img := e.assets.Image(e.assets.TileTexture(t))
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		scaledPos := pos.Mul(windowSize).Floor()
		scaledSize := size.Mul(windowSize)

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(
			float64(int(scaledSize.X)+1)/float64(w),
			float64(int(scaledSize.Y)+1)/float64(h),
		)
		op.GeoM.Translate(float64(scaledPos.X), float64(scaledPos.Y))
		screen.DrawImage(img, &op)
	})
}

// Layout fixes the logical resolution to the configured window size.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Window.Width, e.cfg.Window.Height
}

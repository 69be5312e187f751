package tilery

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Action is an editor control the user can bind inputs to.
type Action uint8

const (
	ActionPanUp Action = iota
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomOut
	ActionZoomIn
	ActionPaint
	ActionErase
	actionCount
)

// binding ties one physical input (a key or a mouse button) to an Action.
type binding struct {
	key     ebiten.Key
	mouse   ebiten.MouseButton
	isMouse bool
	action  Action
}

// InputState polls the bound inputs once per tick and answers which
// actions are currently held. Multiple bindings may share an action;
// the action is held while any of them is down.
type InputState struct {
	bindings []binding
	held     [actionCount]bool
}

// NewInputState compiles the configured bindings. Unknown input or
// action names fail: a typo in the config should surface at startup,
// not as a dead key.
func NewInputState(cfgs []BindingConfig) (*InputState, error) {
	s := &InputState{}
	for _, cfg := range cfgs {
		action, err := parseAction(cfg.Action)
		if err != nil {
			return nil, err
		}
		b, err := parseInput(cfg.Input)
		if err != nil {
			return nil, err
		}
		b.action = action
		s.bindings = append(s.bindings, b)
	}
	return s, nil
}

// Poll refreshes the held state of every action from the backend.
func (s *InputState) Poll() {
	for i := range s.held {
		s.held[i] = false
	}
	for _, b := range s.bindings {
		var down bool
		if b.isMouse {
			down = ebiten.IsMouseButtonPressed(b.mouse)
		} else {
			down = ebiten.IsKeyPressed(b.key)
		}
		if down {
			s.held[b.action] = true
		}
	}
}

// Held reports whether the action is currently held.
func (s *InputState) Held(a Action) bool {
	return s.held[a]
}

var actionNames = map[string]Action{
	"pan-up":    ActionPanUp,
	"pan-down":  ActionPanDown,
	"pan-left":  ActionPanLeft,
	"pan-right": ActionPanRight,
	"zoom-out":  ActionZoomOut,
	"zoom-in":   ActionZoomIn,
	"paint":     ActionPaint,
	"erase":     ActionErase,
}

func parseAction(name string) (Action, error) {
	if a, ok := actionNames[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("tilery: unknown action %q", name)
}

// keyNames maps config names to keys. Letters and digits are generated;
// the rest are listed explicitly.
var keyNames = func() map[string]ebiten.Key {
	m := map[string]ebiten.Key{
		"space":       ebiten.KeySpace,
		"enter":       ebiten.KeyEnter,
		"escape":      ebiten.KeyEscape,
		"tab":         ebiten.KeyTab,
		"shift":       ebiten.KeyShift,
		"ctrl":        ebiten.KeyControl,
		"alt":         ebiten.KeyAlt,
		"left-shift":  ebiten.KeyShiftLeft,
		"right-shift": ebiten.KeyShiftRight,
		"left-ctrl":   ebiten.KeyControlLeft,
		"right-ctrl":  ebiten.KeyControlRight,
		"up":          ebiten.KeyArrowUp,
		"down":        ebiten.KeyArrowDown,
		"left":        ebiten.KeyArrowLeft,
		"right":       ebiten.KeyArrowRight,
	}
	for r := 'a'; r <= 'z'; r++ {
		m[string(r)] = ebiten.KeyA + ebiten.Key(r-'a')
	}
	for r := '0'; r <= '9'; r++ {
		m[string(r)] = ebiten.KeyDigit0 + ebiten.Key(r-'0')
	}
	return m
}()

var mouseNames = map[string]ebiten.MouseButton{
	"mouse-left":   ebiten.MouseButtonLeft,
	"mouse-right":  ebiten.MouseButtonRight,
	"mouse-middle": ebiten.MouseButtonMiddle,
}

func parseInput(name string) (binding, error) {
	if key, ok := keyNames[name]; ok {
		return binding{key: key}, nil
	}
	if btn, ok := mouseNames[name]; ok {
		return binding{mouse: btn, isMouse: true}, nil
	}
	return binding{}, fmt.Errorf("tilery: unknown input %q", name)
}

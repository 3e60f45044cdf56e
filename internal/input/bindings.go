// Package input maps window keyboard and mouse events onto the orrery controls and the camera.
// Event callbacks arrive on the window thread; every action is posted to the frame goroutine.
package input

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
	"github.com/Carmen-Shannon/oxy-orrery/internal/controls"
)

// Step sizes applied by the keyboard.
const (
	SizeKeyStep  = 0.1
	SpeedKeyStep = 0.001
)

// Poster hands work to the goroutine that owns the scene and state.
type Poster interface {
	Post(task func()) bool
}

// Bindings holds the input mapping. Only the window thread touches its fields.
type Bindings struct {
	poster Poster
	panel  *controls.Panel
	camera camera.CameraController
	quit   func()

	selected int

	dragging bool
	lastX    int32
	lastY    int32
}

// BindingsOption is a functional option for NewBindings.
type BindingsOption func(*Bindings)

// WithCamera sets the camera controller driven by the mouse and arrow keys.
//
// Parameters:
//   - ctrl: the camera controller
//
// Returns:
//   - BindingsOption: the option
func WithCamera(ctrl camera.CameraController) BindingsOption {
	return func(b *Bindings) {
		b.camera = ctrl
	}
}

// WithQuit sets the function Esc calls.
//
// Parameters:
//   - quit: the quit function
//
// Returns:
//   - BindingsOption: the option
func WithQuit(quit func()) BindingsOption {
	return func(b *Bindings) {
		b.quit = quit
	}
}

// NewBindings creates the input mapping. Earth is selected initially.
//
// Parameters:
//   - poster: where actions are posted
//   - panel: the bound controls
//   - options: functional options
//
// Returns:
//   - *Bindings: the bindings
func NewBindings(poster Poster, panel *controls.Panel, options ...BindingsOption) *Bindings {
	b := &Bindings{poster: poster, panel: panel, selected: 2}
	for _, opt := range options {
		opt(b)
	}
	if b.selected >= len(panel.Speeds()) {
		b.selected = 0
	}
	return b
}

// Attach registers the bindings on w's input callbacks.
//
// Parameters:
//   - w: the window
func (b *Bindings) Attach(w window.Window) {
	w.SetKeyDownCallback(b.KeyDown)
	w.SetScrollCallback(b.Scroll)
	w.SetMouseDownCallback(b.MouseDown)
	w.SetMouseUpCallback(b.MouseUp)
	w.SetMouseMoveCallback(b.MouseMove)
}

// Selected returns the index of the planet whose speed the Up and Down keys change.
func (b *Bindings) Selected() int {
	return b.selected
}

// KeyDown handles a key press.
//
// Parameters:
//   - keyCode: the key, see common key codes
func (b *Bindings) KeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyEsc:
		if b.quit != nil {
			b.quit()
		}
	case common.KeyP, common.KeySpace:
		b.poster.Post(func() { b.panel.Pause().Press() })
	case common.KeyT:
		b.poster.Post(func() { b.panel.Theme().Press() })
	case common.KeyEqual, common.KeyKPAdd:
		b.poster.Post(func() { b.panel.Size().Nudge(SizeKeyStep) })
	case common.KeyMinus, common.KeyKPSubtract:
		b.poster.Post(func() { b.panel.Size().Nudge(-SizeKeyStep) })
	case common.Key1, common.Key2, common.Key3, common.Key4,
		common.Key5, common.Key6, common.Key7, common.Key8:
		if i := int(keyCode - common.Key1); i < len(b.panel.Speeds()) {
			b.selected = i
		}
	case common.KeyUp:
		b.nudgeSpeed(SpeedKeyStep)
	case common.KeyDown:
		b.nudgeSpeed(-SpeedKeyStep)
	case common.KeyLeft:
		b.withCamera(camera.CameraController.OrbitLeft)
	case common.KeyRight:
		b.withCamera(camera.CameraController.OrbitRight)
	}
}

func (b *Bindings) nudgeSpeed(delta float64) {
	speeds := b.panel.Speeds()
	if b.selected >= len(speeds) {
		return
	}
	s := speeds[b.selected]
	b.poster.Post(func() { s.Nudge(delta) })
}

func (b *Bindings) withCamera(fn func(camera.CameraController)) {
	if b.camera == nil {
		return
	}
	ctrl := b.camera
	b.poster.Post(func() { fn(ctrl) })
}

// Scroll zooms the camera.
//
// Parameters:
//   - delta: the wheel delta, positive away from the user
func (b *Bindings) Scroll(delta float32) {
	b.withCamera(func(c camera.CameraController) { c.Zoom(delta) })
}

// MouseDown starts a middle-button orbit drag.
func (b *Bindings) MouseDown(button window.MouseButton, x, y int32) {
	if button != window.MouseButtonMiddle {
		return
	}
	b.dragging = true
	b.lastX, b.lastY = x, y
}

// MouseUp ends the drag.
func (b *Bindings) MouseUp(button window.MouseButton, _, _ int32) {
	if button == window.MouseButtonMiddle {
		b.dragging = false
	}
}

// MouseMove orbits the camera by the drag delta.
func (b *Bindings) MouseMove(x, y int32) {
	if !b.dragging {
		return
	}
	dx, dy := float32(x-b.lastX), float32(y-b.lastY)
	b.lastX, b.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	b.withCamera(func(c camera.CameraController) { c.Orbit(dx, dy) })
}

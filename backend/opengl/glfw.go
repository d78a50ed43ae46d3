package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/controls/ui"
)

// GLFWInputAdapter adapts GLFW input to ui.InputState.
//
// Callbacks record events as GLFW delivers them during glfw.PollEvents.
// Call Update after polling and EndFrame once the frame is drawn:
//
//	glfw.PollEvents()
//	input := adapter.Update()
//	... draw ...
//	adapter.EndFrame()
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *ui.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  ui.NewInputState(),
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update refreshes polled state (cursor, modifiers) and returns the input
// for this frame.
func (a *GLFWInputAdapter) Update() *ui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// EndFrame clears per-frame events such as clicks and wheel deltas.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *ui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToUI(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	// Several scroll events can arrive between frames.
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwMouseButtonToUI maps GLFW mouse buttons to ui mouse buttons.
func glfwMouseButtonToUI(button glfw.MouseButton) ui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return ui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return ui.MouseButtonMiddle
	default:
		return -1
	}
}

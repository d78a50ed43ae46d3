package ui

// MouseButton indexes the buttons InputState tracks.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// buttonState is one button: held, plus the edges seen since the last Reset.
type buttonState struct {
	down     bool
	pressed  bool
	released bool
}

// InputState is the pointer state widgets read during a frame. Backends
// feed it events; Reset clears the edges once the frame is drawn.
type InputState struct {
	MouseX, MouseY           float32
	MouseWheelX, MouseWheelY float32

	// ModShift makes wheel steps finer.
	ModShift bool
	ModCtrl  bool

	buttons [MouseButtonCount]buttonState
}

// NewInputState returns an idle InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset drops press/release edges and wheel motion. Held buttons stay held.
func (s *InputState) Reset() {
	for i := range s.buttons {
		s.buttons[i].pressed = false
		s.buttons[i].released = false
	}
	s.MouseWheelX, s.MouseWheelY = 0, 0
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

// SetMouseButton records a button going down or up. Repeating the current
// state records no edge.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	b := s.button(button)
	if b == nil || b.down == down {
		return
	}
	b.down = down
	if down {
		b.pressed = true
	} else {
		b.released = true
	}
}

func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX, s.MouseWheelY = x, y
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	b := s.button(button)
	return b != nil && b.down
}

// MouseClicked reports whether button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	b := s.button(button)
	return b != nil && b.pressed
}

// MouseReleased reports whether button came up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	b := s.button(button)
	return b != nil && b.released
}

func (s *InputState) MousePos() Vec2 {
	return Vec2{s.MouseX, s.MouseY}
}

func (s *InputState) button(button MouseButton) *buttonState {
	if button < 0 || button >= MouseButtonCount {
		return nil
	}
	return &s.buttons[button]
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputEdges(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	in.SetMouseButton(MouseButtonLeft, true)
	assert.True(t, in.MouseDown(MouseButtonLeft))
	assert.True(t, in.MouseClicked(MouseButtonLeft))
	assert.False(t, in.MouseReleased(MouseButtonLeft))

	in.SetMouseWheel(0, 2)
	in.Reset()
	assert.True(t, in.MouseDown(MouseButtonLeft), "held buttons survive Reset")
	assert.False(t, in.MouseClicked(MouseButtonLeft))
	assert.Zero(t, in.MouseWheelY)

	in.SetMouseButton(MouseButtonLeft, false)
	assert.True(t, in.MouseReleased(MouseButtonLeft))
	assert.False(t, in.MouseDown(MouseButtonLeft))

	// Out of range buttons are ignored.
	in.SetMouseButton(MouseButtonCount, true)
	assert.False(t, in.MouseDown(MouseButtonCount))
	assert.False(t, in.MouseClicked(-1))
}

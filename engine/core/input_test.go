package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputKeyEdges(t *testing.T) {
	in := NewInput()

	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.True(t, in.IsKeyDown(KeyW))
	assert.True(t, in.WasKeyPressed(KeyW))
	assert.False(t, in.WasKeyReleased(KeyW))

	// Edges last exactly one step; held state persists.
	in.NextFrame()
	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.WasKeyPressed(KeyW))

	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))
	assert.True(t, in.WasKeyReleased(KeyW))

	in.NextFrame()
	assert.False(t, in.WasKeyReleased(KeyW))
}

func TestInputRepeatedDownIsNotAnEdge(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyA, Down: true})
	in.NextFrame()

	in.Handle(EventKey{Key: KeyA, Down: true})
	assert.False(t, in.WasKeyPressed(KeyA))
	assert.True(t, in.IsKeyDown(KeyA))
}

func TestInputButtonEdges(t *testing.T) {
	in := NewInput()

	in.Handle(EventMouseButton{Button: MouseRight, Down: true})
	assert.True(t, in.IsButtonDown(MouseRight))
	assert.True(t, in.WasButtonPressed(MouseRight))

	in.NextFrame()
	in.Handle(EventMouseButton{Button: MouseRight, Down: false})
	assert.True(t, in.WasButtonReleased(MouseRight))
	assert.False(t, in.IsButtonDown(MouseRight))

	in.NextFrame()
	assert.False(t, in.WasButtonReleased(MouseRight))
}

func TestInputOutOfRangeButtonIgnored(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseButton(99), Down: true})
	assert.False(t, in.IsButtonDown(MouseButton(99)))
}

func TestInputMouseVelocityAccumulates(t *testing.T) {
	in := NewInput()

	// First move only establishes the cursor position.
	in.Handle(EventMouseMove{X: 100, Y: 100})
	vx, vy := in.MouseVelocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	in.Handle(EventMouseMove{X: 110, Y: 95})
	in.Handle(EventMouseMove{X: 115, Y: 95})
	vx, vy = in.MouseVelocity()
	assert.InDelta(t, 15.0, vx, 1e-9)
	assert.InDelta(t, -5.0, vy, 1e-9)

	x, y := in.Mouse()
	assert.InDelta(t, 115.0, x, 1e-9)
	assert.InDelta(t, 95.0, y, 1e-9)

	in.NextFrame()
	vx, vy = in.MouseVelocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestInputWheelSteps(t *testing.T) {
	in := NewInput()

	in.Handle(EventScroll{Yoff: 1})
	assert.True(t, in.WheelUp())
	assert.False(t, in.WheelDown())

	in.Handle(EventScroll{Yoff: -2})
	assert.True(t, in.WheelDown())

	in.NextFrame()
	assert.False(t, in.WheelUp())
	assert.False(t, in.WheelDown())
}

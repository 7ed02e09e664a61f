package rig

// Action identifies one logical control the rig samples every tick. The rig
// assumes a fixed action set already bound to physical devices; the binding
// itself lives with the caller.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	ZoomIn
	ZoomOut
	WheelUp   // discrete scroll step, edge-only
	WheelDown // discrete scroll step, edge-only
	PanLeft
	PanRight
	TiltForward
	TiltBackward
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// InputSource is queried (never pushed) once per tick. Implementations must
// present a consistent snapshot for the duration of a tick: held state and
// edge state may not change underneath a running Tick.
//
// JustReleased must be true only on the single tick the transition occurred.
// A polling backend has to track previous-frame state to synthesize that.
type InputSource interface {
	Held(a Action) bool
	JustReleased(a Action) bool
	ButtonHeld(b Button) bool
	ButtonJustReleased(b Button) bool
	MouseVelocity() (x, y float32)
	CursorPos() (x, y float32)
	ViewportSize() (w, h float32)
}

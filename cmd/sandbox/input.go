package main

import (
	"github.com/hazelv/crane/engine/core"
	"github.com/hazelv/crane/engine/rig"
)

// Default key bindings. Each action may have several physical keys.
var actionKeys = map[rig.Action][]core.Key{
	rig.MoveUp:       {core.KeyW, core.KeyUp},
	rig.MoveDown:     {core.KeyS, core.KeyDown},
	rig.MoveLeft:     {core.KeyA, core.KeyLeft},
	rig.MoveRight:    {core.KeyD, core.KeyRight},
	rig.ZoomIn:       {core.KeyKPAdd},
	rig.ZoomOut:      {core.KeyKPSubtract},
	rig.PanLeft:      {core.KeyQ},
	rig.PanRight:     {core.KeyE},
	rig.TiltForward:  {core.KeyR},
	rig.TiltBackward: {core.KeyF},
}

var rigButtons = map[rig.Button]core.MouseButton{
	rig.ButtonLeft:   core.MouseLeft,
	rig.ButtonMiddle: core.MouseMiddle,
	rig.ButtonRight:  core.MouseRight,
}

// rigInput adapts the engine's polled input to the rig's InputSource. The
// engine already snapshots state per fixed step, which gives the rig the
// consistency it asks for. Wheel steps surface as one-step releases.
type rigInput struct {
	eng *core.Engine
}

var _ rig.InputSource = (*rigInput)(nil)

func (ri *rigInput) Held(a rig.Action) bool {
	for _, k := range actionKeys[a] {
		if ri.eng.Input.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func (ri *rigInput) JustReleased(a rig.Action) bool {
	switch a {
	case rig.WheelUp:
		return ri.eng.Input.WheelUp()
	case rig.WheelDown:
		return ri.eng.Input.WheelDown()
	}
	for _, k := range actionKeys[a] {
		if ri.eng.Input.WasKeyReleased(k) {
			return true
		}
	}
	return false
}

func (ri *rigInput) ButtonHeld(b rig.Button) bool {
	return ri.eng.Input.IsButtonDown(rigButtons[b])
}

func (ri *rigInput) ButtonJustReleased(b rig.Button) bool {
	return ri.eng.Input.WasButtonReleased(rigButtons[b])
}

func (ri *rigInput) MouseVelocity() (float32, float32) {
	x, y := ri.eng.Input.MouseVelocity()
	return float32(x), float32(y)
}

func (ri *rigInput) CursorPos() (float32, float32) {
	x, y := ri.eng.Input.Mouse()
	return float32(x), float32(y)
}

func (ri *rigInput) ViewportSize() (float32, float32) {
	w, h := ri.eng.Window.FramebufferSize()
	return float32(w), float32(h)
}

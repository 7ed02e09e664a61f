package core

// Input tracks polled keyboard/mouse state and synthesizes edge-triggered
// queries (just pressed / just released) from the level events the platform
// emits. Edge state is valid for exactly one update step; the run loop calls
// NextFrame after each step.
type Input struct {
	keys         map[Key]bool
	keysPressed  map[Key]bool
	keysReleased map[Key]bool

	buttons         [mouseButtonCount]bool
	buttonsPressed  [mouseButtonCount]bool
	buttonsReleased [mouseButtonCount]bool

	mouseX, mouseY float64
	velX, velY     float64
	haveCursor     bool

	wheelUp, wheelDown bool
}

func NewInput() *Input {
	return &Input{
		keys:         map[Key]bool{},
		keysPressed:  map[Key]bool{},
		keysReleased: map[Key]bool{},
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		was := in.keys[e.Key]
		in.keys[e.Key] = e.Down
		if e.Down && !was {
			in.keysPressed[e.Key] = true
		}
		if !e.Down && was {
			in.keysReleased[e.Key] = true
		}
	case EventMouseButton:
		if e.Button < 0 || e.Button >= mouseButtonCount {
			return
		}
		was := in.buttons[e.Button]
		in.buttons[e.Button] = e.Down
		if e.Down && !was {
			in.buttonsPressed[e.Button] = true
		}
		if !e.Down && was {
			in.buttonsReleased[e.Button] = true
		}
	case EventMouseMove:
		if in.haveCursor {
			in.velX += e.X - in.mouseX
			in.velY += e.Y - in.mouseY
		}
		in.mouseX, in.mouseY = e.X, e.Y
		in.haveCursor = true
	case EventScroll:
		if e.Yoff > 0 {
			in.wheelUp = true
		}
		if e.Yoff < 0 {
			in.wheelDown = true
		}
	}
}

// NextFrame clears one-step state: edges, wheel steps and motion velocity.
// Held state persists.
func (in *Input) NextFrame() {
	clear(in.keysPressed)
	clear(in.keysReleased)
	in.buttonsPressed = [mouseButtonCount]bool{}
	in.buttonsReleased = [mouseButtonCount]bool{}
	in.velX, in.velY = 0, 0
	in.wheelUp, in.wheelDown = false, false
}

func (in *Input) IsKeyDown(k Key) bool         { return in.keys[k] }
func (in *Input) WasKeyPressed(k Key) bool     { return in.keysPressed[k] }
func (in *Input) WasKeyReleased(k Key) bool    { return in.keysReleased[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return b >= 0 && b < mouseButtonCount && in.buttons[b] }
func (in *Input) WasButtonPressed(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && in.buttonsPressed[b]
}
func (in *Input) WasButtonReleased(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && in.buttonsReleased[b]
}
func (in *Input) Mouse() (float64, float64)         { return in.mouseX, in.mouseY }
func (in *Input) MouseVelocity() (float64, float64) { return in.velX, in.velY }
func (in *Input) WheelUp() bool                     { return in.wheelUp }
func (in *Input) WheelDown() bool                   { return in.wheelDown }

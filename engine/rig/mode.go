package rig

// Mode is the rig's interaction state. Exactly one mode is active per tick;
// it gates which inputs may drive which motions.
type Mode int

const (
	// ModeIdle allows keyboard motion and edge scrolling only.
	ModeIdle Mode = iota
	// ModeMoveDrag routes mouse motion into planar movement.
	ModeMoveDrag
	// ModePanTilt routes mouse motion into yaw/tilt.
	ModePanTilt
)

func (m Mode) String() string {
	switch m {
	case ModeMoveDrag:
		return "move+drag"
	case ModePanTilt:
		return "pan+tilt"
	default:
		return "idle"
	}
}

// next evaluates the transition chain once per tick. First match wins:
// right-without-middle enters drag, middle-without-right enters pan/tilt,
// a release with no held-condition remaining falls back to idle. Both
// buttons held together matches nothing, so the mode is sticky.
func (m Mode) next(in InputSource) Mode {
	right := in.ButtonHeld(ButtonRight)
	middle := in.ButtonHeld(ButtonMiddle)
	switch {
	case right && !middle:
		return ModeMoveDrag
	case middle && !right:
		return ModePanTilt
	case in.ButtonJustReleased(ButtonRight) || in.ButtonJustReleased(ButtonMiddle):
		return ModeIdle
	}
	return m
}

package rig

// resolveAxis reduces one logical axis (a key pair plus optional mouse
// motion) to a signed (x, y) pair. Priority ladder, first match wins:
//
//  1. mouse drives the axis when active and neither key is held
//  2. negative key alone
//  3. positive key alone
//  4. anything else is zero: opposing keys interlock, mouse motion while a
//     key is held is ignored
//
// Callers pick whichever of x/y is meaningful for the axis in question.
func resolveAxis(magnitude float32, negHeld, posHeld, invert, mouseActive bool, mouseVelX, mouseVelY, sensitivity float32) (x, y float32) {
	switch {
	case mouseActive && !negHeld && !posHeld:
		x = magnitude * mouseVelX * sensitivity
		y = magnitude * mouseVelY * sensitivity
	case negHeld && !(mouseActive || posHeld):
		x, y = -magnitude, -magnitude
	case posHeld && !(mouseActive || negHeld):
		x, y = magnitude, magnitude
	}
	if invert {
		x, y = -x, -y
	}
	return x, y
}

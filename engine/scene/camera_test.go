package scene

import (
	"math"
	"testing"

	"github.com/hazelv/crane/engine/rig"
	"github.com/stretchr/testify/assert"
)

func transform(m [16]float32, x, y, z, w float32) (ox, oy, oz, ow float32) {
	ox = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	oy = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	oz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	ow = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return
}

func TestMulIdentity(t *testing.T) {
	id := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	m := translate(3, -2, 7)
	assert.Equal(t, m, mul(id, m))
	assert.Equal(t, m, mul(m, id))
}

func TestMulAppliesRightFactorFirst(t *testing.T) {
	// Rotate 90 degrees around Y, then translate: (0,0,1) -> (1,0,0) -> (6,0,0).
	m := mul(translate(5, 0, 0), rotateY(math.Pi/2))
	x, y, z, w := transform(m, 0, 0, 1, 1)
	assert.InDelta(t, 6.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
	assert.InDelta(t, 0.0, float64(z), 1e-5)
	assert.InDelta(t, 1.0, float64(w), 1e-5)
}

func TestOverlayProjection(t *testing.T) {
	c := NewOverlay(800, 600)
	vp := c.VP()

	// Top-left pixel maps to NDC (-1, 1), bottom-right to (1, -1).
	x, y, _, _ := transform(vp, 0, 0, 0, 1)
	assert.InDelta(t, -1.0, float64(x), 1e-5)
	assert.InDelta(t, 1.0, float64(y), 1e-5)

	x, y, _, _ = transform(vp, 800, 600, 0, 1)
	assert.InDelta(t, 1.0, float64(x), 1e-5)
	assert.InDelta(t, -1.0, float64(y), 1e-5)
}

func TestCameraLooksAtPivot(t *testing.T) {
	c := NewCamera(800, 600)
	pose := rig.Pose{
		Position: [3]float32{10, 0, -4},
		Yaw:      0.7,
		Pitch:    -0.5,
	}
	// A plausible arm for that pitch at distance 15.
	d := float32(15)
	pose.Arm[1] = -d * float32(math.Sin(float64(pose.Pitch)))
	pose.Arm[2] = d * float32(math.Cos(float64(pose.Pitch)))
	c.ApplyPose(pose)

	// The pivot should project to the center of the screen, in front of the eye.
	vp := c.VP()
	x, y, _, w := transform(vp, pose.Position[0], pose.Position[1], pose.Position[2], 1)
	assert.Greater(t, float64(w), 0.0)
	assert.InDelta(t, 0.0, float64(x/w), 1e-4)
	assert.InDelta(t, 0.0, float64(y/w), 1e-4)
}

func TestEyeWorldDistanceMatchesArm(t *testing.T) {
	c := NewCamera(800, 600)
	pose := rig.Pose{
		Position: [3]float32{1, 0, 2},
		Yaw:      1.2,
		Arm:      [3]float32{0, 5, 8},
		Pitch:    -0.4,
	}
	c.ApplyPose(pose)

	ex, ey, ez := c.EyeWorld()
	dx := ex - pose.Position[0]
	dy := ey - pose.Position[1]
	dz := ez - pose.Position[2]
	got := math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
	want := math.Sqrt(float64(5*5 + 8*8))
	assert.InDelta(t, want, got, 1e-4)
}

func TestCameraAspectGuard(t *testing.T) {
	c := NewCamera(800, 0)
	assert.NotPanics(t, func() { c.VP() })
}

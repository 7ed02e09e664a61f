package scene

import "github.com/hazelv/crane/engine/rig"

// Camera is a perspective camera fed by rig poses. It is the only consumer
// of a Pose: world = T(position) * Ry(yaw) * T(arm) * Rx(pitch), and the
// view matrix is that transform inverted.
type Camera struct {
	FovYDeg float32
	Near    float32
	Far     float32

	aspect float32
	pose   rig.Pose
	vp     [16]float32
	dirty  bool
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FovYDeg: 60,
		Near:    0.1,
		Far:     1000,
		aspect:  aspectOf(width, height),
	}
	c.Recalculate()
	return c
}

func (c *Camera) SetViewportPixels(w, h int) {
	c.aspect = aspectOf(w, h)
	c.dirty = true
}

// ApplyPose adopts a new rig pose. Cheap; the matrix rebuild is deferred.
func (c *Camera) ApplyPose(p rig.Pose) {
	c.pose = p
	c.dirty = true
}

func (c *Camera) Pose() rig.Pose { return c.pose }

func (c *Camera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *Camera) Recalculate() {
	proj := perspective(deg2rad(c.FovYDeg), c.aspect, c.Near, c.Far)

	// view = inverse(world): undo pivot translation, then yaw, then the arm,
	// then the camera pitch.
	p := c.pose
	view := mul(rotateX(-p.Pitch),
		mul(translate(-p.Arm[0], -p.Arm[1], -p.Arm[2]),
			mul(rotateY(-p.Yaw),
				translate(-p.Position[0], -p.Position[1], -p.Position[2]))))

	c.vp = mul(proj, view)
	c.dirty = false
}

// EyeWorld returns the lens position in world space, mostly for debugging.
func (c *Camera) EyeWorld() (x, y, z float32) {
	p := c.pose
	s, co := sincos(p.Yaw)
	// Ry(yaw) applied to the arm, then offset by the pivot.
	ax := p.Arm[0]*co + p.Arm[2]*s
	ay := p.Arm[1]
	az := -p.Arm[0]*s + p.Arm[2]*co
	return p.Position[0] + ax, p.Position[1] + ay, p.Position[2] + az
}

func aspectOf(w, h int) float32 {
	if h < 1 {
		return 1
	}
	return float32(w) / float32(h)
}

package rig

// Pose is the rig's output: the pivot's world transform plus the camera arm
// hanging off it. Position and yaw move the pivot over the ground; Arm and
// Pitch place the lens at the configured distance from the pivot.
type Pose struct {
	Position [3]float32 // pivot world position
	Yaw      float32    // pivot heading, radians
	Arm      [3]float32 // camera offset local to the pivot
	Pitch    float32    // camera pitch local to the arm, radians
}

// Rig turns per-tick input into camera motion. One rig per controlled
// camera; a rig is driven by a single goroutine and holds all of its
// per-frame state in plain fields.
type Rig struct {
	cfg  Config
	mode Mode
	pose Pose

	zoom     float32 // current distance from pivot to lens
	prevZoom float32 // last tick's distance, diagnostics only
	tilt     float32 // degrees

	// Per-tick derived rates, kept for diagnostics.
	zoomRate float32
	moveRate float32
	panRate  float32
	tiltRate float32
	lastDT   float32
}

// New validates cfg and builds a rig parked at the origin, at the configured
// initial zoom distance and tilt angle.
func New(cfg Config) (*Rig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Rig{
		cfg:      cfg,
		mode:     ModeIdle,
		zoom:     cfg.ZoomInitDistance,
		prevZoom: cfg.ZoomInitDistance,
		tilt:     cfg.TiltInitAngle,
	}
	// Tilt is stored as a negative pitch: the camera looks down at the pivot.
	r.pose.Pitch = -deg2rad(cfg.TiltInitAngle)
	r.recomputeArm()
	return r, nil
}

// Config returns the rig's immutable configuration.
func (r *Rig) Config() Config { return r.cfg }

// Mode reports the interaction mode resolved by the last Tick.
func (r *Rig) Mode() Mode { return r.mode }

// ZoomDistance reports the current pivot-to-lens distance.
func (r *Rig) ZoomDistance() float32 { return r.zoom }

// TiltAngle reports the current tilt in degrees.
func (r *Rig) TiltAngle() float32 { return r.tilt }

// Pose returns the pose produced by the last Tick (or by New).
func (r *Rig) Pose() Pose { return r.pose }

// Tick advances the rig by dt seconds against a snapshot of input state and
// returns the new pose. Steps run in a fixed order: mode resolution, zoom,
// move (keys, drag, edge scroll), pan, tilt, arm recompute.
func (r *Rig) Tick(dt float32, in InputSource) Pose {
	r.lastDT = dt
	r.mode = r.mode.next(in)
	r.stepZoom(dt, in)
	r.stepMove(dt, in)
	r.stepPan(dt, in)
	r.stepTilt(dt, in)
	r.recomputeArm()
	return r.pose
}

// stepZoom applies the four zoom triggers. They are evaluated independently
// and accumulate: a wheel step and a held key can both land in one tick.
// Speed scales with current distance, so zooming feels uniform at any range.
func (r *Rig) stepZoom(dt float32, in InputSource) {
	speed := r.cfg.ZoomSpeed * 10 * (r.zoom / r.cfg.ZoomMaxIn) * dt
	if r.cfg.ZoomInvert {
		speed = -speed
	}
	r.zoomRate = speed
	r.prevZoom = r.zoom

	z := r.zoom
	if in.JustReleased(WheelUp) && !in.Held(ZoomOut) {
		z -= speed * r.cfg.ZoomScrollFactor
	}
	if in.Held(ZoomIn) && !in.Held(ZoomOut) && !in.JustReleased(WheelDown) {
		z -= speed
	}
	if in.JustReleased(WheelDown) && !in.Held(ZoomIn) {
		z += speed * r.cfg.ZoomScrollFactor
	}
	if in.Held(ZoomOut) && !in.Held(ZoomIn) && !in.JustReleased(WheelUp) {
		z += speed
	}
	r.zoom = clamp(z, r.cfg.ZoomMaxIn, r.cfg.ZoomMaxOut)
}

// stepMove translates the pivot. Keyboard and (in drag mode) mouse motion
// resolve per logical axis, then map into world X/Z relative to the current
// yaw. The ZoomMaxOut terms cancel algebraically; the formula is kept in
// its original shape pending a tuning review.
func (r *Rig) stepMove(dt float32, in InputSource) {
	speed := -r.cfg.MoveSpeed * 10 * ((r.zoom * r.cfg.ZoomMaxOut) / (r.cfg.ZoomMaxIn * r.cfg.ZoomMaxOut)) * dt
	r.moveRate = speed

	sens := 0.0025 * r.cfg.MouseSensitivity
	mvx, mvy := in.MouseVelocity()
	dragging := r.mode == ModeMoveDrag

	hx, _ := resolveAxis(speed, in.Held(MoveLeft), in.Held(MoveRight), r.cfg.MoveInvert, dragging, mvx, mvy, sens)
	_, vy := resolveAxis(speed, in.Held(MoveUp), in.Held(MoveDown), r.cfg.MoveInvert, dragging, mvx, mvy, sens)

	sinY := sin32(r.pose.Yaw)
	cosY := cos32(r.pose.Yaw)
	r.pose.Position[0] += hx*cosY + vy*sinY
	r.pose.Position[2] += hx*sinY + vy*cosY

	r.stepEdgeScroll(speed, sinY, cosY, in)
}

// stepEdgeScroll nudges the pivot when the cursor sits inside one of the
// four viewport edge strips. Zones are independent; a corner drives two
// axes at once. Suppressed outside idle and whenever a move key is held.
func (r *Rig) stepEdgeScroll(speed, sinY, cosY float32, in InputSource) {
	if !r.cfg.EdgeScrollEnabled || r.mode != ModeIdle {
		return
	}
	if in.Held(MoveUp) || in.Held(MoveDown) || in.Held(MoveLeft) || in.Held(MoveRight) {
		return
	}
	cx, cy := in.CursorPos()
	w, h := in.ViewportSize()
	t := r.cfg.EdgeScrollThreshold

	if cx < t {
		r.pose.Position[0] += speed * cosY
		r.pose.Position[2] += speed * sinY
	}
	if cx > w-t {
		r.pose.Position[0] -= speed * cosY
		r.pose.Position[2] -= speed * sinY
	}
	if cy < t {
		r.pose.Position[0] += speed * sinY
		r.pose.Position[2] += speed * cosY
	}
	if cy > h-t {
		r.pose.Position[0] -= speed * sinY
		r.pose.Position[2] -= speed * cosY
	}
}

// stepPan compounds an incremental yaw rotation onto the pivot.
func (r *Rig) stepPan(dt float32, in InputSource) {
	speed := r.cfg.PanSpeed * 1.5 * dt
	r.panRate = speed

	sens := 0.0025 * r.cfg.MouseSensitivity
	mvx, mvy := in.MouseVelocity()
	x, _ := resolveAxis(speed, in.Held(PanLeft), in.Held(PanRight), r.cfg.PanInvert, r.mode == ModePanTilt, mvx, mvy, sens)
	r.pose.Yaw += x
}

// stepTilt updates the stored tilt angle, then derives the camera pitch with
// a zoom-dependent bias: zooming out blends in up to half the tilt range of
// extra downward tilt. The final pitch is re-clamped in radians.
func (r *Rig) stepTilt(dt float32, in InputSource) {
	speed := r.cfg.TiltSpeed * 100 * dt
	r.tiltRate = speed

	sens := 0.0025 * r.cfg.MouseSensitivity
	mvx, mvy := in.MouseVelocity()
	_, y := resolveAxis(speed, in.Held(TiltForward), in.Held(TiltBackward), r.cfg.TiltInvert, r.mode == ModePanTilt, mvx, mvy, sens)

	r.tilt = clamp(r.tilt+y, r.cfg.TiltMinAngle, r.cfg.TiltMaxAngle)

	bias := (r.cfg.TiltMaxAngle - r.cfg.TiltMinAngle) / 2 * (r.zoom / r.cfg.ZoomMaxOut)
	pitch := -deg2rad(r.tilt + bias)
	r.pose.Pitch = clamp(pitch, -deg2rad(r.cfg.TiltMaxAngle), -deg2rad(r.cfg.TiltMinAngle))
}

// recomputeArm keeps the lens exactly zoom units from the pivot for the
// current pitch: armY = -d*sin(pitch), armZ = d*cos(pitch).
func (r *Rig) recomputeArm() {
	r.pose.Arm[0] = 0
	r.pose.Arm[1] = -r.zoom * sin32(r.pose.Pitch)
	r.pose.Arm[2] = r.zoom * cos32(r.pose.Pitch)
}

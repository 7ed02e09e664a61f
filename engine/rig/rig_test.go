package rig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInput is a settable InputSource for driving Tick directly.
type fakeInput struct {
	held     map[Action]bool
	released map[Action]bool
	buttons  map[Button]bool
	btnRel   map[Button]bool

	mvx, mvy float32
	cx, cy   float32
	w, h     float32
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:     map[Action]bool{},
		released: map[Action]bool{},
		buttons:  map[Button]bool{},
		btnRel:   map[Button]bool{},
		cx:       400, cy: 300,
		w: 800, h: 600,
	}
}

func (f *fakeInput) Held(a Action) bool                { return f.held[a] }
func (f *fakeInput) JustReleased(a Action) bool        { return f.released[a] }
func (f *fakeInput) ButtonHeld(b Button) bool          { return f.buttons[b] }
func (f *fakeInput) ButtonJustReleased(b Button) bool  { return f.btnRel[b] }
func (f *fakeInput) MouseVelocity() (float32, float32) { return f.mvx, f.mvy }
func (f *fakeInput) CursorPos() (float32, float32)     { return f.cx, f.cy }
func (f *fakeInput) ViewportSize() (float32, float32)  { return f.w, f.h }

const dt = float32(1.0 / 60.0)

func TestNewInitialPose(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ModeIdle, r.Mode())
	assert.InDelta(t, 20.0, r.ZoomDistance(), 1e-6)
	assert.InDelta(t, 25.0, r.TiltAngle(), 1e-6)

	p := r.Pose()
	assert.InDelta(t, -deg2rad(25), p.Pitch, 1e-6)
	// Lens sits exactly zoom units from the pivot.
	assert.InDelta(t, float64(-20*sin32(p.Pitch)), float64(p.Arm[1]), 1e-4)
	assert.InDelta(t, float64(20*cos32(p.Pitch)), float64(p.Arm[2]), 1e-4)
	assert.Zero(t, p.Arm[0])
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomMaxIn = 0
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTickIdleNoInputKeepsPosition(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)
	in := newFakeInput()

	for i := 0; i < 10; i++ {
		r.Tick(dt, in)
	}

	p := r.Pose()
	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Position[1])
	assert.Zero(t, p.Position[2])
	assert.Zero(t, p.Yaw)
	assert.InDelta(t, 20.0, r.ZoomDistance(), 1e-6)
	assert.InDelta(t, 25.0, r.TiltAngle(), 1e-6)
}

func TestTickAppliesZoomTiltBias(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	p := r.Tick(dt, newFakeInput())
	// Half the tilt range scaled by zoom/max-out on top of the stored tilt.
	bias := (80.0 - 10.0) / 2 * (20.0 / 100.0)
	assert.InDelta(t, float64(-deg2rad(25+float32(bias))), float64(p.Pitch), 1e-5)
}

func TestZoomWheelStepClampsAtMaxIn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomInitDistance = 10
	r, err := New(cfg)
	require.NoError(t, err)

	in := newFakeInput()
	in.released[WheelUp] = true
	r.Tick(1, in) // dt=1: step is 1*10*(10/5)*4 = 80, far past the stop

	assert.InDelta(t, 5.0, r.ZoomDistance(), 1e-6)
}

func TestZoomKeyHeld(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[ZoomOut] = true
	r.Tick(dt, in)

	want := 20 + 1*10*(20.0/5.0)*dt
	assert.InDelta(t, float64(want), float64(r.ZoomDistance()), 1e-4)
}

func TestZoomOpposingKeysInterlock(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[ZoomIn] = true
	in.held[ZoomOut] = true
	r.Tick(dt, in)

	assert.InDelta(t, 20.0, r.ZoomDistance(), 1e-6)
}

func TestZoomWheelAndKeyAccumulate(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.released[WheelUp] = true
	in.held[ZoomIn] = true
	r.Tick(dt, in)

	speed := 1 * 10 * (20.0 / 5.0) * dt
	want := 20 - speed*4 - speed
	assert.InDelta(t, float64(want), float64(r.ZoomDistance()), 1e-4)
}

func TestZoomInvertFlipsDirection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZoomInvert = true
	r, err := New(cfg)
	require.NoError(t, err)

	in := newFakeInput()
	in.held[ZoomIn] = true
	r.Tick(dt, in)

	assert.Greater(t, r.ZoomDistance(), float32(20))
}

func TestMoveKeyAtZeroYaw(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[MoveUp] = true
	p := r.Tick(dt, in)

	speed := -1 * 10 * ((20.0 * 100.0) / (5.0 * 100.0)) * dt
	assert.InDelta(t, float64(-speed), float64(p.Position[2]), 1e-4)
	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Position[1])
}

func TestMoveOpposingKeysInterlock(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[MoveLeft] = true
	in.held[MoveRight] = true
	p := r.Tick(dt, in)

	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Position[2])
}

func TestMoveDragRoutesMouse(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.buttons[ButtonRight] = true
	in.mvx = 10
	p := r.Tick(dt, in)

	require.Equal(t, ModeMoveDrag, r.Mode())
	speed := -1 * 10 * ((20.0 * 100.0) / (5.0 * 100.0)) * dt
	want := speed * 10 * (0.0025 * 1)
	assert.InDelta(t, float64(want), float64(p.Position[0]), 1e-5)
}

func TestMouseIgnoredOutsideDragMode(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.mvx = 50
	in.mvy = 50
	p := r.Tick(dt, in)

	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Position[2])
	assert.Zero(t, p.Yaw)
}

func TestEdgeScrollLeftStrip(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.cx = 5 // inside the 20px strip
	p := r.Tick(dt, in)

	speed := -1 * 10 * ((20.0 * 100.0) / (5.0 * 100.0)) * dt
	assert.InDelta(t, float64(speed), float64(p.Position[0]), 1e-4)
	assert.InDelta(t, 0, float64(p.Position[2]), 1e-6)
}

func TestEdgeScrollCornerDrivesBothAxes(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.cx, in.cy = 5, 5
	p := r.Tick(dt, in)

	assert.NotZero(t, p.Position[0])
	assert.NotZero(t, p.Position[2])
}

func TestEdgeScrollSuppressedByMoveKey(t *testing.T) {
	cfg := DefaultConfig()
	r, err := New(cfg)
	require.NoError(t, err)

	in := newFakeInput()
	in.cx = 5
	in.held[MoveLeft] = true
	in.held[MoveRight] = true // interlocked, so key motion is zero too
	p := r.Tick(dt, in)

	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Position[2])
}

func TestEdgeScrollSuppressedOutsideIdle(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.cx = 5
	in.buttons[ButtonRight] = true
	p := r.Tick(dt, in)

	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Position[2])
}

func TestEdgeScrollDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgeScrollEnabled = false
	r, err := New(cfg)
	require.NoError(t, err)

	in := newFakeInput()
	in.cx = 5
	p := r.Tick(dt, in)

	assert.Zero(t, p.Position[0])
}

func TestPanKeysTurnPivot(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[PanRight] = true
	p := r.Tick(dt, in)

	want := 1 * 1.5 * dt
	assert.InDelta(t, float64(want), float64(p.Yaw), 1e-6)

	in.held[PanRight] = false
	in.held[PanLeft] = true
	p = r.Tick(dt, in)
	assert.InDelta(t, 0, float64(p.Yaw), 1e-6)
}

func TestPanTiltModeMouseDrivesYaw(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.buttons[ButtonMiddle] = true
	in.mvx = 8
	p := r.Tick(dt, in)

	require.Equal(t, ModePanTilt, r.Mode())
	want := (1 * 1.5 * dt) * 8 * 0.0025
	assert.InDelta(t, float64(want), float64(p.Yaw), 1e-6)
}

func TestTiltClampsToRange(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[TiltBackward] = true
	for i := 0; i < 300; i++ {
		r.Tick(dt, in)
	}
	assert.InDelta(t, 80.0, r.TiltAngle(), 1e-4)
	// Pitch re-clamps in radians even with the zoom bias on top.
	assert.InDelta(t, float64(-deg2rad(80)), float64(r.Pose().Pitch), 1e-5)

	in.held[TiltBackward] = false
	in.held[TiltForward] = true
	for i := 0; i < 600; i++ {
		r.Tick(dt, in)
	}
	assert.InDelta(t, 10.0, r.TiltAngle(), 1e-4)
}

func TestArmFollowsZoom(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	in := newFakeInput()
	in.held[ZoomIn] = true
	p := r.Tick(dt, in)

	d := r.ZoomDistance()
	got := p.Arm[1]*p.Arm[1] + p.Arm[2]*p.Arm[2]
	assert.InDelta(t, float64(d*d), float64(got), 1e-3)
}

func TestYawRelativeMovement(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)

	// Turn 90 degrees, then push forward: motion lands on the X axis.
	in := newFakeInput()
	in.held[PanRight] = true
	for r.Pose().Yaw < deg2rad(90) {
		r.Tick(dt, in)
	}
	in.held[PanRight] = false

	before := r.Pose().Position
	in.held[MoveUp] = true
	p := r.Tick(dt, in)

	dx := p.Position[0] - before[0]
	dz := p.Position[2] - before[2]
	assert.Greater(t, abs32(dx), abs32(dz)*10)
}

func TestSnapshotGatedByConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowDebugInfo = false
	r, err := New(cfg)
	require.NoError(t, err)

	_, show := r.Snapshot(newFakeInput())
	assert.False(t, show)

	cfg.ShowDebugInfo = true
	r, err = New(cfg)
	require.NoError(t, err)
	in := newFakeInput()
	in.buttons[ButtonLeft] = true
	r.Tick(dt, in)

	snap, show := r.Snapshot(in)
	assert.True(t, show)
	assert.True(t, snap.MouseLeft)
	assert.False(t, snap.MouseRight)
	assert.InDelta(t, 60.0, snap.FPS, 0.5)
	assert.InDelta(t, 20.0, snap.PrevZoomDistance, 1e-6)
	assert.GreaterOrEqual(t, snap.MoveSpeed, float32(0))
}

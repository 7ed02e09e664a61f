package rig

// Snapshot is a read-only view of the rig for an on-screen debug display.
type Snapshot struct {
	FPS              float32
	Mode             Mode
	MoveSpeed        float32 // absolute per-tick move rate
	ZoomDistance     float32
	PrevZoomDistance float32
	YawDeg           float32
	TiltAngle        float32 // degrees
	PitchDeg         float32 // absolute camera pitch
	MouseLeft        bool
	MouseMiddle      bool
	MouseRight       bool
}

// Snapshot builds the diagnostic view from the last Tick plus the current
// button state. The second return value is the configured visibility flag;
// callers skip rendering when it is false.
func (r *Rig) Snapshot(in InputSource) (Snapshot, bool) {
	var fps float32
	if r.lastDT > 0 {
		fps = 1 / r.lastDT
	}
	return Snapshot{
		FPS:              fps,
		Mode:             r.mode,
		MoveSpeed:        abs32(r.moveRate),
		ZoomDistance:     abs32(r.zoom),
		PrevZoomDistance: r.prevZoom,
		YawDeg:           rad2deg(r.pose.Yaw),
		TiltAngle:        r.tilt,
		PitchDeg:         abs32(rad2deg(r.pose.Pitch)),
		MouseLeft:        in.ButtonHeld(ButtonLeft),
		MouseMiddle:      in.ButtonHeld(ButtonMiddle),
		MouseRight:       in.ButtonHeld(ButtonRight),
	}, r.cfg.ShowDebugInfo
}

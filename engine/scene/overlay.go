package scene

// OverlayCamera is a pixel-space orthographic projection for HUD/debug
// drawing: origin top-left, positive Y down.
type OverlayCamera struct {
	w, h  float32
	vp    [16]float32
	dirty bool
}

func NewOverlay(width, height int) *OverlayCamera {
	c := &OverlayCamera{w: float32(width), h: float32(height), dirty: true}
	c.Recalculate()
	return c
}

func (c *OverlayCamera) SetViewportPixels(w, h int) {
	c.w, c.h = float32(w), float32(h)
	c.dirty = true
}

func (c *OverlayCamera) Width() float32  { return c.w }
func (c *OverlayCamera) Height() float32 { return c.h }

func (c *OverlayCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OverlayCamera) Recalculate() {
	// Top < bottom flips Y so screen coordinates read naturally.
	c.vp = ortho(0, c.w, c.h, 0, -1, 1)
	c.dirty = false
}

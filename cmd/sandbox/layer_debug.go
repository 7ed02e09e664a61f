package main

import (
	"fmt"
	"log"

	"github.com/hazelv/crane/engine/colors"
	"github.com/hazelv/crane/engine/core"
	"github.com/hazelv/crane/engine/gfx/renderer2d"
	"github.com/hazelv/crane/engine/profiler"
	"github.com/hazelv/crane/engine/scene"
	"github.com/hazelv/crane/engine/text"
)

// DebugLayer renders the rig's diagnostic snapshot as a HUD panel.
type DebugLayer struct {
	sceneLayer *SceneLayer
	r2d        *renderer2d.Renderer2D
	font       *text.Font
	overlay    *scene.OverlayCamera

	frameDuration float32
	stats         renderer2d.Statistics
}

func (l *DebugLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.overlay = scene.NewOverlay(w, h)
}

func (l *DebugLayer) OnDetach(e *core.Engine) {}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("DebugLayer.OnRender")
	defer end()

	snap, show := l.sceneLayer.rig.Snapshot(l.sceneLayer.in)
	if !show {
		return
	}

	lines := fmt.Sprintf(
		"%.2f ms (%.1f FPS)\n"+
			"mode: %s\n"+
			"zoom: %.2f (prev %.2f)\n"+
			"move speed: %.4f\n"+
			"yaw: %.1f  tilt: %.1f  pitch: %.1f\n"+
			"mouse: L=%t M=%t R=%t\n"+
			"draws: %d  quads: %d",
		l.frameDuration, snap.FPS,
		snap.Mode,
		snap.ZoomDistance, snap.PrevZoomDistance,
		snap.MoveSpeed,
		snap.YawDeg, snap.TiltAngle, snap.PitchDeg,
		snap.MouseLeft, snap.MouseMiddle, snap.MouseRight,
		l.stats.DrawCalls, l.stats.QuadCount,
	)

	l.r2d.BeginScene(l.overlay.VP())
	{
		tw, th := text.MeasureText(l.font, lines)
		const pad = 12
		panelW := tw + pad*2
		panelH := th + pad*2
		l.r2d.DrawQuad(pad+panelW/2, pad+panelH/2, panelW, panelH,
			colors.Black.WithAlpha(0.55), 0)
		text.DrawText(l.r2d, l.font, pad*2, pad*2, lines, colors.White)
	}
	l.r2d.EndScene()
	l.stats = l.r2d.Stats()
}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.Dump(); err == nil {
				log.Println("speedscope dump:", path)
			} else {
				log.Println("profiler dump error:", err)
			}
			return true
		}
	case core.EventResize:
		l.overlay.SetViewportPixels(v.W, v.H)
	}
	return false
}

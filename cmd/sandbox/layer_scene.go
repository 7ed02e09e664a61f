package main

import (
	"log"

	"github.com/hazelv/crane/engine/assets"
	"github.com/hazelv/crane/engine/core"
	"github.com/hazelv/crane/engine/profiler"
	"github.com/hazelv/crane/engine/rig"
	"github.com/hazelv/crane/engine/scene"
)

const (
	gridHalfExtent = 100
	gridStep       = 5
)

// SceneLayer owns the camera rig and the ground grid it flies over.
type SceneLayer struct {
	rig     *rig.Rig
	in      *rigInput
	cam     *scene.Camera
	watcher *rig.ConfigWatcher

	pipe  core.Pipeline
	grid  core.Mesh
	pivot core.Mesh
}

var lineLayout = core.VertexLayout{
	Stride: 7 * 4, // pos3 + color4
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 3 * 4},
	},
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	l.in = &rigInput{eng: e}

	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewCamera(w, h)
	l.cam.ApplyPose(l.rig.Pose())

	vs, err := assets.LoadShader("grid.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("grid.frag")
	if err != nil {
		panic(err)
	}
	l.pipe, err = e.Renderer.CreatePipeline(core.PipelineDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		DepthTest:      true,
	})
	if err != nil {
		panic(err)
	}

	verts, inds := buildGrid()
	l.grid, err = e.Renderer.CreateMesh(core.MeshDesc{
		Vertices: verts,
		Indices:  inds,
		Layout:   lineLayout,
		Topology: core.TopologyLines,
	})
	if err != nil {
		panic(err)
	}

	pv, pi := buildPivotMarker(l.rig.Pose())
	l.pivot, err = e.Renderer.CreateMesh(core.MeshDesc{
		Vertices: pv,
		Indices:  pi,
		Layout:   lineLayout,
		Topology: core.TopologyLines,
	})
	if err != nil {
		panic(err)
	}
}

func (l *SceneLayer) OnDetach(e *core.Engine) {
	if l.watcher != nil {
		_ = l.watcher.Close()
	}
}

func (l *SceneLayer) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}

	if l.watcher != nil {
		select {
		case cfg := <-l.watcher.Configs:
			if fresh, err := rig.New(cfg); err == nil {
				l.rig = fresh
				log.Println("rig config reloaded")
			}
		case err := <-l.watcher.Errors:
			log.Println("rig config reload failed:", err)
		default:
		}
	}

	pose := l.rig.Tick(float32(dt), l.in)
	l.cam.ApplyPose(pose)
}

func (l *SceneLayer) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("SceneLayer.OnRender")
	defer end()

	pv, pi := buildPivotMarker(l.rig.Pose())
	if err := e.Renderer.UpdateMesh(l.pivot, pv, pi); err != nil {
		panic(err)
	}

	uniforms := map[string]any{"uMVP": l.cam.VP()}
	e.Renderer.Draw(core.DrawCmd{Pipe: l.pipe, Mesh: l.grid, Uniforms: uniforms})
	e.Renderer.Draw(core.DrawCmd{Pipe: l.pipe, Mesh: l.pivot, Uniforms: uniforms})
}

func (l *SceneLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}

// buildGrid lays out ground lines on the XZ plane plus colored world axes.
func buildGrid() ([]float32, []uint32) {
	var verts []float32
	var inds []uint32

	line := func(x0, y0, z0, x1, y1, z1 float32, c [4]float32) {
		i := uint32(len(verts) / 7)
		verts = append(verts,
			x0, y0, z0, c[0], c[1], c[2], c[3],
			x1, y1, z1, c[0], c[1], c[2], c[3],
		)
		inds = append(inds, i, i+1)
	}

	gray := [4]float32{0.35, 0.35, 0.38, 1}
	for i := -gridHalfExtent; i <= gridHalfExtent; i += gridStep {
		f := float32(i)
		line(f, 0, -gridHalfExtent, f, 0, gridHalfExtent, gray)
		line(-gridHalfExtent, 0, f, gridHalfExtent, 0, f, gray)
	}

	// World axes, slightly lifted to win the depth test against the grid.
	line(0, 0.01, 0, gridStep, 0.01, 0, [4]float32{1, 0.2, 0.2, 1})
	line(0, 0.01, 0, 0, gridStep, 0, [4]float32{0.2, 1, 0.2, 1})
	line(0, 0.01, 0, 0, 0.01, gridStep, [4]float32{0.2, 0.4, 1, 1})

	return verts, inds
}

// buildPivotMarker draws a small cross at the rig pivot so the point the
// camera orbits stays visible while flying around.
func buildPivotMarker(p rig.Pose) ([]float32, []uint32) {
	var verts []float32
	var inds []uint32

	line := func(x0, y0, z0, x1, y1, z1 float32, c [4]float32) {
		i := uint32(len(verts) / 7)
		verts = append(verts,
			x0, y0, z0, c[0], c[1], c[2], c[3],
			x1, y1, z1, c[0], c[1], c[2], c[3],
		)
		inds = append(inds, i, i+1)
	}

	const s = 1.0
	x, y, z := p.Position[0], p.Position[1], p.Position[2]
	c := [4]float32{1, 0.8, 0.2, 1}
	line(x-s, y+0.02, z, x+s, y+0.02, z, c)
	line(x, y+0.02, z-s, x, y+0.02, z+s, c)
	line(x, y, z, x, y+s, z, c)

	return verts, inds
}

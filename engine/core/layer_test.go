package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordLayer notes every lifecycle call in order.
type recordLayer struct {
	calls []string
}

func (l *recordLayer) OnAttach(e *Engine)               { l.calls = append(l.calls, "attach") }
func (l *recordLayer) OnDetach(e *Engine)               { l.calls = append(l.calls, "detach") }
func (l *recordLayer) OnUpdate(e *Engine, dt float64)   { l.calls = append(l.calls, "update") }
func (l *recordLayer) OnRender(e *Engine, alpha float64) { l.calls = append(l.calls, "render") }
func (l *recordLayer) OnEvent(e *Engine, ev Event) bool { return false }

func TestPushLayerAttaches(t *testing.T) {
	eng := &Engine{}
	l := &recordLayer{}

	eng.PushLayer(l)
	assert.Equal(t, []string{"attach"}, l.calls)
	assert.Equal(t, 1, eng.Layers.Len())
}

func TestPopLayerDetachesTopFirst(t *testing.T) {
	eng := &Engine{}
	bottom := &recordLayer{}
	top := &recordLayer{}
	eng.PushLayer(bottom)
	eng.PushLayer(top)

	l, ok := eng.PopLayer()
	require.True(t, ok)
	assert.Same(t, top, l)
	assert.Equal(t, []string{"attach", "detach"}, top.calls)
	assert.Equal(t, []string{"attach"}, bottom.calls)

	_, ok = eng.PopLayer()
	assert.True(t, ok)
	_, ok = eng.PopLayer()
	assert.False(t, ok)
	assert.Equal(t, []string{"attach", "detach"}, bottom.calls)
}

// --- stub backend, enough for Run to make a few frames ---

type stubWindow struct {
	polls int
	cb    func(Event)
}

func (w *stubWindow) PollEvents() {
	w.polls++
	// Long enough that at least one fixed step accumulates per frame.
	time.Sleep(20 * time.Millisecond)
}
func (w *stubWindow) SwapBuffers()                   {}
func (w *stubWindow) ShouldClose() bool              { return w.polls >= 3 }
func (w *stubWindow) RequestClose()                  {}
func (w *stubWindow) FramebufferSize() (int, int)    { return 640, 480 }
func (w *stubWindow) SetTitle(string)                {}
func (w *stubWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type stubPipe struct{ PipelineHandle }
type stubMesh struct{ MeshHandle }
type stubTex struct{ TextureHandle }

type stubRenderer struct{}

func (stubRenderer) Init() error                                  { return nil }
func (stubRenderer) Resize(w, h int)                              {}
func (stubRenderer) Clear(r, g, b, a float32)                     {}
func (stubRenderer) CreatePipeline(PipelineDesc) (Pipeline, error) { return stubPipe{}, nil }
func (stubRenderer) CreateMesh(MeshDesc) (Mesh, error)            { return stubMesh{}, nil }
func (stubRenderer) UpdateMesh(Mesh, []float32, []uint32) error   { return nil }
func (stubRenderer) CreateTexture(TextureDesc) (Texture, error)   { return stubTex{}, nil }
func (stubRenderer) Draw(DrawCmd)                                 {}
func (stubRenderer) GPUVendor() string                            { return "stub" }
func (stubRenderer) GPURenderer() string                          { return "stub" }
func (stubRenderer) GPUVersion() string                           { return "stub" }
func (stubRenderer) Shutdown()                                    {}

type layerApp struct {
	layer *recordLayer
}

func (a *layerApp) OnStart(e *Engine)              { e.PushLayer(a.layer) }
func (a *layerApp) OnUpdate(e *Engine, dt float64) {}
func (a *layerApp) OnRender(e *Engine, alpha float64) {}
func (a *layerApp) OnEvent(e *Engine, ev Event)    {}
func (a *layerApp) OnShutdown(e *Engine)           {}

func TestRunAttachesBeforeUpdateAndDetachesOnExit(t *testing.T) {
	l := &recordLayer{}
	app := &layerApp{layer: l}

	win := &stubWindow{}
	err := Run(app, Config{Width: 640, Height: 480},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return stubRenderer{}, nil })
	require.NoError(t, err)

	require.NotEmpty(t, l.calls)
	assert.Equal(t, "attach", l.calls[0])
	assert.Contains(t, l.calls, "update")
	assert.Contains(t, l.calls, "render")
	assert.Equal(t, "detach", l.calls[len(l.calls)-1])

	// Exactly one attach/detach pair.
	count := func(s string) (n int) {
		for _, c := range l.calls {
			if c == s {
				n++
			}
		}
		return
	}
	assert.Equal(t, 1, count("attach"))
	assert.Equal(t, 1, count("detach"))
}

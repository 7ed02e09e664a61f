package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events not handled by a layer
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer abstraction. Backends own pipelines, meshes and textures;
// callers submit DrawCmds and never touch the graphics API directly.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	CreateTexture(desc TextureDesc) (Texture, error)
	Draw(cmd DrawCmd)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Opaque backend handles. Backends embed the matching Handle struct; callers
// only ever pass these back to the Renderer that created them.
type (
	Pipeline interface{ isPipeline() }
	Mesh     interface{ isMesh() }
	Texture  interface{ isTexture() }
)

type PipelineHandle struct{}

func (PipelineHandle) isPipeline() {}

type MeshHandle struct{}

func (MeshHandle) isMesh() {}

type TextureHandle struct{}

func (TextureHandle) isTexture() {}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type Topology int

const (
	TopologyTriangles Topology = iota
	TopologyLines
)

type AttribType int

const AttribFloat32 AttribType = iota

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
	Topology Topology
}

type TextureFormat int

const TextureRGBA8 TextureFormat = iota

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
}

// DrawCmd is a single submitted draw: pipeline + mesh + uniforms + samplers.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyF
	KeyP
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyKPAdd
	KeyKPSubtract
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	mouseButtonCount
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}

package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hazelv/crane/engine/core"
)

// RendererGL implements core.Renderer on OpenGL 3.3 core.
type RendererGL struct {
	win       core.Window
	pipelines []*glPipeline
	meshes    []*glMesh
	textures  []*glTexture
}

type glPipeline struct {
	core.PipelineHandle
	program   uint32
	depthTest bool
	blend     bool
	uniforms  map[string]int32 // location cache
}

type glMesh struct {
	core.MeshHandle
	vao, vbo, ibo uint32
	indexCount    int32
	vertCap       int // floats
	indexCap      int
	mode          uint32
}

type glTexture struct {
	core.TextureHandle
	id uint32
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	for _, m := range r.meshes {
		gl.DeleteBuffers(1, &m.ibo)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	for _, p := range r.pipelines {
		gl.DeleteProgram(p.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(nullTerminate(desc.VertexSource), nullTerminate(desc.FragmentSource))
	if err != nil {
		return nil, err
	}
	p := &glPipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		uniforms:  map[string]int32{},
	}
	r.pipelines = append(r.pipelines, p)
	return p, nil
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if desc.Layout.Stride == 0 || len(desc.Layout.Attributes) == 0 {
		return nil, fmt.Errorf("mesh: empty vertex layout")
	}
	m := &glMesh{
		vertCap:  len(desc.Vertices),
		indexCap: len(desc.Indices),
		mode:     topologyMode(desc.Topology),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.DYNAMIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), int32(a.Size), gl.FLOAT, false,
			int32(desc.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.indexCount = int32(len(desc.Indices))
	r.meshes = append(r.meshes, m)
	return m, nil
}

func (r *RendererGL) UpdateMesh(mesh core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := mesh.(*glMesh)
	if !ok {
		return fmt.Errorf("mesh: not a GL mesh")
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > m.vertCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		m.vertCap = len(vertices)
	} else if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	if len(indices) > m.indexCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)
		m.indexCap = len(indices)
	} else if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	}

	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))
	return nil
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("texture: unsupported format %d", desc.Format)
	}
	t := &glTexture{}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	var pixels unsafe.Pointer
	if len(desc.Pixels) > 0 {
		pixels = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.textures = append(r.textures, t)
	return t, nil
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*glPipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*glMesh)
	if !ok || m.indexCount == 0 {
		return
	}

	gl.UseProgram(p.program)
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, value := range cmd.Uniforms {
		loc := p.location(name)
		if loc < 0 {
			continue
		}
		switch v := value.(type) {
		case [16]float32:
			gl.UniformMatrix4fv(loc, 1, false, &v[0])
		case [4]float32:
			gl.Uniform4fv(loc, 1, &v[0])
		case [3]float32:
			gl.Uniform3fv(loc, 1, &v[0])
		case [2]float32:
			gl.Uniform2fv(loc, 1, &v[0])
		case float32:
			gl.Uniform1f(loc, v)
		case int:
			gl.Uniform1i(loc, int32(v))
		}
	}

	unit := int32(0)
	for name, tex := range cmd.Samplers {
		t, ok := tex.(*glTexture)
		if !ok {
			continue
		}
		loc := p.location(name)
		if loc < 0 {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.Uniform1i(loc, unit)
		unit++
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(m.mode, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (p *glPipeline) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func topologyMode(t core.Topology) uint32 {
	if t == core.TopologyLines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

func filterMode(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrapMode(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func nullTerminate(src string) string {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	return src
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}

// Package glcore implements graphics.Device on an OpenGL 4.1 core profile
// context. The fixed-function pipeline is emulated: state lives in a
// graphics.State and is uploaded as shader uniforms at draw time.
package glcore

import (
	"fmt"
	"log"
	"strconv"

	"gl-torus/internal/graphics"
	"gl-torus/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const maxLights = graphics.MaxLights

type meshKey struct {
	inner, outer float32
	sides, rings int
}

type mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Device draws through a core profile context. It must be created and used
// on the thread that owns the context.
type Device struct {
	*graphics.State

	shader *Shader
	meshes map[meshKey]*mesh
}

var (
	_ graphics.Device      = (*Device)(nil)
	_ graphics.FrameReader = (*Device)(nil)
)

// New loads the GL entry points for the current context and compiles the
// lighting program.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: init: %w", err)
	}
	log.Printf("glcore: OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	shader, err := NewShader(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("glcore: lighting program: %w", err)
	}

	return &Device{
		State:  graphics.NewState(),
		shader: shader,
		meshes: make(map[meshKey]*mesh),
	}, nil
}

// Enable updates state and toggles depth testing on the GPU
func (d *Device) Enable(c graphics.Capability) {
	d.State.Enable(c)
	if c == graphics.CapDepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
}

// Disable updates state and toggles depth testing on the GPU
func (d *Device) Disable(c graphics.Capability) {
	d.State.Disable(c)
	if c == graphics.CapDepthTest {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	d.State.ClearColor(c)
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *Device) Viewport(x, y, width, height int) {
	d.State.Viewport(x, y, width, height)
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) Clear(mask graphics.ClearMask) {
	var bits uint32
	if mask&graphics.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&graphics.ClearDepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if bits != 0 {
		gl.Clear(bits)
	}
}

// SolidTorus draws a torus with the current matrices, lights and front material.
// Each distinct geometry is uploaded once and reused.
func (d *Device) SolidTorus(innerRadius, outerRadius float32, sides, rings int) {
	key := meshKey{innerRadius, outerRadius, sides, rings}
	m, ok := d.meshes[key]
	if !ok {
		m = uploadTorus(meshing.Torus(innerRadius, outerRadius, sides, rings))
		d.meshes[key] = m
	}

	d.shader.Use()
	d.applyUniforms()

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (d *Device) Flush() {
	gl.Flush()
}

// ReadPixels reads back the color buffer as RGBA8, bottom row first
func (d *Device) ReadPixels(x, y, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	buf := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	return buf
}

// Dispose frees every mesh and the program
func (d *Device) Dispose() {
	for k, m := range d.meshes {
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
		delete(d.meshes, k)
	}
	d.shader.Delete()
}

func (d *Device) applyUniforms() {
	s := d.shader

	s.SetMatrix4("modelView", d.ModelView())
	s.SetMatrix4("proj", d.Projection())
	s.SetMatrix3("normalMatrix", d.NormalMatrix())

	s.SetBool("lighting", d.Enabled(graphics.CapLighting))
	s.SetBool("normalizeNormals", d.Enabled(graphics.CapNormalize))
	s.SetBool("smoothShading", d.Shading() == graphics.ShadeSmooth)
	s.SetVector4("sceneAmbient", graphics.SceneAmbient)

	for i := 0; i < maxLights; i++ {
		l := d.Light(i)
		idx := "[" + strconv.Itoa(i) + "]"
		s.SetBool("lightEnabled"+idx, d.LightEnabled(i))
		s.SetVector4("lightAmbient"+idx, l.Ambient)
		s.SetVector4("lightDiffuse"+idx, l.Diffuse)
		s.SetVector4("lightSpecular"+idx, l.Specular)
		s.SetVector4("lightPosition"+idx, l.Position)
	}

	m := d.Material(graphics.FaceFront)
	s.SetVector4("matAmbient", m.Ambient)
	s.SetVector4("matDiffuse", m.Diffuse)
	s.SetVector4("matSpecular", m.Specular)
	s.SetVector4("matEmission", m.Emission)
	s.SetFloat("matShininess", m.Shininess)
}

func uploadTorus(t *meshing.TorusMesh) *mesh {
	m := &mesh{count: int32(len(t.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(t.Vertices)*4, gl.Ptr(t.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(t.Indices)*4, gl.Ptr(t.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
	return m
}

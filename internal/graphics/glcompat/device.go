// Package glcompat implements graphics.Device on an OpenGL 2.1 context by
// calling the fixed-function pipeline directly.
package glcompat

import (
	"fmt"
	"log"

	"gl-torus/internal/graphics"
	"gl-torus/internal/meshing"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type listKey struct {
	inner, outer float32
	sides, rings int
}

// Device forwards every call to the context current on the calling thread
type Device struct {
	lists map[listKey]uint32
}

var (
	_ graphics.Device      = (*Device)(nil)
	_ graphics.FrameReader = (*Device)(nil)
)

// New loads the GL 2.1 entry points for the current context
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcompat: init: %w", err)
	}
	log.Printf("glcompat: OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Device{lists: make(map[listKey]uint32)}, nil
}

func (d *Device) MatrixMode(mode graphics.MatrixMode) {
	switch mode {
	case graphics.MatrixProjection:
		gl.MatrixMode(gl.PROJECTION)
	default:
		gl.MatrixMode(gl.MODELVIEW)
	}
}

func (d *Device) LoadIdentity() { gl.LoadIdentity() }
func (d *Device) PushMatrix()   { gl.PushMatrix() }
func (d *Device) PopMatrix()    { gl.PopMatrix() }

func (d *Device) Ortho(left, right, bottom, top, near, far float64) {
	gl.Ortho(left, right, bottom, top, near, far)
}

// LookAt multiplies the current matrix by the same transform gluLookAt builds
func (d *Device) LookAt(eye, center, up mgl32.Vec3) {
	m := mgl32.LookAtV(eye, center, up)
	gl.MultMatrixf(&m[0])
}

func (d *Device) ShadeModel(model graphics.ShadeModel) {
	if model == graphics.ShadeFlat {
		gl.ShadeModel(gl.FLAT)
		return
	}
	gl.ShadeModel(gl.SMOOTH)
}

func (d *Device) SetLight(light int, param graphics.LightParam, value mgl32.Vec4) {
	if light < 0 || light >= graphics.MaxLights {
		return
	}
	var pname uint32
	switch param {
	case graphics.LightAmbient:
		pname = gl.AMBIENT
	case graphics.LightDiffuse:
		pname = gl.DIFFUSE
	case graphics.LightSpecular:
		pname = gl.SPECULAR
	case graphics.LightPosition:
		pname = gl.POSITION
	default:
		return
	}
	gl.Lightfv(gl.LIGHT0+uint32(light), pname, &value[0])
}

func (d *Device) SetMaterial(face graphics.Face, param graphics.MaterialParam, value mgl32.Vec4) {
	var pname uint32
	switch param {
	case graphics.MaterialAmbient:
		pname = gl.AMBIENT
	case graphics.MaterialDiffuse:
		pname = gl.DIFFUSE
	case graphics.MaterialSpecular:
		pname = gl.SPECULAR
	case graphics.MaterialEmission:
		pname = gl.EMISSION
	default:
		return
	}
	gl.Materialfv(glFace(face), pname, &value[0])
}

func (d *Device) SetShininess(face graphics.Face, shininess float32) {
	gl.Materialf(glFace(face), gl.SHININESS, shininess)
}

func (d *Device) Enable(c graphics.Capability) {
	if glCap, ok := glCapability(c); ok {
		gl.Enable(glCap)
	}
}

func (d *Device) Disable(c graphics.Capability) {
	if glCap, ok := glCapability(c); ok {
		gl.Disable(glCap)
	}
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
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

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// SolidTorus draws a torus from a display list compiled on first use
func (d *Device) SolidTorus(innerRadius, outerRadius float32, sides, rings int) {
	key := listKey{innerRadius, outerRadius, sides, rings}
	list, ok := d.lists[key]
	if !ok {
		list = compileTorus(meshing.Torus(innerRadius, outerRadius, sides, rings))
		d.lists[key] = list
	}
	gl.CallList(list)
}

func (d *Device) Flush() { gl.Flush() }

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

// Dispose deletes the compiled display lists
func (d *Device) Dispose() {
	for k, list := range d.lists {
		gl.DeleteLists(list, 1)
		delete(d.lists, k)
	}
}

func compileTorus(t *meshing.TorusMesh) uint32 {
	list := gl.GenLists(1)
	gl.NewList(list, gl.COMPILE)
	gl.Begin(gl.TRIANGLES)
	for _, ix := range t.Indices {
		o := int(ix) * meshing.FloatsPerVertex
		v := t.Vertices[o : o+meshing.FloatsPerVertex]
		gl.Normal3f(v[3], v[4], v[5])
		gl.Vertex3f(v[0], v[1], v[2])
	}
	gl.End()
	gl.EndList()
	return list
}

func glFace(face graphics.Face) uint32 {
	switch face {
	case graphics.FaceBack:
		return gl.BACK
	case graphics.FaceFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		return gl.FRONT
	}
}

func glCapability(c graphics.Capability) (uint32, bool) {
	switch {
	case c == graphics.CapLighting:
		return gl.LIGHTING, true
	case c >= graphics.CapLight0 && c <= graphics.CapLight7:
		return gl.LIGHT0 + uint32(c-graphics.CapLight0), true
	case c == graphics.CapAutoNormal:
		return gl.AUTO_NORMAL, true
	case c == graphics.CapNormalize:
		return gl.NORMALIZE, true
	case c == graphics.CapDepthTest:
		return gl.DEPTH_TEST, true
	}
	return 0, false
}

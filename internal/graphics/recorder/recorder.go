// Package recorder provides a graphics.Device that draws nothing. It tracks
// pipeline state like a real device and keeps a log of every call so tests can
// compare what a renderer issued.
package recorder

import (
	"gl-torus/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded Device method invocation
type Call struct {
	Op   string
	Args []any
}

// Torus describes one SolidTorus call
type Torus struct {
	InnerRadius float32
	OuterRadius float32
	Sides       int
	Rings       int
	ModelView   mgl32.Mat4
	Projection  mgl32.Mat4
}

// Device records calls and tracks state
type Device struct {
	*graphics.State

	calls  []Call
	clears []graphics.ClearMask
	tori   []Torus
	frames int
}

var _ graphics.Device = (*Device)(nil)

// New creates a recorder with default pipeline state
func New() *Device {
	return &Device{State: graphics.NewState()}
}

func (d *Device) record(op string, args ...any) {
	d.calls = append(d.calls, Call{Op: op, Args: args})
}

func (d *Device) MatrixMode(mode graphics.MatrixMode) {
	d.record("MatrixMode", mode)
	d.State.MatrixMode(mode)
}

func (d *Device) LoadIdentity() {
	d.record("LoadIdentity")
	d.State.LoadIdentity()
}

func (d *Device) PushMatrix() {
	d.record("PushMatrix")
	d.State.PushMatrix()
}

func (d *Device) PopMatrix() {
	d.record("PopMatrix")
	d.State.PopMatrix()
}

func (d *Device) Ortho(left, right, bottom, top, near, far float64) {
	d.record("Ortho", left, right, bottom, top, near, far)
	d.State.Ortho(left, right, bottom, top, near, far)
}

func (d *Device) LookAt(eye, center, up mgl32.Vec3) {
	d.record("LookAt", eye, center, up)
	d.State.LookAt(eye, center, up)
}

func (d *Device) ShadeModel(model graphics.ShadeModel) {
	d.record("ShadeModel", model)
	d.State.ShadeModel(model)
}

func (d *Device) SetLight(light int, param graphics.LightParam, value mgl32.Vec4) {
	d.record("SetLight", light, param, value)
	d.State.SetLight(light, param, value)
}

func (d *Device) SetMaterial(face graphics.Face, param graphics.MaterialParam, value mgl32.Vec4) {
	d.record("SetMaterial", face, param, value)
	d.State.SetMaterial(face, param, value)
}

func (d *Device) SetShininess(face graphics.Face, shininess float32) {
	d.record("SetShininess", face, shininess)
	d.State.SetShininess(face, shininess)
}

func (d *Device) Enable(c graphics.Capability) {
	d.record("Enable", c)
	d.State.Enable(c)
}

func (d *Device) Disable(c graphics.Capability) {
	d.record("Disable", c)
	d.State.Disable(c)
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	d.record("ClearColor", c)
	d.State.ClearColor(c)
}

func (d *Device) Viewport(x, y, width, height int) {
	d.record("Viewport", x, y, width, height)
	d.State.Viewport(x, y, width, height)
}

// Clear records the mask; there are no buffers to clear
func (d *Device) Clear(mask graphics.ClearMask) {
	d.record("Clear", mask)
	d.clears = append(d.clears, mask)
}

// SolidTorus records the parameters together with the matrices in effect
func (d *Device) SolidTorus(innerRadius, outerRadius float32, sides, rings int) {
	d.record("SolidTorus", innerRadius, outerRadius, sides, rings)
	d.tori = append(d.tori, Torus{
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
		Sides:       sides,
		Rings:       rings,
		ModelView:   d.ModelView(),
		Projection:  d.Projection(),
	})
}

// Flush counts a submitted frame
func (d *Device) Flush() {
	d.record("Flush")
	d.frames++
}

// Calls returns every call recorded since the last Reset
func (d *Device) Calls() []Call {
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// Clears returns the masks passed to Clear
func (d *Device) Clears() []graphics.ClearMask { return d.clears }

// Tori returns every drawn torus
func (d *Device) Tori() []Torus { return d.tori }

// Frames returns the number of Flush calls
func (d *Device) Frames() int { return d.frames }

// Reset forgets recorded calls but keeps the pipeline state
func (d *Device) Reset() {
	d.calls = nil
	d.clears = nil
	d.tori = nil
	d.frames = 0
}

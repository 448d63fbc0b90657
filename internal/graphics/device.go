package graphics

import "github.com/go-gl/mathgl/mgl32"

// MatrixMode selects which matrix stack subsequent matrix operations target
type MatrixMode int

const (
	MatrixModelView MatrixMode = iota
	MatrixProjection
)

// Capability is a server-side feature toggled with Enable/Disable
type Capability int

const (
	CapLighting Capability = iota
	CapLight0
	CapLight1
	CapLight2
	CapLight3
	CapLight4
	CapLight5
	CapLight6
	CapLight7
	CapAutoNormal
	CapNormalize
	CapDepthTest
	capCount
)

// LightCapability returns the capability that switches light i on or off
func LightCapability(i int) Capability {
	return CapLight0 + Capability(i)
}

// ShadeModel selects flat or smooth color interpolation
type ShadeModel int

const (
	ShadeSmooth ShadeModel = iota
	ShadeFlat
)

// Face selects which polygon faces a material parameter applies to
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceFrontAndBack
)

// LightParam names a per-light vector parameter
type LightParam int

const (
	LightAmbient LightParam = iota
	LightDiffuse
	LightSpecular
	LightPosition
)

// MaterialParam names a per-face material vector parameter
type MaterialParam int

const (
	MaterialAmbient MaterialParam = iota
	MaterialDiffuse
	MaterialSpecular
	MaterialEmission
)

// ClearMask selects the buffers cleared by Clear
type ClearMask uint32

const (
	ClearColorBuffer ClearMask = 1 << iota
	ClearDepthBuffer
)

// MaxLights is the number of light sources a Device supports
const MaxLights = 8

// MatrixOps is the matrix stack part of a Device
type MatrixOps interface {
	MatrixMode(mode MatrixMode)
	LoadIdentity()
	PushMatrix()
	PopMatrix()
	Ortho(left, right, bottom, top, near, far float64)
	LookAt(eye, center, up mgl32.Vec3)
}

// LightingOps is the lighting and material part of a Device
type LightingOps interface {
	ShadeModel(model ShadeModel)
	SetLight(light int, param LightParam, value mgl32.Vec4)
	SetMaterial(face Face, param MaterialParam, value mgl32.Vec4)
	SetShininess(face Face, shininess float32)
	Enable(c Capability)
	Disable(c Capability)
}

// FrameOps covers buffer clears, the viewport, primitive drawing and submission
type FrameOps interface {
	ClearColor(c mgl32.Vec4)
	Clear(mask ClearMask)
	Viewport(x, y, width, height int)
	SolidTorus(innerRadius, outerRadius float32, sides, rings int)
	Flush()
}

// Device is the graphics collaborator a renderer draws through.
// Implementations keep all bound state explicitly instead of relying on a
// process-wide context.
type Device interface {
	MatrixOps
	LightingOps
	FrameOps
}

// FrameReader is implemented by devices that can read back the color buffer.
// Pixels are RGBA8 with the bottom row first.
type FrameReader interface {
	ReadPixels(x, y, width, height int) []byte
}

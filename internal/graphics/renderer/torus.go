package renderer

import (
	"gl-torus/internal/graphics"
	"gl-torus/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderState holds the fixed lighting and material parameters of the scene
type RenderState struct {
	LightAmbient  mgl32.Vec4
	LightDiffuse  mgl32.Vec4
	LightSpecular mgl32.Vec4
	// w = 0 makes light 0 directional
	LightPosition mgl32.Vec4

	ClearColor        mgl32.Vec4
	MaterialAmbient   mgl32.Vec4
	MaterialSpecular  mgl32.Vec4
	MaterialShininess float32
}

// DefaultRenderState returns the scene's constants: a red, very shiny
// material lit by a white directional light above and in front of the viewer.
func DefaultRenderState() RenderState {
	return RenderState{
		LightAmbient:      mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
		LightDiffuse:      mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		LightSpecular:     mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		LightPosition:     mgl32.Vec4{0.0, 3.0, 3.0, 0.0},
		ClearColor:        mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
		MaterialAmbient:   mgl32.Vec4{1.0, 0.0, 0.0, 0.0},
		MaterialSpecular:  mgl32.Vec4{3000.0, 3000.0, 3000.0, 3000.0},
		MaterialShininess: 100.0,
	}
}

// TorusGeometry parameterizes the drawn torus
type TorusGeometry struct {
	InnerRadius float32
	OuterRadius float32
	Sides       int
	Rings       int
}

// DefaultTorusGeometry is a torus of tube radius 0.5 swept at radius 1.0
var DefaultTorusGeometry = TorusGeometry{
	InnerRadius: 0.5,
	OuterRadius: 1.0,
	Sides:       40,
	Rings:       40,
}

// Camera placement applied on every frame
var (
	CameraEye    = mgl32.Vec3{2, 2, 2}
	CameraCenter = mgl32.Vec3{0, 0, 0}
	CameraUp     = mgl32.Vec3{0, 1, 0}
)

// Viewport is the current surface size in pixels. Height is always at least 1.
type Viewport struct {
	Width  int
	Height int
}

// Projection holds orthographic view volume bounds
type Projection struct {
	Left, Right float64
	Bottom, Top float64
	Near, Far   float64
}

// OrthoFor returns the view volume for a base surface size: 4 units tall,
// as wide as the base aspect ratio requires.
func OrthoFor(baseWidth, baseHeight int) Projection {
	if baseHeight < 1 {
		baseHeight = 1
	}
	half := 2.0 * float64(baseWidth) / float64(baseHeight)
	return Projection{
		Left:   -half,
		Right:  half,
		Bottom: -2.0,
		Top:    2.0,
		Near:   0.1,
		Far:    100.0,
	}
}

// Torus renders a single static lit torus.
//
// The projection is derived from the base size given to NewTorus and never
// from the live surface size, so a resize to a different aspect ratio
// stretches the image. Only the viewport follows the surface.
type Torus struct {
	state       RenderState
	geometry    TorusGeometry
	projection  Projection
	viewport    Viewport
	initialized bool
}

// NewTorus creates a torus renderer for a surface initially baseWidth x baseHeight
func NewTorus(baseWidth, baseHeight int) *Torus {
	if baseHeight < 1 {
		baseHeight = 1
	}
	if baseWidth < 0 {
		baseWidth = 0
	}
	return &Torus{
		state:      DefaultRenderState(),
		geometry:   DefaultTorusGeometry,
		projection: OrthoFor(baseWidth, baseHeight),
		viewport:   Viewport{Width: baseWidth, Height: baseHeight},
	}
}

// Init configures clear color, material, light 0 and the enabled features.
// It must run exactly once, before any Display or Reshape.
func (t *Torus) Init(d Drawable) error {
	if t.initialized {
		return ErrAlreadyInitialized
	}
	dev := d.Device()
	s := t.state

	dev.ClearColor(s.ClearColor)

	dev.SetMaterial(graphics.FaceFront, graphics.MaterialAmbient, s.MaterialAmbient)
	dev.SetShininess(graphics.FaceFront, s.MaterialShininess)
	dev.SetMaterial(graphics.FaceFront, graphics.MaterialSpecular, s.MaterialSpecular)

	// Model-view is still identity here, so the light stays fixed relative to the eye
	dev.SetLight(0, graphics.LightAmbient, s.LightAmbient)
	dev.SetLight(0, graphics.LightDiffuse, s.LightDiffuse)
	dev.SetLight(0, graphics.LightPosition, s.LightPosition)
	dev.SetLight(0, graphics.LightSpecular, s.LightSpecular)

	dev.ShadeModel(graphics.ShadeSmooth)
	dev.Enable(graphics.CapLighting)
	dev.Enable(graphics.CapLight0)
	dev.Enable(graphics.CapAutoNormal)
	dev.Enable(graphics.CapNormalize)
	dev.Enable(graphics.CapDepthTest)

	t.initialized = true
	return nil
}

// Display positions the camera, clears the buffers and draws the torus
func (t *Torus) Display(d Drawable) error {
	if !t.initialized {
		return ErrNotInitialized
	}
	defer profiling.Track("renderer.Display")()

	dev := d.Device()
	dev.MatrixMode(graphics.MatrixModelView)
	dev.LoadIdentity()
	dev.LookAt(CameraEye, CameraCenter, CameraUp)

	dev.Clear(graphics.ClearColorBuffer | graphics.ClearDepthBuffer)
	g := t.geometry
	dev.SolidTorus(g.InnerRadius, g.OuterRadius, g.Sides, g.Rings)
	dev.Flush()
	return nil
}

// Reshape maps the scene onto the new surface size and requests a repaint.
// The x and y origin is ignored; the viewport always starts at 0,0. A height
// below 1 is treated as 1.
func (t *Torus) Reshape(d Drawable, x, y, width, height int) error {
	if !t.initialized {
		return ErrNotInitialized
	}
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	t.viewport = Viewport{Width: width, Height: height}

	dev := d.Device()
	dev.Viewport(0, 0, width, height)
	dev.MatrixMode(graphics.MatrixProjection)
	dev.LoadIdentity()
	p := t.projection
	dev.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)

	d.Repaint()
	return nil
}

// DisplayChanged is a no-op
func (t *Torus) DisplayChanged(d Drawable, modeChanged, deviceChanged bool) {}

// Viewport returns the surface size seen by the last Reshape
func (t *Torus) Viewport() Viewport { return t.viewport }

// Projection returns the view volume applied on every Reshape
func (t *Torus) Projection() Projection { return t.projection }

// Initialized reports whether Init has run
func (t *Torus) Initialized() bool { return t.initialized }

package graphics

import "github.com/go-gl/mathgl/mgl32"

// Stack depths match the minimums OpenGL guarantees
const (
	ModelViewStackDepth  = 32
	ProjectionStackDepth = 2
)

// MatrixStack is a bounded stack of 4x4 matrices. The top is the current matrix.
type MatrixStack struct {
	entries []mgl32.Mat4
	depth   int
}

// NewMatrixStack creates a stack holding a single identity matrix
func NewMatrixStack(depth int) *MatrixStack {
	if depth < 1 {
		depth = 1
	}
	return &MatrixStack{
		entries: []mgl32.Mat4{mgl32.Ident4()},
		depth:   depth,
	}
}

// Top returns the current matrix
func (s *MatrixStack) Top() mgl32.Mat4 {
	return s.entries[len(s.entries)-1]
}

// Load replaces the current matrix
func (s *MatrixStack) Load(m mgl32.Mat4) {
	s.entries[len(s.entries)-1] = m
}

// Mul post-multiplies the current matrix by m
func (s *MatrixStack) Mul(m mgl32.Mat4) {
	top := len(s.entries) - 1
	s.entries[top] = s.entries[top].Mul4(m)
}

// Push duplicates the current matrix. It reports false when the stack is full.
func (s *MatrixStack) Push() bool {
	if len(s.entries) >= s.depth {
		return false
	}
	s.entries = append(s.entries, s.Top())
	return true
}

// Pop discards the current matrix. It reports false when only one entry is left.
func (s *MatrixStack) Pop() bool {
	if len(s.entries) <= 1 {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return true
}

// Len returns the number of matrices on the stack
func (s *MatrixStack) Len() int {
	return len(s.entries)
}

// Light holds the parameters of one light source. Position is in eye space.
type Light struct {
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
	Position mgl32.Vec4
}

// DefaultLight returns the initial parameters of light i
func DefaultLight(i int) Light {
	l := Light{
		Ambient:  mgl32.Vec4{0, 0, 0, 1},
		Diffuse:  mgl32.Vec4{0, 0, 0, 1},
		Specular: mgl32.Vec4{0, 0, 0, 1},
		Position: mgl32.Vec4{0, 0, 1, 0},
	}
	if i == 0 {
		l.Diffuse = mgl32.Vec4{1, 1, 1, 1}
		l.Specular = mgl32.Vec4{1, 1, 1, 1}
	}
	return l
}

// Material holds the reflectance parameters of one face
type Material struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Emission  mgl32.Vec4
	Shininess float32
}

// DefaultMaterial returns the initial material
func DefaultMaterial() Material {
	return Material{
		Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  mgl32.Vec4{0.8, 0.8, 0.8, 1},
		Specular: mgl32.Vec4{0, 0, 0, 1},
		Emission: mgl32.Vec4{0, 0, 0, 1},
	}
}

// SceneAmbient is the global ambient term added to every lit vertex
var SceneAmbient = mgl32.Vec4{0.2, 0.2, 0.2, 1}

// State is the fixed-function pipeline state a Device operates on.
// It implements every Device method that only changes state; backends embed
// it and add the calls that reach the GPU.
type State struct {
	mode       MatrixMode
	modelView  *MatrixStack
	projection *MatrixStack

	lights [MaxLights]Light
	front  Material
	back   Material

	enabled    [capCount]bool
	shade      ShadeModel
	clearColor mgl32.Vec4
	viewport   [4]int

	stackErrors int
}

// NewState returns a state holding the pipeline defaults
func NewState() *State {
	s := &State{
		mode:       MatrixModelView,
		modelView:  NewMatrixStack(ModelViewStackDepth),
		projection: NewMatrixStack(ProjectionStackDepth),
		front:      DefaultMaterial(),
		back:       DefaultMaterial(),
		shade:      ShadeSmooth,
	}
	for i := range s.lights {
		s.lights[i] = DefaultLight(i)
	}
	return s
}

func (s *State) current() *MatrixStack {
	if s.mode == MatrixProjection {
		return s.projection
	}
	return s.modelView
}

// MatrixMode selects the stack targeted by matrix operations
func (s *State) MatrixMode(mode MatrixMode) {
	s.mode = mode
}

// LoadIdentity resets the current matrix
func (s *State) LoadIdentity() {
	s.current().Load(mgl32.Ident4())
}

// PushMatrix duplicates the current matrix
func (s *State) PushMatrix() {
	if !s.current().Push() {
		s.stackErrors++
	}
}

// PopMatrix restores the previously pushed matrix
func (s *State) PopMatrix() {
	if !s.current().Pop() {
		s.stackErrors++
	}
}

// Ortho multiplies the current matrix by a parallel projection
func (s *State) Ortho(left, right, bottom, top, near, far float64) {
	s.current().Mul(mgl32.Ortho(float32(left), float32(right), float32(bottom), float32(top), float32(near), float32(far)))
}

// LookAt multiplies the current matrix by a viewing transform
func (s *State) LookAt(eye, center, up mgl32.Vec3) {
	s.current().Mul(mgl32.LookAtV(eye, center, up))
}

// ShadeModel sets flat or smooth shading
func (s *State) ShadeModel(model ShadeModel) {
	s.shade = model
}

// SetLight sets one parameter of light i. Positions are transformed by the
// current model-view matrix, so they are fixed relative to the eye at the
// time of the call.
func (s *State) SetLight(light int, param LightParam, value mgl32.Vec4) {
	if light < 0 || light >= MaxLights {
		return
	}
	l := &s.lights[light]
	switch param {
	case LightAmbient:
		l.Ambient = value
	case LightDiffuse:
		l.Diffuse = value
	case LightSpecular:
		l.Specular = value
	case LightPosition:
		l.Position = s.modelView.Top().Mul4x1(value)
	}
}

func (s *State) materials(face Face) []*Material {
	switch face {
	case FaceFront:
		return []*Material{&s.front}
	case FaceBack:
		return []*Material{&s.back}
	default:
		return []*Material{&s.front, &s.back}
	}
}

// SetMaterial sets one vector parameter of the selected faces
func (s *State) SetMaterial(face Face, param MaterialParam, value mgl32.Vec4) {
	for _, m := range s.materials(face) {
		switch param {
		case MaterialAmbient:
			m.Ambient = value
		case MaterialDiffuse:
			m.Diffuse = value
		case MaterialSpecular:
			m.Specular = value
		case MaterialEmission:
			m.Emission = value
		}
	}
}

// SetShininess sets the specular exponent of the selected faces
func (s *State) SetShininess(face Face, shininess float32) {
	for _, m := range s.materials(face) {
		m.Shininess = shininess
	}
}

// Enable turns a capability on
func (s *State) Enable(c Capability) {
	if c >= 0 && c < capCount {
		s.enabled[c] = true
	}
}

// Disable turns a capability off
func (s *State) Disable(c Capability) {
	if c >= 0 && c < capCount {
		s.enabled[c] = false
	}
}

// ClearColor sets the color used when clearing the color buffer
func (s *State) ClearColor(c mgl32.Vec4) {
	s.clearColor = c
}

// Viewport sets the window rectangle the scene maps onto
func (s *State) Viewport(x, y, width, height int) {
	s.viewport = [4]int{x, y, width, height}
}

// Mode returns the current matrix mode
func (s *State) Mode() MatrixMode { return s.mode }

// ModelView returns the current model-view matrix
func (s *State) ModelView() mgl32.Mat4 { return s.modelView.Top() }

// Projection returns the current projection matrix
func (s *State) Projection() mgl32.Mat4 { return s.projection.Top() }

// NormalMatrix returns the inverse transpose of the upper 3x3 model-view matrix
func (s *State) NormalMatrix() mgl32.Mat3 {
	return s.modelView.Top().Mat3().Inv().Transpose()
}

// Light returns the parameters of light i
func (s *State) Light(i int) Light {
	if i < 0 || i >= MaxLights {
		return Light{}
	}
	return s.lights[i]
}

// Material returns the material of a single face. FaceFrontAndBack reports the front.
func (s *State) Material(face Face) Material {
	if face == FaceBack {
		return s.back
	}
	return s.front
}

// Enabled reports whether a capability is on
func (s *State) Enabled(c Capability) bool {
	if c < 0 || c >= capCount {
		return false
	}
	return s.enabled[c]
}

// LightEnabled reports whether lighting and light i are both on
func (s *State) LightEnabled(i int) bool {
	return i >= 0 && i < MaxLights && s.Enabled(CapLighting) && s.Enabled(LightCapability(i))
}

// Shading returns the current shade model
func (s *State) Shading() ShadeModel { return s.shade }

// Background returns the clear color
func (s *State) Background() mgl32.Vec4 { return s.clearColor }

// ViewportRect returns x, y, width and height of the viewport
func (s *State) ViewportRect() [4]int { return s.viewport }

// StackErrors counts pushes onto a full stack and pops of the last entry
func (s *State) StackErrors() int { return s.stackErrors }

package renderer

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gl-torus/internal/graphics"
	"gl-torus/internal/graphics/recorder"

	"github.com/go-gl/mathgl/mgl32"
)

type testSurface struct {
	dev      *recorder.Device
	repaints int
}

func newTestSurface() *testSurface {
	return &testSurface{dev: recorder.New()}
}

func (s *testSurface) Device() graphics.Device { return s.dev }
func (s *testSurface) Repaint()                { s.repaints++ }

func initTorus(t *testing.T) (*Torus, *testSurface) {
	t.Helper()
	tr := NewTorus(640, 480)
	s := newTestSurface()
	if err := tr.Init(s); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return tr, s
}

func TestInitSetsLightAndMaterial(t *testing.T) {
	_, s := initTorus(t)
	st := s.dev.State

	if got := st.Background(); got != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("clear color: got %v, want opaque black", got)
	}

	m := st.Material(graphics.FaceFront)
	if m.Ambient != (mgl32.Vec4{1, 0, 0, 0}) {
		t.Errorf("material ambient: got %v", m.Ambient)
	}
	if m.Shininess != 100 {
		t.Errorf("material shininess: got %v", m.Shininess)
	}
	if m.Specular != (mgl32.Vec4{3000, 3000, 3000, 3000}) {
		t.Errorf("material specular: got %v", m.Specular)
	}
	if back := st.Material(graphics.FaceBack); back != graphics.DefaultMaterial() {
		t.Errorf("back material should keep defaults, got %+v", back)
	}

	l := st.Light(0)
	if l.Ambient != (mgl32.Vec4{0.2, 0.2, 0.2, 1}) {
		t.Errorf("light ambient: got %v", l.Ambient)
	}
	if l.Diffuse != (mgl32.Vec4{1, 1, 1, 1}) || l.Specular != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("light diffuse/specular: got %v / %v", l.Diffuse, l.Specular)
	}
	if l.Position != (mgl32.Vec4{0, 3, 3, 0}) {
		t.Errorf("light position (eye space): got %v", l.Position)
	}

	if st.Shading() != graphics.ShadeSmooth {
		t.Errorf("shade model: got %v, want smooth", st.Shading())
	}
	for _, c := range []graphics.Capability{
		graphics.CapLighting,
		graphics.CapLight0,
		graphics.CapAutoNormal,
		graphics.CapNormalize,
		graphics.CapDepthTest,
	} {
		if !st.Enabled(c) {
			t.Errorf("capability %v should be enabled", c)
		}
	}
	if st.Enabled(graphics.CapLight1) {
		t.Errorf("light 1 should stay disabled")
	}
}

func TestInitTwice(t *testing.T) {
	tr, s := initTorus(t)
	before := len(s.dev.Calls())

	if err := tr.Init(s); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Init: got %v, want ErrAlreadyInitialized", err)
	}
	if len(s.dev.Calls()) != before {
		t.Errorf("second Init issued device calls")
	}
}

func TestDisplayBeforeInit(t *testing.T) {
	tr := NewTorus(640, 480)
	s := newTestSurface()

	if err := tr.Display(s); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Display: got %v, want ErrNotInitialized", err)
	}
	if err := tr.Reshape(s, 0, 0, 640, 480); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Reshape: got %v, want ErrNotInitialized", err)
	}
	if n := len(s.dev.Calls()); n != 0 {
		t.Errorf("precondition violation issued %d device calls", n)
	}
	if s.repaints != 0 {
		t.Errorf("precondition violation requested a repaint")
	}
}

func TestDisplaySequence(t *testing.T) {
	tr, s := initTorus(t)
	s.dev.Reset()

	if err := tr.Display(s); err != nil {
		t.Fatalf("Display: %v", err)
	}

	ops := make([]string, 0)
	for _, c := range s.dev.Calls() {
		ops = append(ops, c.Op)
	}
	want := []string{"MatrixMode", "LoadIdentity", "LookAt", "Clear", "SolidTorus", "Flush"}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("call sequence: got %v, want %v", ops, want)
	}

	if got := s.dev.Clears(); len(got) != 1 || got[0] != graphics.ClearColorBuffer|graphics.ClearDepthBuffer {
		t.Errorf("clear mask: got %v", got)
	}

	tori := s.dev.Tori()
	if len(tori) != 1 {
		t.Fatalf("drew %d tori, want 1", len(tori))
	}
	tor := tori[0]
	if tor.InnerRadius != 0.5 || tor.OuterRadius != 1.0 || tor.Sides != 40 || tor.Rings != 40 {
		t.Errorf("torus parameters: got %+v", tor)
	}
	wantView := mgl32.LookAtV(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	if !tor.ModelView.ApproxEqual(wantView) {
		t.Errorf("model-view at draw time: got %v, want %v", tor.ModelView, wantView)
	}
	if s.dev.Frames() != 1 {
		t.Errorf("frames flushed: got %d, want 1", s.dev.Frames())
	}
}

func TestDisplayIsDeterministic(t *testing.T) {
	tr, s := initTorus(t)
	if err := tr.Reshape(s, 0, 0, 640, 480); err != nil {
		t.Fatalf("Reshape: %v", err)
	}

	var first []recorder.Call
	for i := 0; i < 5; i++ {
		s.dev.Reset()
		if err := tr.Display(s); err != nil {
			t.Fatalf("Display %d: %v", i, err)
		}
		calls := s.dev.Calls()
		if i == 0 {
			first = calls
			continue
		}
		if !reflect.DeepEqual(calls, first) {
			t.Fatalf("frame %d differs from frame 0:\n got %v\nwant %v", i, calls, first)
		}
	}
}

func TestReshape(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantViewport  [4]int
	}{
		{name: "base size", width: 640, height: 480, wantViewport: [4]int{0, 0, 640, 480}},
		{name: "wider than base", width: 1280, height: 480, wantViewport: [4]int{0, 0, 1280, 480}},
		{name: "zero height", width: 640, height: 0, wantViewport: [4]int{0, 0, 640, 1}},
		{name: "negative size", width: -5, height: -5, wantViewport: [4]int{0, 0, 0, 1}},
	}

	wantProj := Projection{Left: -2.0 * 640 / 480, Right: 2.0 * 640 / 480, Bottom: -2, Top: 2, Near: 0.1, Far: 100}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, s := initTorus(t)
			s.dev.Reset()

			if err := tr.Reshape(s, 10, 20, tt.width, tt.height); err != nil {
				t.Fatalf("Reshape: %v", err)
			}

			if got := s.dev.ViewportRect(); got != tt.wantViewport {
				t.Errorf("viewport: got %v, want %v", got, tt.wantViewport)
			}
			if got := tr.Viewport(); got.Height < 1 || got.Width != tt.wantViewport[2] || got.Height != tt.wantViewport[3] {
				t.Errorf("stored viewport: got %+v", got)
			}

			var ortho *recorder.Call
			calls := s.dev.Calls()
			for i := range calls {
				if calls[i].Op == "Ortho" {
					ortho = &calls[i]
				}
			}
			if ortho == nil {
				t.Fatalf("no Ortho call recorded")
			}
			got := Projection{
				Left: ortho.Args[0].(float64), Right: ortho.Args[1].(float64),
				Bottom: ortho.Args[2].(float64), Top: ortho.Args[3].(float64),
				Near: ortho.Args[4].(float64), Far: ortho.Args[5].(float64),
			}
			if got != wantProj {
				t.Errorf("ortho bounds: got %+v, want %+v", got, wantProj)
			}
			if math.Abs(got.Right-2.667) > 1e-3 {
				t.Errorf("right bound: got %f, want ~2.667", got.Right)
			}

			wantMat := mgl32.Ortho(float32(wantProj.Left), float32(wantProj.Right), -2, 2, 0.1, 100)
			if !s.dev.Projection().ApproxEqual(wantMat) {
				t.Errorf("projection matrix: got %v, want %v", s.dev.Projection(), wantMat)
			}
			if s.dev.Mode() != graphics.MatrixProjection {
				t.Errorf("matrix mode after Reshape: got %v, want projection", s.dev.Mode())
			}
			if s.repaints != 1 {
				t.Errorf("repaints: got %d, want 1", s.repaints)
			}
		})
	}
}

func TestReshapeIsIdempotent(t *testing.T) {
	tr, s := initTorus(t)

	if err := tr.Reshape(s, 0, 0, 800, 600); err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	proj, vp := s.dev.Projection(), s.dev.ViewportRect()

	for i := 0; i < 3; i++ {
		if err := tr.Reshape(s, 0, 0, 800, 600); err != nil {
			t.Fatalf("Reshape: %v", err)
		}
	}
	if s.dev.Projection() != proj || s.dev.ViewportRect() != vp {
		t.Errorf("repeated identical reshapes changed state")
	}
}

func TestDisplayChangedIsNoop(t *testing.T) {
	tr, s := initTorus(t)
	s.dev.Reset()

	tr.DisplayChanged(s, true, true)
	if len(s.dev.Calls()) != 0 || s.repaints != 0 {
		t.Errorf("DisplayChanged should not touch the device")
	}
}

func TestOrthoForClampsHeight(t *testing.T) {
	p := OrthoFor(640, 0)
	if math.IsInf(p.Right, 0) || math.IsNaN(p.Right) {
		t.Fatalf("zero base height produced %v", p.Right)
	}
	if p.Right != 1280 {
		t.Errorf("right bound: got %v, want 1280", p.Right)
	}
}

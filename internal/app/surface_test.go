package app

import (
	"errors"
	"testing"

	"gl-torus/internal/graphics/recorder"
	"gl-torus/internal/graphics/renderer"
)

func newTestScheduler() (*Scheduler, *Surface, *recorder.Device, *renderer.Torus, *int) {
	dev := recorder.New()
	wakes := 0
	s := NewSurface(dev, func() { wakes++ })
	tr := renderer.NewTorus(640, 480)
	return NewScheduler(tr, s), s, dev, tr, &wakes
}

func TestSchedulerStartupSequence(t *testing.T) {
	sched, surface, dev, tr, wakes := newTestScheduler()

	sched.Post(renderer.InitEvent{})
	sched.Post(renderer.ReshapeEvent{Width: 800, Height: 600})
	if sched.Pending() != 2 {
		t.Fatalf("pending: got %d, want 2", sched.Pending())
	}
	if err := sched.Drain(); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if sched.Pending() != 0 {
		t.Errorf("queue not empty after drain")
	}
	if !tr.Initialized() {
		t.Fatalf("torus not initialized")
	}
	if got := tr.Viewport(); got.Width != 800 || got.Height != 600 {
		t.Errorf("viewport: got %+v, want 800x600", got)
	}
	if !surface.Dirty() || *wakes != 1 {
		t.Errorf("reshape should request one repaint, dirty=%v wakes=%d", surface.Dirty(), *wakes)
	}

	drawn, err := sched.Redraw()
	if err != nil || !drawn {
		t.Fatalf("Redraw: drawn=%v err=%v", drawn, err)
	}
	if dev.Frames() != 1 || len(dev.Tori()) != 1 {
		t.Errorf("frames=%d tori=%d, want 1 and 1", dev.Frames(), len(dev.Tori()))
	}
	if surface.Dirty() {
		t.Errorf("repaint flag should clear after drawing")
	}

	drawn, err = sched.Redraw()
	if err != nil || drawn {
		t.Errorf("second Redraw without request: drawn=%v err=%v", drawn, err)
	}
}

func TestSchedulerDrainContinuesAfterError(t *testing.T) {
	sched, _, dev, tr, _ := newTestScheduler()

	// Reshape before init fails, init after it still runs
	sched.Post(renderer.ReshapeEvent{Width: 320, Height: 240})
	sched.Post(renderer.InitEvent{})
	sched.Post(renderer.InitEvent{})

	err := sched.Drain()
	if !errors.Is(err, renderer.ErrNotInitialized) {
		t.Errorf("got %v, want ErrNotInitialized in joined error", err)
	}
	if !errors.Is(err, renderer.ErrAlreadyInitialized) {
		t.Errorf("got %v, want ErrAlreadyInitialized in joined error", err)
	}
	if !tr.Initialized() {
		t.Errorf("init should have run")
	}
	if dev.Frames() != 0 {
		t.Errorf("no frame expected, got %d", dev.Frames())
	}
}

func TestRedrawBeforeInit(t *testing.T) {
	sched, surface, dev, _, _ := newTestScheduler()

	surface.Repaint()
	drawn, err := sched.Redraw()
	if !errors.Is(err, renderer.ErrNotInitialized) || drawn {
		t.Fatalf("got drawn=%v err=%v, want ErrNotInitialized", drawn, err)
	}
	if len(dev.Calls()) != 0 {
		t.Errorf("device touched before init: %v", dev.Calls())
	}
}

func TestDisplayChangedDoesNotRepaint(t *testing.T) {
	sched, surface, _, _, _ := newTestScheduler()

	sched.Post(renderer.InitEvent{})
	sched.Post(renderer.DisplayChangedEvent{ModeChanged: true, DeviceChanged: true})
	if err := sched.Drain(); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if surface.Dirty() {
		t.Errorf("display change should not request a repaint")
	}
}

func TestCenterOrigin(t *testing.T) {
	tests := []struct {
		sw, sh, fw, fh int
		wantX, wantY   int
	}{
		{1920, 1080, 640, 480, 640, 300},
		{640, 480, 640, 480, 0, 0},
		{800, 600, 1000, 700, -100, -50},
	}
	for _, tt := range tests {
		x, y := centerOrigin(tt.sw, tt.sh, tt.fw, tt.fh)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("centerOrigin(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tt.sw, tt.sh, tt.fw, tt.fh, x, y, tt.wantX, tt.wantY)
		}
	}
}

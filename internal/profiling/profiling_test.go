package profiling

import (
	"testing"
	"time"
)

func TestTopNOrdersByDuration(t *testing.T) {
	f := NewFrame()
	f.Add("glfw.SwapBuffers", 1*time.Millisecond)
	f.Add("renderer.Display", 4200*time.Microsecond)
	f.Add("glfw.WaitEvents", 500*time.Microsecond)

	got := f.TopN(2)
	want := "renderer.Display:4.2ms, glfw.SwapBuffers:1.0ms"
	if got != want {
		t.Fatalf("TopN(2): got %q, want %q", got, want)
	}

	if got := f.TopN(10); got != "renderer.Display:4.2ms, glfw.SwapBuffers:1.0ms, glfw.WaitEvents:0.5ms" {
		t.Errorf("TopN(10): got %q", got)
	}
	if got := f.TopN(0); got != "" {
		t.Errorf("TopN(0): got %q, want empty", got)
	}
}

func TestAddAccumulatesAndResetClears(t *testing.T) {
	f := NewFrame()
	f.Add("renderer.Display", time.Millisecond)
	f.Add("renderer.Display", time.Millisecond)

	if got := f.Snapshot()["renderer.Display"]; got != 2*time.Millisecond {
		t.Fatalf("accumulated: got %v, want 2ms", got)
	}

	f.Reset()
	if len(f.Snapshot()) != 0 {
		t.Fatalf("reset should drop all totals")
	}
}

func TestTrackRecordsElapsed(t *testing.T) {
	f := NewFrame()
	stop := f.Track("work")
	time.Sleep(2 * time.Millisecond)
	stop()

	if got := f.Snapshot()["work"]; got < 2*time.Millisecond {
		t.Errorf("tracked duration too small: %v", got)
	}
}

package config

import (
	"sync"
	"time"
)

// Backend selects the OpenGL flavor used to draw
type Backend int

const (
	// BackendCore uses a 4.1 core profile context with shader-emulated lighting
	BackendCore Backend = iota
	// BackendCompat uses a 2.1 context and the fixed-function pipeline
	BackendCompat
)

func (b Backend) String() string {
	switch b {
	case BackendCore:
		return "core"
	case BackendCompat:
		return "compat"
	}
	return "unknown"
}

// RenderSettings holds render configuration
type RenderSettings struct {
	mu           sync.RWMutex
	backend      Backend
	slowFrame    time.Duration
	captureDir   string
	swapInterval int
}

var globalRenderSettings = &RenderSettings{
	backend:      BackendCore,
	slowFrame:    16 * time.Millisecond,
	captureDir:   ".",
	swapInterval: 1,
}

// GetBackend returns the preferred backend
func GetBackend() Backend {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.backend
}

// SetBackend sets the preferred backend. Unknown values are ignored.
func SetBackend(b Backend) {
	if b != BackendCore && b != BackendCompat {
		return
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.backend = b
}

// GetSlowFrameThreshold returns the frame time above which a frame is logged
func GetSlowFrameThreshold() time.Duration {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.slowFrame
}

// SetSlowFrameThreshold sets the slow frame threshold
func SetSlowFrameThreshold(d time.Duration) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if d < time.Millisecond {
		d = time.Millisecond
	}
	globalRenderSettings.slowFrame = d
}

// GetCaptureDir returns the directory frame captures are written to
func GetCaptureDir() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.captureDir
}

// SetCaptureDir sets the capture directory. An empty path means the working directory.
func SetCaptureDir(dir string) {
	if dir == "" {
		dir = "."
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.captureDir = dir
}

// GetSwapInterval returns the number of screen refreshes to wait per buffer swap
func GetSwapInterval() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.swapInterval
}

// SetSwapInterval sets the swap interval, clamped to 0..4
func SetSwapInterval(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > 4 {
		n = 4
	}
	globalRenderSettings.swapInterval = n
}

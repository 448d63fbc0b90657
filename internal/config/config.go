package config

import "sync"

// WindowSettings holds the initial surface configuration
type WindowSettings struct {
	mu     sync.RWMutex
	width  int
	height int
	title  string
}

var globalWindowSettings = &WindowSettings{
	width:  640,
	height: 480,
	title:  "An OpenGL Torus in Go",
}

// GetWindowSize returns the initial drawing surface size in pixels.
// This size also fixes the aspect ratio of the projection.
func GetWindowSize() (int, int) {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.width, globalWindowSettings.height
}

// SetWindowSize sets the initial surface size
func SetWindowSize(width, height int) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()

	// Clamp to something a window can be
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	globalWindowSettings.width = width
	globalWindowSettings.height = height
}

// GetTitle returns the window title
func GetTitle() string {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.title
}

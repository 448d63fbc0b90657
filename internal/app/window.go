package app

import (
	"fmt"
	"log"

	"gl-torus/internal/config"
	"gl-torus/internal/graphics"
	"gl-torus/internal/graphics/glcompat"
	"gl-torus/internal/graphics/glcore"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow creates a hidden window with a context for the given backend
// and makes it current.
func SetupWindow(backend config.Backend) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	switch backend {
	case config.BackendCompat:
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
	default:
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.DepthBits, 24)
	// Shown once centered
	glfw.WindowHint(glfw.Visible, glfw.False)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetTitle(), nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(config.GetSwapInterval())

	return window, nil
}

// CenterWindow places the window in the middle of the primary monitor
func CenterWindow(window *glfw.Window) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return
	}
	mx, my := monitor.GetPos()
	w, h := window.GetSize()
	left, top, right, bottom := window.GetFrameSize()

	x, y := centerOrigin(mode.Width, mode.Height, w+left+right, h+top+bottom)
	window.SetPos(mx+x+left, my+y+top)
}

func centerOrigin(screenW, screenH, frameW, frameH int) (int, int) {
	return (screenW - frameW) / 2, (screenH - frameH) / 2
}

// OpenDevice creates the graphics device for the current context. The
// returned function releases its GPU resources.
func OpenDevice(backend config.Backend) (graphics.Device, func(), error) {
	switch backend {
	case config.BackendCompat:
		dev, err := glcompat.New()
		if err != nil {
			return nil, nil, err
		}
		return dev, dev.Dispose, nil
	default:
		dev, err := glcore.New()
		if err != nil {
			return nil, nil, err
		}
		return dev, dev.Dispose, nil
	}
}

// Open creates the window and device with the configured backend, falling
// back to the compatibility backend when the preferred one is unavailable.
// The window is centered and shown.
func Open() (*glfw.Window, graphics.Device, func(), error) {
	preferred := config.GetBackend()
	backends := []config.Backend{preferred}
	if preferred != config.BackendCompat {
		backends = append(backends, config.BackendCompat)
	}

	var errs []error
	for _, b := range backends {
		window, err := SetupWindow(b)
		if err != nil {
			log.Printf("app: %s window: %v", b, err)
			errs = append(errs, fmt.Errorf("%s window: %w", b, err))
			continue
		}
		dev, dispose, err := OpenDevice(b)
		if err != nil {
			log.Printf("app: %s device: %v", b, err)
			errs = append(errs, fmt.Errorf("%s device: %w", b, err))
			window.Destroy()
			continue
		}

		config.SetBackend(b)
		CenterWindow(window)
		window.Show()
		log.Printf("app: using %s backend", b)
		return window, dev, dispose, nil
	}
	return nil, nil, nil, fmt.Errorf("app: no usable backend: %v", errs)
}

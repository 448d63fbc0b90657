package app

import (
	"log"
	"path/filepath"
	"time"

	"gl-torus/internal/config"
	"gl-torus/internal/graphics"
	"gl-torus/internal/graphics/capture"
	"gl-torus/internal/graphics/renderer"
	"gl-torus/internal/input"
	"gl-torus/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Time blocked in SwapBuffers waits on vsync and is not frame work
const swapBucket = "glfw.SwapBuffers"

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	surface   *Surface
	scheduler *Scheduler

	// Capture the next drawn frame before it is swapped
	captureNext bool
	frames      int
}

func NewApp(window *glfw.Window, dev graphics.Device, l renderer.Listener) *App {
	surface := NewSurface(dev, glfw.PostEmptyEvent)
	return &App{
		window:       window,
		inputManager: input.NewInputManager(),
		surface:      surface,
		scheduler:    NewScheduler(l, surface),
	}
}

// Start delivers the init event followed by the initial framebuffer size
func (a *App) Start() error {
	a.scheduler.Post(renderer.InitEvent{})
	width, height := a.window.GetFramebufferSize()
	a.scheduler.Post(renderer.ReshapeEvent{Width: width, Height: height})
	return a.scheduler.Drain()
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	log.Printf("app: closed after %d frames", a.frames)
}

func (a *App) tick() {
	// Block until the window system or a repaint request wakes us
	glfw.WaitEvents()

	profiling.ResetFrame()
	startTick := time.Now()

	a.handleInput()
	a.present()

	processingDuration := processingTime(time.Since(startTick), profiling.Snapshot())
	if processingDuration > config.GetSlowFrameThreshold() {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
}

func (a *App) handleInput() {
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionCapture) {
		a.captureNext = true
		a.surface.Repaint()
	}
}

// present delivers pending events and swaps if a frame was drawn
func (a *App) present() {
	a.scheduler.Drain()

	drawn, err := a.scheduler.Redraw()
	if err != nil {
		log.Printf("app: display: %v", err)
		return
	}
	if !drawn {
		return
	}
	a.frames++

	if a.captureNext {
		a.captureNext = false
		a.captureFrame()
	}

	func() {
		defer profiling.Track(swapBucket)()
		a.window.SwapBuffers()
	}()
}

// RefreshRender redraws immediately while the window system is damaged or resizing
func (a *App) RefreshRender() {
	a.surface.Repaint()
	a.present()
}

func (a *App) captureFrame() {
	defer profiling.Track("app.captureFrame")()

	reader, ok := a.surface.Device().(graphics.FrameReader)
	if !ok {
		log.Printf("app: capture not supported by %s backend", config.GetBackend())
		return
	}
	width, height := a.window.GetFramebufferSize()
	img, err := capture.Frame(reader, width, height)
	if err != nil {
		log.Printf("app: %v", err)
		return
	}
	path := filepath.Join(config.GetCaptureDir(), capture.FileName(time.Now()))
	if err := capture.Save(path, img); err != nil {
		log.Printf("app: %v", err)
		return
	}
	log.Printf("app: saved %s", path)
}

// processingTime removes the buffer swap from a frame's elapsed time
func processingTime(elapsed time.Duration, buckets map[string]time.Duration) time.Duration {
	return max(elapsed-buckets[swapBucket], 0)
}

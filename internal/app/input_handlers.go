package app

import (
	"gl-torus/internal/graphics/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window

	app.inputManager.SetKeyCallback(window)

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.scheduler.Post(renderer.ReshapeEvent{Width: fbWidth, Height: fbHeight})
	})

	// Damage and live resize
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})

	// Moving to a monitor with a different scale changes the display mode
	window.SetContentScaleCallback(func(w *glfw.Window, x, y float32) {
		app.scheduler.Post(renderer.DisplayChangedEvent{ModeChanged: true})
		glfw.PostEmptyEvent()
	})

	glfw.SetMonitorCallback(func(m *glfw.Monitor, event glfw.PeripheralEvent) {
		app.scheduler.Post(renderer.DisplayChangedEvent{DeviceChanged: true})
		glfw.PostEmptyEvent()
	})
}

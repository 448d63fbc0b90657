package main

import (
	"log"
	"runtime"

	"gl-torus/internal/app"
	"gl-torus/internal/config"
	"gl-torus/internal/graphics/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// Signals exit through closer; GL teardown stays on the main thread in run
	closer.Bind(func() {
		log.Println("torus: exiting")
	})

	run()
	closer.Close()
}

func run() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, dev, dispose, err := app.Open()
	if err != nil {
		panic(err)
	}
	defer window.Destroy()
	defer dispose()

	width, height := config.GetWindowSize()
	a := app.NewApp(window, dev, renderer.NewTorus(width, height))
	app.SetupInputHandlers(a)

	if err := a.Start(); err != nil {
		log.Printf("torus: startup: %v", err)
	}
	a.Run()
}

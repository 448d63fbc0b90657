package renderer

import (
	"errors"

	"gl-torus/internal/graphics"
)

var (
	// ErrNotInitialized is returned when Display or Reshape runs before Init
	ErrNotInitialized = errors.New("renderer: not initialized")
	// ErrAlreadyInitialized is returned by a second Init
	ErrAlreadyInitialized = errors.New("renderer: already initialized")
	// ErrUnknownEvent is returned by Dispatch for an event it cannot route
	ErrUnknownEvent = errors.New("renderer: unknown event")
)

// Drawable is the surface a Listener renders into
type Drawable interface {
	// Device returns the graphics device bound to the surface
	Device() graphics.Device
	// Repaint asks the owner of the surface to schedule a Display
	Repaint()
}

// Listener receives the lifecycle callbacks of a Drawable
type Listener interface {
	// Init runs once, before any other callback
	Init(d Drawable) error
	// Display draws one frame
	Display(d Drawable) error
	// Reshape runs whenever the surface changes size
	Reshape(d Drawable, x, y, width, height int) error
	// DisplayChanged reports a display mode or device change
	DisplayChanged(d Drawable, modeChanged, deviceChanged bool)
}

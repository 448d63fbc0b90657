package renderer

import "fmt"

// Event is one lifecycle notification for a Listener
type Event interface {
	isEvent()
}

// InitEvent requests Listener.Init
type InitEvent struct{}

// DisplayEvent requests Listener.Display
type DisplayEvent struct{}

// ReshapeEvent carries the new surface rectangle in pixels
type ReshapeEvent struct {
	X, Y          int
	Width, Height int
}

// DisplayChangedEvent reports a display mode or device change
type DisplayChangedEvent struct {
	ModeChanged   bool
	DeviceChanged bool
}

func (InitEvent) isEvent()           {}
func (DisplayEvent) isEvent()        {}
func (ReshapeEvent) isEvent()        {}
func (DisplayChangedEvent) isEvent() {}

// Dispatch delivers ev to the matching Listener method
func Dispatch(l Listener, d Drawable, ev Event) error {
	switch e := ev.(type) {
	case InitEvent:
		return l.Init(d)
	case DisplayEvent:
		return l.Display(d)
	case ReshapeEvent:
		return l.Reshape(d, e.X, e.Y, e.Width, e.Height)
	case DisplayChangedEvent:
		l.DisplayChanged(d, e.ModeChanged, e.DeviceChanged)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
}

// String implementations keep log lines readable

func (InitEvent) String() string    { return "init" }
func (DisplayEvent) String() string { return "display" }

func (e ReshapeEvent) String() string {
	return fmt.Sprintf("reshape(%d,%d %dx%d)", e.X, e.Y, e.Width, e.Height)
}

func (e DisplayChangedEvent) String() string {
	return fmt.Sprintf("display-changed(mode=%t device=%t)", e.ModeChanged, e.DeviceChanged)
}

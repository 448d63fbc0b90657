package app

import (
	"errors"
	"log"

	"gl-torus/internal/graphics"
	"gl-torus/internal/graphics/renderer"
)

// Surface binds a device to the window and remembers repaint requests
type Surface struct {
	device graphics.Device
	dirty  bool
	wake   func()

	stackErrors int
}

var _ renderer.Drawable = (*Surface)(nil)

// NewSurface creates a surface. wake, if set, is called on every repaint
// request to interrupt a blocking event wait.
func NewSurface(dev graphics.Device, wake func()) *Surface {
	return &Surface{device: dev, wake: wake}
}

// Device returns the bound graphics device
func (s *Surface) Device() graphics.Device { return s.device }

// Repaint schedules a Display on the next loop iteration
func (s *Surface) Repaint() {
	s.dirty = true
	if s.wake != nil {
		s.wake()
	}
}

// Dirty reports whether a repaint is pending
func (s *Surface) Dirty() bool { return s.dirty }

type stackCounter interface {
	StackErrors() int
}

// checkStack returns the matrix stack errors raised since the previous check.
// Devices that do not track their stacks report none.
func (s *Surface) checkStack() int {
	sc, ok := s.device.(stackCounter)
	if !ok {
		return 0
	}
	n := sc.StackErrors()
	delta := n - s.stackErrors
	s.stackErrors = n
	return delta
}

// Scheduler queues lifecycle events and delivers them to a listener in order
type Scheduler struct {
	listener renderer.Listener
	surface  *Surface
	queue    []renderer.Event
}

// NewScheduler creates a scheduler delivering to l through s
func NewScheduler(l renderer.Listener, s *Surface) *Scheduler {
	return &Scheduler{listener: l, surface: s}
}

// Post appends an event to the queue
func (s *Scheduler) Post(ev renderer.Event) {
	s.queue = append(s.queue, ev)
}

// Pending returns the number of queued events
func (s *Scheduler) Pending() int { return len(s.queue) }

// Drain dispatches every queued event in arrival order. A failing event is
// logged and does not stop the rest of the queue.
func (s *Scheduler) Drain() error {
	var errs []error
	for len(s.queue) > 0 {
		ev := s.queue[0]
		s.queue = s.queue[1:]
		if err := renderer.Dispatch(s.listener, s.surface, ev); err != nil {
			log.Printf("app: %v: %v", ev, err)
			errs = append(errs, err)
		}
	}
	s.queue = nil
	return errors.Join(errs...)
}

// Redraw dispatches a display event if a repaint is pending and reports
// whether a frame was drawn.
func (s *Scheduler) Redraw() (bool, error) {
	if !s.surface.dirty {
		return false, nil
	}
	s.surface.dirty = false
	if err := renderer.Dispatch(s.listener, s.surface, renderer.DisplayEvent{}); err != nil {
		return false, err
	}
	if n := s.surface.checkStack(); n > 0 {
		log.Printf("app: %d matrix stack overflow/underflow during display", n)
	}
	return true, nil
}

package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Frame accumulates named durations for the frame in progress
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
}

// NewFrame creates an empty frame
func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration)}
}

var current = NewFrame()

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("renderer.Display")()
func Track(name string) func() {
	return current.Track(name)
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() { current.Reset() }

// Snapshot returns a copy of the current totals
func Snapshot() map[string]time.Duration { return current.Snapshot() }

// TopN formats the n largest totals of the current frame
func TopN(n int) string { return current.TopN(n) }

// Track returns a stop function that adds the elapsed time to name
func (f *Frame) Track(name string) func() {
	start := time.Now()
	return func() {
		f.Add(name, time.Since(start))
	}
}

// Add records d under name
func (f *Frame) Add(name string, d time.Duration) {
	f.mu.Lock()
	f.totals[name] += d
	f.mu.Unlock()
}

// Reset drops all totals
func (f *Frame) Reset() {
	f.mu.Lock()
	clear(f.totals)
	f.mu.Unlock()
}

// Snapshot returns a copy of all totals
func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, largest first, ties broken by name.
// Example: "renderer.Display:4.2ms, glfw.SwapBuffers:1.0ms"
func (f *Frame) TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	snap := f.Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:max(n, 0)] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}

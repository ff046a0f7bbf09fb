// Package input defines the logical button alphabet of the controller and a
// debouncer for noisy sources. Every source — keyboard, GPIO buttons, rotary
// encoders — maps its raw events onto Event values and feeds them to a
// single engine from a single goroutine.
package input

import (
	"sync"
	"time"
)

// Event is one logical controller gesture.
type Event int

const (
	Up Event = iota
	Down
	Left
	Right
	Select
	Back
)

func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Select:
		return "select"
	case Back:
		return "back"
	}
	return "unknown"
}

// Debouncer drops events arriving closer together than a minimum interval.
// Physical buttons bounce; synthesized key repeat can outrun a slow display.
type Debouncer struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
	now  func() time.Time
}

// NewDebouncer returns a debouncer with the given minimum interval. A zero
// or negative interval accepts everything.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval, now: time.Now}
}

// Allow reports whether an event arriving now should be dispatched.
func (d *Debouncer) Allow() bool {
	if d == nil || d.interval <= 0 {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if now.Before(d.next) {
		return false
	}
	d.next = now.Add(d.interval)
	return true
}

package config

import (
	"sync/atomic"
	"time"
)

const (
	DefaultIntervalMs = 100
	MinIntervalMs     = 50
	MaxIntervalMs     = 5000

	// IntervalStepMs is how far one +/- keypress moves the interval.
	IntervalStepMs = 50
)

// ClampInterval bounds ms to [MinIntervalMs, MaxIntervalMs].
func ClampInterval(ms int) int {
	if ms < MinIntervalMs {
		return MinIntervalMs
	}
	if ms > MaxIntervalMs {
		return MaxIntervalMs
	}
	return ms
}

// Display holds the operator-adjustable viewer settings. It is written by the
// UI goroutine and read by the poll goroutine, so every field is atomic.
type Display struct {
	intervalMs    atomic.Int64
	showAncestors atomic.Bool
}

// NewDisplay returns a Display with the default interval and ancestors shown.
func NewDisplay() *Display {
	d := &Display{}
	d.intervalMs.Store(DefaultIntervalMs)
	d.showAncestors.Store(true)
	return d
}

// Interval returns the current poll interval.
func (d *Display) Interval() time.Duration {
	return time.Duration(d.intervalMs.Load()) * time.Millisecond
}

// IntervalMs returns the current poll interval in milliseconds.
func (d *Display) IntervalMs() int {
	return int(d.intervalMs.Load())
}

// SetIntervalMs stores ms after clamping and returns the stored value.
func (d *Display) SetIntervalMs(ms int) int {
	ms = ClampInterval(ms)
	d.intervalMs.Store(int64(ms))
	return ms
}

// AdjustIntervalMs moves the interval by delta milliseconds, clamped.
func (d *Display) AdjustIntervalMs(delta int) int {
	return d.SetIntervalMs(d.IntervalMs() + delta)
}

func (d *Display) ShowAncestors() bool {
	return d.showAncestors.Load()
}

func (d *Display) SetShowAncestors(v bool) {
	d.showAncestors.Store(v)
}

// ToggleAncestors flips the ancestor setting and returns the new value.
func (d *Display) ToggleAncestors() bool {
	for {
		old := d.showAncestors.Load()
		if d.showAncestors.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

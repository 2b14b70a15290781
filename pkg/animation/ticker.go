package animation

import "time"

// Ticker calls a callback once per frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the time elapsed since the first frame after Start.
// Frames are requested one at a time through the ticker's [FrameScheduler];
// the first delivered frame establishes the zero point, so its elapsed value
// is always 0.
type Ticker struct {
	scheduler FrameScheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	started   bool
	start     time.Time
}

// NewTicker creates a ticker that requests frames from scheduler.
func NewTicker(scheduler FrameScheduler, callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		scheduler: scheduler,
		callback:  callback,
	}
}

// Start activates the ticker and requests the first frame.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.started = false
	t.scheduler.ScheduleFrame(t.onFrame)
}

// Stop deactivates the ticker. A frame already scheduled with the host is
// ignored when it arrives.
func (t *Ticker) Stop() {
	t.isActive = false
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

func (t *Ticker) onFrame(now time.Time) {
	if !t.isActive {
		return
	}
	if !t.started {
		t.started = true
		t.start = now
	}
	if t.callback != nil {
		t.callback(now.Sub(t.start))
	}
	// The callback may have stopped the ticker (animation completed).
	if t.isActive {
		t.scheduler.ScheduleFrame(t.onFrame)
	}
}

// Package animation provides time-based animation primitives: controllers,
// tickers, curves, and tweens.
//
// All timing flows through a [FrameScheduler] supplied by the host. The
// package owns no clock and spawns no goroutines; everything runs on the
// host's event loop, one callback per frame.
package animation

import "time"

// FrameScheduler is the host capability that delivers animation frames.
// ScheduleFrame registers a single-shot callback invoked on the next frame
// with the frame's timestamp. Each tick of an animation requests exactly one
// frame, so an idle animation costs nothing.
type FrameScheduler interface {
	ScheduleFrame(callback func(now time.Time))
}

// FrameSchedulerFunc adapts a function to the FrameScheduler interface.
type FrameSchedulerFunc func(callback func(now time.Time))

// ScheduleFrame implements FrameScheduler.
func (f FrameSchedulerFunc) ScheduleFrame(callback func(now time.Time)) {
	f(callback)
}

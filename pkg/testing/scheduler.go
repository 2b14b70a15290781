package testing

import "time"

// FakeScheduler implements animation.FrameScheduler with hand-pumped
// frames. Scheduled callbacks accumulate until a test delivers them with
// [FakeScheduler.PumpFrame] or [FakeScheduler.Pump], each delivery stamped
// with the fake clock's current time.
type FakeScheduler struct {
	clock   *FakeClock
	pending []func(now time.Time)
}

// NewFakeScheduler creates a scheduler over a fresh [FakeClock].
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{clock: NewFakeClock()}
}

// Clock returns the scheduler's fake clock.
func (s *FakeScheduler) Clock() *FakeClock {
	return s.clock
}

// ScheduleFrame implements animation.FrameScheduler.
func (s *FakeScheduler) ScheduleFrame(callback func(now time.Time)) {
	s.pending = append(s.pending, callback)
}

// HasPendingFrame reports whether any callback awaits delivery.
func (s *FakeScheduler) HasPendingFrame() bool {
	return len(s.pending) > 0
}

// PumpFrame delivers all currently pending callbacks at the present fake
// time. Callbacks scheduled during delivery wait for the next frame, as
// they would with a real host.
func (s *FakeScheduler) PumpFrame() {
	callbacks := s.pending
	s.pending = nil
	now := s.clock.Now()
	for _, callback := range callbacks {
		callback(now)
	}
}

// Pump repeatedly delivers frames, advancing the clock by interval between
// deliveries, until no frames remain or limit deliveries have happened.
// It returns the number of frames delivered.
func (s *FakeScheduler) Pump(interval time.Duration, limit int) int {
	delivered := 0
	for delivered < limit && len(s.pending) > 0 {
		s.PumpFrame()
		delivered++
		if len(s.pending) > 0 {
			s.clock.Advance(interval)
		}
	}
	return delivered
}

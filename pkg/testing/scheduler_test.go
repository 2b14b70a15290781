package testing

import (
	gotesting "testing"
	"time"
)

func TestFakeScheduler_PumpFrameDeliversAtCurrentTime(t *gotesting.T) {
	s := NewFakeScheduler()
	var got time.Time
	s.ScheduleFrame(func(now time.Time) { got = now })

	s.Clock().Advance(42 * time.Millisecond)
	s.PumpFrame()

	want := s.Clock().Now()
	if !got.Equal(want) {
		t.Errorf("frame time = %v, want %v", got, want)
	}
}

func TestFakeScheduler_ReschedulesWaitForNextFrame(t *gotesting.T) {
	s := NewFakeScheduler()
	calls := 0
	s.ScheduleFrame(func(time.Time) {
		calls++
		if calls == 1 {
			s.ScheduleFrame(func(time.Time) { calls++ })
		}
	})

	s.PumpFrame()
	if calls != 1 {
		t.Fatalf("calls after one frame = %d, want 1", calls)
	}
	if !s.HasPendingFrame() {
		t.Fatal("re-scheduled callback should be pending")
	}
	s.PumpFrame()
	if calls != 2 {
		t.Errorf("calls after two frames = %d, want 2", calls)
	}
}

func TestFakeScheduler_PumpAdvancesClockBetweenFrames(t *gotesting.T) {
	s := NewFakeScheduler()
	var times []time.Time
	var frame func(time.Time)
	frame = func(now time.Time) {
		times = append(times, now)
		if len(times) < 3 {
			s.ScheduleFrame(frame)
		}
	}
	s.ScheduleFrame(frame)

	delivered := s.Pump(10*time.Millisecond, 10)
	if delivered != 3 {
		t.Fatalf("delivered = %d, want 3", delivered)
	}
	for i := 1; i < len(times); i++ {
		if got := times[i].Sub(times[i-1]); got != 10*time.Millisecond {
			t.Errorf("frame %d spacing = %v, want 10ms", i, got)
		}
	}
}

func TestFakeClock_Advance(t *gotesting.T) {
	c := NewFakeClock()
	start := c.Now()
	c.Advance(time.Second)
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("advanced %v, want 1s", got)
	}
}

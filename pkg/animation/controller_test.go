package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/expandtext/pkg/animation"
	exptest "github.com/go-drift/expandtext/pkg/testing"
)

func TestController_ForwardCompletes(t *testing.T) {
	scheduler := exptest.NewFakeScheduler()
	c := animation.NewAnimationController(100*time.Millisecond, scheduler)

	var values []float64
	c.AddListener(func() {
		values = append(values, c.Value)
	})
	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) {
		statuses = append(statuses, s)
	})

	c.Forward()
	if !c.IsAnimating() {
		t.Fatal("controller should be animating after Forward")
	}

	delivered := scheduler.Pump(10*time.Millisecond, 100)
	if delivered >= 100 {
		t.Fatalf("animation never settled, delivered %d frames", delivered)
	}

	if c.Value != 1 {
		t.Errorf("final value = %v, want 1", c.Value)
	}
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if len(values) == 0 || values[0] != 0 {
		t.Errorf("first frame value = %v, want 0", values)
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Errorf("values not monotonic at %d: %v < %v", i, values[i], values[i-1])
		}
	}
	want := []animation.AnimationStatus{animation.AnimationForward, animation.AnimationCompleted}
	if len(statuses) != len(want) || statuses[0] != want[0] || statuses[1] != want[1] {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
}

func TestController_ZeroDurationCompletesOnFirstFrame(t *testing.T) {
	scheduler := exptest.NewFakeScheduler()
	c := animation.NewAnimationController(0, scheduler)

	c.Forward()
	scheduler.PumpFrame()

	if c.Value != 1 {
		t.Errorf("value = %v, want 1", c.Value)
	}
	if !c.IsCompleted() {
		t.Errorf("status = %v, want completed", c.Status())
	}
	if scheduler.HasPendingFrame() {
		t.Error("completed controller should not request more frames")
	}
}

func TestController_RestartSupersedesRun(t *testing.T) {
	scheduler := exptest.NewFakeScheduler()
	c := animation.NewAnimationController(100*time.Millisecond, scheduler)

	completions := 0
	c.AddStatusListener(func(s animation.AnimationStatus) {
		if s == animation.AnimationCompleted {
			completions++
		}
	})

	c.Forward()
	scheduler.Pump(10*time.Millisecond, 5)
	midValue := c.Value
	if midValue <= 0 || midValue >= 1 {
		t.Fatalf("mid-flight value = %v, want strictly between 0 and 1", midValue)
	}

	c.Restart()
	if c.Value != 0 {
		t.Errorf("value after Restart = %v, want 0", c.Value)
	}
	scheduler.Pump(10*time.Millisecond, 100)

	if c.Value != 1 {
		t.Errorf("final value = %v, want 1", c.Value)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1 (superseded run must not complete)", completions)
	}
}

func TestController_CurveApplied(t *testing.T) {
	scheduler := exptest.NewFakeScheduler()
	c := animation.NewAnimationController(100*time.Millisecond, scheduler)
	c.Curve = func(t float64) float64 { return t * t }

	c.Forward()
	scheduler.PumpFrame() // elapsed 0
	scheduler.Clock().Advance(50 * time.Millisecond)
	scheduler.PumpFrame() // elapsed 50ms, progress 0.5

	if c.Value != 0.25 {
		t.Errorf("eased value at half time = %v, want 0.25", c.Value)
	}
}

func TestTicker_StaleFrameIgnoredAfterStop(t *testing.T) {
	scheduler := exptest.NewFakeScheduler()
	ticks := 0
	ticker := animation.NewTicker(scheduler, func(time.Duration) {
		ticks++
	})

	ticker.Start()
	ticker.Stop()
	scheduler.PumpFrame()

	if ticks != 0 {
		t.Errorf("ticks = %d, want 0 after Stop", ticks)
	}
	if scheduler.HasPendingFrame() {
		t.Error("stopped ticker must not re-schedule")
	}
}

func TestTicker_ElapsedFromFirstFrame(t *testing.T) {
	scheduler := exptest.NewFakeScheduler()
	var elapsed []time.Duration
	ticker := animation.NewTicker(scheduler, func(d time.Duration) {
		elapsed = append(elapsed, d)
	})

	ticker.Start()
	scheduler.Clock().Advance(37 * time.Millisecond) // delay before first frame
	scheduler.PumpFrame()
	scheduler.Clock().Advance(16 * time.Millisecond)
	scheduler.PumpFrame()
	ticker.Stop()

	if len(elapsed) != 2 {
		t.Fatalf("got %d ticks, want 2", len(elapsed))
	}
	if elapsed[0] != 0 {
		t.Errorf("first elapsed = %v, want 0", elapsed[0])
	}
	if elapsed[1] != 16*time.Millisecond {
		t.Errorf("second elapsed = %v, want 16ms", elapsed[1])
	}
}

func TestTween_Evaluate(t *testing.T) {
	tween := animation.TweenFloat64(4, 21)
	if got := tween.Evaluate(0); got != 4 {
		t.Errorf("Evaluate(0) = %v, want 4", got)
	}
	if got := tween.Evaluate(1); got != 21 {
		t.Errorf("Evaluate(1) = %v, want 21", got)
	}
	if got := tween.Evaluate(0.5); got != 12.5 {
		t.Errorf("Evaluate(0.5) = %v, want 12.5", got)
	}
}

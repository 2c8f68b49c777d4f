package marquee

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func infiniteTiming(ms float64) Timing {
	return Timing{Duration: ms, Iterations: math.Inf(1), Easing: ease.Linear}
}

func assertProgress(t *testing.T, tl Timeline, want float64) {
	t.Helper()
	p, ok := tl.Progress()
	if !ok {
		t.Fatal("Progress reported no effect")
	}
	if math.Abs(p-want) > 1e-9 {
		t.Errorf("Progress = %v, want %v", p, want)
	}
}

func TestTweenTimelineAppliesFirstKeyframe(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	a.Animate(n, 10, -190, infiniteTiming(2000))
	if math.Abs(n.X-10) > 0.01 {
		t.Errorf("X = %v, want 10 right after Animate", n.X)
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, want 1", a.Len())
	}
}

func TestTweenTimelineAdvancesLinearly(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))

	a.Update(0.5)
	assertProgress(t, tl, 0.25)
	if math.Abs(n.X+50) > 0.01 {
		t.Errorf("X = %v, want -50", n.X)
	}
}

func TestTweenTimelineWrapsForever(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))

	a.Update(2.5)
	assertProgress(t, tl, 0.25)
	if !tl.Playing() {
		t.Error("infinite timeline should keep playing")
	}
}

func TestTweenTimelineNegativeRateWraps(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))
	tl.SetPlaybackRate(-1)

	a.Update(0.5)
	assertProgress(t, tl, 0.75)
}

func TestTweenTimelinePlaybackRate(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))
	tl.SetPlaybackRate(0.5)
	if tl.PlaybackRate() != 0.5 {
		t.Errorf("PlaybackRate = %v, want 0.5", tl.PlaybackRate())
	}

	a.Update(1)
	assertProgress(t, tl, 0.25)

	tl.SetPlaybackRate(math.NaN())
	if tl.PlaybackRate() != 0.5 {
		t.Error("NaN rate should be ignored")
	}
}

func TestTweenTimelinePause(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))
	tl.Pause()
	a.Update(1)
	assertProgress(t, tl, 0)

	tl.Play()
	a.Update(1)
	assertProgress(t, tl, 0.5)
}

func TestTweenTimelineSetCurrentTime(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, -200, 0, infiniteTiming(2000))
	tl.Pause()

	tl.SetCurrentTime(1400)
	assertProgress(t, tl, 0.7)
	if tl.CurrentTime() != 1400 {
		t.Errorf("CurrentTime = %v, want 1400", tl.CurrentTime())
	}
	if math.Abs(n.X+60) > 0.01 {
		t.Errorf("X = %v, want -60", n.X)
	}
}

func TestTweenTimelineCancelRestoresTarget(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	n.X = 15
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))
	a.Update(0.5)

	tl.Cancel()
	if n.X != 15 {
		t.Errorf("X = %v, want 15 after cancel", n.X)
	}
	if _, ok := tl.Progress(); ok {
		t.Error("cancelled timeline should report no progress")
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
	tl.Cancel() // idempotent
	tl.Play()
	if tl.Playing() {
		t.Error("cancelled timeline must not play again")
	}
}

func TestTweenTimelineFiniteFinishes(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("box")
	tl := a.Animate(n, 0, 100, Timing{Duration: 1000, Iterations: 2})

	a.Update(1.5)
	assertProgress(t, tl, 0.5)
	a.Update(1)
	assertProgress(t, tl, 1)
	if tl.Playing() {
		t.Error("finite timeline should stop at its end")
	}
	if math.Abs(n.X-100) > 0.01 {
		t.Errorf("X = %v, want 100", n.X)
	}
}

func TestTweenTimelineDisposedTargetCancels(t *testing.T) {
	a := NewTweenAnimator()
	n := NewContainer("strip")
	tl := a.Animate(n, 0, -200, infiniteTiming(2000))
	n.Dispose()
	a.Update(0.1)
	if _, ok := tl.Progress(); ok {
		t.Error("timeline on a disposed node should cancel itself")
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
}

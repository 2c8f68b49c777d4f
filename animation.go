package marquee

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenAnimator is the default Animator. Every timeline it creates wraps a
// gween.Tween and keeps its own clock; the host advances all of them with one
// Update(dt) call per frame.
type TweenAnimator struct {
	timelines []*tweenTimeline
}

// NewTweenAnimator returns an animator with no running timelines.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// Animate starts a playing timeline that moves target.X from from to to.
// The first keyframe is applied immediately.
func (a *TweenAnimator) Animate(target *Node, from, to float64, timing Timing) Timeline {
	fn := timing.Easing
	if fn == nil {
		fn = ease.Linear
	}
	iterations := timing.Iterations
	if iterations <= 0 || math.IsNaN(iterations) {
		iterations = 1
	}
	tl := &tweenTimeline{
		animator:   a,
		target:     target,
		baseX:      target.X,
		tween:      gween.New(float32(from), float32(to), float32(timing.Duration/1000), fn),
		duration:   timing.Duration,
		iterations: iterations,
		rate:       1,
		playing:    true,
	}
	a.timelines = append(a.timelines, tl)
	tl.apply()
	return tl
}

// Update advances every live timeline by dt seconds of wall time.
func (a *TweenAnimator) Update(dt float64) {
	for _, tl := range a.timelines {
		tl.advance(dt * 1000)
	}
}

// Len returns the number of live (not cancelled) timelines.
func (a *TweenAnimator) Len() int {
	return len(a.timelines)
}

// remove drops tl from the live list. It builds a new slice so an Update
// ranging over the old one is unaffected.
func (a *TweenAnimator) remove(tl *tweenTimeline) {
	kept := make([]*tweenTimeline, 0, len(a.timelines))
	for _, t := range a.timelines {
		if t != tl {
			kept = append(kept, t)
		}
	}
	a.timelines = kept
}

// tweenTimeline is the Timeline handed out by TweenAnimator.
type tweenTimeline struct {
	animator *TweenAnimator
	target   *Node
	baseX    float64
	tween    *gween.Tween

	duration   float64 // ms per iteration
	iterations float64
	current    float64 // ms
	rate       float64

	playing   bool
	cancelled bool
}

func (t *tweenTimeline) Play() {
	if t.cancelled {
		return
	}
	if t.finite() && t.atEnd() {
		t.current = t.startTime()
	}
	t.playing = true
}

func (t *tweenTimeline) Pause() {
	if t.cancelled {
		return
	}
	t.playing = false
}

func (t *tweenTimeline) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.playing = false
	if !t.target.IsDisposed() {
		t.target.X = t.baseX
		t.target.MarkDirty()
	}
	t.animator.remove(t)
}

func (t *tweenTimeline) Playing() bool { return t.playing }

func (t *tweenTimeline) SetPlaybackRate(rate float64) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return
	}
	t.rate = rate
}

func (t *tweenTimeline) PlaybackRate() float64 { return t.rate }

func (t *tweenTimeline) Duration() float64 { return t.duration }

func (t *tweenTimeline) CurrentTime() float64 { return t.current }

func (t *tweenTimeline) SetCurrentTime(ms float64) {
	if t.cancelled || math.IsNaN(ms) {
		return
	}
	t.current = t.normalize(ms)
	t.apply()
}

func (t *tweenTimeline) Progress() (float64, bool) {
	if t.cancelled || t.duration <= 0 {
		return 0, false
	}
	if t.finite() && t.current >= t.duration*t.iterations {
		return 1, true
	}
	p := math.Mod(t.current, t.duration) / t.duration
	if p < 0 {
		p += 1
	}
	return p, true
}

func (t *tweenTimeline) advance(ms float64) {
	if !t.playing || t.cancelled {
		return
	}
	if t.target.IsDisposed() {
		t.Cancel()
		return
	}
	t.current = t.normalize(t.current + ms*t.rate)
	if t.finite() && t.atEnd() {
		t.playing = false
	}
	t.apply()
}

// normalize wraps infinite timelines into one iteration and clamps finite ones
// to their active interval.
func (t *tweenTimeline) normalize(ms float64) float64 {
	if t.duration <= 0 {
		return 0
	}
	if !t.finite() {
		ms = math.Mod(ms, t.duration)
		if ms < 0 {
			ms += t.duration
		}
		return ms
	}
	return min(max(ms, 0), t.duration*t.iterations)
}

func (t *tweenTimeline) finite() bool {
	return !math.IsInf(t.iterations, 1)
}

func (t *tweenTimeline) atEnd() bool {
	if t.rate < 0 {
		return t.current <= 0
	}
	return t.current >= t.duration*t.iterations
}

func (t *tweenTimeline) startTime() float64 {
	if t.rate < 0 {
		return t.duration * t.iterations
	}
	return 0
}

// apply writes the interpolated keyframe value to the target.
func (t *tweenTimeline) apply() {
	if t.target.IsDisposed() {
		return
	}
	p, ok := t.Progress()
	if !ok {
		return
	}
	v, _ := t.tween.Set(float32(p * t.duration / 1000))
	t.target.X = float64(v)
	t.target.MarkDirty()
}

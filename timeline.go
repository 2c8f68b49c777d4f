package marquee

import "github.com/tanema/gween/ease"

// Timing describes how a timeline plays its keyframes.
type Timing struct {
	// Duration of one iteration in milliseconds.
	Duration float64
	// Iterations is the number of loops; math.Inf(1) repeats forever.
	Iterations float64
	// Easing maps iteration progress to keyframe interpolation. Nil means linear.
	Easing ease.TweenFunc
}

// Timeline is a running animation created by an Animator. It advances on its
// own once created; callers only steer it.
//
// A new timeline starts playing at time zero with playback rate 1.
type Timeline interface {
	Play()
	Pause()
	// Cancel stops the timeline for good and removes its effect from the
	// target. Safe to call more than once.
	Cancel()
	Playing() bool

	SetPlaybackRate(rate float64)
	PlaybackRate() float64

	// Progress returns the fractional position within the current iteration.
	// ok is false when the timeline no longer has an effect (cancelled).
	Progress() (p float64, ok bool)
	// CurrentTime is the local time in milliseconds.
	CurrentTime() float64
	SetCurrentTime(ms float64)
	// Duration of one iteration in milliseconds.
	Duration() float64
}

// Animator creates timelines that move target.X from one keyframe to the
// other.
type Animator interface {
	Animate(target *Node, from, to float64, timing Timing) Timeline
}

// ResizeObserver reports size changes of the nodes it observes through the
// callback it was created with.
type ResizeObserver interface {
	Observe(n *Node)
	Disconnect()
}

// Host supplies the capabilities an Engine drives: timelines and size-change
// notifications.
type Host interface {
	Animator
	NewResizeObserver(callback func()) ResizeObserver
}

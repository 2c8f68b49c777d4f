package marquee

import (
	"math"

	"github.com/tanema/gween/ease"
)

// State is a snapshot of an Engine's public state. It is a value; changing it
// has no effect on the engine.
type State struct {
	Speed         float64
	SpeedFactor   float64
	Direction     Direction
	IsPlaying     bool
	IsInitialized bool
	IsDestroyed   bool
}

// savedStyle is what the engine changed on the container and content when it
// took over their layout.
type savedStyle struct {
	applied  bool
	x        float64
	width    float64
	layout   LayoutMode
	contentX float64
}

// Engine scrolls a container node endlessly by tiling copies of its content
// and driving the container's X with a looping timeline from the Host.
//
// An Engine is uninitialized until Initialize succeeds and inert once Destroy
// has run. Every operation is a silent no-op when its preconditions do not
// hold. An Engine must own its container exclusively.
type Engine struct {
	host      Host
	container *Node
	cfg       Config
	state     State

	content  *Node
	viewport *Node
	clones   cloneSet
	timeline Timeline
	observer ResizeObserver

	contentWidth  float64
	viewportWidth float64
	restX         float64
	saved         savedStyle

	ready chan struct{}
}

// NewEngine creates an engine for container. A nil cfg means DefaultConfig.
// A negative SpeedFactor in cfg flips the configured direction.
func NewEngine(host Host, container *Node, cfg *Config) *Engine {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	dir := c.Direction
	if !dir.Valid() {
		dir = DirectionLeft
	}
	if c.SpeedFactor < 0 {
		dir = dir.Opposite()
	}
	return &Engine{
		host:      host,
		container: container,
		cfg:       c,
		state: State{
			Speed:       max(0, c.Speed),
			SpeedFactor: math.Abs(c.SpeedFactor),
			Direction:   dir,
		},
		ready: make(chan struct{}),
	}
}

// SetViewport sets the node whose width the strip must cover. Without one the
// container's parent is used. Only effective before Initialize.
func (e *Engine) SetViewport(n *Node) {
	if e.state.IsDestroyed || e.state.IsInitialized {
		return
	}
	e.viewport = n
}

// Ready is closed once Initialize has completed.
func (e *Engine) Ready() <-chan struct{} {
	return e.ready
}

// Clones returns the number of tiling copies currently in the strip.
func (e *Engine) Clones() int {
	return e.clones.len()
}

// Initialize tiles content (the container's first child when nil), starts the
// timeline and begins watching for size changes. Only the first successful
// call has any effect.
func (e *Engine) Initialize(content *Node) {
	if e.state.IsDestroyed || e.state.IsInitialized || e.container == nil {
		return
	}
	if content == nil && e.container.NumChildren() > 0 {
		content = e.container.ChildAt(0)
	}
	if content == nil || content.Parent != e.container {
		debugf("initialize %q: no content node", e.container.Name)
		return
	}
	e.content = content
	if e.viewport == nil {
		e.viewport = e.container.Parent
	}
	e.restX = e.container.X

	e.contentWidth = content.Width
	e.viewportWidth = e.measureViewport()

	if e.cfg.ApplyStyles {
		e.saved = savedStyle{
			applied:  true,
			x:        e.container.X,
			width:    e.container.Width,
			layout:   e.container.Layout,
			contentX: content.X,
		}
		e.container.Layout = LayoutStrip
	}
	if e.cfg.AutoClone {
		e.clones.create(content, ComputeCloneCount(e.contentWidth, e.viewportWidth))
	}
	e.layout()

	e.state.IsInitialized = true
	e.start(e.state.Direction, 0, false)

	e.observer = e.host.NewResizeObserver(e.reconcile)
	e.observer.Observe(content)
	if e.viewport != nil {
		e.observer.Observe(e.viewport)
	}

	if e.cfg.Autoplay {
		e.Play()
	}
	debugf("initialize %q: content=%.1f viewport=%.1f clones=%d",
		e.container.Name, e.contentWidth, e.viewportWidth, e.clones.len())
	close(e.ready)
}

// Play resumes the timeline.
func (e *Engine) Play() {
	if e.state.IsDestroyed || !e.state.IsInitialized {
		return
	}
	e.state.IsPlaying = true
	if e.timeline != nil {
		e.timeline.Play()
	}
}

// Pause holds the timeline at its current position.
func (e *Engine) Pause() {
	if e.state.IsDestroyed || !e.state.IsInitialized {
		return
	}
	e.state.IsPlaying = false
	if e.timeline != nil {
		e.timeline.Pause()
	}
}

// Toggle switches between Play and Pause.
func (e *Engine) Toggle() {
	if e.state.IsPlaying {
		e.Pause()
	} else {
		e.Play()
	}
}

// SetSpeed changes the base speed in pixels per second, clamped at zero. The
// strip keeps its visible position across the change.
func (e *Engine) SetSpeed(speed float64) {
	if e.state.IsDestroyed || e.timeline == nil || e.contentWidth <= 0 {
		return
	}
	if math.IsNaN(speed) || speed == e.state.Speed {
		return
	}
	p, ok := e.timeline.Progress()
	e.state.Speed = max(0, speed)
	e.start(e.state.Direction, p, ok)
}

// SetSpeedFactor sets the signed playback multiplier. Its magnitude becomes
// the playback rate and its sign the direction; zero counts as positive. A
// sign change reverses the strip without a visible jump.
func (e *Engine) SetSpeedFactor(factor float64) {
	if e.state.IsDestroyed || e.timeline == nil {
		return
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	if factor == e.state.SpeedFactor*float64(e.state.Direction) {
		return
	}
	sign := DirectionLeft
	if factor < 0 {
		sign = DirectionRight
	}
	e.applyFactor(math.Abs(factor), sign)
}

// SetDirection changes the direction of travel, keeping the speed factor.
func (e *Engine) SetDirection(d Direction) {
	if e.state.IsDestroyed || !d.Valid() || d == e.state.Direction {
		return
	}
	if e.timeline == nil {
		return
	}
	e.applyFactor(e.state.SpeedFactor, d)
}

// Reverse flips the direction of travel.
func (e *Engine) Reverse() {
	e.SetDirection(e.state.Direction.Opposite())
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	return e.state
}

// Destroy cancels the timeline, stops watching sizes, removes the clones and
// reverts the layout the engine applied. The engine is inert afterwards.
func (e *Engine) Destroy() {
	if e.state.IsDestroyed {
		return
	}
	e.state.IsDestroyed = true
	e.state.IsPlaying = false
	e.state.IsInitialized = false

	if e.timeline != nil {
		e.timeline.Cancel()
		e.timeline = nil
	}
	if e.observer != nil {
		e.observer.Disconnect()
		e.observer = nil
	}
	e.clones.remove()

	if e.saved.applied && e.container != nil {
		e.container.X = e.saved.x
		e.container.Width = e.saved.width
		e.container.Layout = e.saved.layout
		e.container.MarkDirty()
		if e.content != nil && !e.content.IsDisposed() {
			e.content.X = e.saved.contentX
			e.content.MarkDirty()
		}
		e.saved = savedStyle{}
	}
	e.content = nil
	e.viewport = nil
	if e.container != nil {
		debugf("destroy %q", e.container.Name)
	}
}

// applyFactor moves to the given magnitude and direction. Same-direction
// changes only touch the playback rate; a reversal rebuilds the timeline at
// the mirrored progress so the strip does not jump.
func (e *Engine) applyFactor(magnitude float64, sign Direction) {
	if sign == e.state.Direction {
		e.state.SpeedFactor = magnitude
		e.timeline.SetPlaybackRate(magnitude)
		return
	}
	p, ok := e.timeline.Progress()
	if !ok {
		return
	}
	e.state.Direction = sign
	e.state.SpeedFactor = magnitude
	e.start(sign, 1-p, true)
}

// start replaces the timeline with one looping over a single content width in
// direction dir. With hasProgress the new timeline resumes at that fraction.
func (e *Engine) start(dir Direction, progress float64, hasProgress bool) {
	if e.state.IsDestroyed || e.contentWidth <= 0 {
		return
	}

	if e.cfg.ReducedMotion {
		e.cancelTimeline()
		e.container.X = e.restX
		e.container.MarkDirty()
		return
	}

	duration := ComputeDuration(e.contentWidth, e.state.Speed)
	if !ValidDuration(duration) {
		debugf("start %q: duration %v, keeping current timeline", e.container.Name, duration)
		return
	}
	e.cancelTimeline()

	from, to := e.restX, e.restX-e.contentWidth
	if dir == DirectionRight {
		from, to = to, from
	}
	tl := e.host.Animate(e.container, from, to, Timing{
		Duration:   duration,
		Iterations: math.Inf(1),
		Easing:     ease.Linear,
	})
	tl.SetPlaybackRate(e.state.SpeedFactor)
	if !e.state.IsPlaying {
		tl.Pause()
	}
	if hasProgress {
		tl.SetCurrentTime(duration * progress)
	}
	e.timeline = tl
	debugf("start %q: dir=%s duration=%.0fms rate=%.2f progress=%.3f",
		e.container.Name, dir, duration, e.state.SpeedFactor, progress)
}

func (e *Engine) cancelTimeline() {
	if e.timeline != nil {
		e.timeline.Cancel()
		e.timeline = nil
	}
}

// reconcile re-tiles and restarts the strip after the content or the viewport
// changed width. Called by the resize observer.
func (e *Engine) reconcile() {
	if e.state.IsDestroyed || !e.state.IsInitialized || e.content == nil || e.timeline == nil {
		return
	}
	cw := e.content.Width
	vw := e.measureViewport()
	if cw == e.contentWidth && vw == e.viewportWidth {
		return
	}
	p, ok := e.timeline.Progress()
	if !ok {
		return
	}
	e.contentWidth, e.viewportWidth = cw, vw
	if e.cfg.AutoClone {
		e.clones.create(e.content, ComputeCloneCount(cw, vw))
	}
	e.layout()
	debugf("reconcile %q: content=%.1f viewport=%.1f clones=%d",
		e.container.Name, cw, vw, e.clones.len())
	e.start(e.state.Direction, p, true)
}

func (e *Engine) measureViewport() float64 {
	if e.viewport == nil {
		return 0
	}
	return e.viewport.Width
}

// layout tiles the container's children left to right and sizes the container
// to the tiled width.
func (e *Engine) layout() {
	if !e.cfg.ApplyStyles {
		return
	}
	x := 0.0
	for _, c := range e.container.Children() {
		c.X = x
		c.MarkDirty()
		x += c.Width
	}
	e.container.Width = x
}

package marquee

// Scene is the top-level object that owns the node tree, the animator and
// the size watcher. It is the Host engines created through it use.
type Scene struct {
	root     *Node
	animator *TweenAnimator
	watcher  *SizeWatcher
	script   *Script
	engines  []*Engine
	debug    bool

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:     NewContainer("root"),
		animator: NewTweenAnimator(),
		watcher:  NewSizeWatcher(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animate implements Animator with the scene's TweenAnimator.
func (s *Scene) Animate(target *Node, from, to float64, timing Timing) Timeline {
	return s.animator.Animate(target, from, to, timing)
}

// NewResizeObserver implements Host with the scene's SizeWatcher.
func (s *Scene) NewResizeObserver(callback func()) ResizeObserver {
	return s.watcher.NewObserver(callback)
}

// Animator returns the scene's animator.
func (s *Scene) Animator() *TweenAnimator {
	return s.animator
}

// NewMarquee creates an engine hosted by this scene. The scene keeps track of
// it so scripts can address it by container name.
func (s *Scene) NewMarquee(container *Node, cfg *Config) *Engine {
	e := NewEngine(s, container, cfg)
	s.engines = append(s.engines, e)
	return e
}

// Marquee returns the engine whose container is named name, or nil.
func (s *Scene) Marquee(name string) *Engine {
	for _, e := range s.engines {
		if e.container != nil && e.container.Name == name {
			return e
		}
	}
	return nil
}

// Marquees returns the engines created with NewMarquee. The returned slice
// MUST NOT be mutated.
func (s *Scene) Marquees() []*Engine {
	return s.engines
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetScript attaches a Script stepped once per Update.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and engine lifecycle events are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Update advances timelines by dt seconds, delivers size-change
// notifications, steps the script and finally runs the update func.
func (s *Scene) Update(dt float64) error {
	s.animator.Update(dt)
	updateWorldTransform(s.root, 0, 0, false)
	s.watcher.Check()
	if s.script != nil {
		s.script.step(s)
	}
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	updateWorldTransform(s.root, 0, 0, false)
	return nil
}

// Destroy destroys every engine created through the scene.
func (s *Scene) Destroy() {
	for _, e := range s.engines {
		e.Destroy()
	}
	s.engines = nil
}

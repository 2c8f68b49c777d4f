package marquee

// SizeWatcher is the default ResizeObserver source. It has no event source of
// its own: the host calls Check once per frame and every observer with a
// changed node gets exactly one callback for that frame.
type SizeWatcher struct {
	observers []*sizeObserver
}

// NewSizeWatcher returns a watcher with no observers.
func NewSizeWatcher() *SizeWatcher {
	return &SizeWatcher{}
}

// NewObserver returns an observer that reports through callback.
func (w *SizeWatcher) NewObserver(callback func()) ResizeObserver {
	o := &sizeObserver{watcher: w, callback: callback}
	w.observers = append(w.observers, o)
	return o
}

// Check compares every observed node with its last seen size and fires the
// callbacks of observers that saw a change.
func (w *SizeWatcher) Check() {
	// Callbacks may disconnect observers; iterate over a stable slice.
	for _, o := range w.observers {
		if o.disconnected {
			continue
		}
		if o.changed() && o.callback != nil {
			o.callback()
		}
	}
}

// Len returns the number of connected observers.
func (w *SizeWatcher) Len() int {
	return len(w.observers)
}

func (w *SizeWatcher) remove(o *sizeObserver) {
	kept := make([]*sizeObserver, 0, len(w.observers))
	for _, c := range w.observers {
		if c != o {
			kept = append(kept, c)
		}
	}
	w.observers = kept
}

type observedSize struct {
	node          *Node
	width, height float64
}

type sizeObserver struct {
	watcher      *SizeWatcher
	callback     func()
	targets      []observedSize
	disconnected bool
}

func (o *sizeObserver) Observe(n *Node) {
	if o.disconnected || n == nil {
		return
	}
	for _, t := range o.targets {
		if t.node == n {
			return
		}
	}
	o.targets = append(o.targets, observedSize{node: n, width: n.Width, height: n.Height})
}

func (o *sizeObserver) Disconnect() {
	if o.disconnected {
		return
	}
	o.disconnected = true
	o.targets = nil
	o.watcher.remove(o)
}

// changed refreshes the snapshots and reports whether any node resized.
// Disposed nodes are dropped silently.
func (o *sizeObserver) changed() bool {
	resized := false
	kept := o.targets[:0]
	for _, t := range o.targets {
		if t.node.IsDisposed() {
			continue
		}
		if t.node.Width != t.width || t.node.Height != t.height {
			t.width, t.height = t.node.Width, t.node.Height
			resized = true
		}
		kept = append(kept, t)
	}
	o.targets = kept
	return resized
}

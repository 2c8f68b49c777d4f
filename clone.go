package marquee

// cloneSet owns the copies of a content node that tile a marquee strip.
// Clones always sit directly after the original in its parent's child list.
type cloneSet struct {
	nodes []*Node
}

// create replaces the current clones with count fresh copies of original.
// Nothing happens if original has no parent to tile into.
func (cs *cloneSet) create(original *Node, count int) {
	cs.remove()
	parent := original.Parent
	if parent == nil || count <= 0 {
		return
	}
	at := parent.IndexOf(original) + 1
	cs.nodes = make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		c := original.Clone()
		c.Name = original.Name + "#clone"
		sanitizeClone(c)
		parent.AddChildAt(c, at+i)
		cs.nodes = append(cs.nodes, c)
	}
}

// remove disposes every clone. The original is left alone.
func (cs *cloneSet) remove() {
	for _, c := range cs.nodes {
		c.Dispose()
	}
	cs.nodes = nil
}

func (cs *cloneSet) len() int {
	return len(cs.nodes)
}

// sanitizeClone hides a copy from assistive technology, makes it
// non-interactive and strips every Key in its subtree so that no caller-assigned
// identifier appears twice in a scene.
func sanitizeClone(n *Node) {
	n.AccessibilityHidden = true
	n.Interactable = false
	n.Key = ""
	for _, child := range n.children {
		sanitizeClone(child)
	}
}

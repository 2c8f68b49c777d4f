package marquee

import "testing"

func newTiledContent() (strip, content *Node) {
	strip = NewContainer("strip")
	content = NewContainer("content")
	content.Key = "content"
	content.Interactable = true
	content.Width = 200
	badge := NewText("badge", "NEW", 21, 13)
	badge.Key = "badge"
	content.AddChild(badge)
	strip.AddChild(content)
	return strip, content
}

func TestCloneSetCreateAppendsAfterOriginal(t *testing.T) {
	strip, content := newTiledContent()
	tail := NewContainer("tail")
	strip.AddChild(tail)

	var cs cloneSet
	cs.create(content, 3)

	if cs.len() != 3 {
		t.Fatalf("len = %d, want 3", cs.len())
	}
	if strip.NumChildren() != 5 {
		t.Fatalf("strip has %d children, want 5", strip.NumChildren())
	}
	if strip.ChildAt(0) != content {
		t.Error("original must stay first")
	}
	for i, c := range cs.nodes {
		if strip.ChildAt(i+1) != c {
			t.Errorf("clone %d not at index %d", i, i+1)
		}
	}
	if strip.ChildAt(4) != tail {
		t.Error("clones must be inserted directly after the original")
	}
}

func TestCloneSetSanitizes(t *testing.T) {
	strip, content := newTiledContent()
	var cs cloneSet
	cs.create(content, 2)

	for _, c := range cs.nodes {
		if !c.AccessibilityHidden {
			t.Error("clone should be hidden from assistive technology")
		}
		if c.Interactable {
			t.Error("clone should not be interactable")
		}
		if c.Key != "" || c.ChildAt(0).Key != "" {
			t.Error("clone subtree should carry no keys")
		}
		if !c.ChildAt(0).AccessibilityHidden {
			t.Error("clone descendants should be hidden too")
		}
	}
	if strip.FindByKey("badge") != content.ChildAt(0) {
		t.Error("the only node keyed badge should be the original's")
	}
	if content.AccessibilityHidden || !content.Interactable || content.Key != "content" {
		t.Error("original must be untouched")
	}
}

func TestSanitizeCloneIdempotent(t *testing.T) {
	_, content := newTiledContent()
	c := content.Clone()
	sanitizeClone(c)
	sanitizeClone(c)
	if !c.AccessibilityHidden || c.Interactable || c.Key != "" {
		t.Error("second sanitize should leave the clone sanitized")
	}
}

func TestCloneSetRecreateIsDestructive(t *testing.T) {
	strip, content := newTiledContent()
	var cs cloneSet
	cs.create(content, 4)
	old := append([]*Node(nil), cs.nodes...)

	cs.create(content, 2)
	if strip.NumChildren() != 3 {
		t.Fatalf("strip has %d children, want 3", strip.NumChildren())
	}
	for _, c := range old {
		if !c.IsDisposed() {
			t.Error("old clones should be disposed")
		}
	}
}

func TestCloneSetRemove(t *testing.T) {
	strip, content := newTiledContent()
	var cs cloneSet
	cs.create(content, 3)
	cs.remove()
	if cs.len() != 0 {
		t.Errorf("len = %d, want 0", cs.len())
	}
	if strip.NumChildren() != 1 || strip.ChildAt(0) != content {
		t.Error("only the original should remain")
	}
	if content.IsDisposed() || content.NumChildren() != 1 {
		t.Error("original must be untouched")
	}
	cs.remove() // no-op
}

func TestCloneSetDetachedOriginal(t *testing.T) {
	content := NewContainer("loose")
	var cs cloneSet
	cs.create(content, 3)
	if cs.len() != 0 {
		t.Errorf("len = %d, want 0 for a parentless original", cs.len())
	}
}

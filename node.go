package marquee

// nodeIDCounter is a plain counter (no atomic, the scene graph is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. Containers, rectangles and text all share
// one flat struct.
type Node struct {
	// Identity. ID is allocated per node and never shared; Key is a
	// caller-assigned identifier that must be unique within a scene.
	ID   uint32
	Key  string
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local position and layout size.
	X, Y          float64
	Width, Height float64

	// Computed world position, refreshed by updateWorldTransform.
	worldX, worldY float64
	transformDirty bool

	// Appearance
	Color   Color
	Alpha   float64
	Visible bool
	Text    string

	// Clip restricts drawing of descendants to this node's bounds.
	Clip bool
	// Layout controls how children are positioned by whoever owns them.
	Layout LayoutMode

	// AccessibilityHidden hides the node from assistive technology.
	AccessibilityHidden bool
	Interactable        bool

	// Metadata
	UserData any

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewRect creates a solid rectangle node of the given size and color.
func NewRect(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewText creates a text node. The host measuring the text is responsible for
// Width and Height; w and h are the measured extents.
func NewText(name, content string, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: content, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("marquee: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("marquee: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("marquee: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("marquee: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("marquee: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("marquee: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IndexOf returns the position of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// FindByKey returns the first node in the subtree rooted at n (n included)
// whose Key equals key, or nil.
func (n *Node) FindByKey(key string) *Node {
	if key == "" {
		return nil
	}
	if n.Key == key {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByKey(key); found != nil {
			return found
		}
	}
	return nil
}

// --- Size ---

// SetSize sets the node's layout size. Size observers pick the change up on
// their next check.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// Bounds returns the node's rectangle in world coordinates as of the last
// transform update.
func (n *Node) Bounds() Rect {
	return Rect{X: n.worldX, Y: n.worldY, Width: n.Width, Height: n.Height}
}

// --- Copying ---

// Clone returns a deep copy of n and its subtree. The copy is detached, has
// fresh IDs throughout and shares UserData by reference.
func (n *Node) Clone() *Node {
	c := &Node{}
	*c = *n
	c.ID = nextNodeID()
	c.Parent = nil
	c.children = nil
	c.transformDirty = true
	for _, child := range n.children {
		c.AddChild(child.Clone())
	}
	return c
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

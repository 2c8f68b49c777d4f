package marquee

// updateWorldTransform recomputes world positions for n and its subtree.
// parentRecomputed forces recomputation of children whose parent moved.
func updateWorldTransform(n *Node, parentX, parentY float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldX = parentX + n.X
		n.worldY = parentY + n.Y
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldX, n.worldY, recompute)
	}
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetAlpha sets the node's alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldPosition returns the node's world-space origin as of the last update.
func (n *Node) WorldPosition() (x, y float64) {
	return n.worldX, n.worldY
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldX + lx, n.worldY + ly
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return wx - n.worldX, wy - n.worldY
}

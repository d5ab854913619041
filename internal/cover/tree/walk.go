package tree

// NodeView is a read-only snapshot of one tree node.
type NodeView[P any] struct {
	Level     Level
	Point     P
	Children  []P
	Ephemeral bool
	// Parent is the parent's point; HasParent is false for the root.
	Parent    P
	HasParent bool
}

// Walk visits every node depth-first, parents before children, until fn
// returns false.
func (t *Tree[P]) Walk(fn func(NodeView[P]) bool) {
	if t.root == noNode {
		return
	}
	t.walk(t.root, fn)
}

func (t *Tree[P]) walk(id nodeID, fn func(NodeView[P]) bool) bool {
	n := t.arena.at(id)
	view := NodeView[P]{Level: n.level, Point: n.point, Ephemeral: n.ephemeral}
	if n.parent != noNode {
		view.Parent = t.arena.at(n.parent).point
		view.HasParent = true
	}
	view.Children = make([]P, len(n.children))
	for i, child := range n.children {
		view.Children[i] = t.arena.at(child).point
	}
	if !fn(view) {
		return false
	}
	for _, child := range n.children {
		if !t.walk(child, fn) {
			return false
		}
	}
	return true
}

// Nodes returns the number of nodes in the tree, counting every level a
// point appears at.
func (t *Tree[P]) Nodes() int {
	return len(t.arena.nodes) - len(t.arena.free)
}

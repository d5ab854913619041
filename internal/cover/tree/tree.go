package tree

// Implemented from "Cover Trees for Nearest Neighbor", Beygelzimer et al.,
// with a fixed base of 2.

// Tree is a cover tree over an arbitrary metric space. It answers single
// nearest-neighbor queries and supports incremental insertion.
//
// A Tree is not safe for concurrent use; callers serialize access.
type Tree[P any] struct {
	arena arena[P]
	root  nodeID
	count int
}

// NewTree constructs an empty cover tree over the provided distance function.
func NewTree[P any](distance DistanceFunc[P]) *Tree[P] {
	return &Tree[P]{arena: arena[P]{distance: distance}, root: noNode}
}

// Len returns the number of distinct points in the tree.
func (t *Tree[P]) Len() int { return t.count }

// outcome is the result of a descent step.
type outcome int

const (
	notInserted outcome = iota
	inserted
	duplicate
	rejected
)

// Insert adds p to the tree. It returns false, leaving the tree unchanged,
// when p is at distance zero from a point already stored or when a distance
// to p is NaN or infinite.
func (t *Tree[P]) Insert(p P) bool {
	a := &t.arena
	if t.root == noNode {
		t.root = a.alloc(p, Unpinned, noNode)
		t.count = 1
		return true
	}
	d := a.distance(p, a.at(t.root).point)
	if d == 0 || !finite(d) {
		return false
	}
	minLevel := levelFor(d)
	rootLevel, pinned := a.at(t.root).level.Int()
	if !pinned {
		a.at(t.root).level = Pinned(minLevel)
		a.createChild(t.root, p)
		t.count++
		return true
	}
	for ; rootLevel < minLevel; rootLevel++ {
		t.root = a.createParent(t.root)
	}

	var ephemeral []nodeID
	result := t.insertInner(p, []nodeID{t.root}, &ephemeral)
	for i := len(ephemeral) - 1; i >= 0; i-- {
		a.cleanup(ephemeral[i])
	}
	if result != inserted {
		return false
	}
	t.count++
	return true
}

// insertInner looks for the lowest level at which some frontier node can
// parent p and attaches p there. Every frontier node is at the same level.
func (t *Tree[P]) insertInner(p P, frontier []nodeID, ephemeral *[]nodeID) outcome {
	a := &t.arena
	var parents []nodeID
	for _, q := range frontier {
		d, ok := a.validParent(q, p)
		if d == 0 {
			return duplicate
		}
		if !finite(d) {
			return rejected
		}
		if ok {
			parents = append(parents, q)
		}
	}
	if len(parents) == 0 {
		return notInserted
	}
	var next []nodeID
	for _, q := range parents {
		children, created := a.children(q, true)
		if created != noNode {
			*ephemeral = append(*ephemeral, created)
		}
		next = append(next, children...)
	}
	result := t.insertInner(p, next, ephemeral)
	if result != notInserted {
		return result
	}
	a.createChild(parents[0], p)
	return inserted
}

// Height returns the number of levels between the root and the deepest leaf,
// counting both.
func (t *Tree[P]) Height() int {
	if t.root == noNode {
		return 0
	}
	height := 0
	frontier := []nodeID{t.root}
	for len(frontier) > 0 {
		height++
		var next []nodeID
		for _, id := range frontier {
			next = append(next, t.arena.at(id).children...)
		}
		frontier = next
	}
	return height
}

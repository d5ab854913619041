package tree

import "slices"

type nodeID int32

const noNode nodeID = -1

// node represents a cover-tree node stored in the tree arena.
type node[P any] struct {
	point     P
	level     Level
	children  []nodeID
	parent    nodeID
	ephemeral bool
}

// arena owns every node of a tree. Nodes refer to each other by id, so a
// parent link never keeps anything alive.
type arena[P any] struct {
	nodes    []node[P]
	free     []nodeID
	distance DistanceFunc[P]
}

func (a *arena[P]) alloc(point P, level Level, parent nodeID) nodeID {
	n := node[P]{point: point, level: level, parent: parent}
	if k := len(a.free); k > 0 {
		id := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[id] = n
		return id
	}
	a.nodes = append(a.nodes, n)
	return nodeID(len(a.nodes) - 1)
}

func (a *arena[P]) release(id nodeID) {
	a.nodes[id] = node[P]{parent: noNode}
	a.free = append(a.free, id)
}

func (a *arena[P]) at(id nodeID) *node[P] {
	return &a.nodes[id]
}

func (a *arena[P]) childLevel(id nodeID) Level {
	level, ok := a.nodes[id].level.Int()
	if !ok {
		panic("tree: child requested under an unpinned node")
	}
	return Pinned(level - 1)
}

// createChild appends a child holding p one level down. The self-child is
// added first when id has no children yet; a lone ephemeral self-child
// becomes permanent once it gets a sibling.
func (a *arena[P]) createChild(id nodeID, p P) nodeID {
	level := a.childLevel(id)
	switch len(a.nodes[id].children) {
	case 0:
		self := a.alloc(a.nodes[id].point, level, id)
		a.nodes[id].children = append(a.nodes[id].children, self)
	case 1:
		a.nodes[a.nodes[id].children[0]].ephemeral = false
	}
	child := a.alloc(p, level, id)
	a.nodes[id].children = append(a.nodes[id].children, child)
	return child
}

// createParent returns a new node one level above id holding the same
// point, with id as its only child.
func (a *arena[P]) createParent(id nodeID) nodeID {
	level, _ := a.nodes[id].level.Int()
	parent := a.alloc(a.nodes[id].point, Pinned(level+1), noNode)
	a.nodes[parent].children = append(a.nodes[parent].children, id)
	a.nodes[id].parent = parent
	return parent
}

// validParent returns the distance from p to the node point and whether p
// lies within the node's covering radius, i.e. whether the node may hold p
// as a descendant.
func (a *arena[P]) validParent(id nodeID, p P) (float64, bool) {
	n := &a.nodes[id]
	d := a.distance(p, n.point)
	level, ok := n.level.Int()
	return d, ok && d <= radius(level)
}

// children returns the child ids of id. With createEphemeral set, a node
// without children first gets an ephemeral self-child, which is returned
// as created.
func (a *arena[P]) children(id nodeID, createEphemeral bool) (children []nodeID, created nodeID) {
	created = noNode
	if len(a.nodes[id].children) == 0 && createEphemeral {
		created = a.alloc(a.nodes[id].point, a.childLevel(id), id)
		a.nodes[created].ephemeral = true
		a.nodes[id].children = append(a.nodes[id].children, created)
	}
	return a.nodes[id].children, created
}

// cleanup settles an ephemeral node: without children it is detached from
// its parent and released, otherwise it becomes permanent.
func (a *arena[P]) cleanup(id nodeID) {
	n := &a.nodes[id]
	if !n.ephemeral {
		return
	}
	if len(n.children) > 0 {
		n.ephemeral = false
		return
	}
	if parent := n.parent; parent != noNode {
		siblings := a.nodes[parent].children
		if i := slices.Index(siblings, id); i >= 0 {
			a.nodes[parent].children = slices.Delete(siblings, i, i+1)
		}
	}
	a.release(id)
}

package tree

// Neighbor is the answer to a nearest-neighbor query.
type Neighbor[P any] struct {
	Point    P
	Distance float64
}

// Find returns the stored point nearest to p. It reports false only when the
// tree is empty. Find never modifies the tree.
func (t *Tree[P]) Find(p P) (Neighbor[P], bool) {
	if t.root == noNode {
		return Neighbor[P]{}, false
	}
	a := &t.arena
	root := a.at(t.root)
	best := Neighbor[P]{Point: root.point, Distance: a.distance(p, root.point)}

	type candidate struct {
		id       nodeID
		distance float64
	}
	frontier := []nodeID{t.root}
	for len(frontier) > 0 {
		var candidates []candidate
		for _, id := range frontier {
			children, _ := a.children(id, false)
			for _, child := range children {
				candidates = append(candidates, candidate{id: child, distance: a.distance(p, a.at(child).point)})
			}
		}
		if len(candidates) == 0 {
			break
		}
		minIdx := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].distance < candidates[minIdx].distance {
				minIdx = i
			}
		}
		minDist := candidates[minIdx].distance
		if minDist < best.Distance {
			best = Neighbor[P]{Point: a.at(candidates[minIdx].id).point, Distance: minDist}
		}
		var next []nodeID
		for _, c := range candidates {
			level, _ := a.at(c.id).level.Int()
			// Descendants of c lie within 2^(level+1) of it.
			if c.distance-radius(level+1) < minDist {
				next = append(next, c.id)
			}
		}
		frontier = next
	}
	return best, true
}

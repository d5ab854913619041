package bruteforce

import "github.com/viant/covertree/internal/cover/tree"

// Scan answers nearest-neighbor queries by comparing against every point.
type Scan[P any] struct {
	points   []P
	distance tree.DistanceFunc[P]
}

// NewScan constructs an empty Scan over the provided distance function.
func NewScan[P any](distance tree.DistanceFunc[P]) *Scan[P] {
	return &Scan[P]{distance: distance}
}

// Add appends p.
func (s *Scan[P]) Add(p P) {
	s.points = append(s.points, p)
}

// Len returns the number of points added.
func (s *Scan[P]) Len() int { return len(s.points) }

// Find returns the first point at minimum distance from p. It reports false
// when no point has been added.
func (s *Scan[P]) Find(p P) (tree.Neighbor[P], bool) {
	if len(s.points) == 0 {
		return tree.Neighbor[P]{}, false
	}
	best := tree.Neighbor[P]{Point: s.points[0], Distance: s.distance(p, s.points[0])}
	for _, q := range s.points[1:] {
		if d := s.distance(p, q); d < best.Distance {
			best = tree.Neighbor[P]{Point: q, Distance: d}
		}
	}
	return best, true
}

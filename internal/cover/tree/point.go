package tree

import "github.com/viant/vec/search"

// Point represents a vector in the cover tree.
type Point struct {
	index     int32
	Magnitude float32
	Vector    []float32
}

// HasValue reports whether the point has an associated value.
func (p *Point) HasValue() bool {
	return p != nil && p.index >= 0
}

// Index returns the position of the value associated with the point, or -1.
func (p *Point) Index() int32 {
	if p == nil {
		return -1
	}
	return p.index
}

// NewPoint constructs a point for the given vector without an associated value.
func NewPoint(vector ...float32) *Point {
	return &Point{index: -1, Vector: vector, Magnitude: search.Float32s(vector).Magnitude()}
}

// NewIndexedPoint constructs a point whose value lives at index in a caller
// owned collection.
func NewIndexedPoint(index int32, vector []float32) *Point {
	return &Point{index: index, Vector: vector, Magnitude: search.Float32s(vector).Magnitude()}
}

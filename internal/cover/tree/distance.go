package tree

import (
	"strings"

	"github.com/viant/vec/search"
)

// DistanceFunc computes the distance between two points. It must be
// non-negative and symmetric; the tree never checks either property.
type DistanceFunc[P any] func(a, b P) float64

// DistanceFunction enumerates supported distance metrics for vector points.
type DistanceFunction string

const (
	DistanceFunctionCosine    DistanceFunction = "cosine"
	DistanceFunctionEuclidean DistanceFunction = "euclidean"
)

// ParseDistanceFunction resolves a metric name; it accepts cos, cosine, l2
// and euclidean in any case.
func ParseDistanceFunction(name string) (DistanceFunction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cos", "cosine":
		return DistanceFunctionCosine, true
	case "l2", "euclidean":
		return DistanceFunctionEuclidean, true
	}
	return "", false
}

// Function resolves the callable distance implementation.
func (d DistanceFunction) Function() DistanceFunc[*Point] {
	switch d {
	case DistanceFunctionCosine:
		return CosineDistance
	case DistanceFunctionEuclidean:
		return EuclideanDistance
	default:
		return nil
	}
}

// CosineDistance returns the cosine distance (1 - cosine similarity).
func CosineDistance(p1, p2 *Point) float64 {
	d := float64(search.Float32s(p1.Vector).CosineDistance(p2.Vector))
	if d < 0 {
		return 0
	}
	return d
}

// EuclideanDistance returns the Euclidean distance between two points.
func EuclideanDistance(p1, p2 *Point) float64 {
	return float64(search.Float32s(p1.Vector).EuclideanDistance(p2.Vector))
}

package tree

import (
	"math"
	"testing"
)

func TestParseDistanceFunction(t *testing.T) {
	testCases := []struct {
		name   string
		expect DistanceFunction
		ok     bool
	}{
		{name: "cos", expect: DistanceFunctionCosine, ok: true},
		{name: " Cosine ", expect: DistanceFunctionCosine, ok: true},
		{name: "L2", expect: DistanceFunctionEuclidean, ok: true},
		{name: "euclidean", expect: DistanceFunctionEuclidean, ok: true},
		{name: "manhattan"},
		{name: ""},
	}
	for _, tc := range testCases {
		got, ok := ParseDistanceFunction(tc.name)
		if got != tc.expect || ok != tc.ok {
			t.Errorf("ParseDistanceFunction(%q) = %q, %v; want %q, %v", tc.name, got, ok, tc.expect, tc.ok)
		}
	}
	if DistanceFunction("manhattan").Function() != nil {
		t.Errorf("unknown metric should have no function")
	}
}

func TestDistanceFunctions(t *testing.T) {
	a, b := NewPoint(0, 0), NewPoint(3, 4)
	if d := EuclideanDistance(a, b); math.Abs(d-5) > 1e-6 {
		t.Errorf("EuclideanDistance = %v, want 5", d)
	}
	x, y := NewPoint(1, 0), NewPoint(0, 2)
	if d := CosineDistance(x, y); math.Abs(d-1) > 1e-6 {
		t.Errorf("CosineDistance orthogonal = %v, want 1", d)
	}
	if d := CosineDistance(x, NewPoint(5, 0)); d > 1e-6 {
		t.Errorf("CosineDistance parallel = %v, want 0", d)
	}
	if p := NewPoint(1); p.HasValue() || p.Index() != -1 {
		t.Errorf("NewPoint should carry no value")
	}
	if p := NewIndexedPoint(3, []float32{1}); !p.HasValue() || p.Index() != 3 {
		t.Errorf("NewIndexedPoint index = %d", p.Index())
	}
}

package bruteforce

import (
	"math"
	"testing"
)

func absDistance(a, b float64) float64 { return math.Abs(a - b) }

func TestScan_Find(t *testing.T) {
	s := NewScan(absDistance)
	if _, ok := s.Find(1); ok {
		t.Fatalf("Find on empty scan reported a neighbor")
	}
	for _, p := range []float64{5, 2, 0, 6, 0.5, 0.9} {
		s.Add(p)
	}
	if s.Len() != 6 {
		t.Fatalf("Len = %d, want 6", s.Len())
	}
	testCases := []struct {
		query float64
		want  float64
	}{
		{query: 2.2, want: 2},
		{query: 0.8, want: 0.9},
		{query: 100, want: 6},
		{query: -3, want: 0},
	}
	for _, tc := range testCases {
		got, ok := s.Find(tc.query)
		if !ok {
			t.Fatalf("Find(%v) reported no neighbor", tc.query)
		}
		if got.Point != tc.want {
			t.Errorf("Find(%v) = %v, want %v", tc.query, got.Point, tc.want)
		}
		if got.Distance != absDistance(tc.query, tc.want) {
			t.Errorf("Find(%v) distance = %v, want %v", tc.query, got.Distance, absDistance(tc.query, tc.want))
		}
	}
}

func TestScan_FindKeepsFirstOnTie(t *testing.T) {
	s := NewScan(absDistance)
	s.Add(1)
	s.Add(3)
	got, _ := s.Find(2)
	if got.Point != 1 {
		t.Fatalf("Find(2) = %v, want first tied point 1", got.Point)
	}
}

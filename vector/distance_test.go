package vector

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	testCases := []struct {
		description string
		a, b        []float32
		want        float64
		wantErr     bool
	}{
		{description: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{description: "identical", a: []float32{1, 0}, b: []float32{1, 0}, want: 1},
		{description: "opposite", a: []float32{1, 1}, b: []float32{-2, -2}, want: -1},
		{description: "dimension mismatch", a: []float32{1}, b: []float32{1, 0}, wantErr: true},
		{description: "empty", wantErr: true},
		{description: "zero magnitude", a: []float32{0, 0}, b: []float32{1, 0}, wantErr: true},
	}
	for _, tc := range testCases {
		sim, err := CosineSimilarity(tc.a, tc.b)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tc.description, sim)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.description, err)
			continue
		}
		if math.Abs(sim-tc.want) > 1e-6 {
			t.Errorf("%s: CosineSimilarity = %v, want %v", tc.description, sim, tc.want)
		}
	}
}

func TestL2Distance(t *testing.T) {
	d, err := L2Distance([]float32{0, 0}, []float32{3, 4})
	if err != nil {
		t.Fatalf("L2Distance failed: %v", err)
	}
	if math.Abs(d-5) > 1e-6 {
		t.Fatalf("L2Distance(0,0)-(3,4) = %v, want 5", d)
	}
	if _, err := L2Distance([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}

package bruteforce

import (
	"errors"
	"testing"

	"github.com/viant/covertree/index"
	"github.com/viant/covertree/internal/cover/tree"
)

func TestIndex_Nearest(t *testing.T) {
	idx := New()
	if _, err := idx.Nearest([]float32{1, 0}); !errors.Is(err, index.ErrEmpty) {
		t.Fatalf("Nearest on empty index: err = %v, want ErrEmpty", err)
	}
	ids := []string{"a", "b", "c"}
	vecs := [][]float32{{0, 0}, {3, 4}, {10, 0}}
	if err := idx.Build(ids, vecs); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m, err := idx.Nearest([]float32{3, 3})
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if m.ID != "b" || m.Distance != 1 {
		t.Fatalf("Nearest = %+v, want {b 1}", m)
	}
	if err := idx.Add("d", []float32{3, 3}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if m, _ = idx.Nearest([]float32{3, 3}); m.ID != "d" || m.Distance != 0 {
		t.Fatalf("Nearest after Add = %+v, want {d 0}", m)
	}
	if idx.Len() != 4 {
		t.Fatalf("Len = %d, want 4", idx.Len())
	}
}

func TestIndex_Errors(t *testing.T) {
	idx := New(WithDistance(tree.DistanceFunctionCosine))
	if idx.Distance() != tree.DistanceFunctionCosine {
		t.Fatalf("Distance = %v, want cosine", idx.Distance())
	}
	if err := idx.Build([]string{"a"}, nil); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if err := idx.Build([]string{"a", "b"}, [][]float32{{1, 0}, {1, 0, 0}}); !errors.Is(err, index.ErrDimensionMismatch) {
		t.Fatalf("Build with mixed dims: err = %v, want ErrDimensionMismatch", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("failed Build left %d vectors", idx.Len())
	}
	if err := idx.Add("a", nil); err == nil {
		t.Fatalf("expected error for empty vector")
	}
	_ = idx.Add("a", []float32{1, 0})
	if _, err := idx.Nearest([]float32{1}); !errors.Is(err, index.ErrDimensionMismatch) {
		t.Fatalf("Nearest with wrong dim: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestIndex_MarshalBinary(t *testing.T) {
	src := New()
	if err := src.Build([]string{"x", "yy"}, [][]float32{{1, 2}, {-3, 0.5}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	data, err := src.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	dst := New()
	if err := dst.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	m, err := dst.Nearest([]float32{-3, 0.5})
	if err != nil || m.ID != "yy" {
		t.Fatalf("Nearest after restore = %+v, %v; want yy", m, err)
	}

	for _, n := range []int{0, 7, len(data) - 1} {
		if err := New().UnmarshalBinary(data[:n]); err == nil {
			t.Errorf("UnmarshalBinary(data[:%d]) succeeded, want error", n)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	ids, vecs, err := Decode(Encode(nil, nil))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(ids) != 0 || len(vecs) != 0 {
		t.Fatalf("Decode(empty) = %v, %v", ids, vecs)
	}
}

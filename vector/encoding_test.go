package vector

import "testing"

func TestEncodeDecodeEmbedding(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}
	b, err := EncodeEmbedding(orig)
	if err != nil {
		t.Fatalf("EncodeEmbedding failed: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("blob length = %d, want 16", len(b))
	}
	decoded, err := DecodeEmbedding(b)
	if err != nil {
		t.Fatalf("DecodeEmbedding failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if decoded[i] != orig[i] {
			t.Fatalf("decoded[%d] = %v, want %v", i, decoded[i], orig[i])
		}
	}
}

func TestDecodeEmbedding_Edges(t *testing.T) {
	if b, _ := EncodeEmbedding(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}
	if vec, err := DecodeEmbedding(nil); err != nil || len(vec) != 0 {
		t.Fatalf("DecodeEmbedding(nil) = %v, %v", vec, err)
	}
	if _, err := DecodeEmbedding([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for blob length 3")
	}
}

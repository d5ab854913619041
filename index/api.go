package index

import "errors"

var (
	// ErrEmpty is returned by Nearest when the index holds no vectors.
	ErrEmpty = errors.New("index: empty")

	// ErrDimensionMismatch is returned when a vector does not match the index dimension.
	ErrDimensionMismatch = errors.New("index: dimension mismatch")

	// ErrInvalidVector is returned for vectors the metric cannot measure:
	// NaN or infinite components, or a zero vector under cosine distance.
	ErrInvalidVector = errors.New("index: invalid vector")
)

// Match is the answer to a nearest-neighbor query.
type Match struct {
	// ID identifies the nearest vector.
	ID string

	// Distance between the query and the nearest vector. Lower is closer.
	Distance float64
}

// Index defines a vector nearest-neighbor index with basic lifecycle methods.
// It enables building from (id, embedding) pairs, incremental additions,
// single nearest-neighbor queries, and binary serialization for persistence.
type Index interface {
	// Build replaces the index content with the given ids and vectors.
	// ids and vectors must have the same length; vectors must share a dimension.
	Build(ids []string, vectors [][]float32) error

	// Add appends a single vector.
	Add(id string, vector []float32) error

	// Nearest returns the vector closest to query, or ErrEmpty.
	Nearest(query []float32) (Match, error)

	// Len returns the number of ids held by the index.
	Len() int

	// MarshalBinary serializes the index into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}

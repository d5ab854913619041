package cover

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/viant/covertree/index"
	"github.com/viant/covertree/index/bruteforce"
	"github.com/viant/covertree/internal/cover/tree"
)

// DistanceFunction names a supported metric.
type DistanceFunction = tree.DistanceFunction

const (
	DistanceFunctionCosine    = tree.DistanceFunctionCosine
	DistanceFunctionEuclidean = tree.DistanceFunctionEuclidean
)

var blobMagic = []byte("COV1")

// Index implements a nearest-neighbor vector index on a cover tree.
// It is safe for concurrent use.
type Index struct {
	mu     sync.RWMutex
	ids    []string
	vecs   [][]float32
	dim    int
	metric DistanceFunction
	tree   *tree.Tree[*tree.Point]
}

// Option configures an Index.
type Option func(*Index)

// WithDistance selects the metric; unknown metrics are ignored. Cosine
// distance does not satisfy the triangle inequality, so results under it
// are approximate.
func WithDistance(d DistanceFunction) Option {
	return func(i *Index) {
		if d.Function() != nil {
			i.metric = d
		}
	}
}

// New constructs an empty index using Euclidean distance unless configured otherwise.
func New(opts ...Option) *Index {
	i := &Index{metric: DistanceFunctionEuclidean}
	for _, opt := range opts {
		opt(i)
	}
	i.reset()
	return i
}

// Distance returns the configured metric.
func (i *Index) Distance() DistanceFunction { return i.metric }

func (i *Index) reset() {
	if i.metric.Function() == nil {
		i.metric = DistanceFunctionEuclidean
	}
	i.ids, i.vecs, i.dim = nil, nil, 0
	i.tree = tree.NewTree(i.metric.Function())
}

// Build replaces the index content, inserting vectors in the given order.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("cover: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.reset()
	for j := range ids {
		if err := i.add(ids[j], vectors[j]); err != nil {
			i.reset()
			return err
		}
	}
	return nil
}

// Add inserts a single vector. A vector equal to one already stored is
// kept for serialization, but queries answer with the id that was added first.
func (i *Index) Add(id string, vector []float32) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.add(id, vector)
}

func (i *Index) add(id string, vector []float32) error {
	if len(vector) == 0 {
		return fmt.Errorf("cover: empty vector for id %q", id)
	}
	if i.tree == nil {
		i.reset()
	}
	if len(i.vecs) == 0 {
		i.dim = len(vector)
	} else if len(vector) != i.dim {
		return fmt.Errorf("cover: vector %q has dim %d, want %d: %w", id, len(vector), i.dim, index.ErrDimensionMismatch)
	}
	if err := Validate(i.metric, vector); err != nil {
		return fmt.Errorf("cover: vector %q: %w", id, err)
	}
	i.tree.Insert(tree.NewIndexedPoint(int32(len(i.ids)), vector))
	i.ids = append(i.ids, id)
	i.vecs = append(i.vecs, vector)
	return nil
}

// Nearest returns the vector closest to query.
func (i *Index) Nearest(query []float32) (index.Match, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if len(i.ids) == 0 {
		return index.Match{}, index.ErrEmpty
	}
	if len(query) != i.dim {
		return index.Match{}, fmt.Errorf("cover: query dim %d != index dim %d: %w", len(query), i.dim, index.ErrDimensionMismatch)
	}
	if err := Validate(i.metric, query); err != nil {
		return index.Match{}, fmt.Errorf("cover: query: %w", err)
	}
	n, ok := i.tree.Find(tree.NewPoint(query...))
	if !ok || !n.Point.HasValue() {
		return index.Match{}, index.ErrEmpty
	}
	return index.Match{ID: i.ids[n.Point.Index()], Distance: n.Distance}, nil
}

// Validate reports whether metric can measure vector: every component must
// be finite, and cosine distance needs a non-zero vector.
func Validate(metric DistanceFunction, vector []float32) error {
	var sumSq float64
	for j, v := range vector {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("component %d is %v: %w", j, v, index.ErrInvalidVector)
		}
		sumSq += float64(v) * float64(v)
	}
	if metric == DistanceFunctionCosine && sumSq == 0 {
		return fmt.Errorf("zero vector under cosine distance: %w", index.ErrInvalidVector)
	}
	return nil
}

// Len returns the number of ids held by the index.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.ids)
}

// Stats describes the shape of the underlying tree.
type Stats struct {
	IDs    int
	Points int
	Nodes  int
	Height int
}

// Stats returns the current tree shape.
func (i *Index) Stats() Stats {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return Stats{IDs: len(i.ids), Points: i.tree.Len(), Nodes: i.tree.Nodes(), Height: i.tree.Height()}
}

// MarshalBinary stores the COV1 magic followed by the bruteforce encoding
// of every id and vector in insertion order.
func (i *Index) MarshalBinary() ([]byte, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return append(bytes.Clone(blobMagic), bruteforce.Encode(i.ids, i.vecs)...), nil
}

// UnmarshalBinary rebuilds the index by reinserting the stored vectors in
// their original order, which reproduces the same tree.
func (i *Index) UnmarshalBinary(data []byte) error {
	if !IsCoverBlob(data) {
		return errors.New("cover: invalid data")
	}
	ids, vecs, err := bruteforce.Decode(data[len(blobMagic):])
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}

// IsCoverBlob reports whether data was produced by Index.MarshalBinary.
func IsCoverBlob(data []byte) bool {
	return bytes.HasPrefix(data, blobMagic)
}

var _ index.Index = (*Index)(nil)

package bruteforce

import (
	"fmt"
	"sync"

	"github.com/viant/covertree/index"
	"github.com/viant/covertree/internal/cover/tree"
)

// Index is a brute-force vector index. It scans every vector on each query.
type Index struct {
	mu       sync.RWMutex
	ids      []string
	vecs     [][]float32
	dim      int
	scan     *Scan[*tree.Point]
	metric   tree.DistanceFunction
	distance tree.DistanceFunc[*tree.Point]
}

// Option configures an Index.
type Option func(*Index)

// WithDistance selects the distance metric; unknown metrics are ignored.
func WithDistance(d tree.DistanceFunction) Option {
	return func(i *Index) {
		if fn := d.Function(); fn != nil {
			i.metric = d
			i.distance = fn
		}
	}
}

// New constructs an empty index using Euclidean distance unless configured otherwise.
func New(opts ...Option) *Index {
	i := &Index{metric: tree.DistanceFunctionEuclidean, distance: tree.EuclideanDistance}
	for _, opt := range opts {
		opt(i)
	}
	i.scan = NewScan(i.distance)
	return i
}

// Distance returns the configured metric.
func (i *Index) Distance() tree.DistanceFunction { return i.metric }

// Build loads ids and vectors, replacing any previous content.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
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

// Add appends a single vector.
func (i *Index) Add(id string, vector []float32) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.add(id, vector)
}

func (i *Index) reset() {
	i.ids, i.vecs, i.dim = nil, nil, 0
	if i.distance == nil {
		i.metric, i.distance = tree.DistanceFunctionEuclidean, tree.EuclideanDistance
	}
	i.scan = NewScan(i.distance)
}

func (i *Index) add(id string, vector []float32) error {
	if len(vector) == 0 {
		return fmt.Errorf("bruteforce: empty vector for id %q", id)
	}
	if i.scan == nil {
		i.reset()
	}
	if len(i.vecs) == 0 {
		i.dim = len(vector)
	} else if len(vector) != i.dim {
		return fmt.Errorf("bruteforce: vector %q has dim %d, want %d: %w", id, len(vector), i.dim, index.ErrDimensionMismatch)
	}
	i.scan.Add(tree.NewIndexedPoint(int32(len(i.ids)), vector))
	i.ids = append(i.ids, id)
	i.vecs = append(i.vecs, vector)
	return nil
}

// Nearest returns the closest vector to query.
func (i *Index) Nearest(query []float32) (index.Match, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if len(i.ids) == 0 {
		return index.Match{}, index.ErrEmpty
	}
	if len(query) != i.dim {
		return index.Match{}, fmt.Errorf("bruteforce: query dim %d != index dim %d: %w", len(query), i.dim, index.ErrDimensionMismatch)
	}
	n, _ := i.scan.Find(tree.NewPoint(query...))
	return index.Match{ID: i.ids[n.Point.Index()], Distance: n.Distance}, nil
}

// Len returns the number of vectors.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.ids)
}

// MarshalBinary encodes the index using Encode.
func (i *Index) MarshalBinary() ([]byte, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return Encode(i.ids, i.vecs), nil
}

// UnmarshalBinary restores the index from bytes.
func (i *Index) UnmarshalBinary(data []byte) error {
	ids, vecs, err := Decode(data)
	if err != nil {
		return err
	}
	return i.Build(ids, vecs)
}

var _ index.Index = (*Index)(nil)

package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/viant/covertree/internal/cover/tree"
	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterVectorFunctions registers vec_cosine, vec_l2 and vec_distance with
// the driver so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
//
//	vec_cosine(a, b)          cosine similarity
//	vec_l2(a, b)              Euclidean distance
//	vec_distance(a, b, name)  distance under a named metric (cos, cosine, l2, euclidean)
//
// Registration happens once per process; later calls return the first result.
func RegisterVectorFunctions(_ *sql.DB) error {
	registerOnce.Do(func() {
		registerErr = registerVectorFunctions()
	})
	return registerErr
}

func registerVectorFunctions() error {
	functions := []struct {
		name  string
		nArgs int32
		impl  func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
	}{
		{name: "vec_cosine", nArgs: 2, impl: vecCosineImpl},
		{name: "vec_l2", nArgs: 2, impl: vecL2Impl},
		{name: "vec_distance", nArgs: 3, impl: vecDistanceImpl},
	}
	for _, fn := range functions {
		if err := sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArgs, fn.impl); err != nil {
			return fmt.Errorf("engine: register %s: %w", fn.name, err)
		}
	}
	return nil
}

func asEmbedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeEmbedding(v)
	default:
		return nil, fmt.Errorf("vec: unsupported argument type %T for embedding; want BLOB", arg)
	}
}

// asPoints decodes the first two arguments; nil points mean a NULL result.
func asPoints(name string, args []driver.Value, want int) (*tree.Point, *tree.Point, error) {
	if len(args) != want {
		return nil, nil, fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(args))
	}
	a, err := asEmbedding(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asEmbedding(args[1])
	if err != nil {
		return nil, nil, err
	}
	if a == nil || b == nil {
		return nil, nil, nil
	}
	if len(a) != len(b) {
		return nil, nil, fmt.Errorf("%s: dim mismatch %d vs %d", name, len(a), len(b))
	}
	return tree.NewPoint(a...), tree.NewPoint(b...), nil
}

func vecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := asPoints("vec_cosine", args, 2)
	if err != nil || a == nil {
		return nil, err
	}
	if a.Magnitude == 0 || b.Magnitude == 0 {
		return nil, fmt.Errorf("vec_cosine: zero-magnitude vector")
	}
	return 1 - tree.CosineDistance(a, b), nil
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := asPoints("vec_l2", args, 2)
	if err != nil || a == nil {
		return nil, err
	}
	return tree.EuclideanDistance(a, b), nil
}

func vecDistanceImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := asPoints("vec_distance", args, 3)
	if err != nil || a == nil {
		return nil, err
	}
	name, ok := args[2].(string)
	if !ok {
		return nil, fmt.Errorf("vec_distance: metric must be TEXT, got %T", args[2])
	}
	metric, ok := tree.ParseDistanceFunction(name)
	if !ok {
		return nil, fmt.Errorf("vec_distance: unsupported metric %q", name)
	}
	if metric == tree.DistanceFunctionCosine && (a.Magnitude == 0 || b.Magnitude == 0) {
		return nil, fmt.Errorf("vec_distance: cosine with zero-magnitude vector")
	}
	return metric.Function()(a, b), nil
}

// Local copy of the embedding codec; vector imports engine in its tests.
func decodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vec: invalid embedding blob length %d", len(b))
	}
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

package tree

import (
	"math"
	"strconv"
)

// Level is a node level: the exponent of its covering radius 2^level.
// The zero value is Unpinned, which only the root of a one-point tree holds.
type Level struct {
	value  int
	pinned bool
}

// Unpinned is the level of a root that has not yet seen a second point.
var Unpinned = Level{}

// Pinned returns a concrete level.
func Pinned(level int) Level {
	return Level{value: level, pinned: true}
}

// Int returns the level value and whether it is pinned.
func (l Level) Int() (int, bool) {
	return l.value, l.pinned
}

// IsPinned reports whether the level holds a concrete value.
func (l Level) IsPinned() bool { return l.pinned }

func (l Level) String() string {
	if !l.pinned {
		return "unpinned"
	}
	return strconv.Itoa(l.value)
}

// radius returns 2^level.
func radius(level int) float64 {
	return math.Ldexp(1, level)
}

// levelFor returns ceil(log2(distance)), the lowest level whose covering
// radius reaches distance. distance must be positive and finite.
func levelFor(distance float64) int {
	return int(math.Ceil(math.Log2(distance)))
}

func finite(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}

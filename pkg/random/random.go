// Package random isolates the simulation's randomness behind a small
// seedable interface so identical seeds reproduce identical runs.
package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	Float64() float64 // uniform in [0, 1)
	Intn(n int) int   // uniform in [0, n)
}

// New returns a source seeded with seed. A zero seed picks one from the
// wall clock; use Seed to learn which.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(Seed(seed)))
}

// Seed resolves a configured seed, replacing zero with the current time.
func Seed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Sequence replays a fixed list of values in [0, 1), wrapping around.
// Intn scales the next value, so Sequence{0.5}.Intn(10) is 5.
type Sequence struct {
	Values []float64
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

// Float64 returns the next value.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Intn returns the next value scaled to [0, n).
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

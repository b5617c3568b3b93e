package tunnel

import "math/rand"

// RandomStream is the source of randomness for ring and pickup generation.
// Each world owns its own stream so two worlds never share draws.
type RandomStream interface {
	Float64() float64 // uniform in [0, 1)
	Bool() bool
}

// SeededStream is a RandomStream backed by math/rand.
type SeededStream struct {
	rng *rand.Rand
}

// NewRandomStream creates a deterministic stream for the given seed.
func NewRandomStream(seed int64) *SeededStream {
	return &SeededStream{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (s *SeededStream) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns true or false with equal probability.
func (s *SeededStream) Bool() bool {
	return s.rng.Intn(2) == 1
}

var _ RandomStream = (*SeededStream)(nil)

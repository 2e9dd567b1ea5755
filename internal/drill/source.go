package drill

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness a Generator draws from. Tests inject scripted
// sources to pin down the rejection-sampling paths.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a PCG-backed Source. A zero seed is replaced with the
// current time so every run plays differently.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

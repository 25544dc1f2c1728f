package core

import (
	"math/rand"
	"time"
)

// Source is the uniform generator the engine pulls every random draw from.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
// A zero seed means "seed from the current time".
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Roll returns an integer in 1..spread, mirroring the classic RND-based die.
func Roll(src Source, spread int) int {
	return int(src.Float64()*float64(spread)) + 1
}

// Pick returns an integer in 0..n-1.
func Pick(src Source, n int) int {
	return int(src.Float64() * float64(n))
}

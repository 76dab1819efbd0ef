package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the single source of randomness used for dice, discards, theft
// and board shuffling. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n > 0.
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// rollDice rolls two six-sided dice and returns their sum.
func rollDice(rng Rand) int {
	return rng.Intn(6) + 1 + rng.Intn(6) + 1
}

// shuffle permutes s in place (Fisher-Yates).
func shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

package names

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Source is the randomness a Generator draws from. *rand.Rand from
// math/rand/v2 satisfies it. Implementations need not be safe for
// concurrent use.
type Source interface {
	// IntN returns a uniform value in [0, n). n > 0.
	IntN(n int) int
	// Int64N returns a uniform value in [0, n). n > 0.
	Int64N(n int64) int64
}

// NewSource returns a ChaCha8 source seeded from OS entropy.
func NewSource() Source {
	var seed [32]byte
	// crypto/rand.Read does not return errors since Go 1.24.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededSource returns a deterministic source: the same seed always
// yields the same sequence of names for the same configuration.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick(words []string, rng Source) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[rng.IntN(len(words))], true
}

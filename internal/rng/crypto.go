package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws uniform values from crypto/rand. It is the default source
// behind live shuffles; tests swap in a seeded *math/rand.Rand for
// reproducible decks.
type Crypto struct{}

// Intn returns a uniform random number in [0, n)
func (c Crypto) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(v.Int64())
}

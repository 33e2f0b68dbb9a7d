package rng

// Generator provides a source of randomness for shuffling decks.
// *math/rand.Rand satisfies this interface, which lets tests force
// a known card order with a fixed seed.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Package handeval ranks 7-card poker hands.
//
// The engine consumes the Evaluator interface as a black box: any
// implementation that returns a comparable rank (lower = stronger) and a
// display description will do. The Analyzer in this package is the default.
package handeval

import (
	"fmt"

	"holdem-engine/pkg/deck"
)

// Evaluator maps exactly 7 cards to a comparable rank and a human-readable
// description of the best 5-card hand. Lower rank values are stronger.
// Calling an Evaluator with a card count other than 7 is a programming
// error, not a game-rule outcome, and implementations panic.
type Evaluator interface {
	Evaluate(cards []deck.Card) (rank int, description string)
}

// Category is a class of poker hand, i.e., royal flush
type Category int

// Constants for category, ordered weakest to strongest
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

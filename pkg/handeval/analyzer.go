package handeval

import (
	"fmt"
	"sort"

	"holdem-engine/pkg/deck"
)

// each hand strength packs a category plus five 4-bit tie-break slots
const (
	tiebreakBits = 20
	maxStrength  = int(RoyalFlush)<<tiebreakBits | (1<<tiebreakBits - 1)
)

// Analyzer is the default Evaluator. It scores every 5-card combination of
// the 7 cards and keeps the strongest.
type Analyzer struct{}

// New returns a new Analyzer
func New() *Analyzer {
	return &Analyzer{}
}

// Evaluate implements Evaluator. Panics unless given exactly 7 cards.
func (a *Analyzer) Evaluate(cards []deck.Card) (int, string) {
	if len(cards) != 7 {
		panic(fmt.Sprintf("evaluate requires exactly 7 cards, got %d", len(cards)))
	}

	bestStrength := -1
	var bestCategory Category

	// drop two cards at a time to enumerate all 21 5-card hands
	hand := make([]deck.Card, 0, 5)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 7; j++ {
			hand = hand[:0]
			for k, card := range cards {
				if k != i && k != j {
					hand = append(hand, card)
				}
			}

			category, tiebreak := scoreFive(hand)
			strength := int(category)<<tiebreakBits | tiebreak
			if strength > bestStrength {
				bestStrength = strength
				bestCategory = category
			}
		}
	}

	// invert so that lower rank values are stronger
	return maxStrength - bestStrength, bestCategory.String()
}

// scoreFive scores a single 5-card hand. The tiebreak packs the significant
// ranks, most significant first, four bits each; a higher tiebreak wins
// within the same category.
func scoreFive(hand []deck.Card) (Category, int) {
	ranks := make([]int, 5)
	flush := true
	for i, c := range hand {
		ranks[i] = c.Rank
		if c.Suit != hand[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	straightHigh := straightHighCard(ranks)

	if flush && straightHigh > 0 {
		if straightHigh == deck.Ace {
			return RoyalFlush, pack(straightHigh)
		}
		return StraightFlush, pack(straightHigh)
	}

	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}

	var quad, trip int
	var pairs, kickers []int
	for _, r := range ranks {
		switch counts[r] {
		case 4:
			quad = r
		case 3:
			trip = r
		case 2:
			pairs = append(pairs, r)
		case 1:
			kickers = append(kickers, r)
		}
	}
	// ranks is sorted descending, so pairs and kickers already are too;
	// each pair appears twice
	pairs = dedupe(pairs)

	switch {
	case quad > 0:
		return FourOfAKind, pack(quad, kickers[0])
	case trip > 0 && len(pairs) == 1:
		return FullHouse, pack(trip, pairs[0])
	case flush:
		return Flush, pack(ranks...)
	case straightHigh > 0:
		return Straight, pack(straightHigh)
	case trip > 0:
		return ThreeOfAKind, pack(trip, kickers[0], kickers[1])
	case len(pairs) == 2:
		return TwoPair, pack(pairs[0], pairs[1], kickers[0])
	case len(pairs) == 1:
		return OnePair, pack(pairs[0], kickers[0], kickers[1], kickers[2])
	default:
		return HighCard, pack(ranks...)
	}
}

// straightHighCard returns the high card of a straight, or 0 if the five
// ranks (sorted descending) do not form one. The wheel (A-5-4-3-2) counts
// as a 5-high straight.
func straightHighCard(ranks []int) int {
	for i := 1; i < 5; i++ {
		if ranks[i] != ranks[i-1]-1 {
			// ace can play low under a 5-4-3-2 run
			if i == 1 && ranks[0] == deck.Ace && ranks[1] == 5 {
				continue
			}
			return 0
		}
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 {
		return 5
	}

	return ranks[0]
}

func dedupe(ranks []int) []int {
	out := ranks[:0]
	for i, r := range ranks {
		if i == 0 || ranks[i-1] != r {
			out = append(out, r)
		}
	}

	return out
}

func pack(ranks ...int) int {
	v := 0
	for _, r := range ranks {
		v = v<<4 | r
	}

	// left-align so shorter slots compare correctly against full ones
	for i := len(ranks); i < 5; i++ {
		v <<= 4
	}

	return v
}

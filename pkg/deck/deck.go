package deck

import (
	"holdem-engine/internal/rng"
)

// Deck represents a playing deck
type Deck struct {
	cards []Card
	rng   rng.Generator
}

// New returns a new deck of cards using the provided random source.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(r rng.Generator) *Deck {
	d := &Deck{rng: r}
	d.Reset()
	return d
}

// Reset restores the full 52-card composition in an unshuffled order
func (d *Deck) Reset() {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.cards = cards
}

// Shuffle will shuffle the deck of cards
func (d *Deck) Shuffle() {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw will draw the next card.
// The second return value is false if the deck is exhausted. Callers must
// tolerate an empty deck; a full round can never use more than a fraction
// of the 52 cards.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]

	return card, true
}

// Burn discards the top card face down
func (d *Deck) Burn() {
	if len(d.cards) > 0 {
		d.cards = d.cards[1:]
	}
}

// BurnAndDraw burns the top card and draws the next one
func (d *Deck) BurnAndDraw() (Card, bool) {
	d.Burn()
	return d.Draw()
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// Cards returns the remaining cards in draw order
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// SetCards replaces the remaining cards. Used when restoring a snapshot.
func (d *Deck) SetCards(cards []Card) {
	d.cards = make([]Card, len(cards))
	copy(d.cards, cards)
}

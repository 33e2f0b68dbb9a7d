package table

import "holdem-engine/pkg/deck"

// ActionKind identifies a queueable player action
type ActionKind string

// queueable action constants
const (
	ActionCheck ActionKind = "check"
	ActionFold  ActionKind = "fold"
	ActionCall  ActionKind = "call"
	ActionBet   ActionKind = "bet"
)

// QueuedAction is a pre-submitted action executed the moment it becomes the
// player's turn, provided conditions still hold. For a call, Amount records
// the bet at queue time; the call is discarded if the live bet has moved.
type QueuedAction struct {
	Kind   ActionKind `json:"kind"`
	Amount int        `json:"amount"`
}

// Player is the per-seat financial and hand state. All mutation goes
// through engine-owned methods; callers only get read access.
type Player struct {
	id         string
	stack      int
	cards      []deck.Card
	streetBet  int
	roundBet   int
	allIn      bool
	hadTurn    bool
	queued     *QueuedAction
	joinNext   bool
	leaveNext  bool
	totalBuyIn int
}

func newPlayer(id string) *Player {
	return &Player{id: id}
}

// ID returns the player's identifier
func (p *Player) ID() string {
	return p.id
}

// Stack returns the chips the player has behind
func (p *Player) Stack() int {
	return p.stack
}

// Cards returns a copy of the player's hole cards
func (p *Player) Cards() []deck.Card {
	cards := make([]deck.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// StreetBet returns the chips committed on the current street
func (p *Player) StreetBet() int {
	return p.streetBet
}

// RoundBet returns the cumulative chips committed this round
func (p *Player) RoundBet() int {
	return p.roundBet
}

// IsAllIn returns true once the player's whole stack is committed
func (p *Player) IsAllIn() bool {
	return p.allIn
}

// TotalBuyIn returns the lifetime chips the player has bought in for
func (p *Player) TotalBuyIn() int {
	return p.totalBuyIn
}

// QueuedAction returns the pending pre-submitted action, if any
func (p *Player) QueuedAction() *QueuedAction {
	if p.queued == nil {
		return nil
	}

	qa := *p.queued
	return &qa
}

// commit moves chips from the player's stack into play. A player whose
// stack reaches zero is always all-in.
func (p *Player) commit(amount int) {
	if amount > p.stack {
		panic("commit exceeds stack")
	}

	p.stack -= amount
	p.streetBet += amount
	p.roundBet += amount
	if p.stack == 0 {
		p.allIn = true
	}
}

func (p *Player) addChips(amount int) {
	p.stack += amount
}

// newStreet resets the per-street state when a new street is dealt
func (p *Player) newStreet() {
	p.streetBet = 0
	p.hadTurn = false
}

// newRound resets everything a fresh round clears
func (p *Player) newRound() {
	p.cards = nil
	p.streetBet = 0
	p.roundBet = 0
	p.allIn = false
	p.hadTurn = false
	p.queued = nil
}

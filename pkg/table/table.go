// Package table implements the rules engine for a Texas Hold'em table. It
// owns every piece of state that affects chip counts: stacks, pots, side
// pots, turn order, blinds, and round progression. Hosts drive it through
// the action surface (StartRound, Bet, Call, Check, Fold, seating and
// buy-in methods) and consume the event log as its only output.
//
// The engine is synchronous: every action runs to completion, including any
// cascading street progression and settlement, before returning. Hosts must
// serialize actions against a single table; independent tables share no
// state.
package table

import (
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/eventlog"
	"holdem-engine/pkg/handeval"
)

// Options configures the injectable collaborators of a table
type Options struct {
	// Schedule determines the big blind for the day a round starts
	Schedule BlindSchedule
	// Clock supplies the wall clock for the blind schedule
	Clock quartz.Clock
	// Rand drives the shuffle
	Rand rng.Generator
	// Evaluator ranks showdown hands
	Evaluator handeval.Evaluator
}

func (o *Options) fillDefaults() {
	if o.Schedule == nil {
		o.Schedule = FixedBlinds(DefaultBigBlind)
	}

	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}

	if o.Rand == nil {
		o.Rand = rng.Crypto{}
	}

	if o.Evaluator == nil {
		o.Evaluator = handeval.New()
	}
}

// Table is a single Texas Hold'em table
type Table struct {
	log    logrus.FieldLogger
	opts   Options
	deck   *deck.Deck
	events *eventlog.Log

	state        GameState
	community    []deck.Card
	active       []*Player
	inactive     []*Player
	pot          int
	dealerIndex  int
	smallBlind   int
	bigBlind     int
	currentIndex int
	folded       map[string]bool
	currentBet   int
	lastRaise    int
	pendingDeal  string

	// roundEnded is scratch state for a single top-level action: set when
	// the work loop settles a round so the action can report it
	roundEnded bool
	// lastNotified suppresses duplicate turn notifications
	lastNotified string
}

// New returns an empty table waiting for players
func New(logger logrus.FieldLogger, opts Options) *Table {
	opts.fillDefaults()

	return &Table{
		log:    logger,
		opts:   opts,
		deck:   deck.New(opts.Rand),
		events: eventlog.New(),
		state:  WaitingForPlayers,
		folded: make(map[string]bool),
	}
}

// State returns the current game state
func (t *Table) State() GameState {
	return t.state
}

// Pot returns the chips committed this round
func (t *Table) Pot() int {
	return t.pot
}

// Blinds returns the small and big blind for the current round
func (t *Table) Blinds() (small, big int) {
	return t.smallBlind, t.bigBlind
}

// CurrentBet returns the street's target bet amount
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// Community returns a copy of the community cards
func (t *Table) Community() []deck.Card {
	cards := make([]deck.Card, len(t.community))
	copy(cards, t.community)
	return cards
}

// DealerIndex returns the seat holding the dealer button
func (t *Table) DealerIndex() int {
	return t.dealerIndex
}

// CurrentPlayer returns the player whose turn it is.
// The second return value is false between rounds.
func (t *Table) CurrentPlayer() (*Player, bool) {
	if !t.state.inBettingRound() || t.currentIndex >= len(t.active) {
		return nil, false
	}

	return t.active[t.currentIndex], true
}

// ActivePlayers returns the seated players in table order
func (t *Table) ActivePlayers() []*Player {
	players := make([]*Player, len(t.active))
	copy(players, t.active)
	return players
}

// InactivePlayers returns the players who are bought out or away
func (t *Table) InactivePlayers() []*Player {
	players := make([]*Player, len(t.inactive))
	copy(players, t.inactive)
	return players
}

// Player finds a player anywhere at the table
func (t *Table) Player(id string) (*Player, bool) {
	for _, p := range t.active {
		if p.id == id {
			return p, true
		}
	}

	for _, p := range t.inactive {
		if p.id == id {
			return p, true
		}
	}

	return nil, false
}

// HasFolded returns true if the player folded this round
func (t *Table) HasFolded(id string) bool {
	return t.folded[id]
}

// Events drains and returns the event log. The caller owns the returned
// events; the engine never clears the log on its own.
func (t *Table) Events() []eventlog.Event {
	return t.events.Drain()
}

// AddPlayer seats a new player with an empty stack. Players added during a
// round join when the round ends.
func (t *Table) AddPlayer(id string) error {
	if _, ok := t.Player(id); ok {
		return newError(ErrUnknown, "%s is already at the table", id)
	}

	p := newPlayer(id)
	if t.state == WaitingForPlayers {
		t.active = append(t.active, p)
		t.events.Append("%s joined the table", id)
	} else {
		p.joinNext = true
		t.inactive = append(t.inactive, p)
		t.events.Append("%s will join the table after this round", id)
	}

	t.log.WithField("player", id).Info("player added")
	return nil
}

// RemovePlayer moves a player off the active table. During a round the
// change is deferred to the round boundary and the player plays out the
// current round.
func (t *Table) RemovePlayer(id string) error {
	p, ok := t.Player(id)
	if !ok {
		return newError(ErrUnknownPlayer, "%s is not at the table", id)
	}

	if !t.isActive(id) {
		return newError(ErrUnknown, "%s is already away from the table", id)
	}

	if t.state == WaitingForPlayers {
		t.moveToInactive(p)
		t.events.Append("%s left the table", id)
	} else {
		p.leaveNext = true
		t.events.Append("%s will leave the table after this round", id)
	}

	t.log.WithField("player", id).Info("player removed")
	return nil
}

// BuyIn adds chips to a player's stack and records the lifetime total. This
// is the only way chips enter the table.
func (t *Table) BuyIn(id string, amount int) error {
	p, ok := t.Player(id)
	if !ok {
		return newError(ErrUnknownPlayer, "%s is not at the table", id)
	}

	if amount <= 0 {
		return newError(ErrInvalidAmount, "buy-in must be a positive amount")
	}

	p.addChips(amount)
	p.totalBuyIn += amount
	t.events.Append("%s bought in for %d (lifetime total %d)", id, amount, p.totalBuyIn)
	return nil
}

// CashOut zeroes the player's stack and moves them off the active table,
// returning the chips removed. Not permitted while the player is in a live
// round.
func (t *Table) CashOut(id string) (int, error) {
	p, ok := t.Player(id)
	if !ok {
		return 0, newError(ErrUnknownPlayer, "%s is not at the table", id)
	}

	if t.isActive(id) && t.state != WaitingForPlayers {
		return 0, newError(ErrRoundInProgress, "%s cannot cash out during a round", id)
	}

	amount := p.stack
	p.stack = 0
	if t.isActive(id) {
		t.moveToInactive(p)
	}

	t.events.Append("%s cashed out %d", id, amount)
	return amount, nil
}

func (t *Table) isActive(id string) bool {
	for _, p := range t.active {
		if p.id == id {
			return true
		}
	}

	return false
}

func (t *Table) moveToInactive(target *Player) {
	for i, p := range t.active {
		if p == target {
			t.active = append(t.active[:i], t.active[i+1:]...)
			t.inactive = append(t.inactive, target)
			return
		}
	}
}

// remaining returns the non-folded active players in seating order
func (t *Table) remaining() []*Player {
	players := make([]*Player, 0, len(t.active))
	for _, p := range t.active {
		if !t.folded[p.id] {
			players = append(players, p)
		}
	}

	return players
}

// canActCount returns the number of non-folded players who are not all-in
func (t *Table) canActCount() int {
	count := 0
	for _, p := range t.remaining() {
		if !p.allIn {
			count++
		}
	}

	return count
}

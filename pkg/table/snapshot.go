package table

import (
	"encoding/json"
	"sort"

	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/deck"
)

// tableJSON is the persisted shape of a table. Field order is fixed and the
// folded set is sorted, so encoding the same state always produces the same
// bytes.
type tableJSON struct {
	State        int          `json:"state"`
	Deck         string       `json:"deck"`
	Community    string       `json:"community"`
	Active       []playerJSON `json:"active"`
	Inactive     []playerJSON `json:"inactive"`
	Pot          int          `json:"pot"`
	DealerIndex  int          `json:"dealerIndex"`
	SmallBlind   int          `json:"smallBlind"`
	BigBlind     int          `json:"bigBlind"`
	CurrentIndex int          `json:"currentIndex"`
	Folded       []string     `json:"folded"`
	CurrentBet   int          `json:"currentBet"`
	LastRaise    int          `json:"lastRaise"`
	PendingDeal  string       `json:"pendingDeal"`
}

type playerJSON struct {
	ID         string        `json:"id"`
	Stack      int           `json:"stack"`
	Cards      string        `json:"cards"`
	StreetBet  int           `json:"streetBet"`
	RoundBet   int           `json:"roundBet"`
	AllIn      bool          `json:"allIn"`
	HadTurn    bool          `json:"hadTurn"`
	Queued     *QueuedAction `json:"queued,omitempty"`
	JoinNext   bool          `json:"joinNext"`
	LeaveNext  bool          `json:"leaveNext"`
	TotalBuyIn int           `json:"totalBuyIn"`
}

// Snapshot encodes the full table state. The encoding is deterministic:
// encode → Restore → encode yields identical bytes.
func (t *Table) Snapshot() ([]byte, error) {
	folded := make([]string, 0, len(t.folded))
	for id := range t.folded {
		folded = append(folded, id)
	}
	sort.Strings(folded)

	return json.Marshal(tableJSON{
		State:        int(t.state),
		Deck:         deck.CardsToString(t.deck.Cards()),
		Community:    deck.CardsToString(t.community),
		Active:       playersToJSON(t.active),
		Inactive:     playersToJSON(t.inactive),
		Pot:          t.pot,
		DealerIndex:  t.dealerIndex,
		SmallBlind:   t.smallBlind,
		BigBlind:     t.bigBlind,
		CurrentIndex: t.currentIndex,
		Folded:       folded,
		CurrentBet:   t.currentBet,
		LastRaise:    t.lastRaise,
		PendingDeal:  t.pendingDeal,
	})
}

// Restore rebuilds a table from Snapshot bytes, re-attaching the injected
// collaborators from opts. It expects engine-produced snapshots; card data
// that cannot be parsed panics, the same as deck.CardFromString.
func Restore(data []byte, logger logrus.FieldLogger, opts Options) (*Table, error) {
	var snap tableJSON
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	t := New(logger, opts)
	t.state = GameState(snap.State)
	t.deck.SetCards(deck.CardsFromString(snap.Deck))
	t.community = deck.CardsFromString(snap.Community)
	t.active = playersFromJSON(snap.Active)
	t.inactive = playersFromJSON(snap.Inactive)
	t.pot = snap.Pot
	t.dealerIndex = snap.DealerIndex
	t.smallBlind = snap.SmallBlind
	t.bigBlind = snap.BigBlind
	t.currentIndex = snap.CurrentIndex
	t.currentBet = snap.CurrentBet
	t.lastRaise = snap.LastRaise
	t.pendingDeal = snap.PendingDeal

	for _, id := range snap.Folded {
		t.folded[id] = true
	}

	return t, nil
}

func playersToJSON(players []*Player) []playerJSON {
	// nil for an empty table so the encoding round-trips byte-for-byte
	if len(players) == 0 {
		return nil
	}

	out := make([]playerJSON, len(players))
	for i, p := range players {
		out[i] = playerJSON{
			ID:         p.id,
			Stack:      p.stack,
			Cards:      deck.CardsToString(p.cards),
			StreetBet:  p.streetBet,
			RoundBet:   p.roundBet,
			AllIn:      p.allIn,
			HadTurn:    p.hadTurn,
			Queued:     p.QueuedAction(),
			JoinNext:   p.joinNext,
			LeaveNext:  p.leaveNext,
			TotalBuyIn: p.totalBuyIn,
		}
	}

	return out
}

func playersFromJSON(players []playerJSON) []*Player {
	if len(players) == 0 {
		return nil
	}

	out := make([]*Player, len(players))
	for i, pj := range players {
		p := newPlayer(pj.ID)
		p.stack = pj.Stack
		p.streetBet = pj.StreetBet
		p.roundBet = pj.RoundBet
		p.allIn = pj.AllIn
		p.hadTurn = pj.HadTurn
		p.joinNext = pj.JoinNext
		p.leaveNext = pj.LeaveNext
		p.totalBuyIn = pj.TotalBuyIn

		if pj.Cards != "" {
			p.cards = deck.CardsFromString(pj.Cards)
		}

		if pj.Queued != nil {
			qa := *pj.Queued
			p.queued = &qa
		}

		out[i] = p
	}

	return out
}

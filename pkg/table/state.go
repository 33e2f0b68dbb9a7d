package table

import "encoding/json"

// GameState represents where the table is in a round
type GameState int

// constants for GameState. A round only ever moves forward through these
// states and back to WaitingForPlayers.
const (
	WaitingForPlayers GameState = iota
	PreFlop
	Flop
	Turn
	River
)

func (g GameState) String() string {
	switch g {
	case WaitingForPlayers:
		return "waiting-for-players"
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	return ""
}

// MarshalJSON encodes JSON
func (g GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(g),
		Name: g.String(),
	})
}

// inBettingRound returns true if the state is one of the four streets
func (g GameState) inBettingRound() bool {
	return g == PreFlop || g == Flop || g == Turn || g == River
}

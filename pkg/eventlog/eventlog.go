// Package eventlog provides the append-only record of table occurrences.
// The engine writes to it on every state change; the host drains it after
// each top-level action and owns delivery from there.
package eventlog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"holdem-engine/pkg/deck"
)

// Event is a single human-meaningful occurrence at the table.
// If Ephemeral is true, the event is only intended for the player named by
// TargetID (e.g. hole cards); otherwise it is visible to the whole table.
// TurnNotification marks "it's your turn" events so consumers can group
// messages differently.
type Event struct {
	UUID             string      `json:"uuid"`
	Message          string      `json:"message"`
	Cards            []deck.Card `json:"cards,omitempty"`
	Ephemeral        bool        `json:"ephemeral"`
	TargetID         string      `json:"targetId,omitempty"`
	TurnNotification bool        `json:"turnNotification"`
	Time             time.Time   `json:"time"`
}

// Log is an append-only ordered sequence of events
type Log struct {
	events []Event
}

// New returns an empty log
func New() *Log {
	return &Log{}
}

// Append adds a table-visible event
func (l *Log) Append(format string, a ...interface{}) {
	l.append(Event{Message: fmt.Sprintf(format, a...)})
}

// AppendCards adds a table-visible event with cards to display
func (l *Log) AppendCards(cards []deck.Card, format string, a ...interface{}) {
	l.append(Event{
		Message: fmt.Sprintf(format, a...),
		Cards:   cards,
	})
}

// AppendEphemeral adds an event only the target player should see
func (l *Log) AppendEphemeral(targetID string, cards []deck.Card, format string, a ...interface{}) {
	l.append(Event{
		Message:   fmt.Sprintf(format, a...),
		Cards:     cards,
		Ephemeral: true,
		TargetID:  targetID,
	})
}

// AppendTurn adds a turn notification for the named player
func (l *Log) AppendTurn(playerID string, format string, a ...interface{}) {
	l.append(Event{
		Message:          fmt.Sprintf(format, a...),
		TargetID:         playerID,
		TurnNotification: true,
	})
}

func (l *Log) append(e Event) {
	e.UUID = uuid.New().String()
	e.Time = time.Now()
	l.events = append(l.events, e)
}

// Len returns the number of undrained events
func (l *Log) Len() int {
	return len(l.events)
}

// Drain returns all events in append order and empties the log
func (l *Log) Drain() []Event {
	events := l.events
	l.events = nil
	return events
}

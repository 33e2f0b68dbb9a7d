package eventlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/pkg/deck"
)

func TestLog_Drain(t *testing.T) {
	a := assert.New(t)

	l := New()
	a.Equal(0, l.Len())

	l.Append("the round has started")
	l.AppendCards(deck.CardsFromString("2c,3d,4h"), "flop dealt")
	l.AppendEphemeral("player-1", deck.CardsFromString("14s,14h"), "your hole cards")
	l.AppendTurn("player-2", "it's your turn")
	a.Equal(4, l.Len())

	events := l.Drain()
	a.Equal(4, len(events))
	a.Equal(0, l.Len())
	a.Nil(l.Drain())

	a.Equal("the round has started", events[0].Message)
	a.False(events[0].Ephemeral)
	a.NotEmpty(events[0].UUID)
	a.False(events[0].Time.IsZero())

	a.Equal(deck.CardsFromString("2c,3d,4h"), events[1].Cards)

	a.True(events[2].Ephemeral)
	a.Equal("player-1", events[2].TargetID)

	a.True(events[3].TurnNotification)
	a.Equal("player-2", events[3].TargetID)
	a.False(events[3].Ephemeral)
}

func TestLog_ordering(t *testing.T) {
	a := assert.New(t)

	l := New()
	l.Append("first")
	l.Append("second")
	l.Append("third")

	events := l.Drain()
	a.Equal("first", events[0].Message)
	a.Equal("second", events[1].Message)
	a.Equal("third", events[2].Message)
}

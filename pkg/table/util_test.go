package table

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-engine/pkg/deck"
)

// setupTable seats one player per stack with ids player-1, player-2, ...
// and a deterministic shuffle
func setupTable(t *testing.T, seed int64, stacks ...int) *Table {
	t.Helper()

	tbl := New(logrus.StandardLogger(), Options{
		Schedule: FixedBlinds(20),
		Rand:     rand.New(rand.NewSource(seed)),
	})

	for i, stack := range stacks {
		id := playerID(i + 1)
		require.NoError(t, tbl.AddPlayer(id))
		if stack > 0 {
			require.NoError(t, tbl.BuyIn(id, stack))
		}
	}

	tbl.Events() // drop the setup noise
	return tbl
}

func playerID(n int) string {
	return fmt.Sprintf("player-%d", n)
}

// totalChips sums every stack plus the pot; it must never change except
// through BuyIn and CashOut
func totalChips(tbl *Table) int {
	sum := tbl.Pot()
	for _, p := range tbl.ActivePlayers() {
		sum += p.Stack()
	}
	for _, p := range tbl.InactivePlayers() {
		sum += p.Stack()
	}

	return sum
}

func assertSuccess(t *testing.T, code ResultCode, res Result, err error, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, err, msgAndArgs...)
	assert.Equal(t, code, res.Code, msgAndArgs...)
}

func assertFailed(t *testing.T, kind ErrorKind, res Result, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)

	var tableErr *Error
	require.ErrorAs(t, err, &tableErr, msgAndArgs...)
	assert.Equal(t, kind, tableErr.Kind, msgAndArgs...)
	assert.Equal(t, Result{}, res, msgAndArgs...)
}

func mustPlayer(t *testing.T, tbl *Table, id string) *Player {
	t.Helper()
	p, ok := tbl.Player(id)
	require.True(t, ok)
	return p
}

// stubEvaluator ranks hands by the player's hole cards, which the engine
// always passes first
type stubEvaluator struct {
	ranks map[string]int
}

func (s stubEvaluator) Evaluate(cards []deck.Card) (int, string) {
	if len(cards) != 7 {
		panic(fmt.Sprintf("expected 7 cards, got %d", len(cards)))
	}

	rank, ok := s.ranks[deck.CardsToString(cards[:2])]
	if !ok {
		return 1 << 20, "unranked"
	}

	return rank, fmt.Sprintf("rank %d", rank)
}

// rankHoleCards builds a stubEvaluator that ranks the given players'
// current hole cards best (1) to worst (n)
func rankHoleCards(t *testing.T, tbl *Table, ids ...string) stubEvaluator {
	t.Helper()

	ranks := make(map[string]int, len(ids))
	for i, id := range ids {
		p := mustPlayer(t, tbl, id)
		require.Len(t, p.Cards(), 2)
		ranks[deck.CardsToString(p.Cards())] = i + 1
	}

	return stubEvaluator{ranks: ranks}
}

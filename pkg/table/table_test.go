package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddPlayer(t *testing.T) {
	tbl := setupTable(t, 1, 1000)

	err := tbl.AddPlayer("player-1")
	assert.Error(t, err, "duplicate seat")

	require.NoError(t, tbl.AddPlayer("player-2"))
	assert.Len(t, tbl.ActivePlayers(), 2)
}

func TestTable_RemovePlayer(t *testing.T) {
	tbl := setupTable(t, 1, 1000, 1000)

	err := tbl.RemovePlayer("ghost")
	assertKind(t, ErrUnknownPlayer, err)

	require.NoError(t, tbl.RemovePlayer("player-2"))
	assert.Len(t, tbl.ActivePlayers(), 1)
	assert.Len(t, tbl.InactivePlayers(), 1)

	// already away
	err = tbl.RemovePlayer("player-2")
	assert.Error(t, err)
}

func TestTable_BuyIn(t *testing.T) {
	tbl := setupTable(t, 1, 0, 0)

	err := tbl.BuyIn("ghost", 100)
	assertKind(t, ErrUnknownPlayer, err)

	err = tbl.BuyIn("player-1", 0)
	assertKind(t, ErrInvalidAmount, err)

	err = tbl.BuyIn("player-1", -50)
	assertKind(t, ErrInvalidAmount, err)

	require.NoError(t, tbl.BuyIn("player-1", 300))
	require.NoError(t, tbl.BuyIn("player-1", 200))

	p := mustPlayer(t, tbl, "player-1")
	assert.Equal(t, 500, p.Stack())
	assert.Equal(t, 500, p.TotalBuyIn())
}

func TestTable_CashOut(t *testing.T) {
	tbl := setupTable(t, 1, 750, 1000)

	amount, err := tbl.CashOut("player-1")
	require.NoError(t, err)
	assert.Equal(t, 750, amount)
	assert.Equal(t, 0, mustPlayer(t, tbl, "player-1").Stack())
	assert.Len(t, tbl.InactivePlayers(), 1)

	_, err = tbl.CashOut("ghost")
	assertKind(t, ErrUnknownPlayer, err)
}

func TestTable_CashOut_blockedDuringRound(t *testing.T) {
	tbl := setupTable(t, 1, 1000, 1000)

	res, err := tbl.StartRound("player-1")
	assertSuccess(t, Success, res, err)

	_, err = tbl.CashOut("player-1")
	assertKind(t, ErrRoundInProgress, err)

	// a player who already sat out can still cash out mid-round
	require.NoError(t, tbl.AddPlayer("player-3"))
	require.NoError(t, tbl.BuyIn("player-3", 400))

	amount, err := tbl.CashOut("player-3")
	require.NoError(t, err)
	assert.Equal(t, 400, amount)
}

func assertKind(t *testing.T, kind ErrorKind, err error) {
	t.Helper()
	require.Error(t, err)

	var tableErr *Error
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, kind, tableErr.Kind)
}

package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTableState decodes the table response without the engine's custom
// state encoding
type testTableState struct {
	UUID  string `json:"uuid"`
	State struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"state"`
	Pot           int                   `json:"pot"`
	SmallBlind    int                   `json:"smallBlind"`
	BigBlind      int                   `json:"bigBlind"`
	CurrentBet    int                   `json:"currentBet"`
	Community     string                `json:"community"`
	CurrentPlayer string                `json:"currentPlayer"`
	Players       []tablePlayerResponse `json:"players"`
}

func createTable(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	var ctr createTableResponse
	assertPost(t, ts, "/table", struct{}{}, &ctr, http.StatusCreated)
	require.NotEmpty(t, ctr.UUID)
	return ctr.UUID
}

func TestMux_tableLifecycle(t *testing.T) {
	ts := testServer(t)
	base := "/table/" + createTable(t, ts)

	for _, id := range []string{"alice", "bob"} {
		assertPost(t, ts, base+"/player", map[string]string{"playerId": id}, nil, http.StatusCreated)
		assertPost(t, ts, base+"/player/"+id+"/buy-in", map[string]int{"amount": 1000}, nil, http.StatusOK)
	}

	// seat is taken
	assertPost(t, ts, base+"/player", map[string]string{"playerId": "alice"}, nil, http.StatusBadRequest)
	assertPost(t, ts, base+"/player", map[string]string{}, nil, http.StatusBadRequest)

	var ar actionResponse
	assertPost(t, ts, base+"/deal", map[string]string{"playerId": "alice"}, &ar, http.StatusOK)
	assert.Equal(t, "success", ar.Code)

	var state testTableState
	assertGet(t, ts, base, &state, http.StatusOK)
	assert.Equal(t, "pre-flop", state.State.Name)
	assert.Equal(t, 30, state.Pot)
	assert.Equal(t, 10, state.SmallBlind)
	assert.Equal(t, 20, state.BigBlind)
	assert.Equal(t, "bob", state.CurrentPlayer)
	require.Len(t, state.Players, 2)

	// out of turn
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": "alice", "action": "fold"}, nil, http.StatusConflict)
	// cannot check a live bet
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": "bob", "action": "check"}, nil, http.StatusBadRequest)
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": "bob", "action": "jump"}, nil, http.StatusBadRequest)
	// no cashing out mid-round
	assertPost(t, ts, base+"/player/alice/cash-out", struct{}{}, nil, http.StatusConflict)

	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": "bob", "action": "call"}, &ar, http.StatusOK)
	assert.Equal(t, "success", ar.Code)
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": "alice", "action": "check"}, &ar, http.StatusOK)

	assertGet(t, ts, base, &state, http.StatusOK)
	assert.Equal(t, "flop", state.State.Name)
	assert.Equal(t, 40, state.Pot)
	assert.Len(t, strings.Split(state.Community, ","), 3)
}

func TestMux_queueAction(t *testing.T) {
	ts := testServer(t)
	base := "/table/" + createTable(t, ts)

	for _, id := range []string{"alice", "bob", "carol"} {
		assertPost(t, ts, base+"/player", map[string]string{"playerId": id}, nil, http.StatusCreated)
		assertPost(t, ts, base+"/player/"+id+"/buy-in", map[string]int{"amount": 1000}, nil, http.StatusOK)
	}

	var ar actionResponse
	assertPost(t, ts, base+"/deal", map[string]string{"playerId": "alice"}, &ar, http.StatusOK)

	// alice is first to act; bob queues a fold for when his turn comes
	assertPost(t, ts, base+"/queue", map[string]interface{}{"playerId": "bob", "action": "fold"}, &ar, http.StatusOK)
	assert.Equal(t, "queued", ar.Code)

	assertPost(t, ts, base+"/queue", map[string]interface{}{"playerId": "bob", "action": "jump"}, nil, http.StatusBadRequest)

	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": "alice", "action": "call"}, &ar, http.StatusOK)

	var state testTableState
	assertGet(t, ts, base, &state, http.StatusOK)
	assert.Equal(t, "carol", state.CurrentPlayer)

	for _, p := range state.Players {
		if p.ID == "bob" {
			assert.True(t, p.Folded)
		}
	}
}

func TestMux_removePlayer(t *testing.T) {
	ts := testServer(t)
	base := "/table/" + createTable(t, ts)

	assertPost(t, ts, base+"/player", map[string]string{"playerId": "alice"}, nil, http.StatusCreated)

	assertDelete(t, ts, base+"/player/ghost", http.StatusNotFound)
	assertDelete(t, ts, base+"/player/alice", http.StatusNoContent)

	var state testTableState
	assertGet(t, ts, base, &state, http.StatusOK)
	assert.Empty(t, state.Players)
}

func TestMux_eventLog(t *testing.T) {
	ts := testServer(t)
	base := "/table/" + createTable(t, ts)

	for _, id := range []string{"alice", "bob"} {
		assertPost(t, ts, base+"/player", map[string]string{"playerId": id}, nil, http.StatusCreated)
		assertPost(t, ts, base+"/player/"+id+"/buy-in", map[string]int{"amount": 1000}, nil, http.StatusOK)
	}
	assertPost(t, ts, base+"/deal", map[string]string{"playerId": "alice"}, nil, http.StatusOK)

	type logResponse struct {
		Events []struct {
			Message string `json:"message"`
		} `json:"events"`
		Start int64 `json:"start"`
		Total int   `json:"total"`
	}

	var lr logResponse
	assertGet(t, ts, base+"/log", &lr, http.StatusOK)
	require.NotZero(t, lr.Total)
	assert.Len(t, lr.Events, lr.Total)

	var page logResponse
	assertGet(t, ts, base+"/log?start=1&rows=2", &page, http.StatusOK)
	assert.Len(t, page.Events, 2)
	assert.Equal(t, lr.Total, page.Total)
	assert.Equal(t, lr.Events[1].Message, page.Events[0].Message)

	assertGet(t, ts, base+"/log?start=100000", &page, http.StatusOK)
	assert.Empty(t, page.Events)

	assertGet(t, ts, base+"/log?rows=0", nil, http.StatusBadRequest)
}

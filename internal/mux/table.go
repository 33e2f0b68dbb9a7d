package mux

import (
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/eventlog"
	"holdem-engine/pkg/table"
)

var (
	errEmptyPlayerID = errors.New("playerId is required")
	errUnknownAction = errors.New("unknown action")
)

type createTableResponse struct {
	UUID string `json:"uuid"`
}

type tableSummaryResponse struct {
	UUID    string          `json:"uuid"`
	State   table.GameState `json:"state"`
	Players int             `json:"players"`
}

type tablePlayerResponse struct {
	ID        string `json:"id"`
	Stack     int    `json:"stack"`
	StreetBet int    `json:"streetBet"`
	RoundBet  int    `json:"roundBet"`
	AllIn     bool   `json:"allIn"`
	Folded    bool   `json:"folded"`
}

type tableResponse struct {
	UUID          string                `json:"uuid"`
	State         table.GameState       `json:"state"`
	Pot           int                   `json:"pot"`
	SmallBlind    int                   `json:"smallBlind"`
	BigBlind      int                   `json:"bigBlind"`
	CurrentBet    int                   `json:"currentBet"`
	Community     string                `json:"community"`
	DealerIndex   int                   `json:"dealerIndex"`
	CurrentPlayer string                `json:"currentPlayer,omitempty"`
	Players       []tablePlayerResponse `json:"players"`
}

type actionResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := m.sessions.create()
		writeJSON(w, http.StatusCreated, createTableResponse{UUID: sess.id})
	}
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := m.sessions.list()
		summaries := make([]tableSummaryResponse, 0, len(all))
		for _, sess := range all {
			var summary tableSummaryResponse
			_ = sess.withTable(func(t *table.Table) error {
				summary = tableSummaryResponse{
					UUID:    sess.id,
					State:   t.State(),
					Players: len(t.ActivePlayers()),
				}
				return nil
			})

			summaries = append(summaries, summary)
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var payload tableResponse
		_ = sess.withTable(func(t *table.Table) error {
			small, big := t.Blinds()

			players := make([]tablePlayerResponse, 0, len(t.ActivePlayers()))
			for _, p := range t.ActivePlayers() {
				players = append(players, tablePlayerResponse{
					ID:        p.ID(),
					Stack:     p.Stack(),
					StreetBet: p.StreetBet(),
					RoundBet:  p.RoundBet(),
					AllIn:     p.IsAllIn(),
					Folded:    t.HasFolded(p.ID()),
				})
			}

			payload = tableResponse{
				UUID:        sess.id,
				State:       t.State(),
				Pot:         t.Pot(),
				SmallBlind:  small,
				BigBlind:    big,
				CurrentBet:  t.CurrentBet(),
				Community:   deck.CardsToString(t.Community()),
				DealerIndex: t.DealerIndex(),
				Players:     players,
			}

			if cp, ok := t.CurrentPlayer(); ok {
				payload.CurrentPlayer = cp.ID()
			}

			return nil
		})

		writeJSON(w, http.StatusOK, payload)
	}
}

func (m *Mux) getTableUUIDLog() http.HandlerFunc {
	type logResponse struct {
		Events []eventlog.Event `json:"events"`
		Start  int64            `json:"start"`
		Total  int              `json:"total"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sess := sessionFromContext(r.Context())
		events, total := sess.eventsPage(start, rows)
		if events == nil {
			events = []eventlog.Event{}
		}

		writeJSON(w, http.StatusOK, logResponse{
			Events: events,
			Start:  start,
			Total:  total,
		})
	}
}

func (m *Mux) postTableUUIDPlayer() http.HandlerFunc {
	type payload struct {
		PlayerID string `json:"playerId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if p.PlayerID == "" {
			writeJSONError(w, http.StatusBadRequest, errEmptyPlayerID)
			return
		}

		sess := sessionFromContext(r.Context())
		if err := sess.withTable(func(t *table.Table) error {
			return t.AddPlayer(p.PlayerID)
		}); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			PlayerID string `json:"playerId"`
		}{p.PlayerID})
	}
}

func (m *Mux) deleteTableUUIDPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["id"]

		sess := sessionFromContext(r.Context())
		if err := sess.withTable(func(t *table.Table) error {
			return t.RemovePlayer(playerID)
		}); err != nil {
			writeEngineError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (m *Mux) postTableUUIDPlayerBuyIn() http.HandlerFunc {
	type payload struct {
		Amount int `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		playerID := gmux.Vars(r)["id"]

		sess := sessionFromContext(r.Context())
		if err := sess.withTable(func(t *table.Table) error {
			return t.BuyIn(playerID, p.Amount)
		}); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Amount int `json:"amount"`
		}{p.Amount})
	}
}

func (m *Mux) postTableUUIDPlayerCashOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["id"]

		var amount int
		sess := sessionFromContext(r.Context())
		if err := sess.withTable(func(t *table.Table) (err error) {
			amount, err = t.CashOut(playerID)
			return
		}); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Amount int `json:"amount"`
		}{amount})
	}
}

func (m *Mux) postTableUUIDDeal() http.HandlerFunc {
	type payload struct {
		PlayerID string `json:"playerId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		var res table.Result
		sess := sessionFromContext(r.Context())
		if err := sess.withTable(func(t *table.Table) (err error) {
			res, err = t.StartRound(p.PlayerID)
			return
		}); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{
			Code:   res.Code.String(),
			Detail: res.Detail,
		})
	}
}

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	type payload struct {
		PlayerID string  `json:"playerId"`
		Action   string  `json:"action"`
		Amount   float64 `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		var res table.Result
		sess := sessionFromContext(r.Context())
		err := sess.withTable(func(t *table.Table) (err error) {
			switch p.Action {
			case "check":
				res, err = t.Check(p.PlayerID)
			case "fold":
				res, err = t.Fold(p.PlayerID)
			case "call":
				res, err = t.Call(p.PlayerID)
			case "bet", "raise":
				res, err = t.Bet(p.PlayerID, p.Amount)
			default:
				err = errUnknownAction
			}
			return
		})

		if err == errUnknownAction {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		} else if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{
			Code:   res.Code.String(),
			Detail: res.Detail,
		})
	}
}

func (m *Mux) postTableUUIDQueue() http.HandlerFunc {
	type payload struct {
		PlayerID string  `json:"playerId"`
		Action   string  `json:"action"`
		Amount   float64 `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		var res table.Result
		sess := sessionFromContext(r.Context())
		if err := sess.withTable(func(t *table.Table) (err error) {
			res, err = t.QueueAction(p.PlayerID, table.ActionKind(p.Action), p.Amount)
			return
		}); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{
			Code:   res.Code.String(),
			Detail: res.Detail,
		})
	}
}

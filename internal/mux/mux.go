// Package mux exposes the table engine over HTTP. Every table lives in its
// own session and all actions against a table are serialized, so handlers
// never touch engine state concurrently.
package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/config"
	"holdem-engine/pkg/table"
)

type ctxKey int

const ctxSessionKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	sessions *sessions
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()
	byDay, err := cfg.BlindsByWeekday()
	if err != nil {
		logrus.WithError(err).Fatal("invalid blind schedule")
	}

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		sessions: newSessions(table.Options{
			Schedule: table.WeekdaySchedule(byDay, cfg.Blinds.Default),
		}),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.sessionMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodGet).Path("/log").Handler(this.getTableUUIDLog())
	tr.Methods(http.MethodPost).Path("/player").Handler(this.postTableUUIDPlayer())
	tr.Methods(http.MethodDelete).Path("/player/{id}").Handler(this.deleteTableUUIDPlayer())
	tr.Methods(http.MethodPost).Path("/player/{id}/buy-in").Handler(this.postTableUUIDPlayerBuyIn())
	tr.Methods(http.MethodPost).Path("/player/{id}/cash-out").Handler(this.postTableUUIDPlayerCashOut())
	tr.Methods(http.MethodPost).Path("/deal").Handler(this.postTableUUIDDeal())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
	tr.Methods(http.MethodPost).Path("/queue").Handler(this.postTableUUIDQueue())

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.sessions.get(gmux.Vars(r)["uuid"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(sess.intoContext(r.Context())))
	})
}

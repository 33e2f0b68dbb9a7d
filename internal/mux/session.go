package mux

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/eventlog"
	"holdem-engine/pkg/table"
)

// sessions is the in-memory registry of live tables
type sessions struct {
	mu   sync.RWMutex
	opts table.Options
	byID map[string]*session
}

func newSessions(opts table.Options) *sessions {
	return &sessions{
		opts: opts,
		byID: make(map[string]*session),
	}
}

func (s *sessions) create() *session {
	id := uuid.New().String()
	sess := &session{
		id:    id,
		table: table.New(logrus.WithField("table", id), s.opts),
	}

	s.mu.Lock()
	s.byID[id] = sess
	s.mu.Unlock()

	return sess
}

func (s *sessions) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[id]
	return sess, ok
}

func (s *sessions) list() []*session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*session, 0, len(s.byID))
	for _, sess := range s.byID {
		all = append(all, sess)
	}

	return all
}

// session owns a single table. The engine is synchronous and single-writer,
// so every access goes through withTable and the session lock.
type session struct {
	mu     sync.Mutex
	id     string
	table  *table.Table
	events []eventlog.Event
}

// withTable runs fn holding the session lock, then folds any events the
// action produced into the session's log
func (s *session) withTable(fn func(t *table.Table) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.table)
	s.events = append(s.events, s.table.Events()...)
	return err
}

// eventsPage returns a page of the session's event log and the total count
func (s *session) eventsPage(start int64, rows int) ([]eventlog.Event, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.events)
	if start >= int64(total) {
		return nil, total
	}

	end := int(start) + rows
	if end > total {
		end = total
	}

	page := make([]eventlog.Event, end-int(start))
	copy(page, s.events[start:end])
	return page, total
}

func (s *session) intoContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxSessionKey, s)
}

func sessionFromContext(ctx context.Context) *session {
	return ctx.Value(ctxSessionKey).(*session)
}

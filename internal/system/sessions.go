package system

import "github.com/wanderlands/server/internal/net"

// SessionTable is the game loop's view of live sessions. Only the input
// system mutates it; other systems iterate it during their phase.
type SessionTable struct {
	sessions map[uint64]*net.Session
}

func NewSessionTable() *SessionTable {
	return &SessionTable{sessions: make(map[uint64]*net.Session)}
}

func (t *SessionTable) Add(s *net.Session) {
	t.sessions[s.ID] = s
}

func (t *SessionTable) Remove(id uint64) {
	delete(t.sessions, id)
}

func (t *SessionTable) Get(id uint64) *net.Session {
	return t.sessions[id]
}

func (t *SessionTable) Each(fn func(*net.Session)) {
	for _, s := range t.sessions {
		fn(s)
	}
}

// Raw exposes the underlying map for systems that need the session ID during
// iteration. Callers must not mutate it.
func (t *SessionTable) Raw() map[uint64]*net.Session {
	return t.sessions
}

func (t *SessionTable) Count() int { return len(t.sessions) }

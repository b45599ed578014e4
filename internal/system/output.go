package system

import (
	"time"

	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/net"
)

// OutputSystem flushes every session's buffered packets to its write queue.
// Phase 4 (Output).
type OutputSystem struct {
	store *SessionTable
}

func NewOutputSystem(store *SessionTable) *OutputSystem {
	return &OutputSystem{store: store}
}

func (s *OutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *OutputSystem) Update(_ time.Duration) {
	s.store.Each(func(sess *net.Session) {
		sess.FlushOutput()
	})
}

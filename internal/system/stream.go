package system

import (
	"time"

	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/world"
)

// StreamSystem ticks every in-world player's streaming grid, reconciling each
// resident cell set against the positions the input phase recorded.
// Phase 2 (Update).
type StreamSystem struct {
	world *world.State
}

func NewStreamSystem(ws *world.State) *StreamSystem {
	return &StreamSystem{world: ws}
}

func (s *StreamSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *StreamSystem) Update(_ time.Duration) {
	s.world.AllPlayers(func(p *world.PlayerInfo) {
		p.Grid.Tick()
	})
}

package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/persist"
	"github.com/wanderlands/server/internal/world"
)

// PersistenceSystem periodically saves the positions of players that moved
// since the last save. Phase 5 (Persist).
type PersistenceSystem struct {
	world      *world.State
	playerRepo *persist.PlayerRepo
	log        *zap.Logger
	tickCount  int
	interval   int // auto-save every N ticks
}

func NewPersistenceSystem(ws *world.State, playerRepo *persist.PlayerRepo, log *zap.Logger, intervalTicks int) *PersistenceSystem {
	if intervalTicks <= 0 {
		intervalTicks = 300
	}
	return &PersistenceSystem{
		world:      ws,
		playerRepo: playerRepo,
		log:        log,
		interval:   intervalTicks,
	}
}

func (s *PersistenceSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *PersistenceSystem) Update(_ time.Duration) {
	s.tickCount++
	if s.tickCount < s.interval {
		return
	}
	s.tickCount = 0
	s.savePlayers(true)
}

// SaveAllPlayers persists every online player immediately, ignoring dirty
// flags. Called on graceful shutdown.
func (s *PersistenceSystem) SaveAllPlayers() {
	s.savePlayers(false)
}

func (s *PersistenceSystem) savePlayers(dirtyOnly bool) {
	count := 0
	s.world.AllPlayers(func(p *world.PlayerInfo) {
		if dirtyOnly && !p.Dirty {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.playerRepo.SavePosition(ctx, p.CharID, p.X, p.Y, p.Z, p.Heading); err != nil {
			s.log.Error("auto-save failed", zap.String("name", p.Name), zap.Error(err))
			return
		}
		p.Dirty = false
		count++
	})
	if count > 0 {
		s.log.Debug("auto-saved players", zap.Int("count", count))
	}
}

package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wanderlands/server/internal/core/event"
	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/persist"
	"github.com/wanderlands/server/internal/world"
)

// InputSystem drains packet queues from all sessions and dispatches them
// through the packet registry. Phase 0 (Input).
type InputSystem struct {
	netServer   *net.Server
	registry    *packet.Registry
	store       *SessionTable
	maxPerTick  int
	accountRepo *persist.AccountRepo
	playerRepo  *persist.PlayerRepo
	worldState  *world.State
	bus         *event.Bus
	log         *zap.Logger
}

func NewInputSystem(
	netServer *net.Server,
	registry *packet.Registry,
	store *SessionTable,
	maxPerTick int,
	accountRepo *persist.AccountRepo,
	playerRepo *persist.PlayerRepo,
	worldState *world.State,
	bus *event.Bus,
	log *zap.Logger,
) *InputSystem {
	if maxPerTick <= 0 {
		maxPerTick = 32
	}
	return &InputSystem{
		netServer:   netServer,
		registry:    registry,
		store:       store,
		maxPerTick:  maxPerTick,
		accountRepo: accountRepo,
		playerRepo:  playerRepo,
		worldState:  worldState,
		bus:         bus,
		log:         log,
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	// Accept new sessions
	for {
		select {
		case sess := <-s.netServer.NewSessions():
			s.store.Add(sess)
		default:
			goto doneNew
		}
	}
doneNew:

	// Drain packets from each session (up to maxPerTick per session)
	for id, sess := range s.store.Raw() {
		if sess.IsClosed() {
			// Drain remaining packets before teardown so a final C_MOVE sent
			// just before the connection dropped still updates the save state.
			for i := 0; i < s.maxPerTick; i++ {
				select {
				case data := <-sess.InQueue:
					if err := s.registry.Dispatch(sess, sess.State(), data); err != nil {
						s.log.Debug("dispatch error (disconnecting)",
							zap.Uint64("session", sess.ID),
							zap.Error(err),
						)
					}
				default:
					goto doneClosing
				}
			}
		doneClosing:
			sess.FlushOutput()
			s.handleDisconnect(sess)
			s.store.Remove(id)
			continue
		}

		s.drainSession(sess)
	}

	// Early flush: packets produced in this phase (login results, enter
	// acknowledgements) reach the writeLoop while the later phases run. The
	// output phase flushes whatever the simulation phases add on top.
	s.store.Each(func(sess *net.Session) {
		sess.FlushOutput()
	})
}

// drainSession dispatches up to maxPerTick queued packets for one session.
// Leftovers stay queued for the next tick; the per-session reader blocks once
// InQueue fills, so a flooding client throttles itself rather than the loop.
func (s *InputSystem) drainSession(sess *net.Session) {
	for i := 0; i < s.maxPerTick; i++ {
		select {
		case data := <-sess.InQueue:
			if err := s.registry.Dispatch(sess, sess.State(), data); err != nil {
				s.log.Debug("dispatch error",
					zap.Uint64("session", sess.ID),
					zap.Error(err),
				)
			}
			if sess.IsClosed() {
				return
			}
		default:
			return
		}
	}
}

// handleDisconnect cleans up when a session closes without a quit packet:
// saves the player's position, removes it from world state, marks the account
// offline.
func (s *InputSystem) handleDisconnect(sess *net.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	player := s.worldState.RemovePlayer(sess.ID)
	if player != nil {
		if err := s.playerRepo.SavePosition(ctx, player.CharID, player.X, player.Y, player.Z, player.Heading); err != nil {
			s.log.Error("disconnect save failed",
				zap.String("name", player.Name), zap.Error(err))
		}
		player.Grid.Clear()
		player.Targeter.Reset()
		s.bus.Emit(event.PlayerLeft{SessionID: sess.ID, CharID: player.CharID})
		s.log.Info("player disconnected", zap.String("name", player.Name))
	}

	if sess.AccountName != "" {
		if err := s.accountRepo.SetOnline(ctx, sess.AccountName, false); err != nil {
			s.log.Error("account offline update failed",
				zap.String("account", sess.AccountName), zap.Error(err))
		}
	}
}

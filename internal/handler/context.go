package handler

import (
	"github.com/wanderlands/server/internal/config"
	"github.com/wanderlands/server/internal/core/event"
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/persist"
	"github.com/wanderlands/server/internal/scripting"
	"github.com/wanderlands/server/internal/world"
	"go.uber.org/zap"
)

// Deps holds shared dependencies injected into all packet handlers.
type Deps struct {
	AccountRepo *persist.AccountRepo
	PlayerRepo  *persist.PlayerRepo
	Config      *config.Config
	Log         *zap.Logger
	World       *world.State
	Scripting   *scripting.Engine
	Bus         *event.Bus
}

// RegisterAll registers all packet handlers into the registry.
func RegisterAll(reg *packet.Registry, deps *Deps) {
	reg.Register(packet.C_OPCODE_HELLO,
		[]packet.SessionState{packet.StateHandshake},
		func(sess any, r *packet.Reader) {
			HandleHello(sess.(*net.Session), r, deps)
		},
	)

	reg.Register(packet.C_OPCODE_LOGIN,
		[]packet.SessionState{packet.StateHelloOK},
		func(sess any, r *packet.Reader) {
			HandleLogin(sess.(*net.Session), r, deps)
		},
	)

	reg.Register(packet.C_OPCODE_ENTER,
		[]packet.SessionState{packet.StateAuthenticated},
		func(sess any, r *packet.Reader) {
			HandleEnterWorld(sess.(*net.Session), r, deps)
		},
	)

	inWorld := []packet.SessionState{packet.StateInWorld}

	reg.Register(packet.C_OPCODE_MOVE, inWorld,
		func(sess any, r *packet.Reader) {
			HandleMove(sess.(*net.Session), r, deps)
		},
	)
	reg.Register(packet.C_OPCODE_INTERACT, inWorld,
		func(sess any, r *packet.Reader) {
			HandleInteract(sess.(*net.Session), r, deps)
		},
	)

	// Always allowed (any active state)
	aliveStates := []packet.SessionState{
		packet.StateHelloOK, packet.StateAuthenticated, packet.StateInWorld,
	}
	reg.Register(packet.C_OPCODE_ALIVE, aliveStates,
		func(sess any, r *packet.Reader) {
			// Keep-alive: no-op, just prevents idle timeout
		},
	)
	reg.Register(packet.C_OPCODE_QUIT, aliveStates,
		func(sess any, r *packet.Reader) {
			HandleQuit(sess.(*net.Session), r, deps)
		},
	)
}

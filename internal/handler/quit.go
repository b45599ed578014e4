package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wanderlands/server/internal/core/event"
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
)

// HandleQuit processes C_QUIT: save, tear down, and acknowledge with a
// disconnect frame so the client can close cleanly.
func HandleQuit(sess *net.Session, r *packet.Reader, deps *Deps) {
	LeaveWorld(sess, deps)

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_DISCONNECT)
	w.WriteS("Farewell, traveler.")
	sess.Send(w.Bytes())
	sess.FlushOutput()
	sess.Close()
}

// LeaveWorld tears down whatever world state a session holds: final position
// save, player removal, grid teardown, account presence. Safe to call for
// sessions that never entered the world.
func LeaveWorld(sess *net.Session, deps *Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := deps.World.RemovePlayer(sess.ID)
	if p != nil {
		if err := deps.PlayerRepo.SavePosition(ctx, p.CharID, p.X, p.Y, p.Z, p.Heading); err != nil {
			deps.Log.Error("final position save failed", zap.String("name", p.Name), zap.Error(err))
		}
		p.Grid.Clear()
		p.Targeter.Reset()
		deps.Bus.Emit(event.PlayerLeft{SessionID: sess.ID, CharID: p.CharID})
		deps.Log.Info("player left world", zap.String("name", p.Name))
	}

	if sess.AccountName != "" {
		if err := deps.AccountRepo.SetOnline(ctx, sess.AccountName, false); err != nil {
			deps.Log.Error("account offline update failed", zap.String("account", sess.AccountName), zap.Error(err))
		}
	}
}

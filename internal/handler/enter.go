package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wanderlands/server/internal/core/event"
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/scene"
	"github.com/wanderlands/server/internal/terrain"
	"github.com/wanderlands/server/internal/world"
)

// HandleEnterWorld processes C_ENTER: load (or create on first entry) the
// account's avatar, build its streaming grid, and drop it into the world.
// The initial chunk burst happens in the same tick, when the stream system
// runs its update phase.
func HandleEnterWorld(sess *net.Session, r *packet.Reader, deps *Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := deps.PlayerRepo.LoadByAccount(ctx, sess.AccountName)
	if err != nil {
		deps.Log.Error("player load failed", zap.String("account", sess.AccountName), zap.Error(err))
		sess.Close()
		return
	}
	if row == nil {
		// First entry: spawn at the world origin, standing on the terrain.
		spawnY := terrain.HeightAt(0, 0)
		row, err = deps.PlayerRepo.Create(ctx, sess.AccountName, sess.AccountName, 0, spawnY, 0)
		if err != nil {
			deps.Log.Error("player create failed", zap.String("account", sess.AccountName), zap.Error(err))
			sess.Close()
			return
		}
	}

	// Re-check the name index at the entry boundary: the login-time checks
	// cannot see a racing session that authenticated but had not entered yet.
	if deps.World.GetByName(row.Name) != nil {
		deps.Log.Warn("duplicate world entry blocked",
			zap.String("name", row.Name), zap.Uint64("session", sess.ID))
		w := packet.NewWriterWithOpcode(packet.S_OPCODE_DISCONNECT)
		w.WriteS("character already in world")
		sess.Send(w.Bytes())
		sess.FlushOutput()
		sess.Close()
		return
	}

	wc := deps.Config.World
	p := &world.PlayerInfo{
		SessionID: sess.ID,
		Session:   sess,
		CharID:    row.ID,
		Name:      row.Name,
		X:         row.X,
		Y:         row.Y,
		Z:         row.Z,
		Heading:   row.Heading,
		Targeter:  world.NewTargeter(wc.InteractRange, wc.NoticeRange),
	}
	p.Grid = world.NewGrid(wc, scene.NewRemoteGraph(), deps.Log)
	p.Grid.SetListener(&chunkStreamer{player: p, bus: deps.Bus, res: wc.Resolution})
	p.Grid.SetPlayerPosition(p.X, p.Y, p.Z)

	deps.World.AddPlayer(p)
	sess.SetState(packet.StateInWorld)

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_ENTER_OK)
	w.WriteD(p.CharID)
	w.WriteS(p.Name)
	w.WriteF(p.X)
	w.WriteF(p.Y)
	w.WriteF(p.Z)
	w.WriteF(p.Heading)
	w.WriteF(wc.CellSize)
	w.WriteD(wc.RenderDistance)
	w.WriteD(int32(wc.Resolution))
	sess.Send(w.Bytes())

	deps.Bus.Emit(event.PlayerJoined{SessionID: sess.ID, Name: p.Name})
	deps.Log.Info("player entered world",
		zap.String("name", p.Name),
		zap.Float64("x", p.X),
		zap.Float64("z", p.Z),
	)
}

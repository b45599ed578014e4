package handler

import (
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/scripting"
	"github.com/wanderlands/server/internal/terrain"
)

// HandleInteract processes C_INTERACT: act on the current prompt target.
// The packet carries the object ID the client believes it is acting on; a
// mismatch with the server-side targeter (player walked away, prompt frame in
// flight) is silently dropped.
func HandleInteract(sess *net.Session, r *packet.Reader, deps *Deps) {
	objID := r.ReadD()

	player := deps.World.GetBySession(sess.ID)
	if player == nil {
		return
	}

	target := player.Targeter.Interactable()
	if target == nil || target.ObjectID() != objID {
		return
	}

	result := deps.Scripting.OnInteract(scripting.InteractContext{
		Kind:       target.Kind(),
		ObjectName: target.Label(),
		PlayerName: player.Name,
		Biome:      terrain.ClassifyBiome(player.X, player.Z).String(),
	})

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_MESSAGE)
	w.WriteS(result.Message)
	w.WriteS(result.Effect)
	sess.Send(w.Bytes())
}

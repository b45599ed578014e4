package handler

import (
	"github.com/wanderlands/server/internal/core/event"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/terrain"
	"github.com/wanderlands/server/internal/world"
)

// chunkStreamer bridges one player's grid to their session: residency changes
// become S_CHUNK_LOAD / S_CHUNK_UNLOAD frames plus bus events for the
// follow-up systems (props, ambience). Runs inline inside Grid.Tick on the
// game loop goroutine.
type chunkStreamer struct {
	player *world.PlayerInfo
	bus    *event.Bus
	res    int
}

func (cs *chunkStreamer) CellLoaded(c *world.Cell, m *terrain.Mesh) {
	app := terrain.AppearanceFor(c.Biome)

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_CHUNK_LOAD)
	w.WriteD(c.Coord.X)
	w.WriteD(c.Coord.Z)
	w.WriteC(byte(c.Biome))
	w.WriteF(float64(app.Color[0]))
	w.WriteF(float64(app.Color[1]))
	w.WriteF(float64(app.Color[2]))
	w.WriteF(float64(app.Roughness))
	w.WriteH(uint16(cs.res + 1)) // samples per edge
	for _, h := range m.Heights {
		w.WriteF(float64(h))
	}
	cs.player.Session.Send(w.Bytes())

	cs.bus.Emit(event.ChunkLoaded{
		SessionID: cs.player.SessionID,
		Coord:     c.Coord,
		Biome:     c.Biome,
	})
}

func (cs *chunkStreamer) CellUnloaded(c *world.Cell) {
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_CHUNK_UNLOAD)
	w.WriteD(c.Coord.X)
	w.WriteD(c.Coord.Z)
	cs.player.Session.Send(w.Bytes())

	cs.bus.Emit(event.ChunkUnloaded{
		SessionID: cs.player.SessionID,
		Coord:     c.Coord,
	})
}

package system

import (
	"time"

	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/data"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/world"
)

// AmbienceSystem detects biome crossings and streams the soundscape preset
// for the new biome. The biome is read from the resident cell under the
// player, so it always matches the terrain the client is standing on.
// Phase 3 (PostUpdate), after the stream phase loads the cell.
type AmbienceSystem struct {
	world *world.State
	table *data.AmbienceTable
}

func NewAmbienceSystem(ws *world.State, table *data.AmbienceTable) *AmbienceSystem {
	return &AmbienceSystem{world: ws, table: table}
}

func (s *AmbienceSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *AmbienceSystem) Update(_ time.Duration) {
	s.world.AllPlayers(func(p *world.PlayerInfo) {
		cell := p.Grid.CellAt(p.Grid.PlayerCell())
		if cell == nil {
			return
		}
		if p.BiomeKnown && cell.Biome == p.Biome {
			return
		}
		p.Biome = cell.Biome
		p.BiomeKnown = true

		preset := s.table.Get(cell.Biome.String())
		if preset == nil {
			return
		}
		w := packet.NewWriterWithOpcode(packet.S_OPCODE_AMBIENCE)
		w.WriteC(byte(cell.Biome))
		w.WriteS(preset.Track)
		w.WriteF(preset.Volume)
		w.WriteF(preset.Reverb)
		w.WriteF(preset.WindLevel)
		p.Session.Send(w.Bytes())
	})
}

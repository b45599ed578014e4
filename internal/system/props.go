package system

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/wanderlands/server/internal/core/event"
	coresys "github.com/wanderlands/server/internal/core/system"
	"github.com/wanderlands/server/internal/net/packet"
	"github.com/wanderlands/server/internal/scripting"
	"github.com/wanderlands/server/internal/terrain"
	"github.com/wanderlands/server/internal/world"
)

// PropSystem scatters decoration props (trees, rocks, shrubs) over cells as
// they load and clears them as cells unload. Placement is derived from the
// cell coordinate alone, so a cell that unloads and reloads gets the same
// props back. Event-driven: the work runs when the event system dispatches
// last tick's residency changes. Phase 3 (PostUpdate).
type PropSystem struct {
	world     *world.State
	scripting *scripting.Engine
	cellSize  float64

	// Decoration sets per biome, resolved from Lua once and cached.
	decorations map[string][]scripting.DecorationSpec
}

func NewPropSystem(ws *world.State, eng *scripting.Engine, bus *event.Bus, cellSize float64) *PropSystem {
	s := &PropSystem{
		world:       ws,
		scripting:   eng,
		cellSize:    cellSize,
		decorations: make(map[string][]scripting.DecorationSpec),
	}
	bus.OnChunkLoaded(s.onChunkLoaded)
	bus.OnChunkUnloaded(s.onChunkUnloaded)
	return s
}

func (s *PropSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

// Update is a no-op; the system reacts to bus events only.
func (s *PropSystem) Update(_ time.Duration) {}

func (s *PropSystem) specsFor(biome string) []scripting.DecorationSpec {
	specs, ok := s.decorations[biome]
	if !ok {
		specs = s.scripting.GetDecorations(biome)
		s.decorations[biome] = specs
	}
	return specs
}

func (s *PropSystem) onChunkLoaded(ev event.ChunkLoaded) {
	p := s.world.GetBySession(ev.SessionID)
	if p == nil {
		return
	}
	specs := s.specsFor(ev.Biome.String())
	if len(specs) == 0 {
		return
	}

	rng := rand.New(rand.NewSource(cellSeed(ev.Coord)))
	originX := float64(ev.Coord.X) * s.cellSize
	originZ := float64(ev.Coord.Z) * s.cellSize

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_PROP_SPAWN)
	w.WriteD(ev.Coord.X)
	w.WriteD(ev.Coord.Z)
	w.WriteC(byte(len(specs)))
	for _, spec := range specs {
		w.WriteS(spec.Prop)
		w.WriteH(uint16(spec.Count))
		for i := 0; i < spec.Count; i++ {
			x := originX + rng.Float64()*s.cellSize
			z := originZ + rng.Float64()*s.cellSize
			scale := spec.MinScale + rng.Float64()*(spec.MaxScale-spec.MinScale)
			w.WriteF(x)
			w.WriteF(terrain.HeightAt(x, z))
			w.WriteF(z)
			w.WriteF(scale)
			w.WriteF(rng.Float64() * 2 * math.Pi)
		}
	}
	p.Session.Send(w.Bytes())
}

func (s *PropSystem) onChunkUnloaded(ev event.ChunkUnloaded) {
	p := s.world.GetBySession(ev.SessionID)
	if p == nil {
		return
	}
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_PROP_CLEAR)
	w.WriteD(ev.Coord.X)
	w.WriteD(ev.Coord.Z)
	p.Session.Send(w.Bytes())
}

// cellSeed folds a cell coordinate into a stable RNG seed.
func cellSeed(c world.CellCoord) int64 {
	h := fnv.New64a()
	var b [8]byte
	b[0] = byte(c.X)
	b[1] = byte(c.X >> 8)
	b[2] = byte(c.X >> 16)
	b[3] = byte(c.X >> 24)
	b[4] = byte(c.Z)
	b[5] = byte(c.Z >> 8)
	b[6] = byte(c.Z >> 16)
	b[7] = byte(c.Z >> 24)
	h.Write(b[:])
	return int64(h.Sum64())
}

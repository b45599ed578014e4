package event

import (
	"github.com/wanderlands/server/internal/terrain"
	"github.com/wanderlands/server/internal/world"
)

// Event is the sealed set of world events carried by the Bus.
type Event interface {
	isEvent()
}

// ChunkLoaded fires when a viewer's grid brings a cell into residency.
type ChunkLoaded struct {
	SessionID uint64
	Coord     world.CellCoord
	Biome     terrain.Biome
}

// ChunkUnloaded fires when a viewer's grid drops a cell.
type ChunkUnloaded struct {
	SessionID uint64
	Coord     world.CellCoord
}

// PlayerJoined fires after a player enters the world.
type PlayerJoined struct {
	SessionID uint64
	Name      string
}

// PlayerLeft fires after a player record is removed from the world.
type PlayerLeft struct {
	SessionID uint64
	CharID    int32
}

func (ChunkLoaded) isEvent()   {}
func (ChunkUnloaded) isEvent() {}
func (PlayerJoined) isEvent()  {}
func (PlayerLeft) isEvent()    {}

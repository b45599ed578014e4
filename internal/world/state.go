package world

import (
	"github.com/wanderlands/server/internal/net"
	"github.com/wanderlands/server/internal/terrain"
)

// PlayerInfo holds in-memory data for a player currently in-world.
// Accessed only from the game loop goroutine — no locks needed.
type PlayerInfo struct {
	SessionID uint64
	Session   *net.Session
	CharID    int32 // DB ID
	Name      string

	X, Y, Z float64
	Heading float64 // radians around +Y

	// Grid is this viewer's streaming grid; Targeter its interaction prompt.
	// Both are owned by the player record and torn down with it.
	Grid     *Grid
	Targeter *Targeter

	// Biome of the cell the player stands in, for ambience crossings.
	// BiomeKnown is false until the first stream tick resolves it.
	Biome      terrain.Biome
	BiomeKnown bool

	LastMoveTime int64 // UnixNano of last accepted position sample

	// Dirty marks unsaved position state. The persistence system only saves
	// dirty players and resets the flag after a successful save.
	Dirty bool
}

// State is the single top-level owner of all in-world mutable registries:
// players and the environment catalog. One instance per process, mutated only
// from the game loop goroutine.
type State struct {
	players map[uint64]*PlayerInfo
	byName  map[string]uint64

	env     map[int32]EnvObject
	envList []EnvObject // stable slice handed to targeter scans
}

func NewState() *State {
	return &State{
		players: make(map[uint64]*PlayerInfo),
		byName:  make(map[string]uint64),
		env:     make(map[int32]EnvObject),
	}
}

// AddPlayer registers a player entering the world.
func (s *State) AddPlayer(p *PlayerInfo) {
	s.players[p.SessionID] = p
	s.byName[p.Name] = p.SessionID
}

// RemovePlayer drops a player and returns the removed record (nil if absent).
// The name index entry is removed only while it still points at this session,
// so removing one record can never orphan a same-named survivor.
func (s *State) RemovePlayer(sessionID uint64) *PlayerInfo {
	p, ok := s.players[sessionID]
	if !ok {
		return nil
	}
	delete(s.players, sessionID)
	if s.byName[p.Name] == sessionID {
		delete(s.byName, p.Name)
	}
	return p
}

// GetBySession returns the player for a session ID, or nil.
func (s *State) GetBySession(sessionID uint64) *PlayerInfo {
	return s.players[sessionID]
}

// GetByName returns the player with the given character name, or nil.
func (s *State) GetByName(name string) *PlayerInfo {
	id, ok := s.byName[name]
	if !ok {
		return nil
	}
	return s.players[id]
}

// AllPlayers calls fn for every in-world player.
func (s *State) AllPlayers(fn func(*PlayerInfo)) {
	for _, p := range s.players {
		fn(p)
	}
}

// PlayerCount returns the number of players in-world.
func (s *State) PlayerCount() int { return len(s.players) }

// UpdatePosition records a position sample for a player and forwards it to the
// player's streaming grid. The grid reacts on its next tick, not here.
func (s *State) UpdatePosition(sessionID uint64, x, y, z, heading float64, when int64) {
	p := s.players[sessionID]
	if p == nil {
		return
	}
	p.X, p.Y, p.Z = x, y, z
	p.Heading = heading
	p.LastMoveTime = when
	p.Dirty = true
	if p.Grid != nil {
		p.Grid.SetPlayerPosition(x, y, z)
	}
}

// AddEnvObject places an environment object into the catalog.
func (s *State) AddEnvObject(obj EnvObject) {
	s.env[obj.ObjectID()] = obj
	s.envList = append(s.envList, obj)
}

// EnvByID returns the environment object with the given ID, or nil.
func (s *State) EnvByID(id int32) EnvObject {
	return s.env[id]
}

// EnvObjects returns the catalog as a slice. Callers must not mutate it.
func (s *State) EnvObjects() []EnvObject {
	return s.envList
}

// EnvCount returns the catalog size.
func (s *State) EnvCount() int { return len(s.env) }

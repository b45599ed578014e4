package scene

import (
	"errors"

	"github.com/wanderlands/server/internal/terrain"
)

// MemoryGraph holds created surfaces in a map. Used by tests and by headless
// tools that tick a grid without a client attached.
type MemoryGraph struct {
	nextID   SurfaceID
	surfaces map[SurfaceID]*terrain.Mesh

	// FailNext makes the next N CreateSurface calls fail, for exercising the
	// retry-on-next-tick path.
	FailNext int

	Created   int
	Destroyed int
}

var errCreateRefused = errors.New("scene: surface allocation refused")

func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{surfaces: make(map[SurfaceID]*terrain.Mesh)}
}

func (g *MemoryGraph) CreateSurface(m *terrain.Mesh, _ terrain.Appearance) (SurfaceID, error) {
	if g.FailNext > 0 {
		g.FailNext--
		return 0, errCreateRefused
	}
	g.nextID++
	g.surfaces[g.nextID] = m
	g.Created++
	return g.nextID, nil
}

func (g *MemoryGraph) DestroySurface(id SurfaceID) {
	delete(g.surfaces, id)
	g.Destroyed++
}

// Len returns the number of live surfaces.
func (g *MemoryGraph) Len() int { return len(g.surfaces) }

package scene

import "github.com/wanderlands/server/internal/terrain"

// RemoteGraph is the Graph for a networked viewer: the surface memory lives on
// the client, so creation is just handle allocation and never fails. The grid
// listener streams the actual geometry; the handle keeps cell ownership
// uniform across graph implementations.
type RemoteGraph struct {
	nextID SurfaceID
	live   int
}

func NewRemoteGraph() *RemoteGraph {
	return &RemoteGraph{}
}

func (g *RemoteGraph) CreateSurface(_ *terrain.Mesh, _ terrain.Appearance) (SurfaceID, error) {
	g.nextID++
	g.live++
	return g.nextID, nil
}

func (g *RemoteGraph) DestroySurface(_ SurfaceID) {
	g.live--
}

// Len returns the number of live surfaces.
func (g *RemoteGraph) Len() int { return g.live }

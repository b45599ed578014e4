// Package scene abstracts the retained-mode scene graph the streaming grid
// feeds. The server never renders; a Graph either records surfaces in memory
// (tests, headless tools) or streams them to a connected client.
package scene

import "github.com/wanderlands/server/internal/terrain"

// SurfaceID is an opaque handle to a created surface. Zero is never a valid
// handle.
type SurfaceID uint64

// Graph is the set of engine primitives the grid is allowed to call:
// create a surface with an appearance, and destroy it again. Implementations
// are invoked only from the game loop goroutine.
type Graph interface {
	CreateSurface(m *terrain.Mesh, app terrain.Appearance) (SurfaceID, error)
	DestroySurface(id SurfaceID)
}

package world

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/wanderlands/server/internal/config"
	"github.com/wanderlands/server/internal/scene"
	"github.com/wanderlands/server/internal/terrain"
)

// CellCoord identifies one streaming cell. World origin of a cell is
// (X*cellSize, Z*cellSize).
type CellCoord struct {
	X int32
	Z int32
}

// Cell is one resident terrain cell. The grid exclusively owns every Cell it
// creates; nothing else may hold the surface handle past unload.
type Cell struct {
	Coord   CellCoord
	OriginX float64
	OriginZ float64
	Biome   terrain.Biome
	Surface scene.SurfaceID
}

// GridListener observes residency changes. Callbacks run inline during Tick,
// on the game loop goroutine.
type GridListener interface {
	CellLoaded(c *Cell, m *terrain.Mesh)
	CellUnloaded(c *Cell)
}

// Grid keeps the resident cell set matched to the viewer's position.
// A cell is resident iff its Chebyshev distance from the viewer's cell is
// ≤ renderDistance; unload happens one cell later (renderDistance+1) so a
// viewer pacing on a cell boundary does not thrash load/unload.
// Accessed only from the game loop goroutine — no locks.
type Grid struct {
	cellSize   float64
	renderDist int32
	maxChunks  int
	res        int

	graph    scene.Graph
	listener GridListener
	log      *zap.Logger

	cells      map[CellCoord]*Cell
	px, py, pz float64
}

func NewGrid(cfg config.WorldConfig, graph scene.Graph, log *zap.Logger) *Grid {
	return &Grid{
		cellSize:   cfg.CellSize,
		renderDist: cfg.RenderDistance,
		maxChunks:  cfg.MaxChunks,
		res:        cfg.Resolution,
		graph:      graph,
		log:        log,
		cells:      make(map[CellCoord]*Cell),
	}
}

// SetListener attaches a residency observer. Pass nil to detach.
func (g *Grid) SetListener(l GridListener) { g.listener = l }

// SetPlayerPosition records the latest viewer position. No side effects; the
// load/unload pass happens on the next Tick.
func (g *Grid) SetPlayerPosition(x, y, z float64) {
	g.px, g.py, g.pz = x, y, z
}

func (g *Grid) toCell(v float64) int32 {
	return int32(math.Floor(v / g.cellSize))
}

// PlayerCell returns the cell coordinate of the last recorded position.
func (g *Grid) PlayerCell() CellCoord {
	return CellCoord{X: g.toCell(g.px), Z: g.toCell(g.pz)}
}

func chebyshev(a, b CellCoord) int32 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dz := a.Z - b.Z
	if dz < 0 {
		dz = -dz
	}
	if dz > dx {
		return dz
	}
	return dx
}

// Tick reconciles the resident set with the viewer's current cell: a square
// load scan over [-renderDist, +renderDist]² (deliberately square, not
// circular), then an unload pass over everything past renderDist+1, then cap
// enforcement. Creation is synchronous; a burst after a teleport lengthens
// this tick rather than being spread across frames.
func (g *Grid) Tick() {
	pc := g.PlayerCell()

	for dz := -g.renderDist; dz <= g.renderDist; dz++ {
		for dx := -g.renderDist; dx <= g.renderDist; dx++ {
			coord := CellCoord{X: pc.X + dx, Z: pc.Z + dz}
			if _, ok := g.cells[coord]; !ok {
				g.load(coord)
			}
		}
	}

	for coord, c := range g.cells {
		if chebyshev(coord, pc) > g.renderDist+1 {
			g.unload(c)
		}
	}

	g.enforceCap(pc)
}

// load creates one cell: sample the height field over every vertex, build the
// surface, apply the biome preset. On engine refusal the cell simply stays
// absent — the next Tick retries it for as long as it is in range.
func (g *Grid) load(coord CellCoord) {
	originX := float64(coord.X) * g.cellSize
	originZ := float64(coord.Z) * g.cellSize
	centerX := originX + g.cellSize/2
	centerZ := originZ + g.cellSize/2
	biome := terrain.ClassifyBiome(centerX, centerZ)

	mesh := terrain.BuildSurface(originX, originZ, g.cellSize, g.res)
	id, err := g.graph.CreateSurface(mesh, terrain.AppearanceFor(biome))
	if err != nil {
		g.log.Warn("cell load failed, retrying next tick",
			zap.Int32("cx", coord.X), zap.Int32("cz", coord.Z), zap.Error(err))
		return
	}

	c := &Cell{
		Coord:   coord,
		OriginX: originX,
		OriginZ: originZ,
		Biome:   biome,
		Surface: id,
	}
	g.cells[coord] = c
	if g.listener != nil {
		g.listener.CellLoaded(c, mesh)
	}
}

func (g *Grid) unload(c *Cell) {
	g.graph.DestroySurface(c.Surface)
	delete(g.cells, c.Coord)
	if g.listener != nil {
		g.listener.CellUnloaded(c)
	}
}

// enforceCap evicts farthest-first until the resident count fits maxChunks.
// Only hysteresis-zone cells (distance renderDist+1) are candidates; the
// render-distance footprint itself is never evicted, which config validation
// guarantees fits under the cap.
func (g *Grid) enforceCap(pc CellCoord) {
	if g.maxChunks <= 0 || len(g.cells) <= g.maxChunks {
		return
	}
	var candidates []*Cell
	for coord, c := range g.cells {
		if chebyshev(coord, pc) > g.renderDist {
			candidates = append(candidates, c)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return chebyshev(candidates[i].Coord, pc) > chebyshev(candidates[j].Coord, pc)
	})
	for _, c := range candidates {
		if len(g.cells) <= g.maxChunks {
			break
		}
		g.unload(c)
	}
}

// Resident reports whether a cell coordinate is currently loaded.
func (g *Grid) Resident(coord CellCoord) bool {
	_, ok := g.cells[coord]
	return ok
}

// CellAt returns the resident cell at coord, or nil.
func (g *Grid) CellAt(coord CellCoord) *Cell {
	return g.cells[coord]
}

// Len returns the resident cell count.
func (g *Grid) Len() int { return len(g.cells) }

// Each calls fn for every resident cell. Iteration order is unspecified.
func (g *Grid) Each(fn func(*Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Clear unloads every resident cell. Used when a viewer leaves the world.
func (g *Grid) Clear() {
	for _, c := range g.cells {
		g.unload(c)
	}
}

package world

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wanderlands/server/internal/config"
	"github.com/wanderlands/server/internal/scene"
	"github.com/wanderlands/server/internal/terrain"
)

func testWorldConfig(renderDist int32, maxChunks int) config.WorldConfig {
	return config.WorldConfig{
		CellSize:       100,
		RenderDistance: renderDist,
		MaxChunks:      maxChunks,
		Resolution:     4,
		InteractRange:  5,
		NoticeRange:    15,
	}
}

func newTestGrid(renderDist int32, maxChunks int) (*Grid, *scene.MemoryGraph) {
	graph := scene.NewMemoryGraph()
	g := NewGrid(testWorldConfig(renderDist, maxChunks), graph, zap.NewNop())
	return g, graph
}

// recordingListener counts residency callbacks.
type recordingListener struct {
	loaded   []CellCoord
	unloaded []CellCoord
}

func (l *recordingListener) CellLoaded(c *Cell, _ *terrain.Mesh) {
	l.loaded = append(l.loaded, c.Coord)
}

func (l *recordingListener) CellUnloaded(c *Cell) {
	l.unloaded = append(l.unloaded, c.Coord)
}

func TestInitialTickLoadsFootprint(t *testing.T) {
	g, graph := newTestGrid(1, 0)
	g.SetPlayerPosition(50, 0, 50)
	g.Tick()

	require.Equal(t, 9, g.Len())
	require.Equal(t, 9, graph.Len())
	for dz := int32(-1); dz <= 1; dz++ {
		for dx := int32(-1); dx <= 1; dx++ {
			require.True(t, g.Resident(CellCoord{X: dx, Z: dz}))
		}
	}
}

func TestSecondTickIsIdempotent(t *testing.T) {
	g, graph := newTestGrid(1, 0)
	g.SetPlayerPosition(50, 0, 50)
	g.Tick()
	created := graph.Created

	g.Tick()
	require.Equal(t, 9, g.Len())
	require.Equal(t, created, graph.Created)
	require.Zero(t, graph.Destroyed)
}

func TestSingleAxisMoveLoadsNewColumn(t *testing.T) {
	g, graph := newTestGrid(1, 0)
	g.SetPlayerPosition(50, 0, 50)
	g.Tick()

	// One cell east: column x=2 loads; column x=-1 is at distance 2 = rd+1,
	// inside the hysteresis band, so it stays resident.
	g.SetPlayerPosition(150, 0, 50)
	g.Tick()

	require.Equal(t, 12, g.Len())
	require.Zero(t, graph.Destroyed)
	for dz := int32(-1); dz <= 1; dz++ {
		require.True(t, g.Resident(CellCoord{X: 2, Z: dz}))
		require.True(t, g.Resident(CellCoord{X: -1, Z: dz}))
	}
}

func TestHysteresisUnloadsPastBand(t *testing.T) {
	g, _ := newTestGrid(1, 0)
	g.SetPlayerPosition(50, 0, 50)
	g.Tick()

	// Two cells east: column x=-1 is now at distance 3 > rd+1 and unloads.
	g.SetPlayerPosition(250, 0, 50)
	g.Tick()

	for dz := int32(-1); dz <= 1; dz++ {
		require.False(t, g.Resident(CellCoord{X: -1, Z: dz}))
	}
	require.Equal(t, 12, g.Len()) // columns 1..3 plus hysteresis column 0
	for dz := int32(-1); dz <= 1; dz++ {
		require.True(t, g.Resident(CellCoord{X: 0, Z: dz}))
	}
}

func TestCellAtExactlyHysteresisDistanceStays(t *testing.T) {
	g, _ := newTestGrid(2, 0)
	g.SetPlayerPosition(0, 0, 0)
	g.Tick()
	require.True(t, g.Resident(CellCoord{X: 2, Z: 0}))

	// Move one cell west: (2,0) is now at Chebyshev distance 3 = rd+1.
	// Unload requires strictly greater, so it stays.
	g.SetPlayerPosition(-100, 0, 0)
	g.Tick()
	require.True(t, g.Resident(CellCoord{X: 2, Z: 0}))

	// One more cell west pushes it to distance 4 and out.
	g.SetPlayerPosition(-200, 0, 0)
	g.Tick()
	require.False(t, g.Resident(CellCoord{X: 2, Z: 0}))
}

func TestTeleportReplacesResidentSet(t *testing.T) {
	g, graph := newTestGrid(1, 0)
	g.SetPlayerPosition(50, 0, 50)
	g.Tick()

	g.SetPlayerPosition(100050, 0, 100050)
	g.Tick()

	require.Equal(t, 9, g.Len())
	require.Equal(t, 9, graph.Len())
	require.Equal(t, 9, graph.Destroyed)
	require.True(t, g.Resident(CellCoord{X: 1000, Z: 1000}))
	require.False(t, g.Resident(CellCoord{X: 0, Z: 0}))
}

func TestNegativeCoordinateCellMapping(t *testing.T) {
	g, _ := newTestGrid(0, 0)

	g.SetPlayerPosition(-0.5, 0, -0.5)
	require.Equal(t, CellCoord{X: -1, Z: -1}, g.PlayerCell())

	g.SetPlayerPosition(-100, 0, -100)
	require.Equal(t, CellCoord{X: -1, Z: -1}, g.PlayerCell())

	g.SetPlayerPosition(-100.01, 0, -100.01)
	require.Equal(t, CellCoord{X: -2, Z: -2}, g.PlayerCell())
}

func TestCellUniqueness(t *testing.T) {
	g, graph := newTestGrid(1, 0)
	// Pace back and forth over a cell boundary for many ticks. Each coordinate
	// may be resident at most once; create/destroy counts stay balanced.
	for i := 0; i < 50; i++ {
		x := 95.0
		if i%2 == 1 {
			x = 105.0
		}
		g.SetPlayerPosition(x, 0, 50)
		g.Tick()
		require.Equal(t, g.Len(), graph.Len())
	}
	// The boundary pace never moves the viewer's cell beyond neighbors, so
	// nothing ever crosses the hysteresis band.
	require.Zero(t, graph.Destroyed)
	require.Equal(t, 12, g.Len())
}

func TestLoadFailureRetriesNextTick(t *testing.T) {
	g, graph := newTestGrid(1, 0)
	graph.FailNext = 3

	g.SetPlayerPosition(50, 0, 50)
	g.Tick()
	require.Equal(t, 6, g.Len()) // three refusals leave three cells absent

	g.Tick()
	require.Equal(t, 9, g.Len())
}

func TestMaxChunksEvictsFarthestFirst(t *testing.T) {
	g, _ := newTestGrid(1, 9)
	g.SetPlayerPosition(50, 0, 50)
	g.Tick()
	require.Equal(t, 9, g.Len())

	// Move one cell east: 3 new cells load (12 resident), cap 9 forces the
	// hysteresis column x=-1 out. The rd footprint around the new cell stays.
	g.SetPlayerPosition(150, 0, 50)
	g.Tick()

	require.Equal(t, 9, g.Len())
	for dz := int32(-1); dz <= 1; dz++ {
		require.False(t, g.Resident(CellCoord{X: -1, Z: dz}))
		for dx := int32(0); dx <= 2; dx++ {
			require.True(t, g.Resident(CellCoord{X: dx, Z: dz}))
		}
	}
}

func TestClearUnloadsEverything(t *testing.T) {
	g, graph := newTestGrid(2, 0)
	g.SetPlayerPosition(0, 0, 0)
	g.Tick()
	require.Equal(t, 25, g.Len())

	g.Clear()
	require.Zero(t, g.Len())
	require.Zero(t, graph.Len())
}

func TestListenerSeesResidencyChanges(t *testing.T) {
	g, _ := newTestGrid(1, 0)
	l := &recordingListener{}
	g.SetListener(l)

	g.SetPlayerPosition(50, 0, 50)
	g.Tick()
	require.Len(t, l.loaded, 9)
	require.Empty(t, l.unloaded)

	g.SetPlayerPosition(100050, 0, 50)
	g.Tick()
	require.Len(t, l.loaded, 18)
	require.Len(t, l.unloaded, 9)
}

package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog() []EnvObject {
	return []EnvObject{
		&Village{ID: 1, Name: "Heartfield", X: 0, Z: 0},
		&Temple{ID: 2, Name: "Quiet Sun", X: 100, Z: 0},
		&Market{ID: 3, Name: "Caravan Rest", X: 0, Z: 100},
	}
}

func TestTargeterStateProgression(t *testing.T) {
	tr := NewTargeter(5, 15)
	objs := testCatalog()

	// Far away: nothing noticed.
	changed := tr.Update(50, 50, objs)
	require.False(t, changed)
	require.Equal(t, PromptNone, tr.State())
	require.Nil(t, tr.Target())

	// Within notice range of the village, outside interact range.
	changed = tr.Update(10, 0, objs)
	require.True(t, changed)
	require.Equal(t, PromptNoticed, tr.State())
	require.Equal(t, int32(1), tr.Target().ObjectID())
	require.Nil(t, tr.Interactable())

	// Step into interact range.
	changed = tr.Update(3, 0, objs)
	require.True(t, changed)
	require.Equal(t, PromptActive, tr.State())
	require.NotNil(t, tr.Interactable())
	require.Equal(t, int32(1), tr.Interactable().ObjectID())

	// Walk away again.
	changed = tr.Update(200, 200, objs)
	require.True(t, changed)
	require.Equal(t, PromptNone, tr.State())
	require.Nil(t, tr.Interactable())
}

func TestTargeterNoChangeNoSignal(t *testing.T) {
	tr := NewTargeter(5, 15)
	objs := testCatalog()

	require.True(t, tr.Update(10, 0, objs))
	// Small shuffle that keeps the same target and state.
	require.False(t, tr.Update(11, 0, objs))
	require.False(t, tr.Update(10, 1, objs))
}

func TestTargeterPicksNearest(t *testing.T) {
	tr := NewTargeter(5, 200)
	objs := testCatalog()

	tr.Update(60, 0, objs) // 60 from village, 40 from temple
	require.Equal(t, int32(2), tr.Target().ObjectID())

	changed := tr.Update(40, 0, objs) // now 40 from village, 60 from temple
	require.True(t, changed)
	require.Equal(t, int32(1), tr.Target().ObjectID())
}

func TestTargeterBoundaryInclusive(t *testing.T) {
	tr := NewTargeter(5, 15)
	objs := testCatalog()

	// Exactly at notice range.
	tr.Update(15, 0, objs)
	require.Equal(t, PromptNoticed, tr.State())

	// Exactly at interact range.
	tr.Update(5, 0, objs)
	require.Equal(t, PromptActive, tr.State())
}

func TestTargeterNoticeBelowInteractClamped(t *testing.T) {
	tr := NewTargeter(10, 2)
	objs := testCatalog()

	tr.Update(8, 0, objs)
	require.Equal(t, PromptActive, tr.State())
}

func TestTargeterReset(t *testing.T) {
	tr := NewTargeter(5, 15)
	objs := testCatalog()
	tr.Update(3, 0, objs)
	require.Equal(t, PromptActive, tr.State())

	tr.Reset()
	require.Equal(t, PromptNone, tr.State())
	require.Nil(t, tr.Target())

	// The next update re-signals even though the player did not move.
	require.True(t, tr.Update(3, 0, objs))
}

func TestStateRegistries(t *testing.T) {
	s := NewState()
	p := &PlayerInfo{SessionID: 7, CharID: 42, Name: "Aster"}
	s.AddPlayer(p)

	require.Equal(t, p, s.GetBySession(7))
	require.Equal(t, p, s.GetByName("Aster"))
	require.Equal(t, 1, s.PlayerCount())

	s.UpdatePosition(7, 10, 2, -3, 1.5, 99)
	require.Equal(t, 10.0, p.X)
	require.Equal(t, 1.5, p.Heading)
	require.True(t, p.Dirty)
	require.EqualValues(t, 99, p.LastMoveTime)

	removed := s.RemovePlayer(7)
	require.Equal(t, p, removed)
	require.Nil(t, s.GetBySession(7))
	require.Nil(t, s.GetByName("Aster"))
	require.Nil(t, s.RemovePlayer(7))
}

func TestRemovePlayerKeepsSameNameSurvivor(t *testing.T) {
	s := NewState()
	first := &PlayerInfo{SessionID: 1, CharID: 10, Name: "Aster"}
	second := &PlayerInfo{SessionID: 2, CharID: 10, Name: "Aster"}
	s.AddPlayer(first)
	s.AddPlayer(second)

	// Removing the older record must not blind the name index to the
	// surviving session, or the one-session-per-name guard stops seeing it.
	s.RemovePlayer(1)
	require.Nil(t, s.GetBySession(1))
	require.Equal(t, second, s.GetBySession(2))
	require.Equal(t, second, s.GetByName("Aster"))

	s.RemovePlayer(2)
	require.Nil(t, s.GetByName("Aster"))
}

func TestStateEnvCatalog(t *testing.T) {
	s := NewState()
	for _, obj := range testCatalog() {
		s.AddEnvObject(obj)
	}
	require.Equal(t, 3, s.EnvCount())
	require.Equal(t, "Quiet Sun", s.EnvByID(2).Label())
	require.Nil(t, s.EnvByID(99))
	require.Len(t, s.EnvObjects(), 3)
}

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeYaml(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadEnvTable(t *testing.T) {
	path := writeYaml(t, "env.yaml", `
objects:
  - id: 1
    kind: village
    name: Heartfield
    x: 20
    z: -15
    houses: 14
    population: 52
  - id: 2
    kind: temple
    name: Quiet Sun
    x: -60
    z: 10
    deity: The Quiet Sun
    lit: true
`)
	tbl, err := LoadEnvTable(path)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Count())

	v := tbl.Get(1)
	require.NotNil(t, v)
	require.Equal(t, "village", v.Kind)
	require.Equal(t, 14, v.Houses)

	tp := tbl.Get(2)
	require.Equal(t, "The Quiet Sun", tp.Deity)
	require.True(t, tp.Lit)

	require.Nil(t, tbl.Get(99))

	var order []int32
	tbl.Each(func(e *EnvEntry) { order = append(order, e.ID) })
	require.Equal(t, []int32{1, 2}, order)
}

func TestLoadEnvTableRejectsUnknownKind(t *testing.T) {
	path := writeYaml(t, "env.yaml", `
objects:
  - id: 1
    kind: volcano
    name: Mount Doom
`)
	_, err := LoadEnvTable(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown kind")
}

func TestLoadEnvTableRejectsDuplicateID(t *testing.T) {
	path := writeYaml(t, "env.yaml", `
objects:
  - id: 1
    kind: village
    name: A
  - id: 1
    kind: market
    name: B
`)
	_, err := LoadEnvTable(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestLoadAmbienceTable(t *testing.T) {
	path := writeYaml(t, "amb.yaml", `
presets:
  - biome: forest
    track: amb_forest_birds
    volume: 0.8
    reverb: 0.3
    wind_level: 0.4
  - biome: desert
    track: amb_desert_sparse
    volume: 0.5
`)
	tbl, err := LoadAmbienceTable(path)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Count())

	f := tbl.Get("forest")
	require.NotNil(t, f)
	require.Equal(t, "amb_forest_birds", f.Track)
	require.Equal(t, 0.8, f.Volume)

	require.Nil(t, tbl.Get("tundra"))
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadEnvTable("does/not/exist.yaml")
	require.Error(t, err)
	_, err = LoadAmbienceTable("does/not/exist.yaml")
	require.Error(t, err)
}

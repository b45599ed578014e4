package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
name = "Testlands"

[world]
render_distance = 2
max_chunks = 30

[network]
tick_rate = "50ms"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "Testlands", cfg.Server.Name)
	require.EqualValues(t, 2, cfg.World.RenderDistance)
	require.Equal(t, 30, cfg.World.MaxChunks)
	require.Equal(t, 50*time.Millisecond, cfg.Network.TickRate)

	// Untouched keys keep their defaults.
	require.Equal(t, 100.0, cfg.World.CellSize)
	require.Equal(t, 32, cfg.World.Resolution)
	require.Equal(t, "0.0.0.0:7411", cfg.Network.BindAddress)
	require.NotZero(t, cfg.Server.StartTime)
}

func TestLoadRejectsCapBelowFootprint(t *testing.T) {
	path := writeConfig(t, `
[world]
render_distance = 3
max_chunks = 10
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_chunks")
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"zero cell size":  "[world]\ncell_size = 0.0\n",
		"negative radius": "[world]\nrender_distance = -1\n",
		"zero resolution": "[world]\nresolution = 0\n",
		"oversized resolution": "[world]\nresolution = 200\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLoadUncappedAllowed(t *testing.T) {
	path := writeConfig(t, "[world]\nmax_chunks = 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Zero(t, cfg.World.MaxChunks)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

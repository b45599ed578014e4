package terrain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyBiomeRings(t *testing.T) {
	tests := []struct {
		name string
		x, z float64
		want Biome
	}{
		{"origin", 0, 0, BiomeVillage},
		{"inside village ring", 99, 0, BiomeVillage},
		{"village boundary is forest", 100, 0, BiomeForest},
		{"just past village", 101, 0, BiomeForest},
		{"inside forest ring", 0, 299, BiomeForest},
		{"forest boundary is mountains", 300, 0, BiomeMountains},
		{"inside mountains ring", 0, -499, BiomeMountains},
		{"mountains boundary is desert", 500, 0, BiomeDesert},
		{"far out", 10000, 10000, BiomeDesert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyBiome(tt.x, tt.z))
		})
	}
}

func TestClassifyBiomeUsesEuclideanDistance(t *testing.T) {
	// (80, 80) is 113 units out: outside the village ring even though both
	// axes are under 100.
	require.Equal(t, BiomeForest, ClassifyBiome(80, 80))
}

func TestAppearanceForAllBiomes(t *testing.T) {
	for _, b := range []Biome{BiomeVillage, BiomeForest, BiomeMountains, BiomeDesert} {
		app := AppearanceFor(b)
		require.NotZero(t, app.Roughness, "biome %s has no preset", b)
		for _, c := range app.Color {
			require.GreaterOrEqual(t, c, float32(0))
			require.LessOrEqual(t, c, float32(1))
		}
	}
}

func TestBiomeString(t *testing.T) {
	require.Equal(t, "village", BiomeVillage.String())
	require.Equal(t, "desert", BiomeDesert.String())
	require.Equal(t, "unknown", Biome(99).String())
}

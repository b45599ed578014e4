package terrain

import "math"

// Biome classifies a cell by straight-line distance from the world origin to
// the cell's center. Thresholds are half-open: a center at exactly 100 units
// is already forest.
type Biome byte

const (
	BiomeVillage Biome = iota
	BiomeForest
	BiomeMountains
	BiomeDesert
)

func (b Biome) String() string {
	switch b {
	case BiomeVillage:
		return "village"
	case BiomeForest:
		return "forest"
	case BiomeMountains:
		return "mountains"
	case BiomeDesert:
		return "desert"
	default:
		return "unknown"
	}
}

const (
	villageRadius   = 100
	forestRadius    = 300
	mountainsRadius = 500
)

// ClassifyBiome returns the biome for a world position (typically a cell center).
func ClassifyBiome(x, z float64) Biome {
	d := math.Hypot(x, z)
	switch {
	case d < villageRadius:
		return BiomeVillage
	case d < forestRadius:
		return BiomeForest
	case d < mountainsRadius:
		return BiomeMountains
	default:
		return BiomeDesert
	}
}

// Appearance is the surface preset applied to a cell, selected per biome.
// Color is linear RGB in [0,1].
type Appearance struct {
	Color     [3]float32
	Roughness float32
}

var appearances = map[Biome]Appearance{
	BiomeVillage:   {Color: [3]float32{0.36, 0.55, 0.25}, Roughness: 0.85},
	BiomeForest:    {Color: [3]float32{0.18, 0.42, 0.17}, Roughness: 0.90},
	BiomeMountains: {Color: [3]float32{0.48, 0.46, 0.44}, Roughness: 0.95},
	BiomeDesert:    {Color: [3]float32{0.82, 0.72, 0.45}, Roughness: 0.70},
}

// AppearanceFor returns the fixed surface preset for a biome.
func AppearanceFor(b Biome) Appearance {
	return appearances[b]
}

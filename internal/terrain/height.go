package terrain

import "math"

// The height field is a pure function of absolute world coordinates: three
// sinusoidal octaves at halving amplitude and doubling frequency. Sampling by
// world position (never by walking an RNG) keeps cell seams exact and lets the
// streaming grid throw terrain away and regenerate it without persistence.

const heightPeriod = 100

// HeightAt returns the terrain height at world position (x, z).
func HeightAt(x, z float64) float64 {
	nx := x / heightPeriod
	nz := z / heightPeriod
	return 20*math.Sin(nx*10)*math.Cos(nz*10) +
		10*math.Sin(nx*20)*math.Cos(nz*20) +
		5*math.Sin(nx*40)*math.Cos(nz*40)
}

// MaxHeight is the amplitude bound of HeightAt (sum of octave amplitudes).
const MaxHeight = 20 + 10 + 5

// NormalAt returns the surface normal at (x, z), from central differences of
// the height field. The result is unit length.
func NormalAt(x, z float64) (nx, ny, nz float64) {
	const eps = 0.1
	dx := (HeightAt(x+eps, z) - HeightAt(x-eps, z)) / (2 * eps)
	dz := (HeightAt(x, z+eps) - HeightAt(x, z-eps)) / (2 * eps)
	inv := 1 / math.Sqrt(dx*dx+1+dz*dz)
	return -dx * inv, inv, -dz * inv
}

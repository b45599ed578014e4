// terraprobe samples the procedural terrain from the command line: height,
// normal and biome at a point, or an ASCII relief map of a cell. Useful for
// checking what a client should be rendering without booting the server.
//
// Usage:
//
//	go run ./cmd/terraprobe point <x> <z>
//	go run ./cmd/terraprobe cell <cx> <cz> [cellSize]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wanderlands/server/internal/terrain"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "point":
		if len(os.Args) != 4 {
			usage()
			os.Exit(2)
		}
		x := parseFloat(os.Args[2])
		z := parseFloat(os.Args[3])
		probePoint(x, z)
	case "cell":
		if len(os.Args) != 4 && len(os.Args) != 5 {
			usage()
			os.Exit(2)
		}
		cx := parseInt(os.Args[2])
		cz := parseInt(os.Args[3])
		cellSize := 100.0
		if len(os.Args) == 5 {
			cellSize = parseFloat(os.Args[4])
		}
		probeCell(cx, cz, cellSize)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: terraprobe point <x> <z>")
	fmt.Fprintln(os.Stderr, "       terraprobe cell <cx> <cz> [cellSize]")
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad number %q\n", s)
		os.Exit(2)
	}
	return v
}

func parseInt(s string) int32 {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad integer %q\n", s)
		os.Exit(2)
	}
	return int32(v)
}

func probePoint(x, z float64) {
	h := terrain.HeightAt(x, z)
	nx, ny, nz := terrain.NormalAt(x, z)
	biome := terrain.ClassifyBiome(x, z)
	app := terrain.AppearanceFor(biome)

	fmt.Printf("position  (%.2f, %.2f)\n", x, z)
	fmt.Printf("height    %.3f\n", h)
	fmt.Printf("normal    (%.3f, %.3f, %.3f)\n", nx, ny, nz)
	fmt.Printf("biome     %s\n", biome)
	fmt.Printf("color     (%.2f, %.2f, %.2f)  roughness %.2f\n",
		app.Color[0], app.Color[1], app.Color[2], app.Roughness)
}

// reliefRamp maps normalized height to shading characters, low to high.
const reliefRamp = " .:-=+*#%@"

func probeCell(cx, cz int32, cellSize float64) {
	const res = 32
	originX := float64(cx) * cellSize
	originZ := float64(cz) * cellSize
	centerX := originX + cellSize/2
	centerZ := originZ + cellSize/2
	biome := terrain.ClassifyBiome(centerX, centerZ)

	mesh := terrain.BuildSurface(originX, originZ, cellSize, res)

	min, max := mesh.Heights[0], mesh.Heights[0]
	for _, h := range mesh.Heights {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}

	fmt.Printf("cell      (%d, %d)  origin (%.1f, %.1f)  size %.1f\n", cx, cz, originX, originZ, cellSize)
	fmt.Printf("biome     %s\n", biome)
	fmt.Printf("height    min %.3f  max %.3f\n\n", min, max)

	span := float64(max - min)
	if span == 0 {
		span = 1
	}
	for iz := 0; iz <= res; iz++ {
		for ix := 0; ix <= res; ix++ {
			h := mesh.Heights[iz*(res+1)+ix]
			t := float64(h-min) / span
			idx := int(t * float64(len(reliefRamp)-1))
			fmt.Printf("%c", reliefRamp[idx])
		}
		fmt.Println()
	}
}

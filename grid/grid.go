package grid

import (
	"fmt"

	"github.com/katalvlaran/dsu/unionfind"
)

// New constructs a Grid from a non-empty, rectangular 2D slice and merges
// every adjacent pair of land cells in a disjoint set, so later island
// queries are plain set lookups.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrUnknownConnectivity if
// opts.Conn is neither Conn4 nor Conn8.
// Complexity: O(W×H×d×α(W×H)) time, O(W×H) memory (d = 4 or 8 neighbors).
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// Forward-only offsets: right plus the next row, so the merge sweep
	// visits each undirected neighbor pair exactly once.
	var forward [][2]int
	switch opts.Conn {
	case Conn4:
		forward = [][2]int{{1, 0}, {0, 1}}
	case Conn8:
		forward = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownConnectivity, opts.Conn)
	}

	// Row-major indices run [0, w*h-1]. The size policy keeps island
	// cardinalities on the roots, which LargestIsland reads directly.
	ds, err := unionfind.New(w*h-1, unionfind.WithPolicy(unionfind.BySize))
	if err != nil {
		return nil, err
	}

	g := &Grid{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		ds:            ds,
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.IsLand(x, y) {
				g.waterCells++
				continue
			}
			for _, d := range forward {
				nx, ny := x+d[0], y+d[1]
				if !g.IsLand(nx, ny) {
					continue
				}
				// In-range unions over a freshly sized set cannot fail.
				_ = g.ds.Union(g.Index(x, y), g.Index(nx, ny))
			}
		}
	}

	return g, nil
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsLand reports whether the cell at (x, y) meets LandThreshold.
// Out-of-bounds coordinates count as water.
// Complexity: O(1).
func (g *Grid) IsLand(x, y int) bool {
	return g.InBounds(x, y) && g.CellValues[y][x] >= g.LandThreshold
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

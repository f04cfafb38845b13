package grid

import (
	"fmt"
)

// Islands returns every contiguous land region under the configured
// connectivity. Each island is a slice of row-major cell indices in
// ascending order; islands are ordered by their smallest index.
// Water cells belong to no island.
//
// To convert an index back to (x, y), use Coordinate.
//
// Complexity: O(W×H×α(W×H)) time, O(W×H) memory.
func (g *Grid) Islands() [][]int {
	var islands [][]int
	group := make(map[int]int, g.IslandCount()) // root -> position in islands

	// Ascending index scan keeps both orderings deterministic. Find and
	// SizeOf cannot fail on indices the sweep itself produced.
	total := g.Width * g.Height
	for idx := 0; idx < total; idx++ {
		if x, y := g.Coordinate(idx); !g.IsLand(x, y) {
			continue
		}
		root, _ := g.ds.Find(idx)
		pos, ok := group[root]
		if !ok {
			pos = len(islands)
			group[root] = pos
			islands = append(islands, nil)
		}
		islands[pos] = append(islands[pos], idx)
	}

	return islands
}

// IslandCount returns the number of islands.
// Water cells never merge, so the land components are the partition's sets
// minus one singleton per water cell.
// Complexity: O(1).
func (g *Grid) IslandCount() int {
	return g.ds.Count() - g.waterCells
}

// LargestIsland returns the cell count of the biggest island, or 0 for an
// all-water grid.
// Complexity: O(W×H×α(W×H)).
func (g *Grid) LargestIsland() int {
	var largest int
	total := g.Width * g.Height
	for idx := 0; idx < total; idx++ {
		if x, y := g.Coordinate(idx); !g.IsLand(x, y) {
			continue
		}
		if sz, _ := g.ds.SizeOf(idx); sz > largest {
			largest = sz
		}
	}

	return largest
}

// SameIsland reports whether two cells lie on one island. Water belongs to
// no island, so any water operand yields false.
// Returns ErrOutOfBounds when either coordinate leaves the grid.
// Complexity: O(α(W×H)).
func (g *Grid) SameIsland(x1, y1, x2, y2 int) (bool, error) {
	if !g.InBounds(x1, y1) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x1, y1)
	}
	if !g.InBounds(x2, y2) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x2, y2)
	}
	if !g.IsLand(x1, y1) || !g.IsLand(x2, y2) {
		return false, nil
	}

	return g.ds.Connected(g.Index(x1, y1), g.Index(x2, y2))
}

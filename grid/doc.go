// Package grid treats a 2D grid of cells as a partitioned universe,
// answering island questions with a disjoint set instead of repeated
// traversals.
//
// What:
//
//   - Grid wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Construction merges every adjacent pair of land cells (value ≥
//     LandThreshold) once; afterwards all island queries are set lookups.
//   - Islands lists contiguous land regions; IslandCount, LargestIsland and
//     SameIsland answer the common aggregate questions without rescanning.
//
// Why:
//
//   - Game maps: contiguous land detection, territory sizing.
//   - Image analysis: connected blobs over a binarized raster.
//   - Repeated queries: once built, SameIsland costs near O(1), which beats
//     re-running a flood fill per question.
//
// Complexity:
//
//   - New:           O(W×H×d×α(W×H)), Memory: O(W×H)   (d = 4 or 8 neighbors).
//   - Islands:       O(W×H×α(W×H)),   Memory: O(W×H).
//   - IslandCount:   O(1).
//   - LargestIsland: O(W×H×α(W×H)).
//   - SameIsland:    O(α(W×H)).
//
// Options:
//
//   - Options.LandThreshold: minimum value considered "land".
//   - Options.Conn: Conn4 (4 neighbors) or Conn8 (8 neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownConnectivity: Options.Conn is neither Conn4 nor Conn8.
//   - ErrOutOfBounds: a queried coordinate lies outside the grid.
//
// For usage, see example_test.go in this package.
package grid

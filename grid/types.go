// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/dsu.
package grid

import (
	"errors"

	"github.com/katalvlaran/dsu/unionfind"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a queried coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownConnectivity indicates Options.Conn is neither Conn4 nor Conn8.
	ErrUnknownConnectivity = errors.New("grid: unknown connectivity")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with default settings:
// LandThreshold=1 (values ≥ 1 are land), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// Grid treats a 2D integer grid as a partitioned set of cells. It is
// immutable once built: every island query runs against the disjoint set
// assembled during construction.
// Width and Height define dimensions; CellValues[y][x] holds the original
// input value. Conn and LandThreshold are set from Options during
// construction.
type Grid struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int

	// ds partitions row-major cell indices; land cells merge with adjacent
	// land cells, water cells stay singletons.
	ds *unionfind.DisjointSet
	// waterCells counts cells below LandThreshold, so island counting can
	// subtract their singleton sets.
	waterCells int
}

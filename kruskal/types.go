package kruskal

import (
	"errors"

	"github.com/katalvlaran/dsu/unionfind"
)

// ErrDisconnected indicates that no spanning tree covers the whole universe:
// the edge list leaves at least two elements of [0, n] unreachable from each
// other. It applies whenever n > 0 and the forest comes up short.
var ErrDisconnected = errors.New("kruskal: graph is disconnected")

// Edge is an undirected weighted edge between two elements of the universe
// [0, n]. Parallel edges and self-loops are accepted on input; self-loops
// can never enter a spanning tree and are skipped.
type Edge struct {
	// U and V are the endpoint element identifiers.
	U, V int

	// Weight is the edge cost. Negative weights are allowed.
	Weight int64
}

// Options configures the disjoint-set bookkeeping behind Kruskal.
// Use DefaultOptions() to get the default setup (union by rank).
//
// Fields:
//
//	Policy unionfind.Policy — merge heuristic for the underlying forest.
//
// See: kruskal.Kruskal
// Complexity: O(1) to construct.
type Options struct {
	// Policy selects how the underlying disjoint set merges components.
	Policy unionfind.Policy
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithPolicy returns an Option that sets the merge heuristic.
// Allowed values: unionfind.ByRank, unionfind.BySize.
func WithPolicy(p unionfind.Policy) Option {
	return func(opts *Options) {
		opts.Policy = p
	}
}

// DefaultOptions returns Options initialized for union by rank:
//
//	– Policy = unionfind.ByRank.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Policy: unionfind.ByRank,
	}
}

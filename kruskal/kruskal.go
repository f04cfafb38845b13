package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dsu/unionfind"
)

// Kruskal computes a Minimum Spanning Tree over the universe [0, n] from the
// given undirected weighted edge list. Components are tracked with a
// disjoint set (path compression plus the configured union policy).
//
// Error Conditions:
//   - unionfind.ErrInvalidSize   : if n < 0.
//   - unionfind.ErrUnknownPolicy : if an unrecognized Policy was configured.
//   - unionfind.ErrOutOfRange    : if any edge endpoint falls outside [0, n].
//   - ErrDisconnected            : if the edges do not connect all of [0, n].
//
// Steps:
//  1. Apply options and build the disjoint set over [0, n].
//  2. Validate every endpoint up front; reject the whole input on the first
//     out-of-range edge.
//  3. If n == 0 the universe is a single element: trivial MST (empty, weight 0).
//  4. Copy edges, skipping self-loops (u == v), and sort the copy by ascending
//     Weight (sort.SliceStable keeps input order for equal weights, so
//     tie-breaking is deterministic).
//  5. Sweep the sorted edges: whenever the endpoints lie in different sets,
//     merge them and take the edge. Stop once the forest holds n edges.
//  6. If fewer than n edges were taken, the input was disconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	// 1. Apply functional options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Build the forest; this rejects n < 0 and unknown policies for us.
	ds, err := unionfind.New(n, unionfind.WithPolicy(cfg.Policy))
	if err != nil {
		return nil, 0, err
	}

	// 2. Validate endpoints before touching the forest, so a bad edge list
	//    never yields a half-built tree.
	for _, e := range edges {
		if e.U < 0 || e.U > n || e.V < 0 || e.V > n {
			return nil, 0, fmt.Errorf("%w: edge (%d,%d) outside [0, %d]", unionfind.ErrOutOfRange, e.U, e.V, n)
		}
	}

	// 3. A single-element universe spans itself: empty tree, zero weight.
	if n == 0 {
		return []Edge{}, 0, nil
	}

	// 4. Copy candidates without self-loops, then stable-sort by weight.
	//    Sorting a copy leaves the caller's slice untouched.
	candidates := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			// Self-loops cannot be part of a spanning tree.
			continue
		}
		candidates = append(candidates, e)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	// 5. Sweep edges in weight order; the universe [0, n] holds n+1 elements,
	//    so a spanning tree needs exactly n edges.
	var (
		forest = make([]Edge, 0, n)
		total  int64
	)
	for _, e := range candidates {
		linked, err := ds.Connected(e.U, e.V)
		if err != nil {
			return nil, 0, err
		}
		if linked {
			// Both endpoints already in the same component; taking the edge
			// would close a cycle.
			continue
		}
		if err = ds.Union(e.U, e.V); err != nil {
			return nil, 0, err
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == n {
			break
		}
	}

	// 6. A short forest means some elements never joined the main component.
	if len(forest) < n {
		return nil, 0, ErrDisconnected
	}

	return forest, total, nil
}

// Package kruskal computes Minimum Spanning Trees over an integer universe
// [0, n] with Kruskal's algorithm, driven by the unionfind package.
//
// What:
//
//   - Kruskal(n, edges, opts...) sorts the edge list by ascending weight and
//     sweeps it once, taking every edge whose endpoints still lie in
//     different components of a disjoint set.
//   - The result is the forest ([]Edge in pick order) plus its total weight.
//
// Why:
//
//   - Network design: cheapest cabling or piping that reaches every site.
//   - Clustering: cutting the heaviest MST edges yields single-link clusters.
//   - A worked consumer of unionfind: every Connected/Union call pattern the
//     disjoint set is built for shows up here.
//
// Determinism:
//
//   - sort.SliceStable keeps equal-weight edges in input order, so the same
//     edge list always produces the same tree.
//
// Options:
//
//   - Options.Policy: unionfind.ByRank (default) or unionfind.BySize. Both
//     yield a minimum tree; the policy only changes forest bookkeeping.
//
// Errors:
//
//   - unionfind.ErrInvalidSize: n < 0.
//   - unionfind.ErrUnknownPolicy: unrecognized Policy value.
//   - unionfind.ErrOutOfRange: an edge endpoint outside [0, n].
//   - ErrDisconnected: the edges do not connect all of [0, n].
//
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
//
// For usage, see example_test.go in this package.
package kruskal

// Package unionfind defines the DisjointSet type, its merge policies,
// construction options, and sentinel errors.
package unionfind

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidSize indicates construction with a negative universe size.
	ErrInvalidSize = errors.New("unionfind: negative universe size")

	// ErrOutOfRange indicates an element identifier outside the universe [0, n].
	ErrOutOfRange = errors.New("unionfind: element out of range")

	// ErrUnknownPolicy indicates an unrecognized merge policy was supplied.
	ErrUnknownPolicy = errors.New("unionfind: unknown union policy")
)

// Policy selects the merge strategy that Union is bound to.
//
//   - ByRank: attach the root of the shallower tree under the root of the
//     deeper tree, using `rank` (an upper bound on subtree height) as the
//     tie-break heuristic. Keeps `rank` accurate; leaves `size` untouched.
//
//   - BySize: attach the root of the smaller set under the root of the
//     larger set, comparing exact cardinalities. Keeps `size` accurate;
//     leaves `rank` untouched.
//
// Exactly one policy should drive all merges on a given instance; see the
// package documentation for what happens when strategies are mixed.
type Policy int

const (
	// ByRank merges by approximate tree height. The default policy.
	ByRank Policy = iota

	// BySize merges by exact set cardinality.
	BySize
)

// Option configures a DisjointSet during construction.
type Option func(*DisjointSet)

// WithPolicy binds Union to the given merge strategy.
// An unrecognized value surfaces as ErrUnknownPolicy from New.
func WithPolicy(p Policy) Option {
	return func(d *DisjointSet) { d.policy = p }
}

// DisjointSet maintains a partition of the inclusive universe [0, n],
// n+1 integer elements, into disjoint sets, supporting near-constant-time
// merge and same-set queries via path compression and union by rank/size.
//
// The zero value is not usable; construct instances with New.
// A DisjointSet is NOT safe for concurrent use: every operation, including
// the read-style queries, may rewrite parent pointers (path compression).
// It assumes exclusive, sequential access by a single owner for its lifetime.
type DisjointSet struct {
	// parent[i] is the parent of i in the forest; parent[i] == i iff i is
	// the representative (root) of its set.
	parent []int

	// rank[i] is an upper bound on the height of the subtree rooted at i.
	// Compared only at roots, and only by ByRank merges; never decreases.
	rank []int

	// size[i] is the cardinality of the set rooted at i. Exact only when
	// read at a current root, and only maintained by BySize merges.
	size []int

	// policy is the strategy Union dispatches to.
	policy Policy

	// count is the number of disjoint sets remaining. Starts at n+1 and
	// decrements once per successful merge under either policy.
	count int
}

// Package unionfind implements the Disjoint-Set-Union (union-find) structure
// over a fixed integer universe, with full path compression and a choice of
// union-by-rank or union-by-size merge policies.
package unionfind

import "fmt"

// New constructs a DisjointSet over the inclusive universe [0, n]: n+1
// elements, each starting as a singleton set that is its own root, with
// rank 0 and size 1. Note the off-by-one mirrors the classical formulation:
// New(5) covers the six elements 0 through 5.
//
// Returns ErrInvalidSize if n is negative, ErrUnknownPolicy if an option
// supplied an unrecognized Policy.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	d := &DisjointSet{
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
		size:   make([]int, n+1),
		count:  n + 1,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	// Apply options, then validate the resulting configuration.
	for _, opt := range opts {
		opt(d)
	}
	if d.policy != ByRank && d.policy != BySize {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, d.policy)
	}

	return d, nil
}

// check validates that x names an element of the universe.
func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: element %d not in [0, %d]", ErrOutOfRange, x, len(d.parent)-1)
	}

	return nil
}

// find returns the root of x's tree and fully compresses the walked path:
// afterwards every node between x and the root points directly at the root.
// Two passes, no recursion, so deep parent chains cannot overflow the stack.
// Callers must have bounds-checked x.
func (d *DisjointSet) find(x int) int {
	// Pass 1: locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Pass 2: repoint every node on the path at the root.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// Find returns the representative (root) of x's set.
//
// Side effect: full path compression. After the call, every node on the
// walked path satisfies parent == root, so repeated finds on those nodes
// are O(1). Compression rewires parent pointers but never changes which
// set any element belongs to.
//
// Returns ErrOutOfRange if x is outside [0, n].
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// UnionByRank merges the sets containing u and v, attaching the lower-rank
// root under the higher-rank root. On a rank tie, u's root is attached under
// v's root and v's root has its rank incremented.
//
// Merging two elements already in the same set is a successful no-op, not
// an error; unions are idempotent. Only the rank bookkeeping is maintained;
// size is left untouched (see Policy).
//
// Returns ErrOutOfRange if either element is outside [0, n].
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) UnionByRank(u, v int) error {
	if err := d.check(u); err != nil {
		return err
	}
	if err := d.check(v); err != nil {
		return err
	}

	ur, vr := d.find(u), d.find(v)
	if ur == vr {
		return nil // already one set
	}

	switch {
	case d.rank[ur] < d.rank[vr]:
		d.parent[ur] = vr
	case d.rank[ur] > d.rank[vr]:
		d.parent[vr] = ur
	default:
		// Equal ranks: v's root survives and grows one level taller.
		d.parent[ur] = vr
		d.rank[vr]++
	}
	d.count--

	return nil
}

// UnionBySize merges the sets containing u and v, attaching the root of the
// smaller set under the root of the larger and adding the absorbed set's
// cardinality into the surviving root's size. On a size tie, u's root
// survives. Only the size bookkeeping is maintained; rank is not consulted
// or updated (see Policy).
//
// Merging two elements already in the same set is a successful no-op; in
// particular it does NOT double-count size.
//
// Returns ErrOutOfRange if either element is outside [0, n].
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) UnionBySize(u, v int) error {
	if err := d.check(u); err != nil {
		return err
	}
	if err := d.check(v); err != nil {
		return err
	}

	ur, vr := d.find(u), d.find(v)
	if ur == vr {
		return nil // already one set
	}

	// Ensure ur is the root of the larger (or tied) set.
	if d.size[ur] < d.size[vr] {
		ur, vr = vr, ur
	}
	d.parent[vr] = ur
	d.size[ur] += d.size[vr]
	d.count--

	return nil
}

// Union merges the sets containing u and v using the policy fixed at
// construction (ByRank unless WithPolicy said otherwise). Prefer this over
// calling UnionByRank/UnionBySize directly: it keeps every merge on one
// instance driving the same bookkeeping.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(u, v int) error {
	if d.policy == BySize {
		return d.UnionBySize(u, v)
	}

	return d.UnionByRank(u, v)
}

// Connected reports whether u and v currently belong to the same set.
// A pure query of the partition, though it still compresses the two find
// paths as a side effect.
//
// Returns ErrOutOfRange if either element is outside [0, n].
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Connected(u, v int) (bool, error) {
	if err := d.check(u); err != nil {
		return false, err
	}
	if err := d.check(v); err != nil {
		return false, err
	}

	return d.find(u) == d.find(v), nil
}

// SizeOf returns the cardinality of the set containing x, read at its
// current root. Exact only when BySize drives the merges; under ByRank the
// size bookkeeping is not maintained and the value reflects construction
// plus whatever BySize merges ever ran.
//
// Returns ErrOutOfRange if x is outside [0, n].
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) SizeOf(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.size[d.find(x)], nil
}

// Count returns the number of disjoint sets remaining. Starts at n+1 and
// decreases by one on every merge that actually joins two sets, under
// either policy.
//
// Complexity: O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// Len returns the number of elements in the universe, i.e. n+1 for a
// structure built with New(n).
//
// Complexity: O(1).
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Sets returns the current partition as a slice of sets. Elements are
// ascending within each set; sets are ordered by their smallest element.
// The result is a snapshot; later unions do not affect it.
//
// Side effect: fully compresses the forest (every element ends up pointing
// directly at its root).
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (d *DisjointSet) Sets() [][]int {
	at := make(map[int]int, d.count) // root → index into out
	out := make([][]int, 0, d.count)

	// Scanning 0..n in order keeps each set ascending and orders sets by
	// first appearance, which is their smallest member.
	for i := range d.parent {
		root := d.find(i)
		j, ok := at[root]
		if !ok {
			j = len(out)
			at[root] = j
			out = append(out, nil)
		}
		out[j] = append(out[j], i)
	}

	return out
}

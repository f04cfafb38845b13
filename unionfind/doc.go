// Package unionfind provides a production-grade Disjoint-Set-Union
// (union-find) structure over a fixed integer universe, with full path
// compression and a choice of union-by-rank or union-by-size merging.
//
// What
//
//   - Maintain a partition of the n+1 elements [0, n] into disjoint sets.
//   - Merge two sets in near-constant amortized time (Union, UnionByRank,
//     UnionBySize).
//   - Answer "are these two elements in the same set?" in near-constant
//     amortized time (Connected, Find).
//   - Inspect the partition: Count (number of sets), SizeOf (cardinality of
//     one set), Sets (the whole partition), Len (universe size).
//
// Why
//
//   - Kruskal's minimum spanning tree: skip edges whose endpoints are
//     already connected (see the sibling kruskal package).
//   - Incremental connectivity: stream in edges, answer reachability queries
//     at any point without re-scanning the graph (see the sibling grid
//     package for a 2D variant).
//   - Clustering and equivalence closure: anywhere a set of pairwise
//     "these are the same" facts must be folded into groups.
//
// Universe
//
//	New(n) covers the INCLUSIVE range [0, n], that is n+1 elements, matching
//	the classical formulation where n names the largest element rather than
//	a count. Every element starts as its own singleton set (its own root,
//	rank 0, size 1). There is no delete or split: merges are irreversible,
//	and the structure lives for one owning computation (one MST run, one
//	connectivity session).
//
// Merge policies
//
//	Two classical strategies are exposed, selected per call (UnionByRank /
//	UnionBySize) or bound once at construction (WithPolicy + Union):
//
//	  - ByRank keeps, per root, an upper bound on tree height ("rank") and
//	    attaches the shallower tree under the deeper one; ties attach u's
//	    root under v's root and bump the survivor's rank. Rank is a bound,
//	    not an exact height; path compression flattens trees without
//	    updating it, and it never decreases.
//
//	  - BySize keeps, per root, the exact cardinality of its set and
//	    attaches the smaller set under the larger one; ties keep u's root.
//	    (The textbook cardinality comparison is used here, not a root-index
//	    comparison, so the O(log n) raw tree-height bound holds for this
//	    variant too.)
//
//	Each policy maintains only its own bookkeeping: rank unions do not
//	update size, size unions do not touch rank. The API permits mixing both
//	on one instance, but then whichever mapping the other policy owns goes
//	stale; SizeOf is only exact when BySize drove every merge. Pick one
//	policy per instance; Union exists to make that the path of least
//	resistance.
//
// Path compression
//
//	Find locates the root and then repoints EVERY node on the walked path
//	directly at it (full compression, not halving/splitting), iteratively,
//	so adversarially deep chains cannot overflow the stack. Compression
//	mutates parent pointers but never the partition itself; it is what
//	drives the amortized O(α(n)) bound (inverse Ackermann, at most 4 for
//	any universe that fits in memory).
//
// Concurrency
//
//	Not safe for concurrent use. Every operation, including the read-style
//	Connected, SizeOf and Sets, may rewrite parent pointers via path
//	compression. The structure assumes exclusive, sequential access by a
//	single owner; wrap it in your own synchronization if you must share it.
//	No operation blocks, performs I/O, or takes a context: each one is a
//	handful of array reads and writes that unconditionally terminates.
//
// Errors
//
//   - ErrInvalidSize    if New is given a negative universe size.
//   - ErrOutOfRange     if any operation names an element outside [0, n].
//   - ErrUnknownPolicy  if WithPolicy supplied an unrecognized Policy.
//
//	Out-of-range input is surfaced, never clamped; silently tolerating a
//	bad index would corrupt the parent/rank/size arrays. A union whose two
//	elements already share a set is NOT an error: it is a successful,
//	idempotent no-op.
//
// Complexity (n = universe size, α = inverse Ackermann)
//
//   - New:   O(n) time and memory.
//   - Find / Union / UnionByRank / UnionBySize / Connected / SizeOf:
//     O(α(n)) amortized.
//   - Count / Len: O(1).
//   - Sets:  O(n·α(n)).
//
// Usage
//
//	ds, err := unionfind.New(5, unionfind.WithPolicy(unionfind.BySize))
//	if err != nil {
//	    // ErrInvalidSize or ErrUnknownPolicy
//	}
//	_ = ds.Union(1, 2)
//	_ = ds.Union(2, 3)
//	ok, _ := ds.Connected(1, 3) // true
//	sz, _ := ds.SizeOf(3)       // 3
//
// For worked examples, see example_test.go in this package.
package unionfind

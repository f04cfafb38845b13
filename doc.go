// Package dsu is an in-memory toolkit for partitioning dense integer
// universes with Disjoint-Set (Union-Find) structures, and for the graph
// questions a partition answers best.
//
// 🚀 What is dsu?
//
//	A small, focused library that brings together:
//		• Core structure: parent/rank/size forests with full path compression
//		  and selectable union policies (by rank or by size)
//		• Partition queries: Find, Connected, SizeOf, Count, Sets
//		• Minimum spanning trees: Kruskal over plain edge lists
//		• Grid analysis: islands, largest island, same-island checks on 2D maps
//
// ✨ Why choose dsu?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Predictable: sentinel errors, deterministic output orders
//   - Near O(1): inverse-Ackermann amortized set operations
//   - Pure Go: no cgo; gonum is used only inside the test suite
//
// Under the hood, everything is organized under three subpackages:
//
//	unionfind/ : the disjoint set itself; New, Find, Union, Connected, SizeOf, Sets
//	kruskal/   : sort-and-union MST over the universe [0, n] with deterministic ties
//	grid/      : rectangular terrain maps; one merge sweep replaces repeated flood fills
//
// Quick ASCII example:
//
//	    0───1    3───4
//	        │
//	        2        5
//
//	after union(0,1), union(1,2) and union(3,4), three sets remain:
//	{0,1,2}, {3,4} and {5}.
//
// Each subpackage documents its own error contract and complexity bounds;
// start with unionfind/doc.go.
//
//	go get github.com/katalvlaran/dsu
package dsu

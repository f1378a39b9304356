// Package hexcone enumerates the two-pentagon patches of the hexagonal
// lattice — the combinatorial building blocks of fullerene-like nanocones
// and disks.
//
// 🚀 What is hexcone?
//
//	A small, deterministic, almost-zero-dependency library that brings
//	together:
//		• patch/ — the lattice cell model: faces with cyclic neighbor slots,
//		  boundary walks, boundary words, side decomposition, cell
//		  attachment and forced hexagon coronas
//		• canon/ — canonical keys by minimal breadth-first codes, mirror
//		  keys, and rotation-group orders as a byproduct
//		• cone/  — the enumerator: exhaustive single-cell attachment
//		  search, boundary-envelope rejection, symmetry filtering and
//		  canonical-key deduplication
//
// ✨ Why choose hexcone?
//
//   - Deterministic – identical inputs give identical counts and patch
//     lists, sequential or parallel
//   - Exhaustive – every legal attachment is explored; branches die only
//     when their boundary outgrows the longest closing shape
//   - Pure Go core – the only runtime dependency is x/sync for the
//     optional worker pool
//   - Extensible – stream accepted patches through an OnAccept hook
//
// Quick ASCII example:
//
//	⬠─⬠   the minimal seed: two pentagons sharing an edge,
//	       boundary sides (1, 2, 1, 2)
//
// its count, via cone.TwoPentagons(1, 0), is exactly 1.
//
// Dive into each package's doc.go for contracts, complexity and error
// policies.
//
//	go get github.com/katalvlaran/hexcone
package hexcone

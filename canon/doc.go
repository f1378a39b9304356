// Package canon computes canonical keys for hexagonal/pentagonal patches,
// the deduplication backbone of patch enumeration.
//
// What:
//
//   - Encode(p) explores every rooted, oriented flag of the patch — a
//     (root cell, start slot, orientation) triple — and emits the
//     lexicographically minimal breadth-first code for each orientation.
//   - Code carries the canonical key, the mirror key, and the number of
//     orientation-preserving flags achieving the minimum, which equals the
//     order of the patch's rotation group.
//
// Why:
//
//   - Two patches are isomorphic (adjacency- and pentagon-preserving)
//     exactly when their keys are equal; a patch and its mirror image meet
//     on CanonicalKey(true).
//   - The rotation count doubles as the symmetry test for enumeration
//     filters, so callers never recompute automorphisms.
//
// Complexity: root flags are restricted to minimum-degree cells, so
// Encode costs O(F·C) for F candidate flags and C cells — bounded by the
// automorphism search, not by the enumeration space.
//
// Errors:
//
//   - ErrNilPatch: Encode received a nil or empty patch.
package canon

// Package cone enumerates, without duplicates, the two-pentagon patches
// of the hexagonal lattice: the simply-connected building blocks of
// fullerene-like conical and disk structures.
//
// What:
//
//   - TwoPentagons(sside, hexagonLayers, opts...) counts (and optionally
//     materializes) all combinatorially distinct patches with exactly two
//     pentagonal cells whose boundary closes at side length sside within
//     at most hexagonLayers hexagon layers.
//   - Search layout: starting from a lone pentagon and a lone hexagon,
//     each step attaches one cell over a contiguous run of boundary edges
//     in every legal way (patch.Attach), so every patch is reachable.
//     Isomorphic partial patches merge through canonical keys
//     (canon.Encode), and any partial patch whose boundary already
//     exceeds the longest closing shape is dropped: removing a boundary
//     cell never lengthens the boundary, so no closure hides behind a
//     longer intermediate state. Together the two cuts make the state
//     space finite.
//   - Closed patches within the layer budget are filtered for the
//     requested symmetry and merged by canonical key.
//
// Boundary policy: a two-pentagon boundary has four more convex than
// concave vertices, so it decomposes into four straight sides. The
// generator closes on two shapes for a requested side s: (s,s,s,s) at
// length 8s-4 and (s,s+1,s,s+1) at length 8s.
//
// Layer budget: the depth of a patch is the largest inner-dual distance
// from a hexagon to its nearest pentagon. Attaching cells can only
// shorten these distances, so the budget is decided on closed patches,
// never on partial ones.
//
// Options:
//
//   - WithSymmetric()    keep only patches with an order-two rotation.
//   - WithMirror()       identify each patch with its mirror image.
//   - WithCountOnly()    skip materializing Result.Patches.
//   - WithContext(ctx)   cooperative cancellation.
//   - WithWorkers(n)     explore the top-level branches on n goroutines;
//     results are merged deterministically in branch order.
//   - WithOnAccept(fn)   stream each distinct accepted patch to fn.
//
// Complexity: the search visits every isomorphism class of partial
// patches inside the boundary envelope once per branch; move generation
// and validation are linear in the boundary, and canonicalization is
// bounded by the automorphism search.
//
// Errors:
//
//   - ErrSideLength:  sside < 1.
//   - ErrLayerBudget: hexagonLayers < 0.
//   - context and OnAccept errors propagate wrapped.
//
// Structurally invalid attachments inside the search are expected
// outcomes, skipped per move and reported only through Result.Stats.
package cone

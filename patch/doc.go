// Package patch models finite, simply-connected regions of the hexagonal
// lattice whose faces are hexagons and pentagons, the building blocks of
// fullerene-like cones and disks.
//
// What:
//
//   - Cell: one face, tagged with its degree (5 or 6) and a cyclic list of
//     neighbor slots; Exterior marks edges on the open boundary.
//   - Patch: a set of Cells wired through their slots — a combinatorial
//     plane embedding. The boundary walk, the boundary word (the cyclic
//     sequence of degree-2/degree-3 boundary vertices) and the side
//     decomposition are all derived from the wiring, never stored.
//   - Attach: glue one new cell over a run of consecutive boundary edges.
//   - GrowRing: surround the whole boundary with one corona of hexagons.
//
// Why:
//
//   - Cone and disk generators need a mutation-free growth primitive:
//     Attach and GrowRing validate every vertex degree locally, so an
//     impossible lattice configuration surfaces as a sentinel error and the
//     caller simply abandons that branch.
//   - Patches are abstract plane graphs, not subsets of the flat lattice:
//     a patch containing pentagons may overlap itself when flattened, and
//     that is a legitimate configuration.
//
// Complexity:
//
//   - Boundary / Word / SideLengths: O(B) for boundary length B.
//   - Attach: O(B). GrowRing: O(B + R) for R ring cells.
//   - Clone: O(C) for C cells.
//
// Errors:
//
//   - ErrCellDegree: requested cell degree outside {5, 6}.
//   - ErrSpanRange: attachment span empty, too long, or covering the cell.
//   - ErrVertexDegree: an operation would push a lattice vertex outside
//     degree 3 (or strand an interior vertex at degree 2).
//   - ErrDoubleAdjacency: an operation would make two cells share more
//     than one edge.
//   - ErrRunTooLong: a boundary run between convex vertices exceeds what a
//     single hexagon can cover.
//   - ErrClosedBoundary: the patch has no open boundary left to grow on.
package patch

package patch

import "fmt"

// Attach glues one new cell of the given degree onto the boundary,
// covering span consecutive boundary edges starting at index start of the
// current Boundary() walk. The new cell keeps degree-span edges on the
// boundary.
//
// Lattice constraints checked before any mutation:
//
//   - the vertices flanking the covered run must be convex (degree 2),
//     since the new cell raises them to degree 3;
//   - the vertices inside the run must be concave (degree 3), so covering
//     both of their boundary edges turns them into proper interior
//     vertices;
//   - the covered edges must belong to pairwise distinct cells, keeping
//     the adjacency simple.
//
// Returns the ID of the new cell. Violations return ErrVertexDegree,
// ErrDoubleAdjacency, ErrSpanRange, ErrCellDegree or ErrClosedBoundary,
// and leave the patch untouched. Complexity: O(B).
func (p *Patch) Attach(degree, start, span int) (int, error) {
	if degree != PentagonDegree && degree != HexagonDegree {
		return 0, fmt.Errorf("patch: Attach(degree=%d): %w", degree, ErrCellDegree)
	}
	b := p.Boundary()
	m := len(b)
	if m == 0 {
		return 0, fmt.Errorf("patch: Attach: %w", ErrClosedBoundary)
	}
	if span < 1 || span > m || degree-span < 1 {
		return 0, fmt.Errorf("patch: Attach(span=%d): %w", span, ErrSpanRange)
	}
	start = ((start % m) + m) % m

	// 1. Flanking vertices must be convex.
	before := b[(start-1+m)%m]
	after := b[(start+span-1)%m]
	if p.vertexDegreeAfter(before) != convexDegree || p.vertexDegreeAfter(after) != convexDegree {
		return 0, fmt.Errorf("patch: Attach at %d: %w", start, ErrVertexDegree)
	}

	// 2. Run-interior vertices must be concave.
	for i := 0; i < span-1; i++ {
		if p.vertexDegreeAfter(b[(start+i)%m]) != concaveDegree {
			return 0, fmt.Errorf("patch: Attach at %d: %w", start, ErrVertexDegree)
		}
	}

	// 3. Covered cells must be pairwise distinct.
	for i := 0; i < span; i++ {
		for j := i + 1; j < span; j++ {
			if b[(start+i)%m].Cell == b[(start+j)%m].Cell {
				return 0, fmt.Errorf("patch: Attach at %d: %w", start, ErrDoubleAdjacency)
			}
		}
	}

	// 4. Wire the new cell: covered edges appear reversed in its own
	// cyclic order, the remaining slots stay on the boundary.
	id := len(p.cells)
	nbr := make([]int, degree)
	for i := range nbr {
		nbr[i] = Exterior
	}
	for i := 0; i < span; i++ {
		e := b[(start+i)%m]
		nbr[span-1-i] = e.Cell
		p.cells[e.Cell].nbr[e.Slot] = id
	}
	p.cells = append(p.cells, &Cell{id: id, deg: degree, nbr: nbr})
	if degree == PentagonDegree {
		p.pentagons++
	}

	return id, nil
}

package patch

import "fmt"

// GrowRing returns a copy of the patch surrounded by one full corona of
// hexagons. The receiver is left untouched.
//
// The stitching of the corona is forced by the boundary word: every
// concave (degree-3) boundary vertex is spanned by a single ring cell,
// every convex (degree-2) vertex separates two consecutive ring cells.
// A ring cell covering e run edges therefore shares two more edges with
// its ring neighbors and keeps 4-e frontier edges.
//
// Violations of the hexagonal lattice are reported as sentinel errors and
// the copy is discarded:
//
//   - a run longer than 4 edges cannot be covered by one hexagon
//     (ErrRunTooLong);
//   - two adjacent ring cells without frontier edges would create a
//     degree-4 vertex (ErrVertexDegree);
//   - a run touching the same cell twice would break simple adjacency
//     (ErrDoubleAdjacency).
//
// Complexity: O(B + R) for boundary length B and R ring cells.
func (p *Patch) GrowRing() (*Patch, error) {
	q := p.Clone()
	b := q.Boundary()
	m := len(b)
	if m == 0 {
		return nil, fmt.Errorf("patch: GrowRing: %w", ErrClosedBoundary)
	}

	// 1. Locate the convex vertices separating consecutive ring cells.
	w := q.Word()
	var junctions []int
	for i, d := range w {
		if d == convexDegree {
			junctions = append(junctions, i)
		}
	}
	t := len(junctions)
	if t < 2 {
		return nil, fmt.Errorf("patch: GrowRing: %w", ErrRunTooLong)
	}

	// 2. Measure the runs and check hexagon capacity.
	runs := make([]int, t)
	for k, j := range junctions {
		e := (junctions[(k+1)%t] - j + m) % m
		if e == 0 {
			e = m
		}
		if e > ringCellBudget {
			return nil, fmt.Errorf("patch: GrowRing run of %d edges: %w", e, ErrRunTooLong)
		}
		runs[k] = e
	}
	for k, e := range runs {
		if e == ringCellBudget && runs[(k+1)%t] == ringCellBudget {
			return nil, fmt.Errorf("patch: GrowRing: adjacent full runs: %w", ErrVertexDegree)
		}
	}

	// 3. Build the ring cells. A ring cell's cyclic order is: covered run
	// edges reversed, previous ring cell, frontier edges, next ring cell.
	base := len(q.cells)
	for k, e := range runs {
		id := base + k
		nbr := make([]int, HexagonDegree)
		for i := 0; i < e; i++ {
			edge := b[(junctions[k]+1+i)%m]
			nbr[e-1-i] = edge.Cell
		}
		for i := 0; i < e; i++ {
			for j := i + 1; j < e; j++ {
				if nbr[i] == nbr[j] {
					return nil, fmt.Errorf("patch: GrowRing: %w", ErrDoubleAdjacency)
				}
			}
		}
		nbr[e] = base + (k-1+t)%t
		for i := e + 1; i < HexagonDegree-1; i++ {
			nbr[i] = Exterior
		}
		nbr[HexagonDegree-1] = base + (k+1)%t
		q.cells = append(q.cells, &Cell{id: id, deg: HexagonDegree, nbr: nbr})
	}

	// 4. Rewire the covered boundary edges of the old cells.
	for k := range runs {
		for i := 0; i < runs[k]; i++ {
			edge := b[(junctions[k]+1+i)%m]
			q.cells[edge.Cell].nbr[edge.Slot] = base + k
		}
	}

	return q, nil
}

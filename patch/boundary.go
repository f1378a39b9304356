package patch

// firstExterior returns the deterministic start of the boundary walk: the
// Exterior slot with the smallest (cell ID, slot) pair.
func (p *Patch) firstExterior() (BoundaryEdge, bool) {
	for _, c := range p.cells {
		for i, n := range c.nbr {
			if n == Exterior {
				return BoundaryEdge{Cell: c.id, Slot: i}, true
			}
		}
	}

	return BoundaryEdge{}, false
}

// nextBoundary returns the boundary edge following e in the walk, rotating
// through the fan of interior cells around the shared vertex.
func (p *Patch) nextBoundary(e BoundaryEdge) BoundaryEdge {
	c := p.cells[e.Cell]
	j := (e.Slot + 1) % c.deg
	for c.nbr[j] != Exterior {
		n := p.cells[c.nbr[j]]
		j = (n.SlotOf(c.id) + 1) % n.deg
		c = n
	}

	return BoundaryEdge{Cell: c.id, Slot: j}
}

// vertexDegreeAfter returns the lattice degree of the boundary vertex
// between edge e and the following boundary edge: 2 + the number of
// interior edges fanning out of it.
func (p *Patch) vertexDegreeAfter(e BoundaryEdge) int {
	deg := convexDegree
	c := p.cells[e.Cell]
	j := (e.Slot + 1) % c.deg
	for c.nbr[j] != Exterior {
		deg++
		n := p.cells[c.nbr[j]]
		j = (n.SlotOf(c.id) + 1) % n.deg
		c = n
	}

	return deg
}

// BoundaryLength returns the number of edges on the open boundary.
// A closed walk has as many edges as vertices, so this is also the length
// of the boundary word. Complexity: O(C).
func (p *Patch) BoundaryLength() int {
	total := 0
	for _, c := range p.cells {
		for _, n := range c.nbr {
			if n == Exterior {
				total++
			}
		}
	}

	return total
}

// Boundary returns the boundary edges in walk order, starting from the
// smallest (cell ID, slot) pair, with the patch interior on the left.
// Returns nil when the patch has no open boundary. Complexity: O(B).
func (p *Patch) Boundary() []BoundaryEdge {
	start, ok := p.firstExterior()
	if !ok {
		return nil
	}
	walk := make([]BoundaryEdge, 0, p.BoundaryLength())
	for e := start; ; {
		walk = append(walk, e)
		e = p.nextBoundary(e)
		if e == start {
			break
		}
	}

	return walk
}

// Word returns the boundary word: the cyclic sequence of boundary vertex
// degrees, aligned so that Word()[i] is the degree of the vertex between
// Boundary()[i] and Boundary()[i+1]. Convex vertices have degree 2,
// concave vertices degree 3. Complexity: O(B).
func (p *Patch) Word() []int {
	b := p.Boundary()
	w := make([]int, len(b))
	for i, e := range b {
		w[i] = p.vertexDegreeAfter(e)
	}

	return w
}

// SideLengths decomposes the boundary word into straight sides and reports
// whether the decomposition exists. A corner is a convex vertex preceded
// by a convex vertex; between corners a straight side alternates concave
// and convex vertices, so a side spanning g word positions has (g+1)/2
// edges of straight-line length. The decomposition exists exactly when the
// word has no two adjacent concave vertices, every corner gap is odd, and
// the number of corners equals 6 minus the pentagon count. Sides are
// returned in walk order starting at the first corner.
func (p *Patch) SideLengths() ([]int, bool) {
	w := p.Word()
	m := len(w)
	if m == 0 {
		return nil, false
	}
	var corners []int
	for i := 0; i < m; i++ {
		prev := w[(i-1+m)%m]
		switch {
		case w[i] == concaveDegree && prev == concaveDegree:
			return nil, false
		case w[i] == convexDegree && prev == convexDegree:
			corners = append(corners, i)
		}
	}
	if len(corners) != HexagonDegree-p.pentagons {
		return nil, false
	}
	sides := make([]int, len(corners))
	for k, c := range corners {
		gap := (corners[(k+1)%len(corners)] - c + m) % m
		if gap == 0 {
			gap = m
		}
		if gap%2 == 0 {
			return nil, false
		}
		sides[k] = (gap + 1) / 2
	}

	return sides, true
}

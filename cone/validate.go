package cone

import "github.com/katalvlaran/hexcone/patch"

// boundaryTarget is the closing policy for one requested side length: the
// symmetric shape (s,s,s,s) at boundary length 8s-4 and the
// near-symmetric shape (s,s+1,s,s+1) at length 8s.
type boundaryTarget struct {
	side    int
	symLen  int
	nearLen int
}

func newBoundaryTarget(side int) boundaryTarget {
	return boundaryTarget{
		side:    side,
		symLen:  sideGrowth*side - boundarySides,
		nearLen: sideGrowth * side,
	}
}

// maxLen returns the longest boundary any viable search state may carry.
// Every patch closing at a target length admits a construction order
// whose intermediate boundaries never exceed the final length (peel a
// cell with at least three boundary edges at each backward step), so
// longer states are dead.
func (t boundaryTarget) maxLen() int { return t.nearLen }

// closes reports whether p is an accepted closure: exactly two pentagons
// and a boundary sitting exactly on one of the two closing shapes.
func (t boundaryTarget) closes(p *patch.Patch) bool {
	if p.PentagonCount() != pentagonTotal {
		return false
	}
	length := p.BoundaryLength()
	if length != t.symLen && length != t.nearLen {
		return false
	}

	return t.matches(p, length)
}

// matches reports whether the side decomposition of p is exactly the
// shape closing at the given length.
func (t boundaryTarget) matches(p *patch.Patch, goal int) bool {
	sides, ok := p.SideLengths()
	if !ok || len(sides) != boundarySides {
		return false
	}
	if goal == t.symLen {
		for _, s := range sides {
			if s != t.side {
				return false
			}
		}

		return true
	}
	// Near-symmetric: sides alternate t.side and t.side+1, starting at
	// either phase.
	for r := 0; r < 2; r++ {
		if sides[r] == t.side && sides[r+1] == t.side+1 &&
			sides[(r+2)%boundarySides] == t.side && sides[(r+3)%boundarySides] == t.side+1 {
			return true
		}
	}

	return false
}

// layerDepth returns the hexagon-layer count of p: the maximum inner-dual
// distance from a hexagon to its nearest pentagon. A patch built as
// coronas around a pentagon core has depth equal to its ring count, so
// the layer budget bounds how deep the hexagon shell may grow.
func layerDepth(p *patch.Patch) int {
	cells := p.Cells()
	dist := make([]int, len(cells))
	queue := make([]int, 0, len(cells))
	for _, c := range cells {
		if c.IsPentagon() {
			queue = append(queue, c.ID())
		} else {
			dist[c.ID()] = -1
		}
	}

	depth := 0
	for qi := 0; qi < len(queue); qi++ {
		c := cells[queue[qi]]
		for i := 0; i < c.Degree(); i++ {
			nb := c.Neighbor(i)
			if nb == patch.Exterior || dist[nb] >= 0 {
				continue
			}
			dist[nb] = dist[c.ID()] + 1
			if dist[nb] > depth {
				depth = dist[nb]
			}
			queue = append(queue, nb)
		}
	}

	return depth
}

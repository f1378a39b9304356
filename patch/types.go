// Package patch defines the Cell and Patch types, their constructors,
// shared constants, and sentinel errors.
package patch

import "errors"

// Exterior marks a cell slot whose edge lies on the open boundary.
const Exterior = -1

const (
	// PentagonDegree is the face degree of a pentagonal cell.
	PentagonDegree = 5
	// HexagonDegree is the face degree of a hexagonal cell.
	HexagonDegree = 6

	// convexDegree is the degree of a boundary vertex touching one cell.
	convexDegree = 2
	// concaveDegree is the degree of a boundary vertex touching two cells.
	concaveDegree = 3

	// ringCellBudget is the number of edges a ring hexagon has left after
	// the two edges shared with its ring neighbors: covered run edges and
	// frontier edges must add up to exactly this.
	ringCellBudget = HexagonDegree - 2
)

// Sentinel errors for patch operations.
var (
	// ErrCellDegree indicates a requested cell degree outside {5, 6}.
	ErrCellDegree = errors.New("patch: cell degree must be 5 or 6")

	// ErrSpanRange indicates an attachment span that is empty, longer than
	// the boundary, or leaves the new cell without a boundary edge.
	ErrSpanRange = errors.New("patch: attachment span out of range")

	// ErrVertexDegree indicates an operation that would take a lattice
	// vertex outside the valid degree range.
	ErrVertexDegree = errors.New("patch: vertex degree outside lattice bounds")

	// ErrDoubleAdjacency indicates an operation that would make two cells
	// share more than one edge.
	ErrDoubleAdjacency = errors.New("patch: cells already adjacent")

	// ErrRunTooLong indicates a boundary run between convex vertices that
	// no single hexagon can cover.
	ErrRunTooLong = errors.New("patch: boundary run exceeds hexagon capacity")

	// ErrClosedBoundary indicates a patch with no open boundary.
	ErrClosedBoundary = errors.New("patch: no open boundary")
)

// Cell is one face of a patch. Its neighbor slots are stored in cyclic
// order; all cells of a patch share the same orientation, so the slot
// lists together form a combinatorial plane embedding.
type Cell struct {
	id  int
	deg int
	nbr []int // len == deg; neighbor cell ID or Exterior, in cyclic order
}

// ID returns the stable identifier of the cell within its patch.
func (c *Cell) ID() int { return c.id }

// Degree returns the face degree of the cell: 5 or 6.
func (c *Cell) Degree() int { return c.deg }

// IsPentagon reports whether the cell has degree 5.
func (c *Cell) IsPentagon() bool { return c.deg == PentagonDegree }

// Neighbor returns the cell ID sharing edge slot i, or Exterior when that
// edge lies on the boundary. The slot index is taken modulo the degree.
func (c *Cell) Neighbor(i int) int {
	d := c.deg

	return c.nbr[((i%d)+d)%d]
}

// SlotOf returns the slot index of the edge shared with cell id, or -1
// when the two cells are not adjacent. Adjacent cells of a valid patch
// share exactly one edge, so the answer is unambiguous.
func (c *Cell) SlotOf(id int) int {
	for i, n := range c.nbr {
		if n == id {
			return i
		}
	}

	return -1
}

// BoundaryEdge identifies one boundary edge as a (cell, slot) pair.
type BoundaryEdge struct {
	Cell int // cell owning the edge
	Slot int // the cell slot carrying Exterior
}

// Patch is a simply-connected region of hexagonal and pentagonal cells.
// The zero value is not usable; construct patches with New or
// NewPentagonPair and grow them with Attach and GrowRing.
type Patch struct {
	cells     []*Cell
	pentagons int
}

// New returns a patch holding a single cell of the given degree with all
// edges on the boundary. Returns ErrCellDegree for degrees outside {5, 6}.
func New(degree int) (*Patch, error) {
	if degree != PentagonDegree && degree != HexagonDegree {
		return nil, ErrCellDegree
	}
	nbr := make([]int, degree)
	for i := range nbr {
		nbr[i] = Exterior
	}
	p := &Patch{cells: []*Cell{{id: 0, deg: degree, nbr: nbr}}}
	if degree == PentagonDegree {
		p.pentagons = 1
	}

	return p, nil
}

// NewPentagonPair returns the minimal two-pentagon patch: two pentagons
// sharing one edge. Its boundary decomposes into sides (1, 2, 1, 2).
func NewPentagonPair() *Patch {
	p, _ := New(PentagonDegree)
	// Attaching a pentagon over one edge of a lone pentagon cannot fail.
	_, _ = p.Attach(PentagonDegree, 0, 1)

	return p
}

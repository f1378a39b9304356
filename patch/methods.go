package patch

// CellCount returns the number of cells in the patch.
func (p *Patch) CellCount() int { return len(p.cells) }

// PentagonCount returns the number of degree-5 cells in the patch.
func (p *Patch) PentagonCount() int { return p.pentagons }

// Cell returns the cell with the given ID, or nil when no such cell
// exists.
func (p *Patch) Cell(id int) *Cell {
	if id < 0 || id >= len(p.cells) {
		return nil
	}

	return p.cells[id]
}

// Cells returns the cells of the patch in ID order. The returned slice is
// a copy; the cells themselves are shared and must not be mutated.
func (p *Patch) Cells() []*Cell {
	out := make([]*Cell, len(p.cells))
	copy(out, p.cells)

	return out
}

// Clone returns a deep copy of the patch. Growth branches clone before
// mutating, so sibling branches never share state.
func (p *Patch) Clone() *Patch {
	cells := make([]*Cell, len(p.cells))
	for i, c := range p.cells {
		nbr := make([]int, len(c.nbr))
		copy(nbr, c.nbr)
		cells[i] = &Cell{id: c.id, deg: c.deg, nbr: nbr}
	}

	return &Patch{cells: cells, pentagons: p.pentagons}
}

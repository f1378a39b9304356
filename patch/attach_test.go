package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexcone/patch"
)

// buildPentagonHexagon returns a pentagon with a hexagon glued over its
// slot-0 edge. Its boundary has nine edges and one concave vertex at each
// glue endpoint.
func buildPentagonHexagon(t *testing.T) *patch.Patch {
	t.Helper()
	p, err := patch.New(patch.PentagonDegree)
	require.NoError(t, err)
	_, err = p.Attach(patch.HexagonDegree, 0, 1)
	require.NoError(t, err)

	return p
}

//----------------------------------------------------------------------------//
// Argument validation
//----------------------------------------------------------------------------//

func TestAttach_DegreeAndSpanErrors(t *testing.T) {
	cases := []struct {
		name   string
		degree int
		start  int
		span   int
		want   error
	}{
		{"DegreeTooSmall", 4, 0, 1, patch.ErrCellDegree},
		{"DegreeTooLarge", 7, 0, 1, patch.ErrCellDegree},
		{"SpanZero", patch.HexagonDegree, 0, 0, patch.ErrSpanRange},
		{"SpanNegative", patch.HexagonDegree, 0, -2, patch.ErrSpanRange},
		{"SpanLeavesNoExterior", patch.PentagonDegree, 0, 5, patch.ErrSpanRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := patch.New(patch.PentagonDegree)
			require.NoError(t, err)

			_, err = p.Attach(tc.degree, tc.start, tc.span)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

//----------------------------------------------------------------------------//
// Vertex-degree checks
//----------------------------------------------------------------------------//

// TestAttach_ConcaveFlankRejected: covering a single edge whose run starts
// at a concave vertex would push that vertex to degree four.
func TestAttach_ConcaveFlankRejected(t *testing.T) {
	p := buildPentagonHexagon(t)

	// Boundary index 4 is the first hexagon edge; the vertex before it is
	// the glue endpoint and already has degree three.
	_, err := p.Attach(patch.HexagonDegree, 4, 1)
	assert.ErrorIs(t, err, patch.ErrVertexDegree)
	assert.Equal(t, 2, p.CellCount())
}

// TestAttach_ConvexInteriorRejected: a two-edge run must fold over exactly
// one concave vertex, so a span of two across a convex corner fails.
func TestAttach_ConvexInteriorRejected(t *testing.T) {
	p := buildPentagonHexagon(t)

	// Indices 1 and 2 both lie on the pentagon; the vertex between them is
	// convex.
	_, err := p.Attach(patch.HexagonDegree, 1, 2)
	assert.ErrorIs(t, err, patch.ErrVertexDegree)
}

//----------------------------------------------------------------------------//
// Multi-edge attachment
//----------------------------------------------------------------------------//

// TestAttach_SpansGlueVertex folds a hexagon over the concave glue vertex,
// covering the last pentagon edge and the first hexagon edge in one run.
func TestAttach_SpansGlueVertex(t *testing.T) {
	p := buildPentagonHexagon(t)
	require.Equal(t, 9, p.BoundaryLength())

	id, err := p.Attach(patch.HexagonDegree, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 3, p.CellCount())

	// Two boundary edges consumed, four new ones exposed.
	assert.Equal(t, 11, p.BoundaryLength())

	// Both covered cells now point back at the new cell, and the covered
	// run appears reversed in the new cell's cyclic order.
	c := p.Cell(id)
	require.NotNil(t, c)
	assert.NotEqual(t, patch.Exterior, p.Cell(0).Neighbor(p.Cell(0).SlotOf(id)))
	assert.NotEqual(t, -1, p.Cell(1).SlotOf(id))
	assert.Equal(t, 0, c.SlotOf(1))
	assert.Equal(t, 1, c.SlotOf(0))
}

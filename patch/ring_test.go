package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexcone/patch"
)

//----------------------------------------------------------------------------//
// Corona around a single hexagon
//----------------------------------------------------------------------------//

// TestGrowRing_Coronene: one corona around a hexagon is coronene, seven
// cells with the regular (2,2,3)-periodic boundary word.
func TestGrowRing_Coronene(t *testing.T) {
	p, err := patch.New(patch.HexagonDegree)
	require.NoError(t, err)

	q, err := p.GrowRing()
	require.NoError(t, err)

	assert.Equal(t, 7, q.CellCount())
	assert.Equal(t, 0, q.PentagonCount())
	assert.Equal(t, 18, q.BoundaryLength())

	want := make([]int, 0, 18)
	for i := 0; i < 6; i++ {
		want = append(want, 2, 2, 3)
	}
	assert.Equal(t, want, q.Word())

	sides, ok := q.SideLengths()
	require.True(t, ok)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2}, sides)
}

// TestGrowRing_Twice: the second corona around coronene yields the
// 19-cell patch with boundary length 30.
func TestGrowRing_Twice(t *testing.T) {
	p, err := patch.New(patch.HexagonDegree)
	require.NoError(t, err)

	q, err := p.GrowRing()
	require.NoError(t, err)
	r, err := q.GrowRing()
	require.NoError(t, err)

	assert.Equal(t, 19, r.CellCount())
	assert.Equal(t, 30, r.BoundaryLength())

	sides, ok := r.SideLengths()
	require.True(t, ok)
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3}, sides)
}

//----------------------------------------------------------------------------//
// Corona around the two-pentagon seed
//----------------------------------------------------------------------------//

// TestGrowRing_PentagonPair pins the corona of the minimal seed: six ring
// hexagons and the near-symmetric side profile (2, 3, 2, 3).
func TestGrowRing_PentagonPair(t *testing.T) {
	p := patch.NewPentagonPair()

	q, err := p.GrowRing()
	require.NoError(t, err)

	assert.Equal(t, 8, q.CellCount())
	assert.Equal(t, 2, q.PentagonCount())
	assert.Equal(t, 16, q.BoundaryLength())
	assert.Equal(t,
		[]int{2, 2, 3, 2, 2, 3, 2, 3, 2, 2, 3, 2, 2, 3, 2, 3},
		q.Word())

	sides, ok := q.SideLengths()
	require.True(t, ok)
	assert.Equal(t, []int{2, 3, 2, 3}, sides)
}

// TestGrowRing_ReceiverUntouched checks that growing works on a copy.
func TestGrowRing_ReceiverUntouched(t *testing.T) {
	p := patch.NewPentagonPair()

	_, err := p.GrowRing()
	require.NoError(t, err)

	assert.Equal(t, 2, p.CellCount())
	assert.Equal(t, 8, p.BoundaryLength())
	assert.Equal(t, []int{2, 2, 2, 3, 2, 2, 2, 3}, p.Word())
}

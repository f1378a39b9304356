package patch_test

import (
	"fmt"

	"github.com/katalvlaran/hexcone/patch"
)

// ExampleNewPentagonPair builds the minimal two-pentagon patch and reads
// off its boundary side profile.
func ExampleNewPentagonPair() {
	p := patch.NewPentagonPair()

	sides, ok := p.SideLengths()
	fmt.Println(sides, ok)
	// Output: [1 2 1 2] true
}

// ExamplePatch_GrowRing surrounds the seed with one corona of hexagons.
func ExamplePatch_GrowRing() {
	p := patch.NewPentagonPair()

	q, err := p.GrowRing()
	if err != nil {
		fmt.Println("grow:", err)
		return
	}

	sides, _ := q.SideLengths()
	fmt.Println(q.CellCount(), sides)
	// Output: 8 [2 3 2 3]
}

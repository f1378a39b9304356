package canon_test

import (
	"fmt"

	"github.com/katalvlaran/hexcone/canon"
	"github.com/katalvlaran/hexcone/patch"
)

// ExampleEncode fingerprints the minimal two-pentagon patch: its rotation
// group has order two and it coincides with its mirror image.
func ExampleEncode() {
	code, err := canon.Encode(patch.NewPentagonPair())
	if err != nil {
		fmt.Println("encode:", err)
		return
	}

	fmt.Println(code.Rotations(), code.Chiral())
	// Output: 2 false
}

package canon

import (
	"errors"

	"github.com/katalvlaran/hexcone/patch"
)

// ErrNilPatch indicates Encode received a nil or empty patch.
var ErrNilPatch = errors.New("canon: nil or empty patch")

// orientations of a flag: forward walks cell slots in stored cyclic
// order, reverse walks them backwards (the mirror image).
const (
	forward  = 1
	reverse  = -1
	exterior = 0 // code mark for a boundary edge
)

// Code is the canonical encoding of one patch.
type Code struct {
	key       string
	mirrorKey string
	rotations int
}

// Key returns the canonical key of the patch itself. Keys of two patches
// are equal exactly when the patches are isomorphic.
func (c *Code) Key() string { return c.key }

// MirrorKey returns the canonical key of the patch's mirror image.
func (c *Code) MirrorKey() string { return c.mirrorKey }

// CanonicalKey returns the deduplication key: Key, or the smaller of Key
// and MirrorKey when mirror identification is requested.
func (c *Code) CanonicalKey(mirror bool) string {
	if mirror && c.mirrorKey < c.key {
		return c.mirrorKey
	}

	return c.key
}

// Rotations returns the order of the patch's orientation-preserving
// automorphism group.
func (c *Code) Rotations() int { return c.rotations }

// Chiral reports whether the patch differs from its mirror image.
func (c *Code) Chiral() bool { return c.key != c.mirrorKey }

// Encode computes the canonical Code of a patch.
//
// Candidate roots are the cells of minimal degree; since the code of a
// cell starts with its degree, the minimal code is always rooted there,
// and automorphisms permute minimal-degree cells among themselves.
func Encode(p *patch.Patch) (*Code, error) {
	if p == nil || p.CellCount() == 0 {
		return nil, ErrNilPatch
	}
	cells := p.Cells()
	minDeg := cells[0].Degree()
	for _, c := range cells {
		if c.Degree() < minDeg {
			minDeg = c.Degree()
		}
	}

	var keyFwd, keyRev string
	rotations := 0
	for _, c := range cells {
		if c.Degree() != minDeg {
			continue
		}
		for slot := 0; slot < c.Degree(); slot++ {
			fwd := string(flagCode(p, c.ID(), slot, forward))
			switch {
			case keyFwd == "" || fwd < keyFwd:
				keyFwd, rotations = fwd, 1
			case fwd == keyFwd:
				rotations++
			}
			rev := string(flagCode(p, c.ID(), slot, reverse))
			if keyRev == "" || rev < keyRev {
				keyRev = rev
			}
		}
	}

	return &Code{key: keyFwd, mirrorKey: keyRev, rotations: rotations}, nil
}

// flagCode emits the breadth-first code of the patch rooted at the given
// flag. Cells are numbered in discovery order; each visited cell
// contributes its degree followed by the numbers of its neighbors, read
// cyclically from the entry slot in the flag's orientation, with exterior
// edges marked 0. Entries are emitted as big-endian 16-bit values so that
// byte-wise comparison matches numeric comparison.
func flagCode(p *patch.Patch, root, slot, dir int) []byte {
	n := p.CellCount()
	num := make([]int, n)   // discovery number, 0 = unseen
	entry := make([]int, n) // slot pointing back at the discoverer
	num[root] = 1
	entry[root] = slot
	queue := make([]int, 1, n)
	queue[0] = root
	next := 2

	code := make([]byte, 0, 2*n*(patch.HexagonDegree+1))
	for qi := 0; qi < len(queue); qi++ {
		c := p.Cell(queue[qi])
		d := c.Degree()
		code = appendUint16(code, d)
		for k := 0; k < d; k++ {
			nb := c.Neighbor(entry[c.ID()] + dir*k)
			if nb == patch.Exterior {
				code = appendUint16(code, exterior)
				continue
			}
			if num[nb] == 0 {
				num[nb] = next
				next++
				entry[nb] = p.Cell(nb).SlotOf(c.ID())
				queue = append(queue, nb)
			}
			code = appendUint16(code, num[nb])
		}
	}

	return code
}

func appendUint16(b []byte, v int) []byte {
	return append(b, byte(v>>8), byte(v))
}

package cone

import (
	"context"

	"github.com/katalvlaran/hexcone/canon"
	"github.com/katalvlaran/hexcone/patch"
)

// state is one explored patch together with its canonical code.
type state struct {
	patch *patch.Patch
	code  *canon.Code
}

// explorer performs the exhaustive attachment search. A growth move glues
// one cell over a contiguous run of boundary edges (patch.Attach), with
// pentagon moves available while the patch holds fewer than two. States
// isomorphic to one already explored merge through canonical keys, and
// states whose boundary exceeds the longest closing shape are dead, so
// the state space is finite.
type explorer struct {
	target boundaryTarget
	layers int
	opts   Options
	seen   map[string]struct{}
	stats  *Stats
	found  []*candidate
}

func newExplorer(target boundaryTarget, layers int, o Options, stats *Stats) *explorer {
	return &explorer{
		target: target,
		layers: layers,
		opts:   o,
		seen:   make(map[string]struct{}),
		stats:  stats,
	}
}

// dedupe returns the canonical code of p when no isomorphic state was
// explored before, recording its key; nil otherwise. Mirror
// identification is folded into the key when requested, so mirrored
// branches merge early.
func (x *explorer) dedupe(p *patch.Patch) *canon.Code {
	code, err := canon.Encode(p)
	if err != nil {
		return nil
	}
	key := code.CanonicalKey(x.opts.Mirror)
	if _, ok := x.seen[key]; ok {
		x.stats.Pruned++

		return nil
	}
	x.seen[key] = struct{}{}

	return code
}

// adopt registers a state produced by another explorer, so a branch
// worker does not re-enter its own root.
func (x *explorer) adopt(s state) {
	x.seen[s.code.CanonicalKey(x.opts.Mirror)] = struct{}{}
}

// attachable reports whether the boundary run [start, start+span) has
// convex flanking vertices and concave interior vertices, the degree
// preconditions of patch.Attach. Word index i carries the vertex after
// boundary edge i.
func attachable(w []int, start, span int) bool {
	m := len(w)
	if w[(start+m-1)%m] != convexVertex || w[(start+span-1)%m] != convexVertex {
		return false
	}
	for i := 0; i < span-1; i++ {
		if w[(start+i)%m] != concaveVertex {
			return false
		}
	}

	return true
}

// expand returns the distinct successors of p in move order: every legal
// single-cell attachment, by degree, then boundary start, then span.
func (x *explorer) expand(p *patch.Patch) []state {
	var next []state
	w := p.Word()
	m := len(w)
	for _, degree := range [2]int{patch.PentagonDegree, patch.HexagonDegree} {
		if degree == patch.PentagonDegree && p.PentagonCount() == pentagonTotal {
			continue
		}
		maxSpan := degree - 1
		if maxSpan > m {
			maxSpan = m
		}
		for start := 0; start < m; start++ {
			for span := 1; span <= maxSpan; span++ {
				if !attachable(w, start, span) {
					continue
				}
				q := p.Clone()
				if _, err := q.Attach(degree, start, span); err != nil {
					x.stats.Rejected++
					continue
				}
				if q.BoundaryLength() > x.target.maxLen() {
					x.stats.Rejected++
					continue
				}
				if code := x.dedupe(q); code != nil {
					next = append(next, state{patch: q, code: code})
				}
			}
		}
	}

	return next
}

// explore walks the whole subtree under s depth-first, collecting every
// accepted closure in discovery order. The state must already be
// registered through dedupe or adopt.
func (x *explorer) explore(ctx context.Context, s state) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	x.stats.States++
	if x.target.closes(s.patch) && layerDepth(s.patch) <= x.layers {
		if x.opts.Symmetric && s.code.Rotations() < rotationOrder {
			x.stats.Rejected++
		} else {
			x.found = append(x.found, &candidate{
				key:   s.code.CanonicalKey(x.opts.Mirror),
				patch: s.patch,
			})
		}
	}

	for _, n := range x.expand(s.patch) {
		if err := x.explore(ctx, n); err != nil {
			return err
		}
	}

	return nil
}

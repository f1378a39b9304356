package cone

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexcone/patch"
)

// candidate is one accepted closure before the final merge.
type candidate struct {
	key   string
	patch *patch.Patch
}

// TwoPentagons enumerates all combinatorially distinct patches with
// exactly two pentagonal cells whose boundary closes at side length
// sside within at most hexagonLayers hexagon layers.
//
// The search starts from a lone pentagon and a lone hexagon, attaches one
// cell at a time along the boundary in every legal way, merges isomorphic
// partial patches by canonical key and discards any patch whose boundary
// outgrows the longest closing shape. Closed patches within the layer
// budget are collected in discovery order, so the returned count and
// patch order are identical with and without WithCountOnly and for every
// worker count.
//
// Returns ErrSideLength or ErrLayerBudget for invalid parameters before
// any search, the context error on cancellation, and OnAccept hook errors
// wrapped. Structurally invalid attachments inside the search are skipped
// per move and reported only through Result.Stats.
func TwoPentagons(sside, hexagonLayers int, opts ...Option) (*Result, error) {
	if sside < MinSideLength {
		return nil, fmt.Errorf("cone: TwoPentagons(sside=%d): %w", sside, ErrSideLength)
	}
	if hexagonLayers < 0 {
		return nil, fmt.Errorf("cone: TwoPentagons(hexagonLayers=%d): %w", hexagonLayers, ErrLayerBudget)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	target := newBoundaryTarget(sside)

	// 1. Branching phase: expand the two single-cell roots into their
	// distinct two-cell successors. The root explorer owns the shared
	// deduplication table, so branches rooted in isomorphic states merge
	// here already.
	root := newExplorer(target, hexagonLayers, o, &res.Stats)
	var branches []state
	for _, degree := range [2]int{patch.PentagonDegree, patch.HexagonDegree} {
		p, err := patch.New(degree)
		if err != nil {
			return nil, err
		}
		if root.dedupe(p) == nil {
			continue
		}
		res.Stats.States++
		branches = append(branches, root.expand(p)...)
	}

	// 2. Search phase. Sequential runs walk every branch through the
	// root explorer's table; parallel runs give each branch its own
	// explorer and table, which revisits states shared between branches
	// but keeps each branch's discovery order intact.
	var candidates []*candidate
	if o.Workers > 1 {
		workers := make([]*explorer, len(branches))
		parts := make([]Stats, len(branches))
		g, gctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Workers)
		for i, b := range branches {
			i, b := i, b
			workers[i] = newExplorer(target, hexagonLayers, o, &parts[i])
			g.Go(func() error {
				workers[i].adopt(b)

				return workers[i].explore(gctx, b)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for i := range parts {
			res.Stats.States += parts[i].States
			res.Stats.Pruned += parts[i].Pruned
			res.Stats.Rejected += parts[i].Rejected
		}
		for _, w := range workers {
			candidates = append(candidates, w.found...)
		}
	} else {
		for _, b := range branches {
			if err := root.explore(o.Ctx, b); err != nil {
				return nil, err
			}
		}
		candidates = root.found
	}

	// 3. Merge canonical keys in branch order, so the result is
	// deterministic for a given input regardless of worker count.
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.key]; dup {
			res.Stats.Duplicates++
			continue
		}
		seen[c.key] = struct{}{}
		res.Count++
		if o.OnAccept != nil {
			if err := o.OnAccept(c.patch); err != nil {
				return nil, fmt.Errorf("cone: OnAccept hook: %w", err)
			}
		}
		if !o.CountOnly {
			res.Patches = append(res.Patches, c.patch)
		}
	}

	return res, nil
}

// Package cone defines options, result types, and sentinel errors for the
// two-pentagon patch enumerator.
package cone

import (
	"context"
	"errors"

	"github.com/katalvlaran/hexcone/patch"
)

// MinSideLength is the smallest meaningful boundary side length.
const MinSideLength = 1

const (
	// pentagonTotal is the number of pentagonal cells in an accepted patch.
	pentagonTotal = 2

	// boundarySides is the number of straight sides of a two-pentagon
	// boundary: each pentagon removes one of the six sides of a pure
	// hexagon disk.
	boundarySides = 4

	// sideGrowth is the boundary-length increase per unit of side length:
	// lengthening all four sides by one adds two edges per side.
	sideGrowth = 2 * boundarySides

	// convexVertex and concaveVertex are the boundary vertex degrees of
	// the boundary word (see patch.Word).
	convexVertex  = 2
	concaveVertex = 3

	// rotationOrder is the rotation required by WithSymmetric. Any
	// rotation of a two-pentagon patch fixes or swaps the pentagons, so
	// order two is also the largest possible.
	rotationOrder = 2
)

// Sentinel errors for enumeration parameters.
var (
	// ErrSideLength indicates a requested side length below MinSideLength.
	ErrSideLength = errors.New("cone: side length must be at least 1")

	// ErrLayerBudget indicates a negative hexagon-layer budget.
	ErrLayerBudget = errors.New("cone: hexagon layer budget must be non-negative")
)

// Option configures optional behavior of TwoPentagons.
type Option func(*Options)

// Options holds configurable parameters for the enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Symmetric keeps only patches admitting an order-two rotation.
	Symmetric bool

	// Mirror identifies each patch with its mirror image, halving the
	// count for chiral patches.
	Mirror bool

	// CountOnly skips materializing Result.Patches; the count is
	// identical either way.
	CountOnly bool

	// Workers is the number of goroutines exploring independent top-level
	// search branches. Values below 2 keep the search sequential.
	Workers int

	// OnAccept, if non-nil, receives every distinct accepted patch in
	// discovery order. Returning an error aborts the enumeration with
	// that error.
	OnAccept func(*patch.Patch) error
}

// DefaultOptions returns an Options struct with a background context,
// sequential search, no symmetry or mirror filtering, and full
// materialization.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext returns an Option that sets the cancellation context.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSymmetric returns an Option requiring an order-two rotation.
func WithSymmetric() Option {
	return func(o *Options) { o.Symmetric = true }
}

// WithMirror returns an Option identifying patches with their mirror
// images.
func WithMirror() Option {
	return func(o *Options) { o.Mirror = true }
}

// WithCountOnly returns an Option that skips materializing the patch
// list.
func WithCountOnly() Option {
	return func(o *Options) { o.CountOnly = true }
}

// WithWorkers returns an Option distributing the top-level search
// branches over n goroutines. Values below 2 keep the search sequential.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 1 {
			o.Workers = n
		}
	}
}

// WithOnAccept returns an Option installing fn as the acceptance hook.
func WithOnAccept(fn func(*patch.Patch) error) Option {
	return func(o *Options) { o.OnAccept = fn }
}

// Stats reports search diagnostics. Values are deterministic for a given
// input and worker mode; sequential and parallel runs explore branches
// against different deduplication tables, so States, Pruned and
// Duplicates may differ between the two modes while Count never does.
type Stats struct {
	// States is the number of distinct partial patches expanded.
	States int

	// Pruned counts growth moves merged into an isomorphic state already
	// explored.
	Pruned int

	// Rejected counts growth moves discarded by lattice or boundary
	// constraints, plus closures failing the symmetry filter.
	Rejected int

	// Duplicates counts accepted patches merged during the reconciliation
	// of parallel branches.
	Duplicates int
}

// Result is the outcome of one enumeration.
type Result struct {
	// Count is the number of distinct accepted patches after
	// deduplication and symmetry filtering.
	Count int

	// Patches holds the distinct accepted patches in discovery order.
	// Nil when CountOnly is set.
	Patches []*patch.Patch

	// Stats carries search diagnostics.
	Stats Stats
}

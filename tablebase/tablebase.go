package tablebase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// Tablebase is a layered BFS outward from the solved state, L[0..D].
// Once a layer is appended it is never mutated again, and ContainsOuter,
// DepthOf and RetrogradeSolve may be called concurrently with each other.
// They are not synchronised with GrowTo, which appends to the layer list
// without a lock, so they must not run while GrowTo is in progress.
type Tablebase struct {
	layers     []*shardedSet
	numWorkers int
}

// New returns a tablebase seeded with L[0] = {solved}, whose growth fans
// out across numWorkers goroutines at a time.
func New(numWorkers int) *Tablebase {
	if numWorkers < 1 {
		numWorkers = 1
	}
	solvedLayer := newShardedSet()
	solvedLayer.Insert(codec.EncodeState(cube.Solved()))
	return &Tablebase{layers: []*shardedSet{solvedLayer}, numWorkers: numWorkers}
}

// Depth returns the highest k for which L[k] has been finalized.
func (t *Tablebase) Depth() int {
	return len(t.layers) - 1
}

// GrowTo extends the tablebase to depth d, one layer at a time, if it is
// not already that deep.
func (t *Tablebase) GrowTo(ctx context.Context, d int) error {
	for t.Depth() < d {
		if err := t.growOneLayer(ctx); err != nil {
			return err
		}
	}
	return nil
}

// growOneLayer expands L[k] in parallel to build L[k+1]. For each state
// in L[k] and each of the 18 rotations, a destination is added to
// L[k+1] iff it is not already present in L[k-1] ∪ L[k] ∪ L[k+1] — no
// legality filter is applied, per spec.md §4.7.
func (t *Tablebase) growOneLayer(ctx context.Context) error {
	k := t.Depth()
	current := t.layers[k]
	next := newShardedSet()

	keys := make([]codec.CompositeHash, 0, current.Len())
	current.Each(func(h codec.CompositeHash) { keys = append(keys, h) })

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(t.numWorkers)

	for _, h := range keys {
		h := h
		group.Go(func() error {
			state := codec.DecodeState(h)
			for r := rotation.Rotation(0); r < rotation.NumRotations; r++ {
				nextState := rotation.Apply(state, r)
				nextHash := codec.EncodeState(nextState)
				if t.containsAny(nextHash, k, next) {
					continue
				}
				next.Insert(nextHash)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	t.layers = append(t.layers, next)
	return nil
}

// containsAny reports whether h is already present in L[k-1], L[k], or
// the layer currently under construction, next (L[k+1]).
func (t *Tablebase) containsAny(h codec.CompositeHash, k int, next *shardedSet) bool {
	if k > 0 && t.layers[k-1].Contains(h) {
		return true
	}
	if t.layers[k].Contains(h) {
		return true
	}
	return next.Contains(h)
}

// ContainsOuter reports whether h is a member of the outermost finalized
// layer, L[Depth()].
func (t *Tablebase) ContainsOuter(h codec.CompositeHash) bool {
	return t.layers[len(t.layers)-1].Contains(h)
}

// DepthOf returns the exact distance of state from solved, and whether
// state lies within the grown tablebase at all. Layers are scanned from
// innermost to outermost; D is small (spec.md caps it around 9), so a
// linear scan is the simplest correct approach.
func (t *Tablebase) DepthOf(state cube.State) (int, bool) {
	h := codec.EncodeState(state)
	for k, layer := range t.layers {
		if layer.Contains(h) {
			return k, true
		}
	}
	return 0, false
}

// RetrogradeSolve returns the lexicographically-first rotation path of
// length depth_of(state) from state to solved, or nil if state is not
// in the tablebase or its depth exceeds maxDepth. At each step it walks
// to the first rotation, in enumeration order, whose result has a
// strictly smaller tablebase depth than the current state — the
// well-ordered BFS layering guarantees such a rotation always exists
// while depth > 0.
func (t *Tablebase) RetrogradeSolve(state cube.State, maxDepth int) []rotation.Rotation {
	depth, ok := t.DepthOf(state)
	if !ok || depth > maxDepth {
		return nil
	}

	path := make([]rotation.Rotation, 0, depth)
	current := state
	currentDepth := depth
	for currentDepth > 0 {
		moved := false
		for r := rotation.Rotation(0); r < rotation.NumRotations; r++ {
			next := rotation.Apply(current, r)
			nextDepth, ok := t.DepthOf(next)
			if ok && nextDepth < currentDepth {
				path = append(path, r)
				current = next
				currentDepth = nextDepth
				moved = true
				break
			}
		}
		if !moved {
			panic("tablebase: retrograde solve found no strictly-closer neighbor")
		}
	}
	return path
}

package solver

import (
	"sync"

	"github.com/linusvdv/puppet-cube-v2/cube"
)

// bestTracker holds the shallowest state found so far inside the
// tablebase's outer frontier, guarded by a single mutex per spec.md §5's
// "best-depth + best-entry tuple: guarded by a single mutex" policy;
// writers compare-and-swap on depth.
type bestTracker struct {
	mu    sync.Mutex
	found bool
	depth uint32
	entry cube.State
}

// Depth returns the current best depth and whether anything has been
// found yet.
func (b *bestTracker) Depth() (uint32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.depth, b.found
}

// Entry returns the current best entry state and whether anything has
// been found yet.
func (b *bestTracker) Entry() (cube.State, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry, b.found
}

// Update writes (depth, entry) iff nothing has been found yet or depth
// strictly improves on the stored one.
func (b *bestTracker) Update(depth uint32, entry cube.State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.found || depth < b.depth {
		b.found = true
		b.depth = depth
		b.entry = entry
	}
}

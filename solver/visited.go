package solver

import (
	"sync"

	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// numVisitedShards splits the visited map across independent mutexes,
// the same sharded-map idiom tablebase.shardedSet uses, generalized
// here to carry a value (best known depth and the rotation that reached
// it) rather than plain set membership.
const numVisitedShards = 32

type visitedEntry struct {
	depth       uint32
	incoming    rotation.Rotation
	hasIncoming bool
}

// visitedMap is the concurrent hash map from spec.md §4.8: state_hash ->
// (best_known_depth, incoming_rotation). Writes are compare-and-swap:
// a state is (re)written only when its new depth is strictly less than
// the stored depth, so readers racing a write only ever see depths
// that are conservative (equal or larger than truth), never optimistic.
type visitedMap struct {
	shards [numVisitedShards]visitedShard
}

type visitedShard struct {
	mu      sync.Mutex
	entries map[codec.CompositeHash]visitedEntry
}

func newVisitedMap() *visitedMap {
	v := &visitedMap{}
	for i := range v.shards {
		v.shards[i].entries = make(map[codec.CompositeHash]visitedEntry)
	}
	return v
}

func (v *visitedMap) shardFor(h codec.CompositeHash) *visitedShard {
	return &v.shards[h.Hash1%numVisitedShards]
}

// Depth returns the best known depth recorded for h, and whether h has
// been visited at all.
func (v *visitedMap) Depth(h codec.CompositeHash) (uint32, bool) {
	shard := v.shardFor(h)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	e, ok := shard.entries[h]
	return e.depth, ok
}

// Get returns the full visited entry for h.
func (v *visitedMap) Get(h codec.CompositeHash) (visitedEntry, bool) {
	shard := v.shardFor(h)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	e, ok := shard.entries[h]
	return e, ok
}

// TryAdmit writes (depth, incoming) for h iff no entry exists yet or
// the existing entry's depth is strictly greater than depth. Returns
// whether the write happened.
func (v *visitedMap) TryAdmit(h codec.CompositeHash, depth uint32, incoming rotation.Rotation, hasIncoming bool) bool {
	shard := v.shardFor(h)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	existing, ok := shard.entries[h]
	if ok && existing.depth <= depth {
		return false
	}
	shard.entries[h] = visitedEntry{depth: depth, incoming: incoming, hasIncoming: hasIncoming}
	return true
}

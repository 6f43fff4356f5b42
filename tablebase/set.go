package tablebase

import (
	"sync"

	"github.com/linusvdv/puppet-cube-v2/codec"
)

// numShards is the number of independent mutex-guarded buckets a
// shardedSet splits its keys across, matching the "sharded mutexes
// inside the concurrent set" resource policy of spec.md §5. It follows
// the RWMutex-guarded-map idiom of the teacher's core.Graph, generalized
// from one lock to a fixed number of them so concurrent tablebase growth
// workers contend less.
const numShards = 16

// shardedSet is a concurrent set of composite state hashes.
type shardedSet struct {
	shards [numShards]shard
}

type shard struct {
	mu   sync.RWMutex
	keys map[codec.CompositeHash]struct{}
}

func newShardedSet() *shardedSet {
	s := &shardedSet{}
	for i := range s.shards {
		s.shards[i].keys = make(map[codec.CompositeHash]struct{})
	}
	return s
}

func (s *shardedSet) shardFor(h codec.CompositeHash) *shard {
	return &s.shards[h.Hash1%numShards]
}

// Contains reports whether h is a member. Thread-safe: acquires a read
// lock on h's shard.
func (s *shardedSet) Contains(h codec.CompositeHash) bool {
	shard := s.shardFor(h)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	_, ok := shard.keys[h]
	return ok
}

// Insert adds h, returning false if it was already present. Thread-safe:
// acquires a write lock on h's shard.
func (s *shardedSet) Insert(h codec.CompositeHash) bool {
	shard := s.shardFor(h)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, ok := shard.keys[h]; ok {
		return false
	}
	shard.keys[h] = struct{}{}
	return true
}

// Len returns the number of members. Not safe to call concurrently with
// Insert on the same set if an exact count during growth is required;
// tablebase only calls it on finalized layers.
func (s *shardedSet) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += len(s.shards[i].keys)
		s.shards[i].mu.RUnlock()
	}
	return n
}

// Each calls f for every member. f must not mutate s.
func (s *shardedSet) Each(f func(codec.CompositeHash)) {
	for i := range s.shards {
		s.shards[i].mu.RLock()
		for h := range s.shards[i].keys {
			f(h)
		}
		s.shards[i].mu.RUnlock()
	}
}

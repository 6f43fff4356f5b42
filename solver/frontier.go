package solver

import (
	"sync"
	"sync/atomic"

	"github.com/linusvdv/puppet-cube-v2/cube"
)

// numBuckets bounds the priority key f = depth + heuristic + visit_count.
// depth is discarded at maxSearchDepth, heuristic rarely exceeds a few
// dozen for this puzzle's relaxations, and visit_count is capped at
// maxRevisits, so a few hundred buckets leaves ample headroom; any key
// beyond the array is clamped into the last bucket rather than dropped.
const numBuckets = 256

type frontierEntry struct {
	state      cube.State
	depth      uint32
	visitCount uint8
}

// frontier is a fixed array of FIFO buckets indexed by priority key.
// spec.md §5 calls for "lock-free MPMC queues" per bucket; no library in
// the example pack offers a lock-free MPMC queue for Go, and nothing
// about this solver's worker counts demands one, so a single mutex
// guarding the whole bucket array is used instead — see DESIGN.md.
type frontier struct {
	mu      sync.Mutex
	buckets [numBuckets][]frontierEntry
	size    int64
}

func newFrontier() *frontier {
	return &frontier{}
}

func bucketKey(f int) int {
	if f < 0 {
		return 0
	}
	if f >= numBuckets {
		return numBuckets - 1
	}
	return f
}

// Push enqueues e into the bucket for priority key f.
func (fr *frontier) Push(f int, e frontierEntry) {
	key := bucketKey(f)
	fr.mu.Lock()
	fr.buckets[key] = append(fr.buckets[key], e)
	fr.mu.Unlock()
	atomic.AddInt64(&fr.size, 1)
}

// Pop dequeues from the lowest non-empty bucket, FIFO within that
// bucket, and reports whether an entry was found.
func (fr *frontier) Pop() (frontierEntry, bool) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	for k := 0; k < numBuckets; k++ {
		if len(fr.buckets[k]) > 0 {
			e := fr.buckets[k][0]
			fr.buckets[k] = fr.buckets[k][1:]
			atomic.AddInt64(&fr.size, -1)
			return e, true
		}
	}
	return frontierEntry{}, false
}

// Size returns the process-wide frontier-size counter workers busy-wait
// against.
func (fr *frontier) Size() int64 {
	return atomic.LoadInt64(&fr.size)
}

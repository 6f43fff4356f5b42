package solver

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// maxSearchDepth discards any branch at or beyond this many moves from
// the scramble (spec.md §4.8 rule 4).
const maxSearchDepth = 100

// maxRevisits bounds how many times a state is re-enqueued with an
// incremented visit_count before it is dropped for good (spec.md §4.8
// rule 7).
const maxRevisits = 4

// DefaultNodeBudget is the total-positions ceiling a solve explores
// before giving up, absent an explicit override (spec.md §4.8).
const DefaultNodeBudget = 10_000_000

// Heuristic is the read-only view Solve needs of the offline heuristic
// tables; *heuristic.Oracle satisfies it.
type Heuristic interface {
	H(state cube.State) uint16
	LegalMask(state cube.State) uint16
}

// Tablebase is the read-only view Solve needs of the online tablebase;
// *tablebase.Tablebase satisfies it.
type Tablebase interface {
	ContainsOuter(h codec.CompositeHash) bool
	RetrogradeSolve(state cube.State, maxDepth int) []rotation.Rotation
}

// Options configures a Solve call.
type Options struct {
	NumWorkers     int
	NodeBudget     int64
	TablebaseDepth int
	// MinDepth, when positive, lets Solve return as soon as a found
	// solution's depth is <= MinDepth, without exhausting the frontier
	// or node budget — an early-acceptance hint, not an optimality
	// claim (see DESIGN.md's note on the original's --min_depth flag).
	MinDepth int
}

// NewOptions builds Options, defaulting numWorkers to runtime.NumCPU()
// and nodeBudget to DefaultNodeBudget when given non-positive values.
func NewOptions(numWorkers int, nodeBudget int64, tablebaseDepth int) Options {
	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	if nodeBudget <= 0 {
		nodeBudget = DefaultNodeBudget
	}
	return Options{NumWorkers: numWorkers, NodeBudget: nodeBudget, TablebaseDepth: tablebaseDepth}
}

// WithMinDepth returns a copy of o with MinDepth set.
func (o Options) WithMinDepth(minDepth int) Options {
	o.MinDepth = minDepth
	return o
}

// Result is the outcome of a single Solve call.
type Result struct {
	Path          []rotation.Rotation
	NodesExpanded int64
	Found         bool
}

// Solve runs the bounded parallel best-first search of spec.md §4.8
// from start. A worker that reaches a state in tb's outer frontier records
// it as the best entry if it is shallower than the current one, and the
// search goes on until the frontier drains, the node budget or ctx is
// exhausted, or an entry at depth <= MinDepth is found. Solve then
// concatenates the visited-map prefix path (scramble -> best entry)
// with the tablebase's exact retrograde suffix (frontier state ->
// solved).
func Solve(ctx context.Context, oracle Heuristic, tb Tablebase, start cube.State, opts Options) (Result, error) {
	fr := newFrontier()
	visited := newVisitedMap()
	best := &bestTracker{}
	var totalPositions int64
	var busyWorkers int64
	var stopEarly atomic.Bool

	startHash := codec.EncodeState(start)
	visited.TryAdmit(startHash, 0, 0, false)
	fr.Push(int(oracle.H(start)), frontierEntry{state: start, depth: 0, visitCount: 0})

	numWorkers := opts.NumWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runWorker(ctx, fr, visited, oracle, tb, opts, best, &totalPositions, &busyWorkers, &stopEarly)
		}()
	}
	wg.Wait()

	nodes := atomic.LoadInt64(&totalPositions)

	if err := ctx.Err(); err != nil {
		return Result{NodesExpanded: nodes}, err
	}

	entry, found := best.Entry()
	if !found {
		return Result{NodesExpanded: nodes}, nil
	}

	suffix := tb.RetrogradeSolve(entry, opts.TablebaseDepth)
	prefix := reconstructPrefix(visited, entry)

	path := make([]rotation.Rotation, 0, len(prefix)+len(suffix))
	path = append(path, prefix...)
	path = append(path, suffix...)

	return Result{Path: path, NodesExpanded: nodes, Found: true}, nil
}

// runWorker is the per-thread loop of spec.md §4.8's worker algorithm.
func runWorker(ctx context.Context, fr *frontier, visited *visitedMap, oracle Heuristic, tb Tablebase, opts Options, best *bestTracker, totalPositions, busyWorkers *int64, stopEarly *atomic.Bool) {
	for {
		if ctx.Err() != nil {
			return
		}
		if stopEarly.Load() {
			return
		}
		if atomic.LoadInt64(totalPositions) >= opts.NodeBudget {
			return
		}

		entry, ok := fr.Pop()
		if !ok {
			if fr.Size() == 0 && atomic.LoadInt64(busyWorkers) == 0 {
				return
			}
			runtime.Gosched()
			continue
		}

		atomic.AddInt64(busyWorkers, 1)
		processEntry(fr, visited, oracle, tb, opts, best, totalPositions, entry, stopEarly)
		atomic.AddInt64(busyWorkers, -1)
	}
}

// processEntry runs steps 1-7 of the worker loop for one dequeued
// state. Step numbers in comments refer to spec.md §4.8.
func processEntry(fr *frontier, visited *visitedMap, oracle Heuristic, tb Tablebase, opts Options, best *bestTracker, totalPositions *int64, entry frontierEntry, stopEarly *atomic.Bool) {
	atomic.AddInt64(totalPositions, 1)

	h := int(oracle.H(entry.state))

	// Step 2: cutoff against the current best known solution depth.
	if bestDepth, found := best.Depth(); found {
		excess := h - opts.TablebaseDepth
		if excess < 0 {
			excess = 0
		}
		if int(entry.depth)+excess >= int(bestDepth) {
			return
		}
	}

	hash := codec.EncodeState(entry.state)

	// Step 3: record membership in the tablebase's outer frontier.
	if tb.ContainsOuter(hash) {
		best.Update(entry.depth, entry.state)
		if opts.MinDepth > 0 && int(entry.depth) <= opts.MinDepth {
			stopEarly.Store(true)
		}
	}

	// Step 4: branch depth ceiling.
	if entry.depth >= maxSearchDepth {
		return
	}

	// Step 5: a strictly better path to this state is already recorded.
	if knownDepth, ok := visited.Depth(hash); ok && knownDepth < entry.depth {
		return
	}

	fS := int(entry.depth) + h + int(entry.visitCount)

	// Step 6: expand every legal rotation.
	legalMask := oracle.LegalMask(entry.state)
	for _, r := range rotation.LegalRotations(legalMask) {
		next := rotation.Apply(entry.state, r)
		nextHash := codec.EncodeState(next)
		nextDepth := entry.depth + 1

		if knownDepth, ok := visited.Depth(nextHash); ok && knownDepth <= nextDepth {
			continue
		}

		fNext := int(nextDepth) + int(oracle.H(next))

		var admit bool
		if entry.visitCount == 0 {
			admit = fNext <= fS
		} else {
			admit = fNext == fS
		}
		if !admit {
			continue
		}

		if visited.TryAdmit(nextHash, nextDepth, r, true) {
			fr.Push(fNext, frontierEntry{state: next, depth: nextDepth, visitCount: 0})
		}
	}

	// Step 7: re-enqueue this state with a bumped visit_count.
	if entry.visitCount < maxRevisits {
		fr.Push(fS, frontierEntry{state: entry.state, depth: entry.depth, visitCount: entry.visitCount + 1})
	}
}

// reconstructPrefix walks the visited map backwards from entry to the
// scramble start, inverting each incoming rotation (spec.md §4.8's
// rotation inversion: inverse of rotation i is i XOR 1), then reverses
// the result into forward (scramble -> entry) order.
func reconstructPrefix(visited *visitedMap, entry cube.State) []rotation.Rotation {
	var reversed []rotation.Rotation
	current := entry
	for {
		hash := codec.EncodeState(current)
		v, ok := visited.Get(hash)
		if !ok || !v.hasIncoming {
			break
		}
		reversed = append(reversed, v.incoming)
		current = rotation.Apply(current, v.incoming.Invert())
	}

	path := make([]rotation.Rotation, len(reversed))
	for i, r := range reversed {
		path[len(reversed)-1-i] = r
	}
	return path
}

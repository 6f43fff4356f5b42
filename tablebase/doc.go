// Package tablebase grows and queries an outward layered BFS from the
// solved cube state, using the full composite state hash (see package
// codec). Each layer L[k] holds every state whose exact distance from
// solved is k; layers are write-once and read-concurrently once
// finalized, which lets the online solver treat ContainsOuter and
// DepthOf as safe to call from any worker without additional locking.
//
// Unlike the heuristic tables, the tablebase applies no legality filter
// while growing — it expands every state by all 18 rotations, mirroring
// the full state graph rather than the legality-gated one the corner
// heuristic restricts itself to (spec.md §4.7).
package tablebase

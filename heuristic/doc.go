// Package heuristic builds and serves the three admissible distance
// tables the online solver uses to estimate how far a state is from
// solved: an exhaustive corner table (legal-corner-state space, 8!·3⁷
// entries) bundling a per-state legal-move bitmask alongside its BFS
// depth, and two independent 6-edge projection tables (12!/6!·2⁶ entries
// each) built by a relaxed BFS that ignores legality entirely.
//
// GenerateCorner and GenerateEdgeProjection are offline, one-time
// builders — they are expensive (tens of millions of states) and are
// normally run once and persisted with SaveCorner/LoadCorner and
// SaveEdgeProjection/LoadEdgeProjection. Oracle wraps the three loaded
// tables and answers h(state) as their max, per the admissibility
// argument in spec.md §4.6: each table is the exact distance in a
// relaxation of the puzzle, so the max of the three remains a lower
// bound on the true distance.
package heuristic

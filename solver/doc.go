// Package solver implements the online bounded parallel best-first
// search of spec.md §4.8: a weighted-A* variant that explores forward
// from a scrambled state, keeping the shallowest state found inside the
// tablebase's outer frontier, then stitches together a visited-map
// path reconstruction (scramble -> frontier) with the tablebase's exact
// retrograde solve (frontier -> solved).
//
// Solve accepts the Heuristic and Tablebase interfaces rather than the
// concrete *heuristic.Oracle / *tablebase.Tablebase types, so a unit
// test can exercise the worker loop against small fakes without paying
// for full-size offline tables.
package solver

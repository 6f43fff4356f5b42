// Package driver orchestrates the end-to-end pipeline of spec.md
// §4.10: load the offline heuristic tables, optionally grow the online
// tablebase, then for each of N runs generate a seeded scramble, invoke
// the solver, push the solution to an action sink, and record timing,
// depth, and node-count statistics. Run accepts the oracle and
// tablebase as interfaces so it can be driven against small fakes in
// tests without loading the real, tens-of-megabytes offline tables.
package driver

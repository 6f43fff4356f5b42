// Package cube defines the Puppet Cube V2 state: the eight corner pieces
// and twelve edge pieces that make up a scramble, independent of how that
// state is hashed (see package codec), rotated (see package rotation), or
// judged legal (see package legality).
//
// Centres are implicitly fixed and are not part of the search state — only
// corners and edges are tracked, matching the reachable state space used by
// every other package in this module.
package cube

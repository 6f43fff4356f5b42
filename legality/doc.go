// Package legality decides, for a given arrangement of protruding
// corners, which face turns would leave the cube in a physically
// buildable configuration.
//
// A puppet cube corner is "protruding" along zero or more of its three
// local axes — it sticks out further than a normal edge piece would in
// that direction. A face turn is only physically possible if, after the
// turn, no two protruding corners on the same face collide along a
// shared edge or diagonal. IsLegal checks this for all six faces (both
// sides of each of the three axes) at once; it is used offline, by package heuristic, to bake a
// per-state legal-move bitmask into the corner heuristic table. Nothing
// in the online solve path calls IsLegal directly.
package legality

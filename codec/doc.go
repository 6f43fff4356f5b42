// Package codec encodes and decodes cube.State values to and from the
// compact integer hashes the rest of this module indexes tables by.
//
// Four hashes are produced, all built from the same Lehmer permutation
// rank, generalized over a variable number of tracked slots (see
// lehmerEncode / lehmerDecode):
//
//   - corner hash   — 28 bits, domain 8!·3⁷ = 88 179 840
//   - edge hash     — 41 bits, domain 12!·2¹² = 1 961 990 553 600
//   - edge projection (low/high) — 26 bits, domain 12!/6!·2⁶ = 42 577 920
//
// Encode is total; Decode accepts any value below the relevant domain size
// and returns a state satisfying the permutation invariants (not
// necessarily a reachable one). DecodeCorner also restores the corner
// orientation-sum invariant; DecodeEdges does not enforce edge
// orientation parity, since all twelve orientation bits are part of the
// edge hash. Passing a value at or past
// the domain size is a programming error and panics, matching the source
// algorithm's assert-and-abort policy — callers are expected to keep
// values in range themselves.
package codec

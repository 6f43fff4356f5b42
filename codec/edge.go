package codec

import "github.com/linusvdv/puppet-cube-v2/cube"

const (
	// NumEdgePositions is the size of the full edge-hash domain: 12! * 2^12.
	NumEdgePositions = 1961990553600
	// NumEdgeProjectionPositions is the size of the 6-of-12 edge
	// projection domain: 12!/6! * 2^6.
	NumEdgeProjectionPositions = 42577920
)

// EncodeEdges produces the canonical edge hash: the Lehmer rank of all
// twelve edge positions in the high bits, followed by the twelve
// orientation bits (edge 0 most significant) in the low bits. Unlike
// corners, no edge digit is dropped — the orientation-parity invariant is
// a property of reachable states, not something the codec exploits to
// shrink the domain.
func EncodeEdges(s cube.State) uint64 {
	positions := make([]uint8, cube.NumEdges)
	for i := 0; i < cube.NumEdges; i++ {
		positions[i] = s.Edges[i].Position
	}
	hash := lehmerEncode(positions, cube.NumEdges)

	for i := 0; i < cube.NumEdges; i++ {
		hash <<= 1
		if s.Edges[i].Orientation {
			hash |= 1
		}
	}
	return hash
}

// DecodeEdges inverts EncodeEdges. Passing a hash at or beyond
// NumEdgePositions is a programming error and panics.
func DecodeEdges(hash uint64) [cube.NumEdges]cube.Edge {
	if hash >= NumEdgePositions {
		panic("codec: edge hash out of range")
	}

	suffix := hash & ((1 << cube.NumEdges) - 1)
	positionHash := hash >> cube.NumEdges
	positions := lehmerDecode(positionHash, cube.NumEdges)

	var edges [cube.NumEdges]cube.Edge
	for i := 0; i < cube.NumEdges; i++ {
		bit := (suffix >> uint(cube.NumEdges-1-i)) & 1
		edges[i] = cube.Edge{Position: positions[i], Orientation: bit == 1}
	}
	return edges
}

// EncodeEdgeProjectionLow hashes the position+orientation of edges 0..5
// only, ignoring the other six edges entirely. It is one of two
// independent 6-of-12 projections used by the edge heuristic (see package
// heuristic); the projection is still ranked against the full 12-slot
// space, so its domain is 12!/6! * 2^6, not 6!*2^6.
func EncodeEdgeProjectionLow(s cube.State) uint32 {
	return encodeEdgeProjection(s.Edges[0:6])
}

// EncodeEdgeProjectionHigh is EncodeEdgeProjectionLow's counterpart over
// edges 6..11.
func EncodeEdgeProjectionHigh(s cube.State) uint32 {
	return encodeEdgeProjection(s.Edges[6:12])
}

func encodeEdgeProjection(edges []cube.Edge) uint32 {
	positions := make([]uint8, len(edges))
	for i, e := range edges {
		positions[i] = e.Position
	}
	hash := lehmerEncode(positions, cube.NumEdges)

	for _, e := range edges {
		hash <<= 1
		if e.Orientation {
			hash |= 1
		}
	}
	return uint32(hash)
}

package codec

import "github.com/linusvdv/puppet-cube-v2/cube"

// cornerHashBits is the width of the corner hash within CompositeHash's
// Hash1 field.
const cornerHashBits = 28
const cornerHashMask = 1<<cornerHashBits - 1

// CompositeHash is the full-state key package tablebase indexes its
// layers by: the corner hash in the low 28 bits of Hash1, the high 33
// bits of the 41-bit edge hash in the rest of Hash1, and the edge hash's
// low 8 bits in Hash2. This packs a full state into 9 bytes instead of
// the 12+ a naive (uint32, uint64) pair would need unaligned.
type CompositeHash struct {
	Hash1 uint64
	Hash2 uint8
}

// EncodeState produces the composite hash for a full state.
func EncodeState(s cube.State) CompositeHash {
	cornerHash := uint64(EncodeCorner(s))
	edgeHash := EncodeEdges(s)
	return CompositeHash{
		Hash1: cornerHash | (edgeHash>>8)<<cornerHashBits,
		Hash2: uint8(edgeHash),
	}
}

// DecodeState inverts EncodeState.
func DecodeState(h CompositeHash) cube.State {
	cornerHash := uint32(h.Hash1 & cornerHashMask)
	edgeHash := (h.Hash1>>cornerHashBits)<<8 | uint64(h.Hash2)

	var s cube.State
	s.Corners = DecodeCorner(cornerHash)
	s.Edges = DecodeEdges(edgeHash)
	return s
}

package codec

import "github.com/linusvdv/puppet-cube-v2/cube"

const (
	// NumCornerPositions is the size of the corner-hash domain: 8! * 3^7.
	NumCornerPositions = 88179840
	// eightFactorial separates the position digits (low) from the
	// orientation digits (high) within a corner hash.
	eightFactorial = 40320
)

// EncodeCorner produces the canonical corner hash: the Lehmer rank of the
// first seven corner positions (radix 8 down to 2) in the low digits, plus
// the base-3 number formed by the first seven corner orientations, scaled
// into the high digits. The eighth corner's position and orientation are
// redundant (permutation and mod-3 invariants) and are not encoded.
func EncodeCorner(s cube.State) uint32 {
	positions := make([]uint8, cube.NumCorners-1)
	for i := 0; i < cube.NumCorners-1; i++ {
		positions[i] = s.Corners[i].Position
	}
	posHash := lehmerEncode(positions, cube.NumCorners)

	var orientationHash uint64
	for i := 0; i < cube.NumCorners-1; i++ {
		orientationHash = orientationHash*3 + uint64(s.Corners[i].Orientation)
	}

	return uint32(posHash + orientationHash*eightFactorial)
}

// DecodeCorner inverts EncodeCorner. It accepts any hash below
// NumCornerPositions and reconstructs all eight corners, deriving the
// eighth corner's position from the unused slot and its orientation from
// the invariant that all eight orientations sum to 0 (mod 3). Passing a
// hash at or beyond NumCornerPositions is a programming error and panics.
func DecodeCorner(hash uint32) [cube.NumCorners]cube.Corner {
	if uint64(hash) >= NumCornerPositions {
		panic("codec: corner hash out of range")
	}

	positionHash := uint64(hash) % eightFactorial
	orientationHash := uint64(hash) / eightFactorial

	positions := lehmerDecode(positionHash, cube.NumCorners)

	// Orientation digits were accumulated most-significant-first
	// (orientationHash = orientationHash*3 + digit); unwind back to front.
	orientations := make([]uint8, cube.NumCorners-1)
	for i := cube.NumCorners - 2; i >= 0; i-- {
		orientations[i] = uint8(orientationHash % 3)
		orientationHash /= 3
	}

	var corners [cube.NumCorners]cube.Corner
	sum := 0
	for i := 0; i < cube.NumCorners-1; i++ {
		corners[i] = cube.Corner{Position: positions[i], Orientation: orientations[i]}
		sum += int(orientations[i])
	}
	corners[cube.NumCorners-1] = cube.Corner{
		Position:    positions[cube.NumCorners-1],
		Orientation: uint8(((3 - sum%3) % 3)),
	}
	return corners
}

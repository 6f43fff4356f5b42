package legality

// maxProtruding is one past the largest protruding bitmask a corner can
// carry (three axis bits, so values 0..7).
const maxProtruding = 8

// sizeLegalMap is the domain of legalMap: four three-bit protruding
// masks packed into one lookup key.
const sizeLegalMap = 256

// legalMap[key] reports whether the four protruding corners sharing one
// face quadrant, packed into key by LegalHash, can coexist without
// colliding. A quadrant is illegal if it is missing a protruding piece
// along either axis bounding it (an empty corner there collapses the
// gap) or if both corners of either diagonal are missing.
var legalMap [sizeLegalMap]bool

func init() {
	for i := 0; i < sizeLegalMap; i++ {
		bit := func(n uint) bool { return (i>>n)&1 != 0 }
		illegal := (!bit(0) && !bit(4)) || // x
			(!bit(2) && !bit(6)) || // x
			(!bit(1) && !bit(3)) || // y
			(!bit(5) && !bit(7)) || // y
			(!bit(0) && !bit(1) && !bit(6) && !bit(7)) || // diagonal
			(!bit(2) && !bit(3) && !bit(4) && !bit(5)) // diagonal
		legalMap[i] = !illegal
	}
}

// Corner is the offline corner representation legality reasons about: a
// position slot (0..7, one bit per spatial axis) and a protruding
// bitmask (bit k set means the piece sticks out along axis k). This is
// distinct from cube.Corner, which the online solver uses and which has
// no protruding field at all — see package cube's doc comment.
type Corner struct {
	Position   byte
	Protruding byte
}

// LegalHash packs the two axes orthogonal to idx, for each of four
// protruding corners sharing one face quadrant, into a single lookup key
// for legalMap. protrudingPieces is indexed by quadrant (the two
// orthogonal-axis bits of each corner's position); a slot with no
// protruding corner present carries maxProtruding-1 (all axis bits set),
// which always satisfies legalMap's checks.
func LegalHash(protrudingPieces [4]byte, idx int) int {
	hash := 0
	for _, p := range protrudingPieces {
		for i := 1; i <= 2; i++ {
			hash *= 2
			hash += int(p>>uint((idx+i)%3)) & 1
		}
	}
	return hash
}

// IsLegal reports whether an arrangement of eight corners is physically
// buildable: for every axis and each of its two faces, the protruding
// corners on that face must not collide along a shared edge or diagonal.
func IsLegal(corners [8]Corner) bool {
	for axis := 0; axis < 3; axis++ {
		for side := 0; side < 2; side++ {
			var protrudingPieces [4]byte
			for i := range protrudingPieces {
				protrudingPieces[i] = maxProtruding - 1
			}
			for _, c := range corners {
				if int(c.Position>>uint(axis))&1 == side && int(c.Protruding>>uint(axis))&1 == 1 {
					index := int(c.Position>>uint((axis+1)%3))&1 + int(c.Position>>uint((axis+2)%3))&1*2
					protrudingPieces[index] = c.Protruding
				}
			}
			if !legalMap[LegalHash(protrudingPieces, axis)] {
				return false
			}
		}
	}
	return true
}

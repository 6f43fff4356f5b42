package cube

// NumCorners is the number of corner pieces (vertex slots) on the puzzle.
const NumCorners = 8

// NumEdges is the number of edge pieces on the puzzle.
const NumEdges = 12

// Corner is one of the eight corner pieces.
//
// Position is the vertex slot (0..7) the piece currently occupies, using
// the fixed axis-flip convention: bit 0 of the slot index is the x-axis
// sign, bit 1 is y, bit 2 is z (0 => +1, 1 => -1), e.g. slot 0 is (+1,+1,+1)
// and slot 7 is (-1,-1,-1).
//
// Orientation is one of {0,1,2}, the axis the piece's reference sticker
// currently points along. It is not a bitmask: corners never "protrude" in
// two directions from the runtime solver's point of view — protrusion is
// an offline-only concept, see package legality.
type Corner struct {
	Position    uint8
	Orientation uint8
}

// Edge is one of the twelve edge pieces.
//
// Position is the edge slot (0..11) the piece currently occupies.
// Orientation is a single bit: flipped or not, relative to the solved cube.
type Edge struct {
	Position    uint8
	Orientation bool
}

// State is the full search state: eight corners plus twelve edges.
// Centres are fixed and carry no information.
//
// State is a plain value (arrays of structs, no pointers) so copying a
// State — as every rotation does — is a cheap, allocation-free operation.
type State struct {
	Corners [NumCorners]Corner
	Edges   [NumEdges]Edge
}

// Solved returns the canonical solved state: piece i sits in slot i with
// orientation zero, for both corners and edges.
func Solved() State {
	var s State
	for i := 0; i < NumCorners; i++ {
		s.Corners[i] = Corner{Position: uint8(i)}
	}
	for i := 0; i < NumEdges; i++ {
		s.Edges[i] = Edge{Position: uint8(i)}
	}
	return s
}

// IsSolved reports whether s is bitwise equal to Solved().
func (s State) IsSolved() bool {
	return s == Solved()
}

// Equal reports whether s and other describe the same piece arrangement.
func (s State) Equal(other State) bool {
	return s == other
}

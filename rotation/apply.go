package rotation

import "github.com/linusvdv/puppet-cube-v2/cube"

// SwapBits exchanges bit shiftA and bit shiftB of bits, leaving every
// other bit untouched. This is the source's SwapBits<shift1,shift2>
// template, used verbatim wherever a rotation needs to swap two axes of
// a genuine multi-bit mask — corner protrusion, tracked by package
// heuristic's offline corner representation rather than cube.Corner.
func SwapBits(bits, shiftA, shiftB byte) byte {
	if (bits>>shiftA)&1 == (bits>>shiftB)&1 {
		return bits
	}
	return bits ^ (1<<shiftA | 1<<shiftB)
}

// swapAxis exchanges the one-hot-encoded axis named by value (0, 1, or
// 2) with its counterpart when axes a and b are swapped, otherwise
// leaving it as is. It is SwapBits applied to a one-hot bitmask, then
// decoded back to the plain 0..2 encoding cube.Corner.Orientation uses —
// the same axis-swap the source performs directly on its bitmask
// orientation field.
func swapAxis(value, a, b byte) byte {
	bits := SwapBits(1<<value, a, b)
	for i := byte(0); i < 3; i++ {
		if bits>>i&1 == 1 {
			return i
		}
	}
	panic("rotation: invalid orientation value")
}

// CornerDestination returns the slot a corner at position moves to under
// rotation r, and whether r touches that slot at all.
func CornerDestination(r Rotation, position byte) (dest byte, moved bool) {
	d := cornerTable[r][position]
	if d == -1 {
		return position, false
	}
	return byte(d), true
}

// EdgeDestination returns the slot an edge at position moves to under
// rotation r, and whether r touches that slot at all.
func EdgeDestination(r Rotation, position byte) (dest byte, moved bool) {
	d := edgeTable[r][position]
	if d == -1 {
		return position, false
	}
	return byte(d), true
}

// SwapOrientationAxis exposes the corner-orientation axis-swap rule (see
// swapAxis) for packages that rotate a corner's orientation independent
// of a full cube.State — package heuristic's offline generator tracks
// protrusion alongside orientation and needs the identical rule applied
// to both.
func SwapOrientationAxis(value, a, b byte) byte {
	return swapAxis(value, a, b)
}

// CornerAxisSwap returns the two axes a corner's orientation and
// protrusion bits swap under rotation r.
func CornerAxisSwap(r Rotation) (a, b byte) {
	pair := cornerAxisPair[r]
	return pair[0], pair[1]
}

// Apply returns the state reached by turning s with rotation r. Pieces
// whose position is untouched by r (cornerTable/edgeTable entry -1) are
// copied unchanged, including orientation.
func Apply(s cube.State, r Rotation) cube.State {
	var next cube.State

	a, b := CornerAxisSwap(r)
	for i, c := range s.Corners {
		dest, moved := CornerDestination(r, c.Position)
		if !moved {
			next.Corners[i] = c
			continue
		}
		next.Corners[i] = cube.Corner{
			Position:    dest,
			Orientation: swapAxis(c.Orientation, a, b),
		}
	}

	for i, e := range s.Edges {
		dest, moved := EdgeDestination(r, e.Position)
		if !moved {
			next.Edges[i] = e
			continue
		}
		next.Edges[i] = cube.Edge{
			Position:    dest,
			Orientation: !e.Orientation,
		}
	}

	return next
}

package heuristic

import (
	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/legality"
	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// NumCornerStates is the size of the corner heuristic table: every
// legal-corner-position-and-orientation combination.
const NumCornerStates = codec.NumCornerPositions

// legalMoveMaskBits is the width of the legal-move mask packed into the
// low bits of every CornerTable entry; the BFS depth occupies the rest.
const legalMoveMaskBits = 6

// pendingCornerMarker reserves the all-ones uint16 to mean "enqueued,
// not yet finalized". It is distinguishable from 0 ("never reached")
// and from every real (legal_moves, depth) entry the generator writes,
// since corner BFS depths stay far below the ~1023 ceiling that would
// collide with it.
const pendingCornerMarker uint16 = 0xFFFF

// CornerTable is the persisted corner heuristic: indexed by
// codec.EncodeCorner(state), each entry packs the 6-bit legal-move mask
// in its low bits and the BFS depth from solved in the rest.
type CornerTable []uint16

// Depth returns the BFS distance of state from solved under the corner
// relaxation, which ignores edges entirely.
func (t CornerTable) Depth(state cube.State) uint16 {
	return t[codec.EncodeCorner(state)] >> legalMoveMaskBits
}

// LegalMask returns the 6-bit legal-move mask recorded for state, for
// use with rotation.LegalRotations.
func (t CornerTable) LegalMask(state cube.State) uint16 {
	return t[codec.EncodeCorner(state)] & (1<<legalMoveMaskBits - 1)
}

// offlineCorner is the corner representation the generator's BFS walks:
// unlike cube.Corner, it tracks the protrusion bitmask the legality
// predicate needs. cube.Corner has no such field because the online
// solver never evaluates legality directly — it only reads the mask this
// generator bakes into CornerTable.
type offlineCorner struct {
	Position    byte
	Protruding  byte
	Orientation byte
}

type offlineCorners [8]offlineCorner

// solvedOfflineCorners seeds the BFS: corner i sits at position i and
// protrudes along exactly the bits of its own index (the reference
// generator's start_protruding constant, 0b000'001'010'...'111).
func solvedOfflineCorners() offlineCorners {
	var corners offlineCorners
	for i := range corners {
		corners[i] = offlineCorner{Position: byte(i), Protruding: byte(i), Orientation: 0}
	}
	return corners
}

func (c offlineCorners) rotate(r rotation.Rotation) offlineCorners {
	var next offlineCorners
	a, b := rotation.CornerAxisSwap(r)
	for i, corner := range c {
		dest, moved := rotation.CornerDestination(r, corner.Position)
		if !moved {
			next[i] = corner
			continue
		}
		next[i] = offlineCorner{
			Position:    dest,
			Protruding:  rotation.SwapBits(corner.Protruding, a, b),
			Orientation: rotation.SwapOrientationAxis(corner.Orientation, a, b),
		}
	}
	return next
}

func (c offlineCorners) legalityView() [8]legality.Corner {
	var out [8]legality.Corner
	for i, corner := range c {
		out[i] = legality.Corner{Position: corner.Position, Protruding: corner.Protruding}
	}
	return out
}

func (c offlineCorners) hash() uint32 {
	var s cube.State
	for i, corner := range c {
		s.Corners[i] = cube.Corner{Position: corner.Position, Orientation: corner.Orientation}
	}
	return codec.EncodeCorner(s)
}

type cornerQueueItem struct {
	corners offlineCorners
	depth   uint16
}

// GenerateCorner runs the offline corner BFS to completion and returns
// the fully populated corner table. It explores on the order of tens of
// millions of states; this is meant to be run once, offline, and its
// result persisted with SaveCorner.
func GenerateCorner() CornerTable {
	table := make(CornerTable, NumCornerStates)

	start := solvedOfflineCorners()
	startHash := start.hash()
	table[startHash] = pendingCornerMarker
	queue := []cornerQueueItem{{corners: start, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		var legalMoves uint16
		for r := rotation.Rotation(0); r < rotation.NumRotations; r++ {
			next := current.corners.rotate(r)

			if r < rotation.NumFaceRotations {
				if !legality.IsLegal(next.legalityView()) {
					// Illegal face turn: neither set its mask bit nor
					// explore past it.
					continue
				}
				legalMoves |= 1 << rotation.LegalMaskBit(r)
			}
			// Slice turns are never legality-checked: they inherit
			// legality from their component face turns and are always
			// explored.

			h := next.hash()
			if table[h] == 0 {
				table[h] = pendingCornerMarker
				queue = append(queue, cornerQueueItem{corners: next, depth: current.depth + 1})
			}
		}

		table[current.corners.hash()] = legalMoves | current.depth<<legalMoveMaskBits
	}

	return table
}

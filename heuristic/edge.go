package heuristic

import (
	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// NumEdgeProjectionStates is the size of each edge-projection heuristic
// table.
const NumEdgeProjectionStates = codec.NumEdgeProjectionPositions

// unvisitedEdgeDepth marks a projection hash the generator has not yet
// reached. Real depths stay far below 0xFF.
const unvisitedEdgeDepth byte = 0xFF

// EdgeHalf selects which six of the twelve edges a projection table
// tracks.
type EdgeHalf int

const (
	EdgeHalfLow EdgeHalf = iota
	EdgeHalfHigh
)

// EdgeProjectionTable is a persisted edge-projection heuristic: indexed
// by the matching codec projection hash, each entry is the exact BFS
// depth from solved under that 6-edge relaxation.
type EdgeProjectionTable []byte

func projectionHash(half EdgeHalf, edges [cube.NumEdges]cube.Edge) uint32 {
	s := cube.State{Edges: edges}
	if half == EdgeHalfLow {
		return codec.EncodeEdgeProjectionLow(s)
	}
	return codec.EncodeEdgeProjectionHigh(s)
}

func solvedEdges() [cube.NumEdges]cube.Edge {
	var edges [cube.NumEdges]cube.Edge
	for i := range edges {
		edges[i] = cube.Edge{Position: uint8(i), Orientation: false}
	}
	return edges
}

func rotateEdges(edges [cube.NumEdges]cube.Edge, r rotation.Rotation) [cube.NumEdges]cube.Edge {
	var next [cube.NumEdges]cube.Edge
	for i, e := range edges {
		dest, moved := rotation.EdgeDestination(r, e.Position)
		if !moved {
			next[i] = e
			continue
		}
		next[i] = cube.Edge{Position: dest, Orientation: !e.Orientation}
	}
	return next
}

type edgeQueueItem struct {
	edges [cube.NumEdges]cube.Edge
	depth byte
}

// GenerateEdgeProjection runs the relaxed edge BFS for the given half and
// returns the fully populated projection table. Unlike GenerateCorner,
// no legality check is applied — every one of the 18 rotations is
// explored unconditionally, per spec.md §4.5, which keeps the resulting
// distance an admissible lower bound (fewer constraints than the real
// puzzle can only shorten the relaxed distance).
func GenerateEdgeProjection(half EdgeHalf) EdgeProjectionTable {
	table := make(EdgeProjectionTable, NumEdgeProjectionStates)
	for i := range table {
		table[i] = unvisitedEdgeDepth
	}

	start := solvedEdges()
	table[projectionHash(half, start)] = 0
	queue := []edgeQueueItem{{edges: start, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for r := rotation.Rotation(0); r < rotation.NumRotations; r++ {
			next := rotateEdges(current.edges, r)
			h := projectionHash(half, next)
			if table[h] == unvisitedEdgeDepth {
				table[h] = current.depth + 1
				queue = append(queue, edgeQueueItem{edges: next, depth: current.depth + 1})
			}
		}
	}

	return table
}

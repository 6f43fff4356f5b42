package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linusvdv/puppet-cube-v2/rotation"
)

func TestSolvedEdgesProjectionHashIsZero(t *testing.T) {
	solved := solvedEdges()
	assert.Equal(t, uint32(0), projectionHash(EdgeHalfLow, solved))
	assert.Equal(t, uint32(0), projectionHash(EdgeHalfHigh, solved))
}

func TestRotateEdgesThenInvertReturnsSolved(t *testing.T) {
	start := solvedEdges()
	for r := rotation.Rotation(0); r < rotation.NumRotations; r++ {
		turned := rotateEdges(start, r)
		back := rotateEdges(turned, r.Invert())
		assert.Equal(t, start, back, "rotation %s did not invert cleanly on offline edges", r)
	}
}

func TestRotateEdgesPreservesPermutation(t *testing.T) {
	s := rotateEdges(rotateEdges(solvedEdges(), rotation.M), rotation.S)
	seen := make(map[uint8]bool)
	for _, e := range s {
		assert.False(t, seen[e.Position])
		seen[e.Position] = true
	}
}

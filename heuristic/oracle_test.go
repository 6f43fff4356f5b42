package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/heuristic"
)

func TestOracleSolvedIsZero(t *testing.T) {
	// codec.EncodeCorner/EncodeEdgeProjection{Low,High} of the solved
	// state are all 0, so length-1 tables suffice to exercise H without
	// allocating full-size heuristic tables in a unit test.
	corner := make(heuristic.CornerTable, 1)
	edgeLow := make(heuristic.EdgeProjectionTable, 1)
	edgeHigh := make(heuristic.EdgeProjectionTable, 1)

	oracle := heuristic.NewOracle(corner, edgeLow, edgeHigh)
	assert.Equal(t, uint16(0), oracle.H(cube.Solved()))
	assert.Equal(t, uint16(0), oracle.HCorner(cube.Solved()))
	assert.Equal(t, uint16(0), oracle.LegalMask(cube.Solved()))
}

func TestOracleTakesMaxOfComponents(t *testing.T) {
	corner := make(heuristic.CornerTable, 1)
	corner[0] = 3 << 6 // depth 3, no legal moves recorded
	edgeLow := make(heuristic.EdgeProjectionTable, 1)
	edgeLow[0] = 7
	edgeHigh := make(heuristic.EdgeProjectionTable, 1)
	edgeHigh[0] = 2

	oracle := heuristic.NewOracle(corner, edgeLow, edgeHigh)
	assert.Equal(t, uint16(7), oracle.H(cube.Solved()))
	assert.Equal(t, uint16(3), oracle.HCorner(cube.Solved()))
}

package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linusvdv/puppet-cube-v2/cube"
)

func TestSolvedIsSolved(t *testing.T) {
	s := cube.Solved()
	assert.True(t, s.IsSolved())
}

func TestSolvedLayout(t *testing.T) {
	s := cube.Solved()
	for i := 0; i < cube.NumCorners; i++ {
		assert.Equal(t, uint8(i), s.Corners[i].Position)
		assert.Equal(t, uint8(0), s.Corners[i].Orientation)
	}
	for i := 0; i < cube.NumEdges; i++ {
		assert.Equal(t, uint8(i), s.Edges[i].Position)
		assert.False(t, s.Edges[i].Orientation)
	}
}

func TestEqual(t *testing.T) {
	a := cube.Solved()
	b := cube.Solved()
	assert.True(t, a.Equal(b))

	b.Corners[0].Orientation = 1
	assert.False(t, a.Equal(b))
	assert.False(t, b.IsSolved())
}

package legality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linusvdv/puppet-cube-v2/legality"
)

// solvedCorners mirrors the source's start_protruding constant
// (0b000'001'010'011'100'101'110'111): corner i protrudes along exactly
// the axes of its own index.
func solvedCorners() [8]legality.Corner {
	var corners [8]legality.Corner
	for i := range corners {
		corners[i] = legality.Corner{Position: byte(i), Protruding: byte(i)}
	}
	return corners
}

func TestSolvedArrangementIsLegal(t *testing.T) {
	assert.True(t, legality.IsLegal(solvedCorners()))
}

func TestNoProtrudingCornersIsLegal(t *testing.T) {
	// With nothing protruding at all, every quadrant is empty and falls
	// back to the map's always-legal sentinel; there is no piece to
	// collide.
	var corners [8]legality.Corner
	for i := range corners {
		corners[i] = legality.Corner{Position: byte(i), Protruding: 0}
	}
	assert.True(t, legality.IsLegal(corners))
}

func TestLegalHashIsDeterministic(t *testing.T) {
	var pieces [4]byte
	for i := range pieces {
		pieces[i] = byte(i)
	}
	a := legality.LegalHash(pieces, 0)
	b := legality.LegalHash(pieces, 0)
	assert.Equal(t, a, b)
}

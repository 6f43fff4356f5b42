package codec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
)

func TestSolvedHashesAreZero(t *testing.T) {
	solved := cube.Solved()
	assert.Equal(t, uint32(0), codec.EncodeCorner(solved))
	assert.Equal(t, uint64(0), codec.EncodeEdges(solved))
	assert.Equal(t, uint32(0), codec.EncodeEdgeProjectionLow(solved))
	assert.Equal(t, uint32(0), codec.EncodeEdgeProjectionHigh(solved))
}

func TestDecodeCornerZeroIsSolved(t *testing.T) {
	corners := codec.DecodeCorner(0)
	solved := cube.Solved()
	assert.Equal(t, solved.Corners, corners)
}

func TestDecodeEdgesZeroIsSolved(t *testing.T) {
	edges := codec.DecodeEdges(0)
	solved := cube.Solved()
	assert.Equal(t, solved.Edges, edges)
}

func TestCornerRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		corners := randomCorners(rng)
		var s cube.State
		s.Corners = corners
		hash := codec.EncodeCorner(s)
		require.Less(t, hash, uint32(codec.NumCornerPositions))
		decoded := codec.DecodeCorner(hash)
		assert.Equal(t, corners, decoded)
	}
}

func TestEdgeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		edges := randomEdges(rng)
		var s cube.State
		s.Edges = edges
		hash := codec.EncodeEdges(s)
		require.Less(t, hash, uint64(codec.NumEdgePositions))
		decoded := codec.DecodeEdges(hash)
		assert.Equal(t, edges, decoded)
	}
}

func TestEdgeProjectionWithinDomain(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		var s cube.State
		s.Edges = randomEdges(rng)
		low := codec.EncodeEdgeProjectionLow(s)
		high := codec.EncodeEdgeProjectionHigh(s)
		assert.Less(t, low, uint32(codec.NumEdgeProjectionPositions))
		assert.Less(t, high, uint32(codec.NumEdgeProjectionPositions))
	}
}

func TestCompositeHashRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		var s cube.State
		s.Corners = randomCorners(rng)
		s.Edges = randomEdges(rng)
		h := codec.EncodeState(s)
		assert.LessOrEqual(t, h.Hash1>>28, uint64(codec.NumEdgePositions-1)>>8, "edge-hash high bits exceeded the edge-hash domain")
		decoded := codec.DecodeState(h)
		assert.Equal(t, s, decoded)
	}
}

func TestCompositeHashSolvedIsZero(t *testing.T) {
	h := codec.EncodeState(cube.Solved())
	assert.Equal(t, uint64(0), h.Hash1)
	assert.Equal(t, uint8(0), h.Hash2)
}

func TestDecodeCornerPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		codec.DecodeCorner(codec.NumCornerPositions)
	})
}

func TestDecodeEdgesPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		codec.DecodeEdges(codec.NumEdgePositions)
	})
}

// randomCorners builds a permutation/orientation-sum-valid corner array,
// satisfying the invariants from spec.md §3 (position is a permutation of
// 0..7, orientation indices sum to 0 mod 3).
func randomCorners(rng *rand.Rand) [cube.NumCorners]cube.Corner {
	perm := rng.Perm(cube.NumCorners)
	var corners [cube.NumCorners]cube.Corner
	sum := 0
	for i := 0; i < cube.NumCorners-1; i++ {
		o := uint8(rng.Intn(3))
		corners[i] = cube.Corner{Position: uint8(perm[i]), Orientation: o}
		sum += int(o)
	}
	corners[cube.NumCorners-1] = cube.Corner{
		Position:    uint8(perm[cube.NumCorners-1]),
		Orientation: uint8((3 - sum%3) % 3),
	}
	return corners
}

// randomEdges builds a permutation-valid edge array (no orientation-parity
// invariant is enforced by the full edge codec, see package doc).
func randomEdges(rng *rand.Rand) [cube.NumEdges]cube.Edge {
	perm := rng.Perm(cube.NumEdges)
	var edges [cube.NumEdges]cube.Edge
	for i := 0; i < cube.NumEdges; i++ {
		edges[i] = cube.Edge{Position: uint8(perm[i]), Orientation: rng.Intn(2) == 1}
	}
	return edges
}

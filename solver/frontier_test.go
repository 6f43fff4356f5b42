package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierPopsLowestBucketFirst(t *testing.T) {
	fr := newFrontier()
	fr.Push(5, frontierEntry{depth: 5})
	fr.Push(1, frontierEntry{depth: 1})
	fr.Push(3, frontierEntry{depth: 3})

	first, ok := fr.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(1), first.depth)

	second, ok := fr.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(3), second.depth)

	third, ok := fr.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(5), third.depth)
}

func TestFrontierIsFIFOWithinABucket(t *testing.T) {
	fr := newFrontier()
	fr.Push(2, frontierEntry{depth: 10})
	fr.Push(2, frontierEntry{depth: 20})

	first, _ := fr.Pop()
	second, _ := fr.Pop()
	assert.Equal(t, uint32(10), first.depth)
	assert.Equal(t, uint32(20), second.depth)
}

func TestFrontierSizeTracksPushAndPop(t *testing.T) {
	fr := newFrontier()
	assert.Equal(t, int64(0), fr.Size())

	fr.Push(0, frontierEntry{})
	fr.Push(0, frontierEntry{})
	assert.Equal(t, int64(2), fr.Size())

	_, ok := fr.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(1), fr.Size())
}

func TestFrontierPopOnEmptyReturnsFalse(t *testing.T) {
	fr := newFrontier()
	_, ok := fr.Pop()
	assert.False(t, ok)
}

func TestBucketKeyClampsOutOfRangePriorities(t *testing.T) {
	assert.Equal(t, 0, bucketKey(-5))
	assert.Equal(t, numBuckets-1, bucketKey(numBuckets+100))
	assert.Equal(t, 7, bucketKey(7))
}

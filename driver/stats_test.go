package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyReturnsFalse(t *testing.T) {
	stats, ok := Summarize(nil)
	assert.False(t, ok)
	assert.Equal(t, Statistics{}, stats)
}

func TestSummarizeSingleValue(t *testing.T) {
	stats, ok := Summarize([]float64{5})
	require.True(t, ok)
	assert.Equal(t, 5.0, stats.Min)
	assert.Equal(t, 5.0, stats.Median)
	assert.Equal(t, 5.0, stats.Max)
}

func TestSummarizeOrdersRegardlessOfInputOrder(t *testing.T) {
	stats, ok := Summarize([]float64{5, 1, 4, 2, 3})
	require.True(t, ok)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 5.0, stats.Max)
	assert.Equal(t, 3.0, stats.Median)
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	input := []float64{3, 1, 2}
	_, _ = Summarize(input)
	assert.Equal(t, []float64{3, 1, 2}, input)
}

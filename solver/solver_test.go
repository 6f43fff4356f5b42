package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/rotation"
	"github.com/linusvdv/puppet-cube-v2/solver"
	"github.com/linusvdv/puppet-cube-v2/tablebase"
)

// zeroHeuristic is a fake Heuristic that declares every rotation legal
// and never estimates a positive distance, so the tests below can drive
// the worker loop without allocating full-size offline tables.
type zeroHeuristic struct{}

func (zeroHeuristic) H(cube.State) uint16        { return 0 }
func (zeroHeuristic) LegalMask(cube.State) uint16 { return 1<<6 - 1 }

func TestSolveOnAlreadySolvedStateReturnsEmptyPath(t *testing.T) {
	tb := tablebase.New(2)

	result, err := solver.Solve(context.Background(), zeroHeuristic{}, tb, cube.Solved(), solver.NewOptions(1, 1000, 0))
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Empty(t, result.Path)
}

func TestSolveFindsPathWhenStartIsAlreadyAtOuterFrontier(t *testing.T) {
	tb := tablebase.New(2)
	require.NoError(t, tb.GrowTo(context.Background(), 2))

	start := rotation.Apply(rotation.Apply(cube.Solved(), rotation.R), rotation.U)

	result, err := solver.Solve(context.Background(), zeroHeuristic{}, tb, start, solver.NewOptions(1, 1000, 2))
	require.NoError(t, err)
	require.True(t, result.Found)

	final := start
	for _, r := range result.Path {
		final = rotation.Apply(final, r)
	}
	assert.True(t, final.IsSolved())
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	tb := tablebase.New(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, zeroHeuristic{}, tb, cube.Solved(), solver.NewOptions(1, 1000, 0))
	assert.Error(t, err)
}

func TestNewOptionsDefaultsNodeBudget(t *testing.T) {
	opts := solver.NewOptions(2, 0, 3)
	assert.Equal(t, int64(solver.DefaultNodeBudget), opts.NodeBudget)
	assert.Equal(t, 2, opts.NumWorkers)
	assert.Equal(t, 3, opts.TablebaseDepth)
}

func TestNewOptionsDefaultsWorkerCount(t *testing.T) {
	opts := solver.NewOptions(0, 100, 1)
	assert.GreaterOrEqual(t, opts.NumWorkers, 1)
}

package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linusvdv/puppet-cube-v2/actionsink"
	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/driver"
	"github.com/linusvdv/puppet-cube-v2/pclog"
	"github.com/linusvdv/puppet-cube-v2/rotation"
)

// zeroHeuristic declares every rotation legal and estimates zero
// distance everywhere, letting these tests drive a real solver.Solve
// without loading full-size offline tables.
type zeroHeuristic struct{}

func (zeroHeuristic) H(cube.State) uint16         { return 0 }
func (zeroHeuristic) LegalMask(cube.State) uint16 { return 1<<6 - 1 }

// solvedOnlyTablebase treats only the solved state as being in the
// outer frontier at depth 0, and answers RetrogradeSolve trivially.
type solvedOnlyTablebase struct {
	depth int
}

func (t *solvedOnlyTablebase) ContainsOuter(h codec.CompositeHash) bool {
	return h == codec.EncodeState(cube.Solved())
}

func (t *solvedOnlyTablebase) RetrogradeSolve(state cube.State, maxDepth int) []rotation.Rotation {
	if state.IsSolved() {
		return nil
	}
	return nil
}

func (t *solvedOnlyTablebase) GrowTo(ctx context.Context, depth int) error {
	t.depth = depth
	return nil
}

func (t *solvedOnlyTablebase) Depth() int { return t.depth }

func TestRunFindsASolutionForEveryScramble(t *testing.T) {
	cfg := driver.Config{
		Threads:        1,
		Runs:           3,
		Positions:      10000,
		ScrambleDepth:  1,
		TablebaseDepth: 0,
		Seed:           7,
	}
	log := pclog.New("test.driver.run", pclog.LevelWarning)
	sink := actionsink.New()
	tb := &solvedOnlyTablebase{}

	report, err := driver.Run(context.Background(), cfg, zeroHeuristic{}, tb, log, sink)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Runs)

	actionCount := 0
	for {
		_, ok := sink.TryPop()
		if !ok {
			break
		}
		actionCount++
	}
	assert.Greater(t, actionCount, 0)
}

func TestRunGrowsTablebaseToConfiguredDepth(t *testing.T) {
	cfg := driver.Config{
		Threads:        1,
		Runs:           0,
		Positions:      100,
		ScrambleDepth:  0,
		TablebaseDepth: 2,
	}
	log := pclog.New("test.driver.grow", pclog.LevelWarning)
	sink := actionsink.New()
	tb := &solvedOnlyTablebase{}

	_, err := driver.Run(context.Background(), cfg, zeroHeuristic{}, tb, log, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Depth())
}

func TestRunRespectsContextCancellation(t *testing.T) {
	cfg := driver.Config{Threads: 1, Runs: 5, Positions: 100, ScrambleDepth: 1}
	log := pclog.New("test.driver.cancel", pclog.LevelWarning)
	sink := actionsink.New()
	tb := &solvedOnlyTablebase{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.Run(ctx, cfg, zeroHeuristic{}, tb, log, sink)
	assert.Error(t, err)
}

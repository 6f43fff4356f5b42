package driver

import (
	"context"
	"math/rand"
	"time"

	"github.com/linusvdv/puppet-cube-v2/actionsink"
	"github.com/linusvdv/puppet-cube-v2/pclog"
	"github.com/linusvdv/puppet-cube-v2/solver"
)

// Tablebase is the view Run needs of the online tablebase: everything
// solver.Tablebase needs, plus GrowTo for the one-time warm-up phase.
// *tablebase.Tablebase satisfies it.
type Tablebase interface {
	solver.Tablebase
	GrowTo(ctx context.Context, depth int) error
	Depth() int
}

// Run orchestrates spec.md §4.10: optionally grows tb to
// cfg.TablebaseDepth, then performs cfg.Runs scramble+solve cycles,
// pushing each scramble and its solution to sink and returning
// aggregate statistics. oracle and tb are loaded by the caller (see
// LoadOracle) so Run itself never touches the filesystem.
func Run(ctx context.Context, cfg Config, oracle solver.Heuristic, tb Tablebase, log *pclog.Handler, sink *actionsink.Sink) (Report, error) {
	if cfg.GUI {
		log.Info("rendering requested via --gui, but this module has no renderer; ignoring")
	}

	if cfg.TablebaseDepth > tb.Depth() {
		log.Info("growing tablebase to depth %d", cfg.TablebaseDepth)
		if err := tb.GrowTo(ctx, cfg.TablebaseDepth); err != nil {
			return Report{}, err
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	for i := 0; i < cfg.StartOffset; i++ {
		scramble(rng, cfg.ScrambleDepth, oracle)
	}

	opts := solver.NewOptions(cfg.Threads, cfg.Positions, cfg.TablebaseDepth).WithMinDepth(cfg.MinDepth)

	var times, positions, depths []float64
	for i := 0; i < cfg.Runs; i++ {
		if ctx.Err() != nil {
			return buildReport(log, times, positions, depths), ctx.Err()
		}

		start := time.Now()
		scrambled, moves := scramble(rng, cfg.ScrambleDepth, oracle)

		sink.Push(actionsink.InstructionIsScrambling)
		for _, r := range moves {
			sink.PushRotation(r)
		}

		result, err := solver.Solve(ctx, oracle, tb, scrambled, opts)
		if err != nil {
			log.Error("run %d: %v", i, err)
			continue
		}
		if !result.Found {
			log.Error("run %d: no solution found within node budget", i)
			continue
		}

		sink.Push(actionsink.InstructionIsSolving)
		sink.LoadSolution(result.Path)

		times = append(times, float64(time.Since(start)))
		positions = append(positions, float64(result.NodesExpanded))
		depths = append(depths, float64(len(result.Path)))
	}

	return buildReport(log, times, positions, depths), nil
}

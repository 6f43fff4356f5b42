// Command puppetcube is the external interface described in spec.md §6:
// a seeded batch of scramble+solve runs against the Puppet Cube V2 online
// solver, reporting aggregate statistics when it finishes.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/linusvdv/puppet-cube-v2/actionsink"
	"github.com/linusvdv/puppet-cube-v2/driver"
	"github.com/linusvdv/puppet-cube-v2/pclog"
	"github.com/linusvdv/puppet-cube-v2/solver"
	"github.com/linusvdv/puppet-cube-v2/tablebase"
)

var errorLevelNames = map[string]pclog.Level{
	"criticalError": pclog.LevelCriticalError,
	"error":         pclog.LevelError,
	"warning":       pclog.LevelWarning,
	"info":          pclog.LevelInfo,
	"extra":         pclog.LevelExtra,
	"memory":        pclog.LevelMemory,
	"all":           pclog.LevelAll,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds and executes the root command, returning the process exit
// code rather than calling os.Exit itself, so it can be exercised without
// killing the test process.
func run(args []string) int {
	cfg := driver.Config{}
	var errorLevel string

	root := &cobra.Command{
		Use:           "puppetcube",
		Short:         "Scramble and solve the Puppet Cube V2 in a batch of timed runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := errorLevelNames[errorLevel]
			if !ok {
				return fmt.Errorf("puppetcube: unrecognized --errorLevel %q", errorLevel)
			}
			cfg.ErrorLevel = level
			return execute(cmd.Context(), cfg)
		},
	}

	flags := root.Flags()
	flags.BoolVar(&cfg.GUI, "gui", true, "enable or disable the external renderer")
	flags.StringVar(&cfg.RootPath, "rootPath", ".", "base directory under which position_data/*.bin files are found")
	flags.StringVar(&errorLevel, "errorLevel", "warning", "criticalError|error|warning|info|all|extra|memory")
	flags.IntVar(&cfg.Threads, "threads", runtime.NumCPU(), "worker count")
	flags.IntVar(&cfg.Runs, "runs", 1, "number of scramble+solve runs")
	flags.Int64Var(&cfg.Positions, "positions", solver.DefaultNodeBudget, "maximum number of positions expanded per solve")
	flags.IntVar(&cfg.TablebaseDepth, "tablebase_depth", 5, "depth to grow the online tablebase")
	flags.IntVar(&cfg.ScrambleDepth, "scramble_depth", 20, "number of random rotations per scramble")
	flags.IntVar(&cfg.StartOffset, "start_offset", 0, "skip the first n scrambles (warm up the RNG)")
	flags.IntVar(&cfg.MinDepth, "min_depth", 0, "early termination if a solution of depth <= n is found")
	flags.Int64Var(&cfg.Seed, "seed", 0, "RNG seed; 0 by default to produce reproducible scramble sequences")

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// execute loads the offline tables, builds the online tablebase and
// action sink, and hands everything to driver.Run. Failures to load the
// offline tables are reported through pclog.Handler.CriticalError, which
// logs and exits the process per the teacher's severity-ladder convention
// (see package pclog); every other failure is returned so run can report
// a clean non-zero exit code instead.
func execute(ctx context.Context, cfg driver.Config) error {
	log := pclog.New("puppetcube", cfg.ErrorLevel)

	oracle, err := driver.LoadOracle(cfg.RootPath)
	if err != nil {
		log.CriticalError("loading offline tables: %v", err)
		return err
	}

	tb := tablebase.New(cfg.Threads)
	sink := actionsink.New()

	report, err := driver.Run(ctx, cfg, oracle, tb, log, sink)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(r driver.Report) {
	fmt.Printf("runs: %d\n", r.Runs)
	fmt.Printf("time (ns):  min=%.0f q1=%.0f median=%.0f q3=%.0f max=%.0f\n", r.Time.Min, r.Time.Q1, r.Time.Median, r.Time.Q3, r.Time.Max)
	fmt.Printf("positions:  min=%.0f q1=%.0f median=%.0f q3=%.0f max=%.0f\n", r.Positions.Min, r.Positions.Q1, r.Positions.Median, r.Positions.Q3, r.Positions.Max)
	fmt.Printf("depth:      min=%.0f q1=%.0f median=%.0f q3=%.0f max=%.0f\n", r.Depth.Min, r.Depth.Q1, r.Depth.Median, r.Depth.Q3, r.Depth.Max)
}

package driver

import "github.com/linusvdv/puppet-cube-v2/pclog"

// Config mirrors the CLI surface of spec.md §6.
type Config struct {
	GUI            bool
	RootPath       string
	ErrorLevel     pclog.Level
	Threads        int
	Runs           int
	Positions      int64
	TablebaseDepth int
	ScrambleDepth  int
	StartOffset    int
	MinDepth       int
	// Seed defaults to 0, matching spec.md §6's "RNG is seeded to 0 by
	// default to produce reproducible scramble sequences."
	Seed int64
}

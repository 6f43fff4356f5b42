package driver

import (
	"fmt"
	"path/filepath"

	"github.com/linusvdv/puppet-cube-v2/heuristic"
)

// cornerFileName and the two edge-projection file names live under
// rootPath/position_data, per spec.md §6's "--rootPath=<path> base
// directory under which position_data/*.bin files are found." The two
// independent edge-projection halves (see package heuristic) persist as
// separate files rather than spec.md's single "edge-data.bin", since
// the table the original's one file described a single edge relaxation
// and this port splits that relaxation into two independent projections
// (see DESIGN.md's heuristic entry).
const (
	cornerFileName   = "corner-data.bin"
	edgeLowFileName  = "edge-data-low.bin"
	edgeHighFileName = "edge-data-high.bin"
)

// LoadOracle reads the three persisted offline tables from
// rootPath/position_data and wraps them in a *heuristic.Oracle. A
// missing or short file is fatal at this layer; the caller is expected
// to report it through pclog.Handler.CriticalError.
func LoadOracle(rootPath string) (*heuristic.Oracle, error) {
	dir := filepath.Join(rootPath, "position_data")

	corner, err := heuristic.LoadCorner(filepath.Join(dir, cornerFileName))
	if err != nil {
		return nil, fmt.Errorf("driver: loading corner table: %w", err)
	}

	edgeLow, err := heuristic.LoadEdgeProjection(filepath.Join(dir, edgeLowFileName))
	if err != nil {
		return nil, fmt.Errorf("driver: loading low edge-projection table: %w", err)
	}

	edgeHigh, err := heuristic.LoadEdgeProjection(filepath.Join(dir, edgeHighFileName))
	if err != nil {
		return nil, fmt.Errorf("driver: loading high edge-projection table: %w", err)
	}

	return heuristic.NewOracle(corner, edgeLow, edgeHigh), nil
}

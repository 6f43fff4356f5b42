package heuristic

import (
	"github.com/linusvdv/puppet-cube-v2/codec"
	"github.com/linusvdv/puppet-cube-v2/cube"
)

// Oracle answers h(state) from three precomputed, loaded-once tables.
// It is safe for concurrent use by any number of solver workers: all
// three tables are read-only for the Oracle's lifetime.
type Oracle struct {
	corner   CornerTable
	edgeLow  EdgeProjectionTable
	edgeHigh EdgeProjectionTable
}

// NewOracle wraps three already-loaded tables. Callers typically obtain
// them via LoadCorner/LoadEdgeProjection.
func NewOracle(corner CornerTable, edgeLow, edgeHigh EdgeProjectionTable) *Oracle {
	return &Oracle{corner: corner, edgeLow: edgeLow, edgeHigh: edgeHigh}
}

// H returns max(h_corner, h_edge_low, h_edge_high), an admissible lower
// bound on state's true distance from solved: each component is the
// exact distance in a relaxation of the puzzle (see package doc), and
// the max of admissible lower bounds remains admissible.
func (o *Oracle) H(state cube.State) uint16 {
	hc := o.HCorner(state)
	hl := uint16(o.edgeLow[codec.EncodeEdgeProjectionLow(state)])
	hh := uint16(o.edgeHigh[codec.EncodeEdgeProjectionHigh(state)])
	return max3(hc, hl, hh)
}

// HCorner returns just the corner component of H, for the solver's
// faster cutoff checks (spec.md §4.6).
func (o *Oracle) HCorner(state cube.State) uint16 {
	return o.corner.Depth(state)
}

// LegalMask returns the 6-bit legal-move mask the corner table bundles
// alongside state's depth, for rotation.LegalRotations.
func (o *Oracle) LegalMask(state cube.State) uint16 {
	return o.corner.LegalMask(state)
}

func max3(a, b, c uint16) uint16 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

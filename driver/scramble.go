package driver

import (
	"math/rand"

	"github.com/linusvdv/puppet-cube-v2/cube"
	"github.com/linusvdv/puppet-cube-v2/rotation"
	"github.com/linusvdv/puppet-cube-v2/solver"
)

// scramble applies depth random legal rotations to the solved state,
// using rng and the legality-aware rotation enumerator (spec.md §4.10:
// "generates a scramble of k random legal rotations"). It returns the
// scrambled state and the rotations applied, in order, so the driver
// can optionally mirror them to the action sink for playback.
func scramble(rng *rand.Rand, depth int, oracle solver.Heuristic) (cube.State, []rotation.Rotation) {
	state := cube.Solved()
	applied := make([]rotation.Rotation, 0, depth)
	for i := 0; i < depth; i++ {
		legal := rotation.LegalRotations(oracle.LegalMask(state))
		r := legal[rng.Intn(len(legal))]
		state = rotation.Apply(state, r)
		applied = append(applied, r)
	}
	return state, applied
}

// Package rotation applies the eighteen face and slice turns of a puppet
// cube to a cube.State.
//
// Every turn is encoded once as a pair of permutation tables — one over
// corner slots, one over edge slots — captured verbatim from the reference
// implementation's kCornerRotation/kEdgeRotation arrays. A table entry of
// -1 means "this piece's current position is untouched by this turn";
// Apply leaves such pieces exactly as they are, including their
// orientation.
//
// Corner orientation is carried as a swap of two of the three spatial
// axes (x, y, z), chosen by which axis pair the turning face shares.
// Edge orientation has no axis structure: any edge whose position changes
// under a turn has its single orientation bit flipped.
package rotation

package rotation

// cornerTable[r][p] is the position a corner currently sitting at p moves
// to under rotation r, or -1 if r leaves position p untouched.
var cornerTable = [NumRotations][8]int8{
	{4, -1, 0, -1, 6, -1, 2, -1},  // R
	{2, -1, 6, -1, 0, -1, 4, -1},  // R'
	{-1, 3, -1, 7, -1, 1, -1, 5},  // L
	{-1, 5, -1, 1, -1, 7, -1, 3},  // L'
	{1, 5, -1, -1, 0, 4, -1, -1},  // U
	{4, 0, -1, -1, 5, 1, -1, -1},  // U'
	{-1, -1, 6, 2, -1, -1, 7, 3},  // D
	{-1, -1, 3, 7, -1, -1, 2, 6},  // D'
	{2, 0, 3, 1, -1, -1, -1, -1},  // F
	{1, 3, 0, 2, -1, -1, -1, -1},  // F'
	{-1, -1, -1, -1, 5, 7, 4, 6},  // B
	{-1, -1, -1, -1, 6, 4, 7, 5},  // B'
	{4, 5, 0, 1, 6, 7, 2, 3},      // M  - R  + L'
	{2, 3, 6, 7, 0, 1, 4, 5},      // M' - R' + L
	{1, 5, 3, 7, 0, 4, 2, 6},      // E  - U  + D'
	{4, 0, 6, 2, 5, 1, 7, 3},      // E' - U' + D
	{1, 3, 0, 2, 5, 7, 4, 6},      // S  - F' + B
	{2, 0, 3, 1, 6, 4, 7, 5},      // S' - F  + B'
}

// edgeTable[r][p] is the position an edge currently sitting at p moves to
// under rotation r, or -1 if r leaves position p untouched.
var edgeTable = [NumRotations][12]int8{
	{2, 0, 3, 1, -1, -1, -1, -1, -1, -1, -1, -1},   // R
	{1, 3, 0, 2, -1, -1, -1, -1, -1, -1, -1, -1},   // R'
	{-1, -1, -1, -1, -1, -1, -1, -1, 9, 11, 8, 10},  // L
	{-1, -1, -1, -1, -1, -1, -1, -1, 10, 8, 11, 9},  // L'
	{4, -1, -1, -1, 8, 0, -1, -1, 5, -1, -1, -1},    // U
	{5, -1, -1, -1, 0, 8, -1, -1, 4, -1, -1, -1},    // U'
	{-1, -1, -1, 7, -1, -1, 3, 11, -1, -1, -1, 6},   // D
	{-1, -1, -1, 6, -1, -1, 11, 3, -1, -1, -1, 7},   // D'
	{-1, 6, -1, -1, 1, -1, 9, -1, -1, 4, -1, -1},    // F
	{-1, 4, -1, -1, 9, -1, 1, -1, -1, 6, -1, -1},    // F'
	{-1, -1, 5, -1, -1, 10, -1, 2, -1, -1, 7, -1},   // B
	{-1, -1, 7, -1, -1, 2, -1, 10, -1, -1, 5, -1},   // B'
	{2, 0, 3, 1, -1, -1, -1, -1, 10, 8, 11, 9},       // M  - R  + L'
	{1, 3, 0, 2, -1, -1, -1, -1, 9, 11, 8, 10},        // M' - R' + L
	{4, -1, -1, 6, 8, 0, 11, 3, 5, -1, -1, 7},         // E  - U  + D'
	{5, -1, -1, 7, 0, 8, 3, 11, 4, -1, -1, 6},         // E' - U' + D
	{-1, 4, 5, -1, 9, 10, 1, 2, -1, 6, 7, -1},          // S  - F' + B
	{-1, 6, 7, -1, 1, 2, 9, 10, -1, 4, 5, -1},          // S' - F  + B'
}

// cornerAxisPair[r] names the two spatial axes a rotated corner's
// orientation swaps, for the three rotation families sharing an axis
// pair: {1,2} for R/L/M turns, {0,2} for U/D/E turns, {0,1} for F/B/S
// turns.
var cornerAxisPair = [NumRotations][2]byte{
	{1, 2}, {1, 2}, {1, 2}, {1, 2}, // R, R', L, L'
	{0, 2}, {0, 2}, {0, 2}, {0, 2}, // U, U', D, D'
	{0, 1}, {0, 1}, {0, 1}, {0, 1}, // F, F', B, B'
	{1, 2}, {1, 2}, // M, M'
	{0, 2}, {0, 2}, // E, E'
	{0, 1}, {0, 1}, // S, S'
}

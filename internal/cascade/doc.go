package cascade

// Package cascade implements the series → subseries → model selection state
// machine that drives the viewer's three lists. Choosing at any level moves
// the state forward and invalidates everything finer in the same call. Each
// choice bumps a generation counter; image results produced for an older
// generation must be dropped by the caller.

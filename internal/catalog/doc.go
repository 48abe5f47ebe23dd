package catalog

// Package catalog holds the loaded-once watch dataset and answers the
// hierarchical queries behind the series, subseries and model lists. Every
// query is a linear scan in load order; unknown keys yield empty results.

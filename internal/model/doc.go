package model

// Package model defines domain data structures used across the app: watch
// records loaded from the catalog dataset, links discovered by the crawler,
// and the picture status enum. Records are plain values so they can be shared
// between the UI thread and workers without locking.

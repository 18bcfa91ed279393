// Package aaf defines the AAF (abstract argumentation framework) type: a
// directed graph of arguments and attacks, built once from parsed input
// and read-only for the remainder of a solve run.
//
// Arguments are dense integers in [0, n); a string name is kept only for
// output formatting. Adjacency is stored as plain [][]int slices rather
// than lvlath's core.Graph (string-keyed, mutex-guarded,
// mutation-oriented): this AAF is built once by a single goroutine and
// never mutated again, so the locking and string-keyed indirection
// core.Graph pays for buys nothing here and would cost real time in the
// SLS engine's per-iteration neighbourhood scans.
package aaf

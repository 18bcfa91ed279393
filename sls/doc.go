// Package sls implements the stochastic local search engine that searches
// for a stable extension of an AAF.
//
// The engine repeatedly flips arguments between in and out, guided by a mix
// of greedy (flip-gain heap), semi-random, and purely random move selection.
// It starts from a fresh labeling (random, or all-out) and, when configured
// to, restarts from a new one on a fixed period or when it appears stuck in
// a local minimum; with the default options it never restarts. Two
// pieces of precomputed structure keep it from wasting iterations on moves
// that provably cannot lead anywhere: the grounded labeling (package
// grounded) fixes arguments that every stable labeling must agree on, and
// the odd-cycle collection (package occ) lets a stuck cycle member escape
// toward an attacker instead of flipping in place forever.
//
// Configuration follows dijkstra's functional-options style (dijkstra's
// Options/Option/DefaultOptions in dijkstra/types.go): Solve takes a
// variadic list of Option values layered over a sane default config.
package sls

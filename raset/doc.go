// Package raset implements RaSet, a random-access subset of [0, n) that
// supports add, remove, membership test, element count, indexed access, and
// uniform random element selection, all in O(1) amortized.
//
// Internally RaSet keeps a dense slice of the present elements plus a
// reverse index (position-in-slice, keyed by element) so that Remove can
// swap the removed element with the last one and truncate, instead of
// shifting the slice. This is the same "dense array + index table" shape
// lvlath's builder package uses for deterministic sequence generation
// (see builder/sequence_primitives.go), applied here to set membership
// instead of sequence state.
//
// RaSet is the backing structure for the SLS engine's mislabeled set
// (package sls): the engine needs to pick a uniformly random mislabeled
// argument in O(1) on every iteration, which a map cannot do without an
// auxiliary slice — so RaSet builds that slice in directly.
package raset

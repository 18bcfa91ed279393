// Package labeling defines Labeling, a total in/out labeling of an AAF's
// arguments, and the correctness predicate that defines when a labeling
// is stable.
//
// An argument a is correctly labeled iff:
//   - label(a) = in  and every parent of a is labeled out; or
//   - label(a) = out and some parent of a is labeled in.
//
// A labeling is stable iff every argument is correctly labeled.
package labeling

// Package bitset provides a dense, fixed-size bitmap over the index range
// [0, n) used throughout aafse to represent argument labelings and
// membership sets (initial arguments, self-loops, grounded fixed sets).
//
// BitSet trades the flexibility of a map-based set for raw speed: every
// single-bit operation is O(1) and allocation-free after construction, which matters
// because the SLS search loop (see package sls) touches bits on the order
// of once per neighbour per iteration.
//
// Complexity:
//   - Get/Set/Unset:        O(1)
//   - SetAll/UnsetAll:      O(n/64)
package bitset

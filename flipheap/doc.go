// Package flipheap implements an indexed binary min-heap keyed on signed
// integer priorities, used by package sls as the greedy-move priority
// queue (keyed on flip gain: the lower the gain, the more improving the
// flip, so extract-min returns the best candidate).
//
// It follows the same container/heap-wrapping shape as lvlath's
// dijkstra.nodePQ (dijkstra/dijkstra.go), extended with a parallel
// handle[arg]→index table so Contains/Update/Remove run in O(log n)
// instead of the O(n) linear scan a plain container/heap.Interface would
// need.
//
// Ties are broken by ascending argument index, making heap behavior
// deterministic for a fixed sequence of operations.
package flipheap

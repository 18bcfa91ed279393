package raset

import "math/rand"

// None is returned by RandomElement and RandomElementSkipping when there is
// no candidate element to return (empty set, or every present element
// masked out).
const None = -1

// sentinelNone is kept as an internal alias so the rest of this file reads
// naturally; it is always equal to None.
const sentinelNone = None

// RaSet is a random-access subset of [0, n). The zero value is not usable;
// construct with New.
type RaSet struct {
	n       int
	dense   []int // dense[k] = the k-th element currently present
	indexOf []int // indexOf[e] = position of e in dense, or -1 if absent
}

// New returns an empty RaSet over the universe [0, n).
// Panics if n < 0.
func New(n int) *RaSet {
	if n < 0 {
		panic("raset: negative size")
	}

	indexOf := make([]int, n)
	for i := range indexOf {
		indexOf[i] = sentinelNone
	}

	return &RaSet{
		n:       n,
		dense:   make([]int, 0, n),
		indexOf: indexOf,
	}
}

// Len returns the universe size n the RaSet was constructed with.
func (s *RaSet) Len() int {
	return s.n
}

// Count returns the number of elements currently present.
func (s *RaSet) Count() int {
	return len(s.dense)
}

// Contains reports whether e is currently present. Panics if e is out of
// [0, n).
func (s *RaSet) Contains(e int) bool {
	s.checkBounds(e)

	return s.indexOf[e] != sentinelNone
}

// Add inserts e if not already present. O(1).
func (s *RaSet) Add(e int) {
	s.checkBounds(e)
	if s.indexOf[e] != sentinelNone {
		return
	}

	s.indexOf[e] = len(s.dense)
	s.dense = append(s.dense, e)
}

// Remove deletes e if present, by swapping it with the last dense element
// and truncating. O(1).
func (s *RaSet) Remove(e int) {
	s.checkBounds(e)

	pos := s.indexOf[e]
	if pos == sentinelNone {
		return
	}

	last := len(s.dense) - 1
	lastElem := s.dense[last]

	s.dense[pos] = lastElem
	s.indexOf[lastElem] = pos

	s.dense = s.dense[:last]
	s.indexOf[e] = sentinelNone
}

// At returns the k-th element currently present (insertion order is not
// preserved across removals — "k-th" means "k-th in the current dense
// slice"). Panics if k is out of [0, Count()).
func (s *RaSet) At(k int) int {
	if k < 0 || k >= len(s.dense) {
		panic("raset: index out of range")
	}

	return s.dense[k]
}

// Reset empties the set in O(Count()) time, leaving the universe size
// unchanged.
func (s *RaSet) Reset() {
	for _, e := range s.dense {
		s.indexOf[e] = sentinelNone
	}
	s.dense = s.dense[:0]
}

// RandomElement returns a uniformly random present element, or
// sentinelNone if the set is empty.
func (s *RaSet) RandomElement(rng *rand.Rand) int {
	if len(s.dense) == 0 {
		return sentinelNone
	}

	return s.dense[rng.Intn(len(s.dense))]
}

// RandomElementSkipping returns a uniformly random present element that is
// not set in mask, or sentinelNone if every present element is masked out.
//
// Implemented by collecting every not-masked element into a candidate
// slice and indexing into it with a single rng draw, rather than scanning
// forward from a random start: a forward scan returns the first candidate
// after a masked run, which is not the same as drawing uniformly among the
// candidates (an element following a long masked run is reached by more
// starting offsets than one following a short run).
func (s *RaSet) RandomElementSkipping(rng *rand.Rand, mask Masker) int {
	count := len(s.dense)
	if count == 0 {
		return sentinelNone
	}

	candidates := make([]int, 0, count)
	for _, e := range s.dense {
		if !mask.Get(e) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return sentinelNone
	}

	return candidates[rng.Intn(len(candidates))]
}

// Masker is the minimal interface RandomElementSkipping needs from a
// bitset-like membership test. bitset.BitSet satisfies it.
type Masker interface {
	Get(i int) bool
}

func (s *RaSet) checkBounds(e int) {
	if e < 0 || e >= s.n {
		panic("raset: element out of range")
	}
}

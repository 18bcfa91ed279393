// Package aaf: construction and read-only accessors for AAF.
package aaf

import (
	"fmt"

	"github.com/argstable/aafse/bitset"
)

// AAF is an abstract argumentation framework: a directed graph of
// arguments [0, n) and attacks between them. Invariants:
//
//   - b ∈ Children(a) ⇔ a ∈ Parents(b)
//   - Loop(a) ⇔ a ∈ Children(a)
//   - Initial(a) ⇔ Parents(a) is empty
//   - attack multiplicity does not affect semantics (duplicates collapse)
type AAF struct {
	names    []string
	nameToID map[string]int
	children [][]int
	parents  [][]int
	initial  *bitset.BitSet
	loops    *bitset.BitSet
}

// Builder accumulates arguments and attacks, then produces an immutable
// AAF via Build. The zero value is not usable; construct with NewBuilder.
type Builder struct {
	names    []string
	nameToID map[string]int
	attacks  [][2]int // (attackerID, attackedID) pairs, as added
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		nameToID: make(map[string]int),
	}
}

// AddArgument registers a new argument by name and returns its dense id.
// If name was already registered, its existing id is returned (idempotent
// registration, matching the original parser's one-pass-per-line
// behavior where each name line is expected once but never rejected if
// repeated).
func (b *Builder) AddArgument(name string) int {
	if id, ok := b.nameToID[name]; ok {
		return id
	}

	id := len(b.names)
	b.names = append(b.names, name)
	b.nameToID[name] = id

	return id
}

// ID returns the dense id for a previously registered argument name, and
// whether it was found.
func (b *Builder) ID(name string) (int, bool) {
	id, ok := b.nameToID[name]

	return id, ok
}

// AddAttack records that attacker attacks attacked (both dense ids).
// Duplicate attacks are permitted and collapse during Build: attack
// multiplicity is irrelevant to stability.
func (b *Builder) AddAttack(attacker, attacked int) {
	b.attacks = append(b.attacks, [2]int{attacker, attacked})
}

// Build finalizes the AAF: computes children/parents adjacency (attack
// multiplicity deduplicated), initial arguments (no parents), and
// self-loops.
func (b *Builder) Build() *AAF {
	n := len(b.names)

	children := make([][]int, n)
	parents := make([][]int, n)

	// Dedupe via a per-argument seen-set so repeated "a b" lines in the
	// input do not change children/parents cardinality.
	childSeen := make([]map[int]bool, n)
	parentSeen := make([]map[int]bool, n)
	for i := 0; i < n; i++ {
		childSeen[i] = make(map[int]bool)
		parentSeen[i] = make(map[int]bool)
	}

	loops := bitset.New(n)
	hasParent := make([]bool, n)

	for _, atk := range b.attacks {
		attacker, attacked := atk[0], atk[1]

		if !childSeen[attacker][attacked] {
			childSeen[attacker][attacked] = true
			children[attacker] = append(children[attacker], attacked)
		}
		if !parentSeen[attacked][attacker] {
			parentSeen[attacked][attacker] = true
			parents[attacked] = append(parents[attacked], attacker)
		}

		hasParent[attacked] = true

		if attacker == attacked {
			loops.Set(attacker)
		}
	}

	initial := bitset.New(n)
	for i := 0; i < n; i++ {
		if !hasParent[i] {
			initial.Set(i)
		}
	}

	names := make([]string, n)
	copy(names, b.names)

	return &AAF{
		names:    names,
		nameToID: b.nameToID,
		children: children,
		parents:  parents,
		initial:  initial,
		loops:    loops,
	}
}

// N returns the number of arguments.
func (a *AAF) N() int {
	return len(a.names)
}

// Name returns the external name for argument id. Panics if id is out of
// range.
func (a *AAF) Name(id int) string {
	return a.names[id]
}

// ID returns the dense id for name and whether it was found.
func (a *AAF) ID(name string) (int, bool) {
	id, ok := a.nameToID[name]

	return id, ok
}

// Children returns the arguments id attacks.
func (a *AAF) Children(id int) []int {
	return a.children[id]
}

// Parents returns the arguments that attack id.
func (a *AAF) Parents(id int) []int {
	return a.parents[id]
}

// Initial reports whether id has no attackers.
func (a *AAF) Initial(id int) bool {
	return a.initial.Get(id)
}

// Loop reports whether id self-attacks.
func (a *AAF) Loop(id int) bool {
	return a.loops.Get(id)
}

// String returns a short human-readable summary, useful in error context
// and example output.
func (a *AAF) String() string {
	return fmt.Sprintf("AAF{arguments=%d}", a.N())
}

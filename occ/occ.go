package occ

import "github.com/argstable/aafse/aaf"

const (
	white = iota
	gray
	black
)

// Collection maps an argument lying on an odd cycle to the (non-empty)
// set of arguments outside that cycle that attack some cycle member.
type Collection struct {
	attackers map[int][]int
}

// Contains reports whether arg was found to lie on an odd cycle.
func (c *Collection) Contains(arg int) bool {
	_, ok := c.attackers[arg]

	return ok
}

// Attackers returns the attacker set recorded for arg, or nil if arg is
// not in the collection.
func (c *Collection) Attackers(arg int) []int {
	return c.attackers[arg]
}

// Build performs a single DFS pass over a, recording at most one odd
// cycle per argument. Returns ErrUnsatisfiable as soon as an odd cycle
// with no external attacker is found.
func Build(a *aaf.AAF) (*Collection, error) {
	n := a.N()

	state := make([]int, n)
	posInPath := make([]int, n)
	path := make([]int, 0, n)
	assigned := make([]bool, n)
	attackers := make(map[int][]int)

	var visit func(u int) error
	visit = func(u int) error {
		state[u] = gray
		posInPath[u] = len(path)
		path = append(path, u)

		for _, v := range a.Children(u) {
			switch state[v] {
			case white:
				if err := visit(v); err != nil {
					return err
				}
			case gray:
				segLen := len(path) - posInPath[v]
				if segLen%2 == 1 {
					cycle := append([]int(nil), path[posInPath[v]:]...)
					if err := recordCycle(a, cycle, assigned, attackers); err != nil {
						return err
					}
				}
			case black:
				// fully explored elsewhere; nothing to do
			}
		}

		path = path[:len(path)-1]
		state[u] = black

		return nil
	}

	for u := 0; u < n; u++ {
		if state[u] == white {
			if err := visit(u); err != nil {
				return nil, err
			}
		}
	}

	return &Collection{attackers: attackers}, nil
}

// recordCycle computes the shared attacker set for an odd cycle and
// assigns it to every not-yet-assigned member, or returns
// ErrUnsatisfiable if the cycle has no external attacker.
func recordCycle(a *aaf.AAF, cycle []int, assigned []bool, attackers map[int][]int) error {
	inCycle := make(map[int]bool, len(cycle))
	for _, m := range cycle {
		inCycle[m] = true
	}

	var attackerSet []int
	seen := make(map[int]bool)
	for _, m := range cycle {
		for _, p := range a.Parents(m) {
			if inCycle[p] || seen[p] {
				continue
			}
			seen[p] = true
			attackerSet = append(attackerSet, p)
		}
	}

	if len(attackerSet) == 0 {
		return ErrUnsatisfiable
	}

	for _, m := range cycle {
		if !assigned[m] {
			assigned[m] = true
			attackers[m] = attackerSet
		}
	}

	return nil
}

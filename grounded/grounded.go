package grounded

import (
	"github.com/argstable/aafse/aaf"
	"github.com/argstable/aafse/bitset"
)

// Result holds the grounded labeling as two disjoint bitsets: In and Out.
// Any argument not in either is undec (grounded does not decide it).
type Result struct {
	In  *bitset.BitSet
	Out *bitset.BitSet
}

// Fixed reports whether arg is decided (in or out) by the grounded
// labeling, i.e. whether the SLS engine must leave it untouched.
func (r *Result) Fixed(arg int) bool {
	return r.In.Get(arg) || r.Out.Get(arg)
}

// Compute derives the grounded labeling of a via iterative fixpoint:
//   - every initial argument (no attackers) starts in In;
//   - if every attacker of arg is in Out, arg joins In;
//   - if some attacker of arg is in In, arg joins Out;
//   - repeat until a full pass adds nothing.
func Compute(a *aaf.AAF) *Result {
	n := a.N()
	in := bitset.New(n)
	out := bitset.New(n)

	for i := 0; i < n; i++ {
		if a.Initial(i) {
			in.Set(i)
		}
	}

	for {
		changed := false

		for i := 0; i < n; i++ {
			if in.Get(i) || out.Get(i) {
				continue
			}

			parents := a.Parents(i)

			if hasInParent(in, parents) {
				out.Set(i)
				changed = true
				continue
			}

			if allParentsOut(out, parents) {
				// An argument with no parents is handled by the Initial
				// seeding above, but this also covers the case where all
				// of arg's parents just became out this pass.
				in.Set(i)
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return &Result{In: in, Out: out}
}

func hasInParent(in *bitset.BitSet, parents []int) bool {
	for _, p := range parents {
		if in.Get(p) {
			return true
		}
	}

	return false
}

func allParentsOut(out *bitset.BitSet, parents []int) bool {
	if len(parents) == 0 {
		return true
	}
	for _, p := range parents {
		if !out.Get(p) {
			return false
		}
	}

	return true
}

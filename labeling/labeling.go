package labeling

import (
	"github.com/argstable/aafse/aaf"
	"github.com/argstable/aafse/bitset"
)

// Labeling is a total in/out labeling over an AAF's arguments, represented
// as one bit per argument: set ⇒ in, unset ⇒ out.
type Labeling struct {
	In *bitset.BitSet
}

// New returns a Labeling over [0, n), every argument initially out.
func New(n int) *Labeling {
	return &Labeling{In: bitset.New(n)}
}

// IsIn reports whether arg is labeled in.
func (l *Labeling) IsIn(arg int) bool {
	return l.In.Get(arg)
}

// SetIn labels arg in.
func (l *Labeling) SetIn(arg int) {
	l.In.Set(arg)
}

// SetOut labels arg out.
func (l *Labeling) SetOut(arg int) {
	l.In.Unset(arg)
}

// CorrectlyLabeled reports whether arg satisfies the stability predicate
// under framework a and labeling l.
func CorrectlyLabeled(a *aaf.AAF, l *Labeling, arg int) bool {
	if l.IsIn(arg) {
		for _, p := range a.Parents(arg) {
			if l.IsIn(p) {
				return false
			}
		}

		return true
	}

	for _, p := range a.Parents(arg) {
		if l.IsIn(p) {
			return true
		}
	}

	return false
}

// CorrectlyLabeledUnderAssumption reports whether target would be
// correctly labeled if flippedArg were labeled in (assumedIn) or out,
// without mutating l. This underlies flip-gain accounting: the SLS engine
// needs to know "if I flip flippedArg, does target's correctness change?"
// without committing to the flip first.
func CorrectlyLabeledUnderAssumption(a *aaf.AAF, l *Labeling, target, flippedArg int, assumedIn bool) bool {
	targetIn := l.IsIn(target)
	if target == flippedArg {
		targetIn = assumedIn
	}

	if targetIn {
		for _, p := range a.Parents(target) {
			pIn := l.IsIn(p)
			if p == flippedArg {
				pIn = assumedIn
			}
			if pIn {
				return false
			}
		}

		return true
	}

	for _, p := range a.Parents(target) {
		pIn := l.IsIn(p)
		if p == flippedArg {
			pIn = assumedIn
		}
		if pIn {
			return true
		}
	}

	return false
}

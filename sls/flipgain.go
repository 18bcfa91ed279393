package sls

import (
	"github.com/argstable/aafse/aaf"
	"github.com/argstable/aafse/labeling"
)

// flipGain computes the number of arguments in arg's closed neighbourhood
// (arg, its children, its parents) correctly labeled now, minus the number
// that would be correctly labeled if arg were flipped. The
// smaller the result, the better the flip — a negative gain means flipping
// arg improves the neighbourhood's correctness.
func flipGain(a *aaf.AAF, lab *labeling.Labeling, arg int) int {
	newIn := !lab.IsIn(arg)

	gain := delta(a, lab, arg, arg, newIn)

	for _, c := range a.Children(arg) {
		gain += delta(a, lab, c, arg, newIn)
	}
	for _, p := range a.Parents(arg) {
		gain += delta(a, lab, p, arg, newIn)
	}

	return gain
}

func delta(a *aaf.AAF, lab *labeling.Labeling, target, flippedArg int, assumedIn bool) int {
	gain := 0
	if labeling.CorrectlyLabeled(a, lab, target) {
		gain++
	}
	if labeling.CorrectlyLabeledUnderAssumption(a, lab, target, flippedArg, assumedIn) {
		gain--
	}

	return gain
}

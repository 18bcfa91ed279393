package sls

import (
	"math"
	"math/rand"
	"time"

	"github.com/argstable/aafse/aaf"
	"github.com/argstable/aafse/flipheap"
	"github.com/argstable/aafse/grounded"
	"github.com/argstable/aafse/labeling"
	"github.com/argstable/aafse/occ"
	"github.com/argstable/aafse/raset"
)

// Solve searches for a stable extension of a, seeded by the grounded
// labeling gr (every argument gr decides is held fixed throughout). It
// returns (labeling, true, nil) on success, (nil, false, nil) if the
// iteration cap is hit without finding one, and (nil, false, err) when the
// search proves no stable extension exists (err is ErrUnsatisfiable or
// occ.ErrUnsatisfiable).
//
// Ported from the source's solve() in taas-haywood.c, restructured as a
// single Go for-loop in place of the original's do/while plus scattered
// break statements.
func Solve(a *aaf.AAF, gr *grounded.Result, opts ...Option) (*labeling.Labeling, bool, error) {
	cfg := newConfig(opts...)
	n := a.N()

	seed := cfg.seed
	if !cfg.hasSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var oc *occ.Collection
	if cfg.escapeOddCycles {
		built, err := occ.Build(a)
		if err != nil {
			return nil, false, err
		}
		oc = built
	}

	maxIterations := resolveMaxIterations(cfg, n)
	restart := resolveRestart(cfg, n)

	var logB float64
	if cfg.locMinRes > 0 {
		logB = math.Log(cfg.locMinRes)
	}

	lab := labeling.New(n)
	mislabeled := raset.New(n)
	toBeChecked := raset.New(n)
	var pq *flipheap.Heap

	var minMislabeled, minMislabeledIter int
	numIterations := 0

	for {
		forceRestart := false
		if cfg.locMinRes > 0 {
			if mislabeled.Count() < minMislabeled {
				minMislabeled = mislabeled.Count()
				minMislabeledIter = numIterations
			} else {
				p := 1 - logB/math.Log(float64(numIterations-minMislabeledIter)+cfg.locMinRes)
				if rng.Float64() < p {
					forceRestart = true
				}
			}
		}

		if numIterations == 0 || (restart != -1 && numIterations%restart == 0) || forceRestart {
			if cfg.initOut {
				lab.In.UnsetAll()
			} else {
				randomizeLabeling(lab, rng, n)
			}
			overlayGrounded(lab, gr, n)

			mislabeled.Reset()
			for i := 0; i < n; i++ {
				if gr.Fixed(i) {
					continue
				}
				if !labeling.CorrectlyLabeled(a, lab, i) {
					mislabeled.Add(i)
				}
			}

			if mislabeled.Count() == 0 {
				return lab, true, nil
			}

			if cfg.locMinRes > 0 {
				minMislabeled = mislabeled.Count()
				minMislabeledIter = 0
			}

			if cfg.greedyProb > 0 {
				pq = flipheap.New(n)
				if cfg.greedyIncludeAll {
					for i := 0; i < n; i++ {
						if gr.Fixed(i) {
							continue
						}
						pq.Insert(i, flipGain(a, lab, i))
					}
				} else {
					for k := 0; k < mislabeled.Count(); k++ {
						e := mislabeled.At(k)
						pq.Insert(e, flipGain(a, lab, e))
					}
				}
			}
		}

		numIterations++
		if numIterations >= maxIterations {
			return nil, false, nil
		}

		selArg := selectMove(cfg, rng, gr, mislabeled, pq)

		toBeChecked.Reset()

		if oc != nil && oc.Contains(selArg) {
			attackers := oc.Attackers(selArg)
			anyIn := false
			for _, atk := range attackers {
				if lab.IsIn(atk) {
					anyIn = true
					break
				}
			}
			if !anyIn {
				replacement := randomAttackerNotGroundedOut(rng, attackers, gr)
				if replacement == raset.None {
					return nil, false, ErrUnsatisfiable
				}
				selArg = replacement
			}
		}

		if lab.IsIn(selArg) {
			lab.SetOut(selArg)
			toBeChecked.Add(selArg)
		} else {
			if a.Loop(selArg) {
				replacement := randomParentNotGroundedOut(rng, a.Parents(selArg), gr)
				if replacement == raset.None {
					return nil, false, ErrUnsatisfiable
				}
				selArg = replacement
			}

			lab.SetIn(selArg)
			toBeChecked.Add(selArg)

			if cfg.enforceOut {
				enforceNeighboursOut(a, lab, gr, toBeChecked, a.Children(selArg))
				enforceNeighboursOut(a, lab, gr, toBeChecked, a.Parents(selArg))
			}
		}

		for _, c := range a.Children(selArg) {
			toBeChecked.Add(c)
		}
		for _, p := range a.Parents(selArg) {
			toBeChecked.Add(p)
		}

		for k := 0; k < toBeChecked.Count(); k++ {
			e := toBeChecked.At(k)
			if gr.Fixed(e) {
				continue
			}

			correct := labeling.CorrectlyLabeled(a, lab, e)
			if !correct {
				mislabeled.Add(e)
			} else {
				mislabeled.Remove(e)
			}

			if pq == nil {
				continue
			}
			if !correct || cfg.greedyIncludeAll {
				pq.Update(e, flipGain(a, lab, e))
			} else if pq.Contains(e) {
				pq.Remove(e)
			}
		}

		if mislabeled.Count() == 0 {
			return lab, true, nil
		}
	}
}

func randomizeLabeling(lab *labeling.Labeling, rng *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			lab.SetIn(i)
		} else {
			lab.SetOut(i)
		}
	}
}

func overlayGrounded(lab *labeling.Labeling, gr *grounded.Result, n int) {
	for i := 0; i < n; i++ {
		if gr.In.Get(i) {
			lab.SetIn(i)
		} else if gr.Out.Get(i) {
			lab.SetOut(i)
		}
	}
}

// selectMove picks the next argument to flip: a greedy heap extraction
// with probability greedyProb, a uniformly random non-fixed argument with
// probability randSel, and otherwise a uniformly random mislabeled
// argument. At call time mislabeled is guaranteed non-empty: the only
// points where it may become empty are checked (and returned on)
// immediately after a restart and at the bottom of the previous iteration.
func selectMove(cfg config, rng *rand.Rand, gr *grounded.Result, mislabeled *raset.RaSet, pq *flipheap.Heap) int {
	u := rng.Float64()

	if u < cfg.greedyProb && pq != nil && pq.Len() > 0 {
		return pq.ExtractMin()
	}

	if u < cfg.greedyProb+cfg.randSel {
		n := mislabeled.Len()
		for {
			cand := rng.Intn(n)
			if !gr.Fixed(cand) {
				return cand
			}
		}
	}

	return mislabeled.RandomElement(rng)
}

func randomAttackerNotGroundedOut(rng *rand.Rand, attackers []int, gr *grounded.Result) int {
	candidates := make([]int, 0, len(attackers))
	for _, atk := range attackers {
		if !gr.Out.Get(atk) {
			candidates = append(candidates, atk)
		}
	}
	if len(candidates) == 0 {
		return raset.None
	}

	return candidates[rng.Intn(len(candidates))]
}

func randomParentNotGroundedOut(rng *rand.Rand, parents []int, gr *grounded.Result) int {
	return randomAttackerNotGroundedOut(rng, parents, gr)
}

// enforceNeighboursOut forces every argument in neighbours to out and
// enqueues its own neighbourhood for re-check. A grounded-fixed neighbour
// is left untouched: the source's comment argues
// this can never legitimately happen (a fixed-in argument can never be
// adjacent to an in argument under a sound grounded labeling), so skipping
// it here only guards against that invariant being violated, it doesn't
// change observed behavior.
func enforceNeighboursOut(a *aaf.AAF, lab *labeling.Labeling, gr *grounded.Result, toBeChecked *raset.RaSet, neighbours []int) {
	for _, node := range neighbours {
		if gr.Fixed(node) {
			continue
		}

		lab.SetOut(node)

		for _, n2 := range a.Children(node) {
			toBeChecked.Add(n2)
		}
		for _, n2 := range a.Parents(node) {
			toBeChecked.Add(n2)
		}
	}
}

// Package aafse is a stochastic local search engine for finding a stable
// extension (SE-ST) of an abstract argumentation framework: a directed
// graph of arguments and attacks, labeled so that every "in" argument's
// attackers are all "out", and every "out" argument has at least one
// "in" attacker.
//
// Subpackages:
//
//	bitset/     — dense bitmap, the labeling's backing store
//	raset/      — O(1) random-access subset, the mislabeled-argument set
//	flipheap/   — indexed min-heap over flip gain, the greedy move queue
//	aaf/        — argument/attack graph: construction and read-only views
//	labeling/   — in/out labeling and the stability predicate
//	grounded/   — grounded-labeling fixpoint, pruning the search space
//	occ/        — odd-cycle collection, for the escape-odd-cycles option
//	sls/        — the search loop itself (Solve)
//	tgf/        — trivial-graph-format file parser
//	solverinfo/ — CLI argument scanner
//	cmd/aafse/  — CLI entrypoint
package aafse

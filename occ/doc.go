// Package occ builds an odd-cycle collection: for each argument lying on
// at least one odd directed cycle, the set of arguments outside that
// cycle that attack some cycle member.
//
// Every odd cycle must be externally attacked in any stable labeling (a
// cycle of odd length cannot itself be 2-colored in/out consistently), so
// the SLS engine uses this to "escape" toward an attacker instead of
// flipping a doomed cycle member.
//
// Construction adapts lvlath's three-color (White/Gray/Black) DFS cycle
// detector (dfs/cycle.go's dfsVisit/back-edge handling) from "enumerate
// every simple cycle over string vertices" to "find at most one cycle per
// int argument, and stop as soon as an unattacked odd cycle is found" —
// completeness across all odd cycles is not required: one unattacked odd
// cycle already proves unsatisfiability, and one externally-attacked cycle
// per argument is enough for the engine's escape move.
package occ

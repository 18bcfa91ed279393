package sls

import "errors"

// ErrUnsatisfiable is returned by Solve when the grounded labeling forces
// all candidate replacements for a required flip out — a self-attacking
// argument with no non-grounded-out parent to redirect to, or an odd
// cycle (via package occ) whose every external attacker is grounded-out.
// Both are genuine non-existence proofs, unlike the plain iteration-cap
// "NO" which proves nothing.
var ErrUnsatisfiable = errors.New("sls: grounded labeling blocks a required flip")

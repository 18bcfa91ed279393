// Package grounded computes the grounded labeling of an AAF: the minimal
// labeling closed under "all attackers out ⇒ in" and "some attacker in ⇒
// out". It is a sub-labeling of every stable labeling, so
// package sls treats grounded.Result's In/Out bitsets as fixed and never
// mutates them during search.
package grounded

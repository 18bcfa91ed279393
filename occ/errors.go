package occ

import "errors"

// ErrUnsatisfiable is returned by Build when some odd cycle has no
// external attacker: in that case no stable labeling can exist. This is
// one of two recognized non-existence proofs, the other being grounded
// forcing a required flip's attackers all out.
var ErrUnsatisfiable = errors.New("occ: unattacked odd cycle")

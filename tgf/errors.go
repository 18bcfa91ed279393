package tgf

import "errors"

// ErrMissingSentinel is returned by Parse when the input never contains the
// "#" line separating the argument section from the attack section.
var ErrMissingSentinel = errors.New("tgf: missing '#' section sentinel")

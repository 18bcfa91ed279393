package solverinfo

import "errors"

// ErrMissingValue is returned when a flag (-p, -f, -a, or any additional
// key) appears as the last argument with no following value token.
var ErrMissingValue = errors.New("solverinfo: flag is missing its value")

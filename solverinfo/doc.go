// Package solverinfo hand-rolls the CLI argument scanner: recognizes
// "-p", "-f", "-a", "--formats", "--problems", and silently accepts any
// other "-key value" pair as an additional
// option for downstream packages (sls.Option construction) to interpret.
//
// Ported from taas_inout.c's taas__cmd_handle. A real flag-registration
// library (flag, pflag, cobra) needs every flag named up front and
// rejects unknown ones; this CLI's contract is the opposite — unknown
// keys are accepted and simply held for the caller to query by name — so
// this port keeps the source's hand-rolled two-token scan rather than
// bolting the contract onto a library it doesn't fit.
package solverinfo

package solverinfo

// Info describes a solver for the "--formats"/"--problems" discovery
// queries and the no-arguments help text, mirroring the
// source's SolverInformation.
type Info struct {
	Description string
	Formats     string
	Problems    string
}

package solverinfo

import "fmt"

// Action tells the caller what ParseArgs determined should happen before
// (or instead of) running the solver.
type Action int

const (
	// ActionSolve means Track and File were both supplied; proceed.
	ActionSolve Action = iota
	// ActionPrintDescription means fewer than both of -p/-f were given;
	// print Info.Description and exit successfully.
	ActionPrintDescription
	// ActionPrintFormats means --formats was given; print Info.Formats
	// and exit successfully, ignoring every other argument.
	ActionPrintFormats
	// ActionPrintProblems means --problems was given; print Info.Problems
	// and exit successfully, ignoring every other argument.
	ActionPrintProblems
)

// additionalArg is one "-key value" pair not recognized as -p/-f/-a.
type additionalArg struct {
	key   string
	value string
}

// TaskSpec is the parsed command line, mirroring the source's
// TaskSpecification.
type TaskSpec struct {
	Track       string
	Problem     string
	File        string
	Arg         int
	ArgAsString string

	additional []additionalArg
}

// Value returns the value associated with an additional "-key value" pair,
// and whether it was present. Matches the source's
// taas__task_get_value: the first occurrence of key wins.
func (t *TaskSpec) Value(key string) (string, bool) {
	for _, kv := range t.additional {
		if kv.key == key {
			return kv.value, true
		}
	}

	return "", false
}

// ParseArgs scans args (not including argv[0]):
//
//   - "-p TRACK" and "-f FILE" each count toward the "enough to solve"
//     threshold; Problem is derived from the first two characters of
//     Track, matching the source's track/problem split.
//   - "-a ARG" sets ArgAsString (relevant for DC/DS queries).
//   - "--formats" / "--problems" short-circuit immediately, ignoring any
//     remaining arguments.
//   - any other "-key value" pair is held as an additional option for the
//     caller to query via Value — never rejected as "unknown flag".
func ParseArgs(args []string) (*TaskSpec, Action, error) {
	task := &TaskSpec{Arg: -1}
	params := 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-p":
			v, err := nextValue(args, &i)
			if err != nil {
				return nil, 0, err
			}
			task.Track = v
			if len(v) >= 2 {
				task.Problem = v[:2]
			} else {
				task.Problem = v
			}
			params++

		case "-f":
			v, err := nextValue(args, &i)
			if err != nil {
				return nil, 0, err
			}
			task.File = v
			params++

		case "-a":
			v, err := nextValue(args, &i)
			if err != nil {
				return nil, 0, err
			}
			task.ArgAsString = v

		case "--formats":
			return nil, ActionPrintFormats, nil

		case "--problems":
			return nil, ActionPrintProblems, nil

		default:
			key := args[i]
			v, err := nextValue(args, &i)
			if err != nil {
				return nil, 0, err
			}
			task.additional = append(task.additional, additionalArg{key: key, value: v})
		}
	}

	if params < 2 {
		return nil, ActionPrintDescription, nil
	}

	return task, ActionSolve, nil
}

func nextValue(args []string, i *int) (string, error) {
	*i++
	if *i >= len(args) {
		return "", fmt.Errorf("%w: %s", ErrMissingValue, args[*i-1])
	}

	return args[*i], nil
}

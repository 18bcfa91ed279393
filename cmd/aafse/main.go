// Command aafse is a CLI front end for the SE-ST stable-extension search:
// it wires solverinfo's argument scanner, tgf's file parser, grounded's
// fixpoint, occ's odd-cycle collection, and sls's search loop together.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/argstable/aafse/aaf"
	"github.com/argstable/aafse/grounded"
	"github.com/argstable/aafse/labeling"
	"github.com/argstable/aafse/solverinfo"
	"github.com/argstable/aafse/sls"
	"github.com/argstable/aafse/tgf"
)

var info = solverinfo.Info{
	Description: "aafse v1.0 - stochastic local search for SE-ST (stable extension existence)",
	Formats:     "[tgf]",
	Problems:    "[SE-ST]",
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	task, action, err := solverinfo.ParseArgs(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("failed to parse arguments")
		fmt.Println("NO")
		return
	}

	switch action {
	case solverinfo.ActionPrintDescription:
		fmt.Println(info.Description)
		return
	case solverinfo.ActionPrintFormats:
		fmt.Println(info.Formats)
		return
	case solverinfo.ActionPrintProblems:
		fmt.Println(info.Problems)
		return
	}

	if task.Problem != "SE" {
		log.Error().Str("problem", task.Problem).Msg("unsupported problem; only SE-ST is implemented")
		fmt.Println("NO")
		return
	}

	f, err := os.Open(task.File)
	if err != nil {
		log.Error().Err(err).Str("file", task.File).Msg("failed to open input file")
		fmt.Println("NO")
		return
	}
	defer f.Close()

	a, err := tgf.Parse(f)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse input file")
		fmt.Println("NO")
		return
	}

	gr := grounded.Compute(a)
	opts := buildOptions(task, log)

	lab, found, err := sls.Solve(a, gr, opts...)
	if err != nil {
		log.Debug().Err(err).Msg("search proved unsatisfiable")
		fmt.Println("NO")
		return
	}
	if !found {
		fmt.Println("NO")
		return
	}

	fmt.Println(formatLabeling(a, lab))
}

func formatLabeling(a *aaf.AAF, lab *labeling.Labeling) string {
	s := "["
	first := true
	for i := 0; i < a.N(); i++ {
		if !lab.IsIn(i) {
			continue
		}
		if !first {
			s += ","
		}
		s += a.Name(i)
		first = false
	}

	return s + "]"
}

// buildOptions translates solverinfo's additional key/value pairs into
// sls.Option values, mirroring taas-haywood.c's init_* helpers. Malformed
// numeric values are logged and the corresponding option is skipped:
// configuration errors are not treated as fatal upstream, so this port
// chooses to warn and fall back to the default rather than abort.
func buildOptions(task *solverinfo.TaskSpec, log zerolog.Logger) []sls.Option {
	var opts []sls.Option

	if v, ok := task.Value("-rseed"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			opts = append(opts, sls.WithSeed(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -rseed, ignoring")
		}
	}
	if v, ok := task.Value("-maxit"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			opts = append(opts, sls.WithMaxIterations(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -maxit, ignoring")
		}
	}
	if v, ok := task.Value("-maxitdyn"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			opts = append(opts, sls.WithMaxIterationsDynamic(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -maxitdyn, ignoring")
		}
	}
	if v, ok := task.Value("-restart"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			opts = append(opts, sls.WithRestart(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -restart, ignoring")
		}
	}
	if v, ok := task.Value("-restartdyn"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			opts = append(opts, sls.WithRestartDynamic(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -restartdyn, ignoring")
		}
	}
	if v, ok := task.Value("-greedyprob"); ok {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			opts = append(opts, sls.WithGreedyProb(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -greedyprob, ignoring")
		}
	}
	if v, ok := task.Value("-greedyincall"); ok {
		opts = append(opts, sls.WithGreedyIncludeAll(v == "1"))
	}
	if v, ok := task.Value("-initout"); ok {
		opts = append(opts, sls.WithInitOut(v == "1"))
	}
	if v, ok := task.Value("-enforceout"); ok {
		opts = append(opts, sls.WithEnforceOut(v == "1"))
	}
	if v, ok := task.Value("-escapeoddcycles"); ok {
		opts = append(opts, sls.WithEscapeOddCycles(v == "1"))
	}
	if v, ok := task.Value("-randsel"); ok {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			opts = append(opts, sls.WithRandSel(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -randsel, ignoring")
		}
	}
	if v, ok := task.Value("-locminres"); ok {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			opts = append(opts, sls.WithLocMinRes(n))
		} else {
			log.Warn().Str("value", v).Msg("invalid -locminres, ignoring")
		}
	}

	return opts
}

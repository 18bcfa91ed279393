package tgf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/argstable/aafse/aaf"
)

// Parse reads a trivial-graph-format AAF description from r: blank lines
// are ignored throughout, lines before the "#" sentinel register
// arguments, lines after it register attacks ("attacker attacked", any run
// of whitespace between the two names).
func Parse(r io.Reader) (*aaf.AAF, error) {
	scanner := bufio.NewScanner(r)
	b := aaf.NewBuilder()

	sawSentinel := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "#" {
			sawSentinel = true
			continue
		}

		if !sawSentinel {
			b.AddArgument(line)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("tgf: line %d: malformed attack %q", lineNo, line)
		}

		attacker, ok := b.ID(fields[0])
		if !ok {
			return nil, fmt.Errorf("tgf: line %d: unknown argument %q", lineNo, fields[0])
		}
		attacked, ok := b.ID(fields[1])
		if !ok {
			return nil, fmt.Errorf("tgf: line %d: unknown argument %q", lineNo, fields[1])
		}

		b.AddAttack(attacker, attacked)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tgf: %w", err)
	}

	if !sawSentinel {
		return nil, ErrMissingSentinel
	}

	return b.Build(), nil
}

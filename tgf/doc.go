// Package tgf parses the trivial-graph-format input file: argument names
// (one per line), a lone "#" sentinel line, then attack lines of the form
// "attacker attacked".
//
// Ported from taas_inout.c's taas__readFile, which makes two passes over
// the file (first to count arguments, then to parse); this port makes a
// single pass with bufio.Scanner and an aaf.Builder, since the builder
// already grows its argument table incrementally.
package tgf

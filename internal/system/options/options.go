// Released under an MIT license. See LICENSE.

// Package options parses and holds the command-line configuration.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "lisp15 1.0"

//nolint:gochecknoglobals
var (
	depth       int
	files       []string
	heap        int
	interactive bool
	test        bool
	trace       bool
	usage       = `lisp15

Usage:
  lisp15 [-t] [-i] [--heap=CELLS] [--depth=N] [FILE...]
  lisp15 --test [-t] [--heap=CELLS] [--depth=N]
  lisp15 -h
  lisp15 -v

Arguments:
  FILE  Source file to evaluate. Patterns such as *.lisp are expanded.

Options:
  -t, --trace          Report garbage collection statistics.
  -i, --interactive    Invert the interactive decision.
  --test               Run the built-in self-check.
  --heap=CELLS         Number of cells in the heap. [default: 1000000]
  --depth=N            Maximum evaluation depth, 0 for no limit. [default: 100000]
  -h, --help           Display this help.
  -v, --version        Print the version.

If no FILE is given, forms are read from stdin. If stdin is a TTY, this is
done interactively with line editing. Otherwise, stdin is evaluated as a
batch. The -i option inverts this decision.
`
)

// Depth returns the maximum evaluation depth.
func Depth() int {
	return depth
}

// Files returns the source files (or patterns) to evaluate.
func Files() []string {
	return files
}

// Heap returns the number of cells in the heap.
func Heap() int {
	return heap
}

// Interactive returns true if the REPL should prompt and edit lines.
func Interactive() bool {
	return interactive
}

// Parse parses the command line. Problems with the command line are
// reported by printing the usage and exiting.
func Parse() {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	err := parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
}

// Test returns true if the self-check should be run.
func Test() bool {
	return test
}

// Trace returns true if garbage collection statistics should be reported.
func Trace() bool {
	return trace
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return err
	}

	heap, err = opts.Int("--heap")
	if err != nil || heap < 2 {
		return fmt.Errorf("invalid heap size: %v", opts["--heap"])
	}

	depth, err = opts.Int("--depth")
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth: %v", opts["--depth"])
	}

	test, _ = opts.Bool("--test")
	trace, _ = opts.Bool("--trace")

	files, _ = opts["FILE"].([]string)

	interactive = len(files) == 0 && !test && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}

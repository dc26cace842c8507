/*
Lisp15 is a small interpreter in the tradition of LISP 1.5. Programs are
built from symbols and pairs and evaluated with dynamically scoped
variables, the special forms quote, cond, lambda and label, and the
primitives car, cdr, cons, eq, atom and null:

	((label append (lambda (x y)
	   (cond ((null x) y)
	         (t (cons (car x) (append (cdr x) y))))))
	 (quote (a b)) (quote (c d)))

Cells live in a fixed-size heap that is reclaimed by a mark-sweep
collector. Run with -t to see collection statistics.

Lisp15 is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/lisp15/internal/engine"
	"github.com/michaelmacinnis/lisp15/internal/store"
	"github.com/michaelmacinnis/lisp15/internal/system/options"
	"github.com/michaelmacinnis/lisp15/internal/system/process"
	"github.com/michaelmacinnis/lisp15/internal/ui"
)

func main() {
	options.Parse()

	s := store.New(options.Heap())
	if options.Trace() {
		trace(s, os.Stderr)
	}

	e := engine.New(s, options.Depth())

	switch {
	case options.Test():
		failed, err := ui.Check(e, os.Stdout)
		if err != nil {
			fatal(err)
		}

		if failed > 0 {
			os.Exit(1)
		}

	case len(options.Files()) > 0:
		paths, err := expand(options.Files())
		if err != nil {
			fatal(err)
		}

		for _, path := range paths {
			if err := source(e, path); err != nil {
				fatal(err)
			}
		}

	case options.Interactive():
		process.Interactive()

		if err := ui.Run(e, os.Stdout, os.Stderr); err != nil {
			fatal(err)
		}

	default:
		if err := ui.Batch(e, "stdin", os.Stdin, os.Stdout); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// Collection statistics are preceded by the size of the heap.
func trace(s *store.T, w io.Writer) {
	fmt.Fprintf(w, "[GC] Capacity: %d, Free: %d\n", s.Capacity(), s.Free())
	s.SetTrace(w)
}

func source(e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	return ui.Batch(e, path, f, os.Stdout)
}

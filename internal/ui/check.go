// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/engine/boot"
	"github.com/michaelmacinnis/lisp15/internal/printer"
	"github.com/michaelmacinnis/lisp15/internal/reader"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Check runs the built-in self-check and reports each result to out.
// It returns the number of checks that failed.
func Check(e Evaluator, out io.Writer) (int, error) {
	return check(e, "check", boot.Checks(), out)
}

func check(e Evaluator, name, script string, out io.Writer) (int, error) {
	s := e.Store()
	r := reader.New(s, name)

	passed, failed := 0, 0

	err := r.Scan(script, func(c store.Cell) error {
		if !s.IsPair(c) || !s.IsPair(s.Rest(c)) || s.Rest(s.Rest(c)) != s.Nil() {
			return condition.New(
				condition.Syntax,
				"check must be an expression and its value: %s", printer.String(s, c),
			)
		}

		expr := s.First(c)
		expected := printer.String(s, s.First(s.Rest(c)))

		v, err := e.Evaluate(expr)

		switch {
		case err != nil:
			failed++
			_, err = fmt.Fprintf(out, "FAIL %s: %v\n", printer.String(s, expr), err)
		case printer.String(s, v) != expected:
			failed++
			_, err = fmt.Fprintf(out, "FAIL %s: got %s, expected %s\n",
				printer.String(s, expr), printer.String(s, v), expected)
		default:
			passed++
			_, err = fmt.Fprintf(out, "ok   %s\n", printer.String(s, expr))
		}

		return err
	})
	if err == nil {
		err = r.Close()
	}

	if err != nil {
		return failed, err
	}

	_, err = fmt.Fprintf(out, "%d passed, %d failed\n", passed, failed)

	return failed, err
}

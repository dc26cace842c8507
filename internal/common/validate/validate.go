// Released under an MIT license. See LICENSE.

// Package validate checks argument lists before they are used.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/common/type/list"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Fixed returns the elements of the argument list actual if it is a proper
// list of exactly n elements. Otherwise it returns an arity condition
// that names the operation label.
func Fixed(s *store.T, label string, actual store.Cell, n int) ([]store.Cell, error) {
	expected, ok := list.Elements(s, actual)
	if !ok {
		return nil, condition.New(
			condition.Arity,
			"%s expects a proper argument list", label,
		)
	}

	if len(expected) != n {
		return nil, condition.New(
			condition.Arity,
			"%s expects %s, passed %d",
			label, Count(n, "argument", "s"), len(expected),
		)
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

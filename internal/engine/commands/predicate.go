// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp15/internal/common/validate"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Symbols are interned so identity is enough for every kind of cell.
func eq(s *store.T, args store.Cell) (store.Cell, error) {
	v, err := validate.Fixed(s, "eq", args, 2)
	if err != nil {
		return store.Null, err
	}

	return s.Bool(v[0] == v[1]), nil
}

func atom(s *store.T, args store.Cell) (store.Cell, error) {
	v, err := validate.Fixed(s, "atom", args, 1)
	if err != nil {
		return store.Null, err
	}

	return s.Bool(s.IsSymbol(v[0])), nil
}

func null(s *store.T, args store.Cell) (store.Cell, error) {
	v, err := validate.Fixed(s, "null", args, 1)
	if err != nil {
		return store.Null, err
	}

	return s.Bool(v[0] == s.Nil()), nil
}

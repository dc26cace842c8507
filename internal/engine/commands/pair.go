// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/common/validate"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

func car(s *store.T, args store.Cell) (store.Cell, error) {
	v, err := validate.Fixed(s, "car", args, 1)
	if err != nil {
		return store.Null, err
	}

	if !s.IsPair(v[0]) {
		return store.Null, condition.New(condition.Type, "car expects a list")
	}

	return s.First(v[0]), nil
}

func cdr(s *store.T, args store.Cell) (store.Cell, error) {
	v, err := validate.Fixed(s, "cdr", args, 1)
	if err != nil {
		return store.Null, err
	}

	if !s.IsPair(v[0]) {
		return store.Null, condition.New(condition.Type, "cdr expects a list")
	}

	return s.Rest(v[0]), nil
}

func cons(s *store.T, args store.Cell) (store.Cell, error) {
	v, err := validate.Fixed(s, "cons", args, 2)
	if err != nil {
		return store.Null, err
	}

	return s.Cons(v[0], v[1]), nil
}

// Released under an MIT license. See LICENSE.

// Package env provides dynamically scoped environments.
//
// An environment is a list of (key . value) pairs. New bindings are added
// to the front so the innermost binding for a key is found first. A binding
// made by a caller is visible to everything it calls.
package env

import (
	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Extend returns a new environment with key bound to value ahead of e.
// The environment e is not modified.
func Extend(s *store.T, e, key, value store.Cell) store.Cell {
	m := s.Mark()
	defer s.Unwind(m)

	s.Push(e)

	return s.Cons(s.Cons(key, value), e)
}

// Lookup returns the value of the innermost binding for k in e.
// The symbols nil and t always evaluate to themselves.
func Lookup(s *store.T, k, e store.Cell) (store.Cell, error) {
	if k == s.Nil() || k == s.True() {
		return k, nil
	}

	for ; s.IsPair(e); e = s.Rest(e) {
		binding := s.First(e)
		if s.IsPair(binding) && s.First(binding) == k {
			return s.Rest(binding), nil
		}
	}

	return store.Null, condition.New(
		condition.UnboundSymbol, "Unbound symbol: %s", name(s, k),
	)
}

func name(s *store.T, c store.Cell) string {
	if s.IsSymbol(c) {
		return s.Name(c)
	}

	return "?"
}

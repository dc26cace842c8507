// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/common/type/list"
	"github.com/michaelmacinnis/lisp15/internal/engine/env"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Apply applies fn to the evaluated arguments args. The function fn is
// either a symbol or a lambda or label form. Symbols that do not name a
// primitive are looked up in scope.
func (e *engine) Apply(fn, args, scope store.Cell) (store.Cell, error) {
	s := e.store

	leave, err := e.enter()
	if err != nil {
		return store.Null, err
	}
	defer leave()

	m := s.Mark()
	defer s.Unwind(m)

	s.Push(fn, args, scope)

	if s.IsSymbol(fn) {
		if f, ok := e.functions[fn]; ok {
			return f(s, args)
		}

		bound, err := env.Lookup(s, fn, scope)
		if err != nil {
			return store.Null, condition.New(
				condition.UndefinedFunction, "Undefined function: %s", s.Name(fn),
			)
		}

		if bound == fn {
			return store.Null, condition.New(
				condition.InvalidFunction, "Invalid function to apply: %s", s.Name(fn),
			)
		}

		return e.Apply(bound, args, scope)
	}

	if s.IsPair(fn) {
		switch s.First(fn) {
		case e.lambda:
			return e.lambdaForm(fn, args, scope)
		case e.label:
			return e.labelForm(fn, args, scope)
		}
	}

	return store.Null, condition.New(condition.InvalidFunction, "Invalid function to apply")
}

// (label name (lambda params body))
func (e *engine) labelForm(fn, args, scope store.Cell) (store.Cell, error) {
	s := e.store

	v, ok := e.elements(fn, 3)
	if !ok || !s.IsSymbol(v[1]) || !s.IsPair(v[2]) || s.First(v[2]) != e.lambda {
		return store.Null, condition.New(condition.InvalidFunction, "label expects a name and a lambda")
	}

	return e.Apply(v[2], args, env.Extend(s, scope, v[1], v[2]))
}

// (lambda params body)
func (e *engine) lambdaForm(fn, args, scope store.Cell) (store.Cell, error) {
	s := e.store

	v, ok := e.elements(fn, 3)
	if !ok {
		return store.Null, condition.New(condition.InvalidFunction, "lambda expects parameters and a body")
	}

	params, body := v[1], v[2]

	m := s.Mark()
	defer s.Unwind(m)

	p, a := params, args
	for s.IsPair(p) && s.IsPair(a) {
		k := s.First(p)
		if !s.IsSymbol(k) {
			return store.Null, condition.New(condition.InvalidFunction, "lambda parameters must be symbols")
		}

		scope = env.Extend(s, scope, k, s.First(a))
		s.Push(scope)

		p = s.Rest(p)
		a = s.Rest(a)
	}

	if p != s.Nil() && !s.IsPair(p) {
		return store.Null, condition.New(condition.InvalidFunction, "lambda parameters must be a list")
	}

	if p != s.Nil() || a != s.Nil() {
		return store.Null, condition.New(condition.Arity, "Arity mismatch")
	}

	return e.Eval(body, scope)
}

// The elements of the proper list c, if it has exactly n of them.
func (e *engine) elements(c store.Cell, n int) ([]store.Cell, bool) {
	v, ok := list.Elements(e.store, c)

	return v, ok && len(v) == n
}

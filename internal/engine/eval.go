// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/engine/env"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Eval evaluates expr in the environment scope.
func (e *engine) Eval(expr, scope store.Cell) (store.Cell, error) {
	s := e.store

	if s.IsSymbol(expr) {
		return env.Lookup(s, expr, scope)
	}

	if !s.IsPair(expr) {
		return store.Null, condition.New(condition.Type, "cannot evaluate cell %d", expr)
	}

	leave, err := e.enter()
	if err != nil {
		return store.Null, err
	}
	defer leave()

	m := s.Mark()
	defer s.Unwind(m)

	s.Push(expr, scope)

	head := s.First(expr)
	operands := s.Rest(expr)

	switch head {
	case e.quote:
		if !s.IsPair(operands) || s.Rest(operands) != s.Nil() {
			return store.Null, condition.New(condition.Arity, "quote expects 1 argument")
		}

		return s.First(operands), nil

	case e.cond:
		return e.evcon(operands, scope)
	}

	args, err := e.evlis(operands, scope)
	if err != nil {
		return store.Null, err
	}

	return e.Apply(head, args, scope)
}

func (e *engine) enter() (func(), error) {
	if e.limit > 0 && e.depth >= e.limit {
		return nil, condition.New(
			condition.Depth, "maximum recursion depth (%d) exceeded", e.limit,
		)
	}

	e.depth++

	return func() { e.depth-- }, nil
}

// The first clause whose predicate is not nil supplies the result.
func (e *engine) evcon(clauses, scope store.Cell) (store.Cell, error) {
	s := e.store

	for ; s.IsPair(clauses); clauses = s.Rest(clauses) {
		clause := s.First(clauses)
		if !s.IsPair(clause) {
			return store.Null, condition.New(condition.Type, "cond clause must be a list")
		}

		rest := s.Rest(clause)
		if !s.IsPair(rest) || s.Rest(rest) != s.Nil() {
			return store.Null, condition.New(condition.Arity, "cond clause expects 2 elements")
		}

		p, err := e.Eval(s.First(clause), scope)
		if err != nil {
			return store.Null, err
		}

		if p != s.Nil() {
			return e.Eval(s.First(rest), scope)
		}
	}

	if clauses != s.Nil() {
		return store.Null, condition.New(condition.Type, "cond expects a list of clauses")
	}

	return s.Nil(), nil
}

// Operands are evaluated left to right.
func (e *engine) evlis(operands, scope store.Cell) (store.Cell, error) {
	s := e.store

	if operands == s.Nil() {
		return operands, nil
	}

	if !s.IsPair(operands) {
		return store.Null, condition.New(condition.Type, "expected a list of operands")
	}

	head, err := e.Eval(s.First(operands), scope)
	if err != nil {
		return store.Null, err
	}

	m := s.Mark()
	defer s.Unwind(m)

	s.Push(head)

	tail, err := e.evlis(s.Rest(operands), scope)
	if err != nil {
		return store.Null, err
	}

	return s.Cons(head, tail), nil
}

// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed code.
package engine

import (
	"github.com/michaelmacinnis/lisp15/internal/engine/commands"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// DefaultDepth is the default limit on nested evaluations.
const DefaultDepth = 100000

// T (engine) is a facade in front of the evaluator and applier.
type T struct {
	store *store.T

	functions map[store.Cell]commands.Function

	cond   store.Cell
	label  store.Cell
	lambda store.Cell
	quote  store.Cell

	depth int // Current nesting.
	limit int // Maximum nesting. Zero for no limit.
}

type engine = T

// New creates a new engine that allocates from s.
// A limit of zero disables the recursion guard.
func New(s *store.T, limit int) *engine {
	e := &engine{
		store:     s,
		functions: map[store.Cell]commands.Function{},
		cond:      s.Intern("cond"),
		label:     s.Intern("label"),
		lambda:    s.Intern("lambda"),
		quote:     s.Intern("quote"),
		limit:     limit,
	}

	for k, v := range commands.Functions() {
		e.functions[s.Intern(k)] = v
	}

	return e
}

// Evaluate evaluates the top-level form c in an empty environment.
func (e *engine) Evaluate(c store.Cell) (store.Cell, error) {
	e.depth = 0

	return e.Eval(c, e.store.Nil())
}

// Store returns the store the engine allocates from.
func (e *engine) Store() *store.T {
	return e.store
}

// Released under an MIT license. See LICENSE.

// Package reader converts text into cells.
package reader

import (
	"github.com/michaelmacinnis/lisp15/internal/common/struct/token"
	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp15/internal/reader/parser"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// T (reader) encapsulates the lexer and parser.
// Text can be supplied a line at a time. A form that spans several
// lines is emitted once the line that completes it is scanned.
type T struct {
	lexer   *lexer.T
	pending []*token.T
	store   *store.T
}

type reader = T

// New creates a new reader for name that builds cells in s.
func New(s *store.T, name string) *reader {
	return &reader{
		lexer: lexer.New(name),
		store: s,
	}
}

// Close reports an incomplete condition if a form was left unfinished.
func (r *reader) Close() error {
	if !r.Pending() {
		return nil
	}

	r.Reset()

	return condition.New(condition.Incomplete, "Unexpected EOF")
}

// Pending returns true if the text scanned so far ends inside a form.
func (r *reader) Pending() bool {
	return len(r.pending) > 0
}

// Reset discards an unfinished form.
func (r *reader) Reset() {
	r.pending = nil
}

// Scan reads text and calls emit with each complete form. The form is
// protected from collection until emit returns. The tokens of a trailing
// unfinished form are kept for the next call to Scan.
//
// Syntax errors and errors returned by emit discard any remaining input.
func (r *reader) Scan(text string, emit func(store.Cell) error) error {
	r.lexer.Scan(text)

	for t := r.lexer.Token(); t != nil; t = r.lexer.Token() {
		r.pending = append(r.pending, t)
	}

	rest, err := parser.New(r.store, emit).Parse(r.pending)

	r.pending = rest

	if condition.Is(err, condition.Incomplete) {
		return nil
	}

	return err
}

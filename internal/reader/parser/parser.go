// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for symbolic expressions.
package parser

import (
	"github.com/michaelmacinnis/lisp15/internal/common/struct/token"
	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// T holds the state of the parser.
type T struct {
	emit   func(store.Cell) error // Function to call with each parsed form.
	index  int                    // Index of the lookahead token.
	store  *store.T               // Store used to build forms.
	tokens []*token.T             // Tokens being parsed.
}

type parser = T

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(s *store.T, emit func(store.Cell) error) *parser {
	return &parser{emit: emit, store: s}
}

// Parse emits each complete form in tokens. If tokens end inside a form,
// Parse returns the tokens of that form and an incomplete condition.
// An error returned by emit stops parsing and is returned as is.
func (p *parser) Parse(tokens []*token.T) ([]*token.T, error) {
	p.tokens = tokens
	p.index = 0

	defer func() {
		p.tokens = nil
	}()

	for p.peek() != nil {
		start := p.index

		err := p.one()
		if condition.Is(err, condition.Incomplete) {
			return tokens[start:], err
		}

		if err != nil {
			return nil, err
		}
	}

	return nil, nil
}

func (p *parser) one() error {
	s := p.store

	m := s.Mark()
	defer s.Unwind(m)

	c, err := p.form()
	if err != nil {
		return err
	}

	// The form stays rooted until the consumer is done with it.
	s.Push(c)

	return p.emit(c)
}

func (p *parser) next() *token.T {
	t := p.peek()
	if t != nil {
		p.index++
	}

	return t
}

func (p *parser) peek() *token.T {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}

	return nil
}

func incomplete() error {
	return condition.New(condition.Incomplete, "Unexpected EOF")
}

func unexpected(t *token.T) error {
	return condition.New(
		condition.Syntax,
		"%s: unexpected '%s'", t.Source().String(), t.Value(),
	)
}

// T state functions.

// <form> ::= Symbol | <list> .
func (p *parser) form() (store.Cell, error) {
	t := p.next()

	switch {
	case t == nil:
		return store.Null, incomplete()
	case t.Is('('):
		return p.list()
	case t.Is(token.Symbol):
		return p.store.Intern(t.Value()), nil
	}

	return store.Null, unexpected(t)
}

// <list> ::= '(' (<form>+ ('.' <form>)?)? ')' .
func (p *parser) list() (store.Cell, error) {
	s := p.store

	m := s.Mark()
	defer s.Unwind(m)

	items := []store.Cell{}
	tail := s.Nil()

	for {
		t := p.peek()

		if t == nil {
			return store.Null, incomplete()
		}

		if t.Is(')') {
			p.next()

			break
		}

		if t.Is('.') {
			if len(items) == 0 {
				return store.Null, unexpected(t)
			}

			p.next()

			c, err := p.form()
			if err != nil {
				return store.Null, err
			}

			tail = c
			s.Push(tail)

			t = p.next()
			if t == nil {
				return store.Null, incomplete()
			}

			if !t.Is(')') {
				return store.Null, condition.New(
					condition.Syntax,
					"%s: expected ')' after dotted pair, got '%s'",
					t.Source().String(), t.Value(),
				)
			}

			break
		}

		c, err := p.form()
		if err != nil {
			return store.Null, err
		}

		s.Push(c)
		items = append(items, c)
	}

	for i := len(items) - 1; i >= 0; i-- {
		tail = s.Cons(items[i], tail)
	}

	return tail, nil
}

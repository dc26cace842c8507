package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/lisp15/internal/store"
)

func TestSymbols(t *testing.T) {
	s := store.New(64)

	assert.Equal(t, "nil", String(s, s.Nil()))
	assert.Equal(t, "t", String(s, s.True()))
	assert.Equal(t, "foo", String(s, s.Intern("foo")))
	assert.Equal(t, "?", String(s, store.Null))
}

func TestLists(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")
	b := s.Intern("b")
	c := s.Intern("c")

	l1 := s.Cons(a, s.Nil())
	assert.Equal(t, "(a)", String(s, l1))

	l2 := s.Cons(b, l1)
	assert.Equal(t, "(b a)", String(s, l2))

	l3 := s.Cons(l2, s.Cons(c, s.Nil()))
	assert.Equal(t, "((b a) c)", String(s, l3))

	assert.Equal(t, "(nil)", String(s, s.Cons(s.Nil(), s.Nil())))
}

func TestDottedPairs(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")
	b := s.Intern("b")
	c := s.Intern("c")

	assert.Equal(t, "(a . b)", String(s, s.Cons(a, b)))
	assert.Equal(t, "(a b . c)", String(s, s.Cons(a, s.Cons(b, c))))
	assert.Equal(t, "((a . b) . c)", String(s, s.Cons(s.Cons(a, b), c)))
}

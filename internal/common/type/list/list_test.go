package list

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/lisp15/internal/store"
)

func TestNew(t *testing.T) {
	s := store.New(64)

	assert.Equal(t, s.Nil(), New(s))

	a := s.Intern("a")
	b := s.Intern("b")

	l := New(s, a, b)
	assert.Equal(t, a, s.First(l))
	assert.Equal(t, b, s.First(s.Rest(l)))
	assert.Equal(t, s.Nil(), s.Rest(s.Rest(l)))
}

func TestNewProtectsElements(t *testing.T) {
	s := store.New(6)

	a := s.Intern("a")
	inner := s.Cons(a, s.Nil()) // Only referenced from here.

	_ = s.Cons(a, a)

	// Building the outer list needs two cells and forces a collection.
	l := New(s, inner, a)
	assert.Equal(t, inner, s.First(l))
	assert.Equal(t, a, s.First(inner))
}

func TestElements(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")
	b := s.Intern("b")

	v, ok := Elements(s, New(s, a, b))
	assert.True(t, ok)
	assert.Equal(t, []store.Cell{a, b}, v)

	v, ok = Elements(s, s.Nil())
	assert.True(t, ok)
	assert.Empty(t, v)

	v, ok = Elements(s, s.Cons(a, b))
	assert.False(t, ok)
	assert.Equal(t, []store.Cell{a}, v)
}

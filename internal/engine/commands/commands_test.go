package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/common/type/list"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

func call(t *testing.T, s *store.T, name string, args ...store.Cell) (store.Cell, error) {
	t.Helper()

	f, ok := Functions()[name]
	require.True(t, ok, "no primitive named %s", name)

	return f(s, list.New(s, args...))
}

func TestFunctions(t *testing.T) {
	names := []string{}
	for k := range Functions() {
		names = append(names, k)
	}

	assert.ElementsMatch(t, []string{"atom", "car", "cdr", "cons", "eq", "null"}, names)
}

func TestCarCdr(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")
	b := s.Intern("b")
	ab := list.New(s, a, b)

	v, err := call(t, s, "car", ab)
	require.NoError(t, err)
	assert.Equal(t, a, v)

	v, err = call(t, s, "cdr", ab)
	require.NoError(t, err)
	assert.Equal(t, b, s.First(v))
	assert.Equal(t, s.Nil(), s.Rest(v))
}

func TestCarArity(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")
	ab := list.New(s, a, a)

	for _, args := range [][]store.Cell{{}, {ab, ab}} {
		_, err := call(t, s, "car", args...)
		require.Error(t, err)
		assert.True(t, condition.Is(err, condition.Arity), err.Error())
	}
}

func TestCarCdrType(t *testing.T) {
	s := store.New(64)

	for _, name := range []string{"car", "cdr"} {
		_, err := call(t, s, name, s.Intern("a"))
		require.Error(t, err)
		assert.True(t, condition.Is(err, condition.Type), err.Error())

		_, err = call(t, s, name, s.Nil())
		require.Error(t, err)
		assert.True(t, condition.Is(err, condition.Type), err.Error())
	}
}

func TestCons(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")
	b := s.Intern("b")

	v, err := call(t, s, "cons", a, b)
	require.NoError(t, err)
	assert.Equal(t, a, s.First(v))
	assert.Equal(t, b, s.Rest(v))

	_, err = call(t, s, "cons", a)
	assert.True(t, condition.Is(err, condition.Arity))
}

func TestEq(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")

	v, err := call(t, s, "eq", a, s.Intern("a"))
	require.NoError(t, err)
	assert.Equal(t, s.True(), v)

	v, err = call(t, s, "eq", a, s.Intern("b"))
	require.NoError(t, err)
	assert.Equal(t, s.Nil(), v)

	// Equal contents are not enough.
	v, err = call(t, s, "eq", list.New(s, a), list.New(s, a))
	require.NoError(t, err)
	assert.Equal(t, s.Nil(), v)

	shared := list.New(s, a)
	v, err = call(t, s, "eq", shared, shared)
	require.NoError(t, err)
	assert.Equal(t, s.True(), v)

	_, err = call(t, s, "eq", a)
	assert.True(t, condition.Is(err, condition.Arity))
}

func TestAtomNull(t *testing.T) {
	s := store.New(64)

	a := s.Intern("a")

	for _, tc := range []struct {
		name   string
		arg    store.Cell
		expect store.Cell
	}{
		{"atom", a, s.True()},
		{"atom", s.Nil(), s.True()},
		{"atom", list.New(s, a), s.Nil()},
		{"null", s.Nil(), s.True()},
		{"null", a, s.Nil()},
		{"null", list.New(s, a), s.Nil()},
	} {
		v, err := call(t, s, tc.name, tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, v, tc.name)
	}

	_, err := call(t, s, "null")
	assert.True(t, condition.Is(err, condition.Arity))
}

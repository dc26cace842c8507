package reader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/lisp15/internal/common/type/condition"
	"github.com/michaelmacinnis/lisp15/internal/printer"
	"github.com/michaelmacinnis/lisp15/internal/store"
)

func collect(s *store.T, forms *[]string) func(store.Cell) error {
	return func(c store.Cell) error {
		*forms = append(*forms, printer.String(s, c))
		return nil
	}
}

func TestMultipleForms(t *testing.T) {
	s := store.New(256)
	r := New(s, "test")

	forms := []string{}
	require.NoError(t, r.Scan("a (b c) (d . e)\n", collect(s, &forms)))
	assert.Equal(t, []string{"a", "(b c)", "(d . e)"}, forms)
	assert.False(t, r.Pending())
}

func TestContinuation(t *testing.T) {
	s := store.New(256)
	r := New(s, "test")

	forms := []string{}
	require.NoError(t, r.Scan("(cons (quote a)\n", collect(s, &forms)))
	assert.Empty(t, forms)
	assert.True(t, r.Pending())

	require.NoError(t, r.Scan("  (quote b)) (x\n", collect(s, &forms)))
	assert.Equal(t, []string{"(cons (quote a) (quote b))"}, forms)
	assert.True(t, r.Pending())

	err := r.Close()
	require.Error(t, err)
	assert.True(t, condition.Is(err, condition.Incomplete))
	assert.False(t, r.Pending())
}

func TestReset(t *testing.T) {
	s := store.New(256)
	r := New(s, "test")

	forms := []string{}
	require.NoError(t, r.Scan("(a b\n", collect(s, &forms)))
	require.True(t, r.Pending())

	r.Reset()

	require.NoError(t, r.Scan("(c)\n", collect(s, &forms)))
	assert.Equal(t, []string{"(c)"}, forms)
	assert.NoError(t, r.Close())
}

func TestSyntaxErrorDiscardsInput(t *testing.T) {
	s := store.New(256)
	r := New(s, "test")

	forms := []string{}
	err := r.Scan("a ) (b\n", collect(s, &forms))
	require.Error(t, err)
	assert.True(t, condition.Is(err, condition.Syntax))
	assert.Equal(t, "test:1:3: unexpected ')'", err.Error())
	assert.Equal(t, []string{"a"}, forms)
	assert.False(t, r.Pending())
}

func TestEmitError(t *testing.T) {
	s := store.New(256)
	r := New(s, "test")

	stop := errors.New("stop")
	n := 0

	err := r.Scan("a b c\n", func(store.Cell) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
	assert.False(t, r.Pending())
}

func TestFormsAreRooted(t *testing.T) {
	s := store.New(16)
	r := New(s, "test")

	forms := []string{}
	err := r.Scan("(a b c)\n", func(c store.Cell) error {
		s.Collect()
		forms = append(forms, printer.String(s, c))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"(a b c)"}, forms)
}

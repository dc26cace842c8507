package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/lisp15/internal/store"
)

func TestExpand(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.lisp", "b.lisp", "c.txt", ".hidden.lisp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	prefix := dir + string(filepath.Separator)

	paths, err := expand([]string{prefix + "*.lisp", "plain.lisp"})
	require.NoError(t, err)
	assert.Equal(t, []string{prefix + "a.lisp", prefix + "b.lisp", "plain.lisp"}, paths)

	paths, err = expand([]string{prefix + "?.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{prefix + "c.txt"}, paths)

	_, err = expand([]string{prefix + "*.go"})
	assert.EqualError(t, err, "no matches found: "+prefix+"*.go")
}

func TestTrace(t *testing.T) {
	var out bytes.Buffer

	s := store.New(8)
	trace(s, &out)

	assert.Equal(t, "[GC] Capacity: 8, Free: 6\n", out.String())

	out.Reset()
	s.Collect()

	assert.Equal(t, "[GC] Reclaimed: 6, In use: 2\n", out.String())
}

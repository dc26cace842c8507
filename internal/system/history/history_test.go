package history

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())

	// Nothing saved yet.
	require.NoError(t, Load(func(io.Reader) (int, error) {
		t.Fatal("read called without a history file")
		return 0, nil
	}))

	require.NoError(t, Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(quote a)\n")
	}))

	var buf bytes.Buffer
	require.NoError(t, Load(func(r io.Reader) (int, error) {
		n, err := buf.ReadFrom(r)
		return int(n), err
	}))
	assert.Equal(t, "(quote a)\n", buf.String())
}

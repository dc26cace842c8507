// Released under an MIT license. See LICENSE.

// Package printer renders cells as text that the reader can read back.
package printer

import (
	"strings"

	"github.com/michaelmacinnis/lisp15/internal/store"
)

// String returns the text representation of the cell c.
// Proper lists print as (a b c). An improper tail prints as (a b . c).
func String(s *store.T, c store.Cell) string {
	var b strings.Builder

	write(&b, s, c)

	return b.String()
}

func write(b *strings.Builder, s *store.T, c store.Cell) {
	if s.IsSymbol(c) {
		b.WriteString(s.Name(c))

		return
	}

	if !s.IsPair(c) {
		b.WriteString("?")

		return
	}

	b.WriteByte('(')

	for {
		write(b, s, s.First(c))

		c = s.Rest(c)
		if c == s.Nil() {
			break
		}

		if !s.IsPair(c) {
			b.WriteString(" . ")
			write(b, s, c)

			break
		}

		b.WriteByte(' ')
	}

	b.WriteByte(')')
}

// Released under an MIT license. See LICENSE.

// Package commands provides the primitive functions. Each primitive takes
// a list of evaluated arguments and checks it before doing anything else.
package commands

import (
	"github.com/michaelmacinnis/lisp15/internal/store"
)

// Function is the signature shared by all primitives.
type Function func(s *store.T, args store.Cell) (store.Cell, error)

// Functions returns the primitives by name.
func Functions() map[string]Function {
	return map[string]Function{
		"atom": atom,
		"car":  car,
		"cdr":  cdr,
		"cons": cons,
		"eq":   eq,
		"null": null,
	}
}

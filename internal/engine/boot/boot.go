// Released under an MIT license. See LICENSE.

// Package boot provides the self-check run by the test-execution mode.
package boot

import _ "embed" // Blank import required by embed.

//go:embed check.lisp
var checks string //nolint:gochecknoglobals

// Checks returns the self-check script. Each top-level form is a list
// of an expression and the value it should evaluate to.
func Checks() string {
	return checks
}

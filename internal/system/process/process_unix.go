// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

// Package process adjusts how the interpreter process handles signals.
package process

import (
	"os/signal"

	"golang.org/x/sys/unix"
)

// Interactive ignores the signals that would otherwise stop or kill an
// interactive session from the terminal. Interrupts are left to the line editor.
func Interactive() {
	signal.Ignore(unix.SIGQUIT, unix.SIGTTIN, unix.SIGTTOU)
}

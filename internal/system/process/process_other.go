// Released under an MIT license. See LICENSE.

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

// Package process adjusts how the interpreter process handles signals.
package process

// Interactive does nothing on this platform.
func Interactive() {}

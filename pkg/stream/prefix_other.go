//go:build !windows

package stream

// serialPrefix marks a spec as a serial endpoint on this platform.
const serialPrefix = "/dev/tty"

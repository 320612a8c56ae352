//go:build !windows

package repl

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

var signalsToHandle = []os.Signal{syscall.SIGINT, syscall.SIGHUP}

func signalName(sig os.Signal) string {
	return unix.SignalName(sig.(syscall.Signal))
}

func handleSignal(sig os.Signal, stderr *os.File) {
	switch sig {
	case syscall.SIGHUP:
		os.Exit(0)
	case syscall.SIGINT:
		// Abandon the line being typed; the blocked read picks up the next
		// line as usual.
		fmt.Fprintln(stderr)
	}
}

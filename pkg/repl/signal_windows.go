//go:build windows

package repl

import (
	"fmt"
	"os"
)

var signalsToHandle = []os.Signal{os.Interrupt}

func signalName(sig os.Signal) string {
	return sig.String()
}

func handleSignal(sig os.Signal, stderr *os.File) {
	if sig == os.Interrupt {
		fmt.Fprintln(stderr)
	}
}

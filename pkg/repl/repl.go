// Package repl is the entry point for the interactive interface of the
// calculator. It owns the read-process-print loop, the in-session history,
// and the rc file.
package repl

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/logutil"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/prog"
)

var logger = logutil.GetLogger("[repl] ")

// Program is the calculator subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("argument required to -c")
	}
	if len(args) > 1 {
		return prog.BadUsage("at most one script may be given")
	}
	if len(args) > 0 {
		exit := Script(fds, args, &ScriptConfig{Cmd: f.CodeInArg})
		return prog.Exit(exit)
	}

	rc := ""
	if !f.NoRc {
		if f.RC != "" {
			rc = f.RC
		} else {
			var err error
			rc, err = RCPath()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
	}

	cleanup := initSignal(fds)
	defer cleanup()
	Interact(fds, &InteractConfig{RC: rc})
	return nil
}

const sigsChanBufferSize = 32

// Starts a goroutine that responds to terminal signals for the duration of
// the interactive session. The returned function stops it.
func initSignal(fds [3]*os.File) func() {
	sigs := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigs, signalsToHandle...)
	go func() {
		for sig := range sigs {
			logger.Println("received signal", signalName(sig))
			handleSignal(sig, fds[2])
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(sigs)
	}
}

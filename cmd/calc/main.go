// Calc is an interactive command-line calculator. It reads commands of the
// form "<operation> <number> <number>", evaluates them, and keeps a history
// of the results for the duration of the session. It is suitable for both
// interactive use and scripting.
package main

import (
	"os"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/buildinfo"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/prog"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/repl"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, repl.Program{})))
}

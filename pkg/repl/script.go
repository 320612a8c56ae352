package repl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ScriptConfig keeps configuration for the script mode.
type ScriptConfig struct {
	// Cmd makes the first argument be interpreted as commands to execute,
	// instead of the name of a file to read them from.
	Cmd bool
}

// Script executes calculator commands non-interactively, one per line, with
// the same per-line machinery as the interactive mode. It returns the exit
// status for the process: 0 if every command was processed cleanly, 2
// otherwise.
func Script(fds [3]*os.File, args []string, cfg *ScriptConfig) int {
	arg0 := args[0]

	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	logger.Println("executing script", name)
	s := newSession(defaultConfig(), fds[1], fds[2])
	for _, line := range strings.Split(code, "\n") {
		if s.submit(line) {
			break
		}
	}
	if s.failed {
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// This type is the interface that a line editor has to satisfy, so that a
// richer editor can be swapped in without touching the session loop.
type editor interface {
	ReadCode() (string, error)
}

type minEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// newMinEditor makes a basic line editor that reads from in and writes the
// prompt, if any, to out before each read.
func newMinEditor(in, out *os.File, prompt string) *minEditor {
	return &minEditor{bufio.NewReader(in), out, prompt}
}

func (ed *minEditor) ReadCode() (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	return chopLineEnding(line), err
}

// chopLineEnding removes a trailing "\r\n" or "\n".
func chopLineEnding(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}

package repl

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/calc"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/calc/errs"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	// RC is the path of the rc file. An empty path means no rc file; a
	// nonexistent file is not an error.
	RC string
}

// Interact runs an interactive calculator session. It reads commands line by
// line from fds[0] and processes each one fully - parse, evaluate, record,
// print - before reading the next. The session ends on end-of-input or an
// exit command.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	config := loadConfig(cfg.RC, fds[2])
	s := newSession(config, fds[1], fds[2])

	// Only a terminal gets a prompt and a banner; piped input is processed
	// silently, like a script.
	prompt := ""
	if sys.IsATTY(fds[0]) {
		prompt = config.Prompt
		fmt.Fprintln(fds[1], "calc - type 'help' for instructions, 'exit' to quit")
	}
	var ed editor = newMinEditor(fds[0], fds[2], prompt)

	logger.Println("session started")
	for {
		line, err := ed.ReadCode()
		if line != "" && s.submit(line) {
			break
		}
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(fds[2], "cannot read input:", err)
			}
			break
		}
	}
	logger.Printf("session ended with %d recorded calculations", s.history.Len())
}

// A session holds the state of one read-process-print loop: where results
// and diagnostics go, the display settings, and the history. It is used by
// exactly one loop; nothing else reads or mutates it.
type session struct {
	out, err  io.Writer
	precision int
	history   *History
	// failed records whether any submitted command was diagnosed. Script
	// mode uses it to decide the exit status.
	failed bool
}

func newSession(config Config, out, err io.Writer) *session {
	return &session{
		out: out, err: err,
		precision: config.Precision,
		history:   NewHistory(config.MaxHistory),
	}
}

// submit processes a single input line, and returns whether the session
// should terminate. Any error is reported and recovered here; no input line
// is fatal.
func (s *session) submit(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		fmt.Fprint(s.out, helpText)
		return false
	case "history":
		s.showHistory()
		return false
	case "clear":
		s.history.Clear()
		return false
	case "exit", "quit":
		return true
	}
	s.runCalculation(cmd, args)
	return false
}

// runCalculation handles an operation command. Malformed commands - wrong
// arity, unparseable operands, unknown operation - are diagnosed without
// touching the history; only commands that became a Calculation are
// recorded, whether they succeed or divide by zero.
func (s *session) runCalculation(name string, args []string) {
	if len(args) != 2 {
		s.showError(errs.ArityMismatch{Valid: 2, Actual: len(args)})
		return
	}
	a, err := parseOperand(args[0])
	if err != nil {
		s.showError(err)
		return
	}
	b, err := parseOperand(args[1])
	if err != nil {
		s.showError(err)
		return
	}
	c, err := calc.Create(name, a, b)
	if err != nil {
		s.showError(err)
		return
	}
	result, err := c.Execute()
	s.history.Add(Entry{Op: c.Op, A: c.A, B: c.B, Result: result, Err: err})
	if err != nil {
		s.showError(err)
		return
	}
	fmt.Fprintf(s.out, "%s %s %s = %s\n",
		s.fmtNum(c.A), c.Op.Symbol(), s.fmtNum(c.B), s.fmtNum(result))
}

func (s *session) showHistory() {
	entries := s.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "no calculations yet")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(s.out, s.fmtEntry(e))
	}
}

func (s *session) showError(err error) {
	s.failed = true
	fmt.Fprintln(s.err, "Error:", err.Error())
}

func (s *session) fmtEntry(e Entry) string {
	head := fmt.Sprintf("%s %s %s", e.Op, s.fmtNum(e.A), s.fmtNum(e.B))
	if e.Err != nil {
		return head + " -> error: " + e.Err.Error()
	}
	return head + " = " + s.fmtNum(e.Result)
}

func (s *session) fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', s.precision, 64)
}

func parseOperand(token string) (float64, error) {
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errs.BadOperand{Token: token}
	}
	return n, nil
}

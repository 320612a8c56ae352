package repl

import (
	"testing"

	. "github.com/DrnchedNGold/IS601-Assignment-5/pkg/prog/progtest"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/testutil"
)

func TestInteract_SingleCommand(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 3 4\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "3 + 4 = 7\n")
	f.TestOut(t, 2, "")
}

func TestInteract_AllOperations(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 3 4\nsubtract 10 4\nmultiply 2 5\ndivide 8 2\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "3 + 4 = 7\n10 - 4 = 6\n2 * 5 = 10\n8 / 2 = 4\n")
}

func TestInteract_DivisionByZero(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("divide 8 0\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "")
	f.TestOut(t, 2, "Error: division by zero\n")
}

func TestInteract_UnsupportedOperation(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("foo 1 2\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 2, "Error: unsupported operation 'foo'\n")
}

func TestInteract_WrongArity(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 1\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 2, "Error: expected 2 operands, got 1\n")
}

func TestInteract_BadOperand(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add x 2\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 2, "Error: 'x' is not a number\n")
}

// Malformed commands leave the history untouched; only attempted
// calculations are recorded, division by zero included.
func TestInteract_HistoryRecordsAttemptedCalculations(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 2 3\ndivide 10 0\nmultiply 2 x\nhistory\nexit\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1,
		"2 + 3 = 5\n"+
			"add 2 3 = 5\n"+
			"divide 10 0 -> error: division by zero\n")
}

func TestInteract_HistoryEmpty(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("history\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "no calculations yet\n")
}

// The history command itself mutates nothing; asking twice gives the same
// listing.
func TestInteract_HistoryIdempotent(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 1 1\nhistory\nhistory\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "1 + 1 = 2\nadd 1 1 = 2\nadd 1 1 = 2\n")
}

func TestInteract_Clear(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 1 1\nclear\nhistory\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "1 + 1 = 2\nno calculations yet\n")
}

func TestInteract_EmptyLinesAreSkipped(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("\n   \nadd 1 2\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "1 + 2 = 3\n")
	f.TestOut(t, 2, "")
}

func TestInteract_Help(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("help\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOutSnippet(t, 1, "add")
	f.TestOutSnippet(t, 1, "history")
}

func TestInteract_ExitStopsProcessing(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("exit\nadd 1 2\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "")
}

func TestInteract_QuitAlsoExits(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("quit\nadd 1 2\n")

	Interact(f.Fds(), &InteractConfig{})
	f.TestOut(t, 1, "")
}

func TestInteract_RcFile(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("divide 1 3\n")

	testutil.MustWriteFile("rc.yaml", "precision: 3\n")

	Interact(f.Fds(), &InteractConfig{RC: "rc.yaml"})
	f.TestOut(t, 1, "1 / 3 = 0.333\n")
}

func TestInteract_RcFile_Invalid(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 1 2\n")

	testutil.MustWriteFile("rc.yaml", "prompt: [\n")

	Interact(f.Fds(), &InteractConfig{RC: "rc.yaml"})
	f.TestOutSnippet(t, 2, "Warning: cannot parse rc file")
	f.TestOut(t, 1, "1 + 2 = 3\n")
}

func TestInteract_RcFile_NonexistentIsOK(t *testing.T) {
	f := Setup()
	defer f.Cleanup()
	f.FeedIn("add 1 2\n")

	Interact(f.Fds(), &InteractConfig{RC: "rc.yaml"})
	f.TestOut(t, 1, "1 + 2 = 3\n")
	f.TestOut(t, 2, "")
}

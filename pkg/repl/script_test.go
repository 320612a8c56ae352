package repl

import (
	"testing"

	. "github.com/DrnchedNGold/IS601-Assignment-5/pkg/prog/progtest"
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/testutil"
)

func TestScript_File(t *testing.T) {
	f := Setup()
	defer f.Cleanup()

	testutil.MustWriteFile("script", "add 1 2\nmultiply 2 5\n")

	exit := Script(f.Fds(), []string{"script"}, &ScriptConfig{})
	if exit != 0 {
		t.Errorf("got exit %d, want 0", exit)
	}
	f.TestOut(t, 1, "1 + 2 = 3\n2 * 5 = 10\n")
	f.TestOut(t, 2, "")
}

func TestScript_Cmd(t *testing.T) {
	f := Setup()
	defer f.Cleanup()

	exit := Script(f.Fds(), []string{"subtract 10 4"}, &ScriptConfig{Cmd: true})
	if exit != 0 {
		t.Errorf("got exit %d, want 0", exit)
	}
	f.TestOut(t, 1, "10 - 4 = 6\n")
}

// A command that errors makes the whole script exit with 2, but the
// remaining lines still run.
func TestScript_Error(t *testing.T) {
	f := Setup()
	defer f.Cleanup()

	exit := Script(f.Fds(), []string{"divide 8 0\nadd 1 2"}, &ScriptConfig{Cmd: true})
	if exit != 2 {
		t.Errorf("got exit %d, want 2", exit)
	}
	f.TestOut(t, 1, "1 + 2 = 3\n")
	f.TestOut(t, 2, "Error: division by zero\n")
}

func TestScript_ExitStopsScript(t *testing.T) {
	f := Setup()
	defer f.Cleanup()

	exit := Script(f.Fds(), []string{"add 1 2\nexit\nadd 3 4"}, &ScriptConfig{Cmd: true})
	if exit != 0 {
		t.Errorf("got exit %d, want 0", exit)
	}
	f.TestOut(t, 1, "1 + 2 = 3\n")
}

func TestScript_CannotReadFile(t *testing.T) {
	f := Setup()
	defer f.Cleanup()

	exit := Script(f.Fds(), []string{"nonexistent"}, &ScriptConfig{})
	if exit != 2 {
		t.Errorf("got exit %d, want 2", exit)
	}
	f.TestOutSnippet(t, 2, "cannot read script")
}

func TestScript_NotUTF8(t *testing.T) {
	f := Setup()
	defer f.Cleanup()

	testutil.MustWriteFile("script", "\xff\xfe")

	exit := Script(f.Fds(), []string{"script"}, &ScriptConfig{})
	if exit != 2 {
		t.Errorf("got exit %d, want 2", exit)
	}
	f.TestOutSnippet(t, 2, "source is not UTF-8")
}

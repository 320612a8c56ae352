// Package progtest provides a framework for testing subprograms.
//
// The framework runs the program with pipes for the three standard files,
// and has utilities for feeding input and checking the output.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/must"
)

// Calc builds an argument list for the program under test, as passed to
// prog.Run.
func Calc(args ...string) []string {
	return append([]string{"calc"}, args...)
}

// Fixture is a test fixture. It holds one file for each of the three
// standard file descriptors of the program under test.
type Fixture struct {
	pipes      [3]*pipe
	dirCleanup func()
}

// Setup sets up a test fixture. It also changes into a temporary directory,
// so that tests can create files freely. The caller is responsible for
// calling the Cleanup method of the returned Fixture.
func Setup() *Fixture {
	return &Fixture{
		[3]*pipe{makeInPipe(), makeOutPipe(), makeOutPipe()}, inTestDir()}
}

// Cleanup closes all the files and restores the working directory.
func (f *Fixture) Cleanup() {
	for _, p := range f.pipes {
		p.close()
	}
	f.dirCleanup()
}

// Fds returns the files to use as the standard files of the program under
// test.
func (f *Fixture) Fds() [3]*os.File {
	return [3]*os.File{f.pipes[0].r, f.pipes[1].w, f.pipes[2].w}
}

// FeedIn feeds input to the program and closes the input when done. It
// returns immediately; the actual write happens in a goroutine so that
// input larger than the pipe buffer does not block the test.
func (f *Fixture) FeedIn(content string) {
	w := f.pipes[0].w
	go func() {
		_, err := w.WriteString(content)
		must.OK(err)
		must.OK(w.Close())
	}()
	f.pipes[0].wClosed = true
}

// FeedInKeepOpen feeds input to the program without closing the input file
// afterwards. Pty-backed fixtures need this variant, since closing the
// master side of a pty can discard input the program has not read yet; the
// fed commands must make the program terminate on their own.
func (f *Fixture) FeedInKeepOpen(content string) {
	w := f.pipes[0].w
	go func() {
		_, err := w.WriteString(content)
		must.OK(err)
	}()
}

// TestOut tests that the output on the given fd is exactly wantOut.
func (f *Fixture) TestOut(t *testing.T, fd int, wantOut string) {
	t.Helper()
	if out := f.pipes[fd].get(); out != wantOut {
		t.Errorf("got out %q, want %q", out, wantOut)
	}
}

// TestOutSnippet tests that the output on the given fd contains wantSnippet.
func (f *Fixture) TestOutSnippet(t *testing.T, fd int, wantSnippet string) {
	t.Helper()
	if out := f.pipes[fd].get(); !strings.Contains(out, wantSnippet) {
		t.Errorf("got out %q, want string containing %q", out, wantSnippet)
	}
}

// A pipe with an optional background collector draining the read end. The
// collector keeps writes from the program under test from filling up the
// pipe buffer and deadlocking it.
type pipe struct {
	r, w             *os.File
	output           chan string
	saved            string
	rClosed, wClosed bool
}

func makeInPipe() *pipe {
	r, w := must.Pipe()
	return &pipe{r: r, w: w}
}

func makeOutPipe() *pipe {
	r, w := must.Pipe()
	output := make(chan string, 1)
	go func() {
		bs, _ := io.ReadAll(r)
		r.Close()
		output <- string(bs)
	}()
	return &pipe{r: r, w: w, output: output, rClosed: true}
}

// get returns everything written to the write end so far. It closes the
// write end, so the program under test must be done with the pipe.
func (p *pipe) get() string {
	if !p.wClosed {
		p.w.Close()
		p.wClosed = true
	}
	if p.output != nil {
		p.saved = <-p.output
		p.output = nil
	}
	return p.saved
}

func (p *pipe) close() {
	if !p.wClosed {
		p.w.Close()
		p.wClosed = true
	}
	if !p.rClosed {
		p.r.Close()
		p.rClosed = true
	}
	if p.output != nil {
		<-p.output
		p.output = nil
	}
}

func inTestDir() func() {
	oldWd := must.OK1(os.Getwd())
	dir := must.OK1(os.MkdirTemp("", "calc-test"))
	must.OK(os.Chdir(dir))
	return func() {
		must.OK(os.Chdir(oldWd))
		os.RemoveAll(dir)
	}
}

//go:build !windows

package progtest

import (
	"github.com/creack/pty"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/must"
)

// SetupInteractive sets up a test fixture whose standard input is a
// terminal, for testing behavior that depends on a tty, like prompting.
// Input fed with FeedInKeepOpen goes through the pty pair. The caller is
// responsible for calling the Cleanup method of the returned Fixture.
func SetupInteractive() *Fixture {
	ptmx, tty := must.OK2(pty.Open())
	ttyPipe := &pipe{r: tty, w: ptmx}
	return &Fixture{
		[3]*pipe{ttyPipe, makeOutPipe(), makeOutPipe()}, inTestDir()}
}

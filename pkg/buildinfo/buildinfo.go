// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/DrnchedNGold/IS601-Assignment-5/pkg/buildinfo.Var=value"
// to "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/prog"
)

// Version identifies the version of the calculator. On development commits,
// it identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version in the output of "calc -version" to
// build the full version string. It can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Program is the version subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], "version:", Version+VersionSuffix)
	fmt.Fprintln(fds[1], "go version:", runtime.Version())
	return nil
}

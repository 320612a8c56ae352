// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"

	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/must"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// TempDir creates a unique temporary directory and returns its path. The
// directory is removed when the test finishes.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "calc-test")
	if err != nil {
		panic(err)
	}
	// Resolving symlinks makes path comparisons in tests reliable on
	// platforms where the temporary directory itself is a symlink.
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// Chdir changes into the given directory, and restores the working directory
// when the test finishes.
func Chdir(c Cleanuper, dir string) {
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
}

// InTempDir is like TempDir, but also changes into the temporary directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// MustWriteFile writes data to the named file, panicking on error.
func MustWriteFile(filename, data string) {
	must.OK(os.WriteFile(filename, []byte(data), 0600))
}

//go:build unix

package local

import (
	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"golang.org/x/sys/unix"
)

// Process is the core.ProcessContext of the running process.
type Process struct{}

// Getwd returns the working directory of the process.
func (Process) Getwd() (string, error) {
	wd, err := unix.Getwd()
	if err != nil {
		return "", errors.Translate("getwd", "", err)
	}
	return wd, nil
}

// Chdir changes the working directory of the whole process.
func (Process) Chdir(dir string) error {
	if err := unix.Chdir(dir); err != nil {
		return errors.Translate("chdir", dir, err)
	}
	return nil
}

// LookupEnv returns the value of an environment variable.
func (Process) LookupEnv(key string) (string, bool) {
	return unix.Getenv(key)
}

var _ core.ProcessContext = Process{}

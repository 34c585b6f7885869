package command

import (
	"os/exec"
)

// FromErrorCode extracts a process exit code from err, or -1 if err
// did not come from a process that ran and exited.
func FromErrorCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(*exec.ExitError); ok {
		return e.ExitCode()
	}
	return -1
}

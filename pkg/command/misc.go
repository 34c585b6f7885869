package command

// ErrExitCode lets any layer carry the process exit code it wants back
// up to main, the same contract the teacher's pkg/zeta.ErrExitCode
// gives command dispatch.
type ErrExitCode struct {
	ExitCode int
	Message  string
}

func (e *ErrExitCode) Error() string { return e.Message }

// IsExitCode reports whether err is an *ErrExitCode carrying the given
// code, the same check command_merge_file.go makes against zeta's own
// merge-file subcommand to tell "conflicts found" apart from failure.
func IsExitCode(err error, code int) bool {
	e, ok := err.(*ErrExitCode)
	return ok && e.ExitCode == code
}

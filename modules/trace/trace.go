// Package trace is trimerge3's debug-trace and fatal-error surface,
// grounded on the teacher's modules/trace: DbgPrint is the --debug
// verbose channel (teacher: Globals.DbgPrint), Errorf (error.go) is the
// structured-logging path for C6's trouble class.
package trace

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// DbgPrint writes a timestamp-free, prefixed trace line to stderr.
// Stdout is never touched, since all three renderer modes must stay
// byte-exact there. DbgPrint itself has no gate: pkg/command's
// Globals.DbgPrint checks --debug before calling it, while
// modules/command.Command.Output calls it on every run.
func DbgPrint(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		buffer.WriteString("* ")
		buffer.WriteString(s)
		buffer.WriteByte('\n')
	}
	_, _ = os.Stderr.Write(buffer.Bytes())
}

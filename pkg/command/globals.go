// Package command implements trimerge3's CLI surface: a flat
// (non-subcommand) option struct parsed with github.com/alecthomas/kong,
// mirroring the way the teacher repo's pkg/command wraps its kong
// structs with a shared Globals and a translated VersionFlag.
package command

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/ashgrove/trimerge3/modules/tr"
	"github.com/ashgrove/trimerge3/modules/trace"
	"github.com/ashgrove/trimerge3/pkg/version"
)

// Globals carries the flags every invocation of trimerge3 shares,
// the same role the teacher's command.Globals plays for zeta's many
// subcommands — here there is exactly one operation, so Globals folds
// straight into App.
type Globals struct {
	Debug   bool        `name:"debug" help:"Enable verbose diagnostic tracing on stderr"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
}

// DbgPrint writes a --debug trace line, matching the teacher's
// Globals.DbgPrint used throughout pkg/command.
func (g *Globals) DbgPrint(format string, args ...any) {
	if !g.Debug {
		return
	}
	trace.DbgPrint(format, args...)
}

// VersionFlag prints the version header and exits, the same shape as
// the teacher's command.VersionFlag.
type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

// W is the package-local alias for tr.W, matching the unqualified `W`
// calls the teacher's pkg/command sprinkles through every user-facing
// string.
func W(k string) string { return tr.W(k) }

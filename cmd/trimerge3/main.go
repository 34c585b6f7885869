// Command trimerge3 performs a diff3-style three-way merge of three
// text files, emitting a descriptive report, an ed-compatible edit
// script, or a merged file with conflict markers.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ashgrove/trimerge3/modules/tr"
	"github.com/ashgrove/trimerge3/pkg/command"
	"github.com/ashgrove/trimerge3/pkg/version"
)

func main() {
	_ = tr.Initialize()

	var app command.App
	ctx := kong.Parse(&app,
		kong.Name("trimerge3"),
		kong.Description(tr.W("diff3-style three-way merge of <mine>, <older> and <yours>")),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.GetVersionString()},
	)

	err := ctx.Run(&app.Globals)
	if err == nil {
		return
	}
	if command.IsExitCode(err, 1) {
		os.Exit(1)
	}
	if e, ok := err.(*command.ErrExitCode); ok {
		fmt.Fprintf(os.Stderr, "%s%v\n", tr.W("fatal: "), err)
		os.Exit(e.ExitCode)
	}
	fmt.Fprintf(os.Stderr, "%s%v\n", tr.W("fatal: "), err)
	os.Exit(2)
}

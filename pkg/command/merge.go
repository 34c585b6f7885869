package command

import (
	"context"
	"fmt"
	"os"

	"github.com/ashgrove/trimerge3/modules/trace"
	"github.com/ashgrove/trimerge3/modules/triway"
)

// App is trimerge3's entire command line: a flat struct, not a
// subcommand tree, since the program performs exactly one operation.
// Flags mirror diff3(1)'s option table one for one; help text is taken
// verbatim from its usage message.
type App struct {
	Globals

	TextMode    bool   `short:"a" name:"text" help:"Treat all files as text"`
	StripCR     bool   `name:"strip-trailing-cr" help:"Strip trailing carriage return on input"`
	DiffProgram string `name:"diff-program" placeholder:"PROGRAM" help:"Use PROGRAM to compare files"`

	ShowAll     bool `short:"A" name:"show-all" help:"Output all changes, bracketing conflicts"`
	Ed          bool `short:"e" name:"ed" help:"Output ed script incorporating changes from OLDER to YOURS into MINE"`
	ShowOverlap bool `short:"E" name:"show-overlap" help:"Like -e, but bracket conflicts"`
	EasyOnly    bool `short:"3" name:"easy-only" help:"Like -e, but incorporate only nonoverlapping changes"`
	OverlapOnly bool `short:"x" name:"overlap-only" help:"Like -e, but incorporate only overlapping changes"`
	Bracket     bool `short:"X" help:"Like -x, but bracket conflicts"`
	FinalWrite  bool `short:"i" help:"Append 'w' and 'q' commands to ed scripts"`
	MergeMode   bool `short:"m" name:"merge" help:"Output actual merged file, according to -A, -e, -E, -x, -X and -3"`

	InitialTab bool     `short:"T" name:"initial-tab" help:"Make tabs line up by prepending a tab"`
	Labels     []string `short:"L" name:"label" placeholder:"LABEL" help:"Use LABEL instead of file name (repeatable up to 3 times)"`

	Mine  string `arg:"" name:"mine" help:"Your version of the file"`
	Older string `arg:"" name:"older" help:"Common ancestor of mine and yours"`
	Yours string `arg:"" name:"yours" help:"The other version to merge in"`
}

// resolved is the post-validation interpretation of App's flags, the
// Go analogue of diff3.c's incompat/edscript/merge locals after option
// parsing finishes.
type resolved struct {
	edscript bool
	merge    bool
	opts     triway.Options
}

// resolve validates the flag combination (spec §7's "incompatible flag
// combination" trouble) and derives the effective mode, following
// diff3.c's post-getopt logic line for line: at most one of -AeExX3,
// -i incompatible with -m, and -L requires one of -AEX (i.e. Flagging).
func (a *App) resolve() (*resolved, error) {
	var incompatBits int
	mark := func(set bool) {
		if set {
			incompatBits++
		}
	}

	r := &resolved{}
	if a.ShowAll {
		r.opts.Show2nd = true
		r.opts.Flagging = true
	}
	if a.OverlapOnly || a.Bracket {
		r.opts.OverlapOnly = true
	}
	if a.Bracket {
		r.opts.Flagging = true
	}
	if a.EasyOnly {
		r.opts.SimpleOnly = true
	}
	if a.ShowOverlap {
		r.opts.Flagging = true
	}
	// -X (Bracket) sets both OverlapOnly and Flagging: like -x, but
	// AllDiffer blocks are bracketed. Being a mode flag, it keeps -m
	// from implying -A below.
	r.opts.InitialTab = a.InitialTab
	r.opts.FinalWrite = a.FinalWrite

	mark(a.ShowAll)
	mark(a.Ed)
	mark(a.ShowOverlap)
	mark(a.EasyOnly)
	mark(a.OverlapOnly)
	mark(a.Bracket)

	r.edscript = incompatBits != 0 && !a.MergeMode
	r.merge = a.MergeMode

	if r.merge {
		// -m without any of -AeExX3 implies -A, per diff3.c.
		if incompatBits == 0 {
			r.opts.Show2nd = true
			r.opts.Flagging = true
		}
	}

	if incompatBits > 1 {
		return nil, newUsageTrouble("incompatible options")
	}
	if a.FinalWrite && a.MergeMode {
		return nil, newUsageTrouble("incompatible options")
	}
	if len(a.Labels) > 0 && !r.opts.Flagging {
		return nil, newUsageTrouble("incompatible options")
	}
	if len(a.Labels) > 3 {
		return nil, newUsageTrouble("too many file label options")
	}

	r.opts.Labels = a.labels()
	return r, nil
}

// labels fills Labels from -L, falling back to each file's own path
// for any slot the user didn't provide, exactly as diff3.c seeds
// tag_strings from file[] past tag_count.
func (a *App) labels() triway.Labels {
	names := [3]string{a.Mine, a.Older, a.Yours}
	for i, l := range a.Labels {
		if i < 3 {
			names[i] = l
		}
	}
	return triway.Labels{Mine: names[0], Older: names[1], Yours: names[2]}
}

// Run executes the merge: read the three sources, invoke the external
// diff provider twice, reconcile, and render in whichever of the three
// modes the flags selected. Its error, when non-nil, is a *ErrExitCode,
// a *triway.Trouble, or (for a failed provider run) the plain error
// returned by trace.Errorf; main.go exits with an *ErrExitCode's own
// code and with 2 for anything else.
func (a *App) Run(g *Globals) error {
	r, err := a.resolve()
	if err != nil {
		return err
	}

	if a.Mine == "-" && a.Older == "-" || a.Mine == "-" && a.Yours == "-" || a.Older == "-" && a.Yours == "-" {
		return newUsageTrouble("'-' specified for more than one input file")
	}

	g.DbgPrint("mode: edscript=%v merge=%v show2nd=%v flagging=%v", r.edscript, r.merge, r.opts.Show2nd, r.opts.Flagging)
	tracker := trace.NewTracker(g.Debug)

	mine, err := triway.ReadSource(a.Mine)
	if err != nil {
		return err
	}
	older, err := triway.ReadSource(a.Older)
	if err != nil {
		return err
	}
	yours, err := triway.ReadSource(a.Yours)
	if err != nil {
		return err
	}
	tracker.StepNext("read mine, older, yours")

	minePath, mineCleanup, err := mine.ProviderPath()
	if err != nil {
		return err
	}
	defer mineCleanup()
	olderPath, olderCleanup, err := older.ProviderPath()
	if err != nil {
		return err
	}
	defer olderCleanup()
	yoursPath, yoursCleanup, err := yours.ProviderPath()
	if err != nil {
		return err
	}
	defer yoursCleanup()

	provider := triway.NewProvider()
	if a.DiffProgram != "" {
		provider.Path = a.DiffProgram
	}
	provider.Args = providerArgs(a)

	ctx := context.Background()
	mineHunks, err := provider.Diff(ctx, minePath, olderPath)
	if err != nil {
		return trace.Errorf("diff mine against older: %v", err)
	}
	yoursHunks, err := provider.Diff(ctx, yoursPath, olderPath)
	if err != nil {
		return trace.Errorf("diff yours against older: %v", err)
	}
	tracker.StepNext("run diff provider twice")

	blocks, err := triway.Reconcile(mineHunks, yoursHunks)
	if err != nil {
		return err
	}
	tracker.StepNext("reconcile")

	var conflicts bool
	var renderErr error
	switch {
	case r.edscript:
		conflicts, renderErr = triway.RenderEdScript(os.Stdout, blocks, &r.opts)
	case r.merge:
		conflicts, renderErr = triway.RenderMerge(os.Stdout, mine, blocks, &r.opts)
	default:
		renderErr = triway.RenderReport(os.Stdout, blocks, &r.opts)
	}
	tracker.StepNext("render")

	outcome := triway.Outcome{ConflictsFound: conflicts, Err: renderErr}
	switch outcome.ExitCode() {
	case triway.ExitClean:
		return nil
	case triway.ExitConflicts:
		return &ErrExitCode{ExitCode: 1, Message: "conflicts"}
	default:
		return renderErr
	}
}

func providerArgs(a *App) []string {
	var args []string
	if a.TextMode {
		args = append(args, "-a")
	}
	if a.StripCR {
		args = append(args, "--strip-trailing-cr")
	}
	return args
}

func newUsageTrouble(msg string) error {
	return &ErrExitCode{ExitCode: 2, Message: fmt.Sprintf("%s%s", W("fatal: "), W(msg))}
}

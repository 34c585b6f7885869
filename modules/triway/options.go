package triway

// Labels names the three files as they should appear in bracket
// markers and conflict headers. The renderers print a blank label as
// an empty string; filling blanks with file paths is left to the
// caller (pkg/command does so).
type Labels struct {
	Mine, Older, Yours string
}

func (l Labels) label(f File, fallback string) string {
	var v string
	switch f {
	case Mine:
		v = l.Mine
	case Older:
		v = l.Older
	case Yours:
		v = l.Yours
	}
	if v == "" {
		return fallback
	}
	return v
}

// Options configures the three renderers. Not every field applies to
// every mode: InitialTab only affects the descriptive report;
// FinalWrite only affects the editor script.
type Options struct {
	// Show2nd shows SameAsCommon3rd-kind blocks, bracketed as conflicts,
	// and adds the OLDER ("|||||||") section to AllDiffer conflicts
	// (ed/merge). Set by diff3's -A.
	Show2nd bool
	// Flagging brackets AllDiffer-kind blocks as conflicts (ed/merge).
	Flagging bool
	// OverlapOnly skips OnlyYours-kind blocks entirely, keeping only
	// genuinely overlapping changes (diff3's -x/-X).
	OverlapOnly bool
	// SimpleOnly skips AllDiffer-kind blocks entirely, keeping only
	// non-overlapping changes (diff3's -3).
	SimpleOnly bool
	// InitialTab uses a tab instead of two spaces as the descriptive
	// report's line prefix (diff3's -T).
	InitialTab bool
	// FinalWrite appends "w\nq\n" to the editor script so it can be
	// fed straight to ed (diff3's -i).
	FinalWrite bool
	Labels     Labels
}

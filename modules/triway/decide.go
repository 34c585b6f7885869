package triway

// decide reports whether a block needs any output at all in the
// editor-script or merge renderers, and if so, whether it must be
// bracketed as a conflict or simply applied in favor of YOURS.
//
//   - OnlyMine never needs output: MINE's own untouched span is
//     already the desired content.
//   - SameAsCommon3rd (MINE and YOURS agree, OLDER differs) is shown
//     only when Show2nd asks for it, and is always bracketed as a
//     conflict when it is shown at all — diff3's -A/-E style display
//     of a region neither side truly disputes.
//   - OnlyYours is applied silently in favor of YOURS, unless
//     OverlapOnly restricts output to genuine overlaps, in which case
//     it is skipped entirely.
//   - AllDiffer is bracketed as a conflict when Flagging is set;
//     otherwise it is applied silently in favor of YOURS, unless
//     SimpleOnly restricts output to non-overlapping changes.
//
// This pairing (SameAsCommon3rd <-> always-conflict-when-shown,
// OnlyYours <-> silent-unless-overlap-only) looks inverted next to
// the two kinds' names, but it is exactly what diff3.c's own type
// remap (rev_mapping applied to DIFF_2ND/DIFF_3RD) produces once
// COMMON is pinned to OLDER for every render mode, as it is here; see
// the Open Question note in DESIGN.md.
func decide(kind BlockKind, opts *Options) (show, conflict bool) {
	switch kind {
	case OnlyMine:
		return false, false
	case SameAsCommon3rd:
		if !opts.Show2nd {
			return false, false
		}
		return true, true
	case OnlyYours:
		if opts.OverlapOnly {
			return false, false
		}
		return true, false
	case AllDiffer:
		if opts.SimpleOnly {
			return false, false
		}
		return true, opts.Flagging
	default:
		return false, false
	}
}

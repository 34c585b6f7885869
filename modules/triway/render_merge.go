package triway

import (
	"fmt"
	"io"
)

// RenderMerge writes MINE with every block's differing span resolved
// in place: untouched stretches copy straight through from mine, a
// silently-applied block is replaced by YOURS's content, and a
// flagged conflict is wrapped in the familiar bracket markers.
//
// It reports whether any block required a bracketed conflict marker.
func RenderMerge(w io.Writer, mine *Source, blocks []*TriBlock, opts *Options) (bool, error) {
	conflictsFound := false
	var next Lin = 1

	for _, b := range blocks {
		show, conflict := decide(b.Kind, opts)
		if !show {
			continue
		}

		low0 := b.Ranges[Mine].Low
		if err := copyMineLines(w, mine, next, low0-1); err != nil {
			return conflictsFound, err
		}

		if conflict {
			conflictsFound = true
			if err := writeMergeConflict(w, b, opts); err != nil {
				return conflictsFound, err
			}
		} else {
			if err := writeRawLines(w, b.Lines[Yours]); err != nil {
				return conflictsFound, err
			}
		}

		next = b.Ranges[Mine].High + 1
	}

	if err := copyMineLines(w, mine, next, mine.NumLines()); err != nil {
		return conflictsFound, err
	}
	return conflictsFound, nil
}

func writeMergeConflict(w io.Writer, b *TriBlock, opts *Options) error {
	mineLabel := opts.Labels.label(Mine, "")
	olderLabel := opts.Labels.label(Older, "")
	yoursLabel := opts.Labels.label(Yours, "")

	if b.Kind == AllDiffer {
		if _, err := fmt.Fprintf(w, "<<<<<<< %s\n", mineLabel); err != nil {
			return newIOTrouble("write merge", err)
		}
		if err := writeRawLines(w, b.Lines[Mine]); err != nil {
			return err
		}
		if opts.Show2nd {
			if _, err := fmt.Fprintf(w, "||||||| %s\n", olderLabel); err != nil {
				return newIOTrouble("write merge", err)
			}
			if err := writeRawLines(w, b.Lines[Older]); err != nil {
				return err
			}
		}
	} else {
		if _, err := fmt.Fprintf(w, "<<<<<<< %s\n", olderLabel); err != nil {
			return newIOTrouble("write merge", err)
		}
		if err := writeRawLines(w, b.Lines[Older]); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "=======\n"); err != nil {
		return newIOTrouble("write merge", err)
	}
	if err := writeRawLines(w, b.Lines[Yours]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, ">>>>>>> %s\n", yoursLabel); err != nil {
		return newIOTrouble("write merge", err)
	}
	return nil
}

// writeRawLines writes each line's bytes verbatim. Unlike the ed-script
// renderer, merge output never synthesizes a missing trailing newline —
// a line lacking one (only ever the true last line of its source file)
// is written exactly as captured, matching diff3's own fwrite-based
// merge output and preserving the trailing-newline quirk byte for byte.
func writeRawLines(w io.Writer, lines [][]byte) error {
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			return newIOTrouble("write merge", err)
		}
	}
	return nil
}

// copyMineLines streams mine's own lines [from,to] verbatim.
func copyMineLines(w io.Writer, mine *Source, from, to Lin) error {
	if from > to {
		return nil
	}
	return writeRawLines(w, mine.LinesIn(Range{Low: from, High: to}))
}

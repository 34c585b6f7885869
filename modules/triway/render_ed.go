package triway

import (
	"fmt"
	"io"
)

// RenderEdScript writes an ed-compatible editor script that turns MINE
// into the reconciled result. Blocks are emitted in reverse order so
// that earlier line numbers are never invalidated by a later edit —
// the script is meant to be applied against the unmodified MINE
// buffer, but since ed addresses are absolute, later edits must be
// written first.
//
// It reports whether any block required a bracketed conflict marker.
func RenderEdScript(w io.Writer, blocks []*TriBlock, opts *Options) (bool, error) {
	conflictsFound := false

	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		show, conflict := decide(b.Kind, opts)
		if !show {
			continue
		}

		low0, high0 := b.Ranges[Mine].Low, b.Ranges[Mine].High

		if conflict {
			conflictsFound = true
			if err := writeEdConflict(w, b, low0, high0, opts); err != nil {
				return conflictsFound, err
			}
			continue
		}

		if err := writeEdApply(w, b.Lines[Yours], low0, high0); err != nil {
			return conflictsFound, err
		}
	}

	if opts != nil && opts.FinalWrite {
		if _, err := io.WriteString(w, "w\nq\n"); err != nil {
			return conflictsFound, newIOTrouble("write editor script", err)
		}
	}

	return conflictsFound, nil
}

// writeEdConflict emits the bracketed form for a SameAsCommon3rd or
// AllDiffer block. The end-of-conflict insertion is written first
// since it addresses the later line, keeping the whole script in
// strictly decreasing address order.
func writeEdConflict(w io.Writer, b *TriBlock, low0, high0 Lin, opts *Options) error {
	mineLabel := opts.Labels.label(Mine, "")
	olderLabel := opts.Labels.label(Older, "")
	yoursLabel := opts.Labels.label(Yours, "")

	if _, err := fmt.Fprintf(w, "%da\n", high0); err != nil {
		return newIOTrouble("write editor script", err)
	}
	doubled := false
	if b.Kind == AllDiffer {
		if opts.Show2nd {
			if _, err := fmt.Fprintf(w, "||||||| %s\n", olderLabel); err != nil {
				return newIOTrouble("write editor script", err)
			}
			if writeDotLines(w, b.Lines[Older]) {
				doubled = true
			}
		}
		if _, err := io.WriteString(w, "=======\n"); err != nil {
			return newIOTrouble("write editor script", err)
		}
		if writeDotLines(w, b.Lines[Yours]) {
			doubled = true
		}
	}
	if _, err := fmt.Fprintf(w, ">>>>>>> %s\n", yoursLabel); err != nil {
		return newIOTrouble("write editor script", err)
	}
	if err := writeUndotLines(w, doubled, high0+2, len(b.Lines[Older])+len(b.Lines[Yours])+1); err != nil {
		return err
	}

	openLabel := olderLabel
	if b.Kind == AllDiffer {
		openLabel = mineLabel
	}
	if _, err := fmt.Fprintf(w, "%da\n<<<<<<< %s\n", low0-1, openLabel); err != nil {
		return newIOTrouble("write editor script", err)
	}
	doubled = false
	if b.Kind == SameAsCommon3rd {
		doubled = writeDotLines(w, b.Lines[Older])
		if _, err := io.WriteString(w, "=======\n"); err != nil {
			return newIOTrouble("write editor script", err)
		}
	}
	return writeUndotLines(w, doubled, low0+1, len(b.Lines[Older]))
}

// writeEdApply emits the unbracketed replacement of MINE's span
// [low0,high0] with the given content, preferring a delete, a pure
// append, or a change command depending on what's empty.
func writeEdApply(w io.Writer, content [][]byte, low0, high0 Lin) error {
	switch {
	case len(content) == 0:
		if low0 > high0 {
			return nil
		}
		if low0 == high0 {
			return ioTroubleOrNil(writeLine(w, "%dd\n", low0))
		}
		return ioTroubleOrNil(writeLine(w, "%d,%dd\n", low0, high0))
	case low0 > high0:
		if err := writeLine(w, "%da\n", high0); err != nil {
			return newIOTrouble("write editor script", err)
		}
	case low0 == high0:
		if err := writeLine(w, "%dc\n", low0); err != nil {
			return newIOTrouble("write editor script", err)
		}
	default:
		if err := writeLine(w, "%d,%dc\n", low0, high0); err != nil {
			return newIOTrouble("write editor script", err)
		}
	}
	doubled := writeDotLines(w, content)
	return writeUndotLines(w, doubled, low0, len(content))
}

func writeLine(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func ioTroubleOrNil(err error) error {
	if err == nil {
		return nil
	}
	return newIOTrouble("write editor script", err)
}

// writeDotLines writes each line verbatim, except a line consisting
// solely of a dot is doubled so ed's insert mode doesn't mistake it
// for the terminator. It reports whether any line needed doubling.
func writeDotLines(w io.Writer, lines [][]byte) bool {
	doubled := false
	for _, line := range lines {
		if isLoneDot(line) {
			doubled = true
			io.WriteString(w, ".")
		}
		w.Write(line)
		if !endsInNewline(line) {
			io.WriteString(w, "\n")
		}
	}
	return doubled
}

func isLoneDot(line []byte) bool {
	trimmed := line
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '\n' {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return len(trimmed) == 1 && trimmed[0] == '.'
}

// writeUndotLines terminates the current ed insert with ".\n", then,
// if any line in [start,start+num) needed dot-doubling, appends a
// substitute command that removes the extra dot from the buffer.
func writeUndotLines(w io.Writer, doubled bool, start Lin, num int) error {
	if _, err := io.WriteString(w, ".\n"); err != nil {
		return newIOTrouble("write editor script", err)
	}
	if !doubled || num <= 0 {
		return nil
	}
	var err error
	if num == 1 {
		_, err = fmt.Fprintf(w, "%ds/^\\.\\././\n", start)
	} else {
		_, err = fmt.Fprintf(w, "%d,%ds/^\\.\\././\n", start, start+Lin(num)-1)
	}
	if err != nil {
		return newIOTrouble("write editor script", err)
	}
	return nil
}

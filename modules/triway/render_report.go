package triway

import (
	"fmt"
	"io"
)

// RenderReport writes the descriptive three-way report: for every
// block, a "====" header (suffixed with the odd file's number unless
// all three disagree) followed by each file's own control line and,
// for all but one of the two agreeing files, its excerpt.
//
// The descriptive report never reports conflicts for exit-status
// purposes — it is pure description, not a merge attempt.
func RenderReport(w io.Writer, blocks []*TriBlock, opts *Options) error {
	prefix := "  "
	if opts != nil && opts.InitialTab {
		prefix = "\t"
	}

	for _, b := range blocks {
		order := [3]File{Mine, Older, Yours}
		header := ""
		skip := File(-1)

		switch b.Kind {
		case AllDiffer:
			// header stays "====", nothing skipped, natural order.
		case OnlyMine:
			header = "1"
			skip = Older
		case OnlyYours:
			header = "3"
			skip = Mine
		case SameAsCommon3rd:
			header = "2"
			skip = Mine
			order = [3]File{Mine, Yours, Older}
		}
		if _, err := fmt.Fprintf(w, "====%s\n", header); err != nil {
			return newIOTrouble("write report", err)
		}

		for _, f := range order {
			r := b.Range(f)
			if err := writeReportControl(w, f, r); err != nil {
				return err
			}
			if f == skip {
				continue
			}
			if r.Empty() {
				continue
			}
			lines := b.Lines[f]
			for i, line := range lines {
				if _, err := io.WriteString(w, prefix); err != nil {
					return newIOTrouble("write report", err)
				}
				if _, err := w.Write(line); err != nil {
					return newIOTrouble("write report", err)
				}
				if i == len(lines)-1 && !endsInNewline(line) {
					if _, err := io.WriteString(w, "\n\\ No newline at end of file\n"); err != nil {
						return newIOTrouble("write report", err)
					}
				}
			}
		}
	}
	return nil
}

func writeReportControl(w io.Writer, f File, r Range) error {
	var err error
	switch idx := fileNumber(f); r.Low - r.High {
	case 1:
		_, err = fmt.Fprintf(w, "%d:%da\n", idx, r.Low-1)
	case 0:
		_, err = fmt.Fprintf(w, "%d:%dc\n", idx, r.Low)
	default:
		_, err = fmt.Fprintf(w, "%d:%d,%dc\n", idx, r.Low, r.High)
	}
	if err != nil {
		return newIOTrouble("write report", err)
	}
	return nil
}

func fileNumber(f File) int {
	switch f {
	case Mine:
		return 1
	case Older:
		return 2
	default:
		return 3
	}
}

func endsInNewline(line []byte) bool {
	return len(line) > 0 && line[len(line)-1] == '\n'
}

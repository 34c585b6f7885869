// Package triway implements the three-way line reconciliation engine at
// the heart of trimerge3: given a pair of pairwise line-diffs, both
// aligned against the same common file, it coalesces them into a single
// ordered sequence of three-way blocks and renders that sequence as a
// descriptive report, an ed-compatible edit script, or a merged file
// carrying conflict markers.
package triway

// Lin is a line number. Ranges are inclusive on both ends; an empty
// range is represented by High == Low-1.
type Lin = int

// File identifies one of the three participating files.
type File int

const (
	Mine File = iota
	Older
	Yours
)

func (f File) String() string {
	switch f {
	case Mine:
		return "mine"
	case Older:
		return "older"
	case Yours:
		return "yours"
	default:
		return "?"
	}
}

// Range is an inclusive [Low, High] line range. High == Low-1 denotes an
// empty range (a point of insertion).
type Range struct {
	Low, High Lin
}

func (r Range) Len() int { return r.High - r.Low + 1 }

func (r Range) Empty() bool { return r.High < r.Low }

// HunkKind classifies a pairwise hunk the way normal diff(1) does.
type HunkKind int

const (
	Add HunkKind = iota
	Change
	Delete
)

func (k HunkKind) String() string {
	switch k {
	case Add:
		return "add"
	case Change:
		return "change"
	case Delete:
		return "delete"
	default:
		return "?"
	}
}

// PairHunk is a single aligned region between a side file (A) and the
// common file (C), as produced by an external pairwise-diff provider.
// Hunks within one chain are in strictly increasing order of C.Low and
// never overlap on C.
type PairHunk struct {
	Kind HunkKind
	A    Range
	C    Range
	// LinesA and LinesC are ordered line payloads, each including its
	// trailing newline when the source line had one. For Kind == Add,
	// LinesA is empty and A denotes a point of insertion (A.High ==
	// A.Low-1); symmetrically for Kind == Delete, LinesC is empty and C
	// is the point of insertion.
	LinesA [][]byte
	LinesC [][]byte
}

// BlockKind classifies a reconciled three-way block.
type BlockKind int

const (
	// SameAsCommon3rd: MINE and YOURS agree and differ from COMMON.
	SameAsCommon3rd BlockKind = iota
	// OnlyMine: only MINE changed relative to COMMON.
	OnlyMine
	// OnlyYours: only YOURS changed relative to COMMON.
	OnlyYours
	// AllDiffer: both MINE and YOURS changed, and disagree.
	AllDiffer
)

func (k BlockKind) String() string {
	switch k {
	case SameAsCommon3rd:
		return "same-as-common-3rd"
	case OnlyMine:
		return "only-mine"
	case OnlyYours:
		return "only-yours"
	case AllDiffer:
		return "all-differ"
	default:
		return "?"
	}
}

// TriBlock is a reconciled region spanning MINE, YOURS, and COMMON.
type TriBlock struct {
	Kind BlockKind
	// Ranges, indexed by File (Mine, Older, Yours); Older carries the
	// COMMON range.
	Ranges [3]Range
	// Lines, indexed by File; one payload per line in the matching range.
	Lines [3][][]byte
}

func (b *TriBlock) Range(f File) Range { return b.Ranges[f] }

func (b *TriBlock) NumLines(f File) int { return b.Ranges[f].Len() }

// zeroBlock is the synthetic predecessor used to interpolate the very
// first block's MINE/YOURS ranges when one thread contributes nothing.
var zeroBlock = &TriBlock{
	Ranges: [3]Range{{Low: 1, High: 0}, {Low: 1, High: 0}, {Low: 1, High: 0}},
}

package triway

import "bytes"

// fileOf maps a reconciler thread index (0 = MINE-vs-COMMON, 1 =
// YOURS-vs-COMMON) to the File it populates in a TriBlock.
func fileOf(thread int) File {
	if thread == 0 {
		return Mine
	}
	return Yours
}

// buildBlock merges the hunks gathered for one three-way block —
// using[0] from the MINE thread, using[1] from the YOURS thread,
// either of which may be nil if that side contributed nothing — into
// a single TriBlock. lastBlock supplies the line-number correspondence
// for whichever side didn't contribute, the same way using_to_diff3_block
// consults the previously emitted block.
func buildBlock(using [2][]*PairHunk, lastBlock *TriBlock) (*TriBlock, error) {
	lowc, highc := commonBounds(using)

	var lowA, highA [2]Lin
	for d := 0; d < 2; d++ {
		if u := using[d]; u != nil {
			first, last := u[0], u[len(u)-1]
			lowA[d] = lowc - first.C.Low + first.A.Low
			highA[d] = highc - last.C.High + last.A.High
		} else {
			base := lastBlock.Ranges[Older].High
			lowA[d] = lowc - base + lastBlock.Ranges[fileOf(d)].High
			highA[d] = highc - base + lastBlock.Ranges[fileOf(d)].High
		}
	}

	block := &TriBlock{}
	block.Ranges[Older] = Range{Low: lowc, High: highc}
	block.Ranges[Mine] = Range{Low: lowA[0], High: highA[0]}
	block.Ranges[Yours] = Range{Low: lowA[1], High: highA[1]}

	commonLen := block.Ranges[Older].Len()
	if commonLen > 0 {
		block.Lines[Older] = make([][]byte, commonLen)
	}
	for d := 0; d < 2; d++ {
		for _, h := range using[d] {
			offset := h.C.Low - lowc
			if err := copyStringList(h.LinesC, block.Lines[Older], offset); err != nil {
				return nil, err
			}
		}
	}

	for d := 0; d < 2; d++ {
		f := fileOf(d)
		lo, hi := block.Ranges[f].Low, block.Ranges[f].High
		n := block.Ranges[f].Len()
		if n <= 0 {
			continue
		}
		lines := make([][]byte, n)
		u := using[d]

		firstFO := hi + 1
		if len(u) > 0 {
			firstFO = u[0].A.Low
		}
		for i := 0; i+lo < firstFO; i++ {
			lines[i] = block.Lines[Older][i]
		}

		for k, h := range u {
			offset := h.A.Low - lo
			copy(lines[offset:offset+h.A.Len()], h.LinesA)

			nextFO := hi + 1
			if k+1 < len(u) {
				nextFO = u[k+1].A.Low
			}
			linec := h.C.High + 1 - lowc
			for i := h.A.High + 1 - lo; i < nextFO-lo; i++ {
				lines[i] = block.Lines[Older][linec]
				linec++
			}
		}
		block.Lines[f] = lines
	}

	switch {
	case using[0] == nil:
		block.Kind = OnlyYours
	case using[1] == nil:
		block.Kind = OnlyMine
	case linesEqual(block.Lines[Mine], block.Lines[Yours]):
		block.Kind = SameAsCommon3rd
	default:
		block.Kind = AllDiffer
	}

	return block, nil
}

// commonBounds finds the overall COMMON-file range spanned by both
// threads' contributed hunks.
func commonBounds(using [2][]*PairHunk) (lowc, highc Lin) {
	first := true
	for d := 0; d < 2; d++ {
		u := using[d]
		if u == nil {
			continue
		}
		lo, hi := u[0].C.Low, u[len(u)-1].C.High
		if first || lo < lowc {
			lowc = lo
		}
		if first || hi > highc {
			highc = hi
		}
		first = false
	}
	return lowc, highc
}

// copyStringList copies src into dst starting at offset, verifying
// that any slot already filled by the other thread agrees byte for
// byte — the structural cross-check between the two diff threads'
// view of the shared COMMON file.
func copyStringList(src, dst [][]byte, offset int) error {
	for i, line := range src {
		idx := offset + i
		if dst[idx] != nil {
			if !bytes.Equal(dst[idx], line) {
				return newStructuralTrouble()
			}
			continue
		}
		dst[idx] = line
	}
	return nil
}

func linesEqual(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

package triway

// Reconcile coalesces two pairwise-hunk chains — mineHunks (MINE vs.
// COMMON) and yoursHunks (YOURS vs. COMMON) — into an ordered sequence
// of three-way blocks. Both chains must already be in increasing,
// non-overlapping order of their C (common) range, exactly as
// ParseHunks produces them.
//
// Blocks are only emitted where at least one side differs from
// COMMON; stretches where all three files agree produce no block, the
// same way diff3 never emits a block for a common subsequence.
func Reconcile(mineHunks, yoursHunks []*PairHunk) ([]*TriBlock, error) {
	threads := [2][]*PairHunk{mineHunks, yoursHunks}
	cur := [2]int{0, 0}
	var result []*TriBlock
	lastBlock := zeroBlock

	for cur[0] < len(threads[0]) || cur[1] < len(threads[1]) {
		var baseThread int
		switch {
		case cur[0] >= len(threads[0]):
			baseThread = 1
		case cur[1] >= len(threads[1]):
			baseThread = 0
		case threads[0][cur[0]].C.Low > threads[1][cur[1]].C.Low:
			baseThread = 1
		default:
			baseThread = 0
		}

		highThread := baseThread
		var usingStart, usingEnd [2]int
		usingStart[0], usingStart[1] = -1, -1

		usingStart[highThread] = cur[highThread]
		usingEnd[highThread] = cur[highThread]
		highWaterMark := threads[highThread][cur[highThread]].C.High
		cur[highThread]++

		otherThread := 1 - highThread
		for cur[otherThread] < len(threads[otherThread]) &&
			threads[otherThread][cur[otherThread]].C.Low <= highWaterMark+1 {
			idx := cur[otherThread]
			if usingStart[otherThread] == -1 {
				usingStart[otherThread] = idx
			}
			usingEnd[otherThread] = idx
			cur[otherThread]++

			if highWaterMark < threads[otherThread][idx].C.High {
				highThread = otherThread
				highWaterMark = threads[otherThread][idx].C.High
			}
			otherThread = 1 - highThread
		}

		var using [2][]*PairHunk
		for d := 0; d < 2; d++ {
			if usingStart[d] >= 0 {
				using[d] = threads[d][usingStart[d] : usingEnd[d]+1]
			}
		}

		block, err := buildBlock(using, lastBlock)
		if err != nil {
			return nil, err
		}
		result = append(result, block)
		lastBlock = block
	}
	return result, nil
}

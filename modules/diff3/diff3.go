// Package diff3 is trimerge3's library-facing facade: it wires C1-C6
// (package triway) and the provider driver (package command) together
// behind the two entry points a caller embedding trimerge3 actually
// wants — Merge, which streams a merge result, and SimpleMerge, which
// takes three in-memory texts and returns the merged string outright.
// The CLI (pkg/command) drives the same triway pipeline itself rather
// than going through these two calls.
package diff3

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/ashgrove/trimerge3/modules/triway"
)

// Result is the outcome of a streaming Merge.
type Result struct {
	// Result is the merged byte stream: MINE outside changed regions,
	// conflict-bracketed or YOURS-resolved content inside them.
	Result io.Reader
	// Conflicts reports whether any block required a bracket marker.
	Conflicts bool
}

// Merge runs a three-way merge of mine/older/yours, in the same vein as
// the teacher's diferenco.Merge: showBase controls whether a block
// where MINE and YOURS agree against a changed OLDER (SameAsCommon3rd)
// is flagged as a conflict showing the common ancestor, matching
// triway.Options.Show2nd; labelMine/labelYours name the two sides in
// conflict brackets.
func Merge(mine, older, yours io.Reader, showBase bool, labelMine, labelYours string) (*Result, error) {
	mineData, err := io.ReadAll(mine)
	if err != nil {
		return nil, err
	}
	olderData, err := io.ReadAll(older)
	if err != nil {
		return nil, err
	}
	yoursData, err := io.ReadAll(yours)
	if err != nil {
		return nil, err
	}

	mineSrc := triway.NewSourceFromBytes("mine", mineData)
	olderSrc := triway.NewSourceFromBytes("older", olderData)
	yoursSrc := triway.NewSourceFromBytes("yours", yoursData)

	blocks, err := reconcileSources(context.Background(), mineSrc, olderSrc, yoursSrc, "")
	if err != nil {
		return nil, err
	}

	opts := &triway.Options{
		Show2nd:  showBase,
		Flagging: true,
		Labels:   triway.Labels{Mine: labelMine, Older: "older", Yours: labelYours},
	}

	var buf bytes.Buffer
	conflicts, err := triway.RenderMerge(&buf, mineSrc, blocks, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Result: &buf, Conflicts: conflicts}, nil
}

// SimpleMerge merges three in-memory texts and returns the merged
// content directly, the shape library callers reach for when they
// don't need a stream. diffProgram overrides the external line-diff
// provider ("diff" when empty).
func SimpleMerge(ctx context.Context, older, mine, yours string, diffProgram string, labelMine, labelYours string) (string, bool, error) {
	mineSrc := triway.NewSourceFromBytes("mine", []byte(mine))
	olderSrc := triway.NewSourceFromBytes("older", []byte(older))
	yoursSrc := triway.NewSourceFromBytes("yours", []byte(yours))

	blocks, err := reconcileSources(ctx, mineSrc, olderSrc, yoursSrc, diffProgram)
	if err != nil {
		return "", false, err
	}

	opts := &triway.Options{
		Flagging: true,
		Labels:   triway.Labels{Mine: labelMine, Older: "older", Yours: labelYours},
	}

	var buf bytes.Buffer
	conflicts, err := triway.RenderMerge(&buf, mineSrc, blocks, opts)
	if err != nil {
		return "", false, err
	}
	return buf.String(), conflicts, nil
}

// reconcileSources runs the external diff provider twice (MINE vs
// OLDER, YOURS vs OLDER) and hands the resulting hunk chains to the
// reconciler, mirroring process_diff+make_3way_diff in the original
// diff3. The provider only understands real files, so in-memory
// content is spilled to a scratch directory first and cleaned up on
// return, the same tradeoff the original diff3 avoids entirely by only
// ever taking file operands.
func reconcileSources(ctx context.Context, mine, older, yours *triway.Source, diffProgram string) ([]*triway.TriBlock, error) {
	minePath, mineCleanup, err := spillToTemp(mine.Bytes())
	if err != nil {
		return nil, err
	}
	defer mineCleanup()
	olderPath, olderCleanup, err := spillToTemp(older.Bytes())
	if err != nil {
		return nil, err
	}
	defer olderCleanup()
	yoursPath, yoursCleanup, err := spillToTemp(yours.Bytes())
	if err != nil {
		return nil, err
	}
	defer yoursCleanup()

	provider := triway.NewProvider()
	if diffProgram != "" {
		provider.Path = diffProgram
	}

	mineHunks, err := provider.Diff(ctx, minePath, olderPath)
	if err != nil {
		return nil, err
	}
	yoursHunks, err := provider.Diff(ctx, yoursPath, olderPath)
	if err != nil {
		return nil, err
	}
	return triway.Reconcile(mineHunks, yoursHunks)
}

func spillToTemp(data []byte) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "trimerge3-*")
	if err != nil {
		return "", nil, err
	}
	name := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", nil, err
	}
	return name, func() { os.Remove(name) }, nil
}

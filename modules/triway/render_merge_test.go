package triway_test

import (
	"strings"
	"testing"

	"github.com/ashgrove/trimerge3/modules/triway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMergeConflictBracketsAllDiffer(t *testing.T) {
	mine := triway.NewSourceFromBytes("mine", []byte("a\nb\nc\n"))
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.AllDiffer,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines: [3][][]byte{
				{[]byte("b\n")},
				{[]byte("o\n")},
				{[]byte("B\n")},
			},
		},
	}
	opts := &triway.Options{Flagging: true, Labels: triway.Labels{Mine: "mine", Older: "older", Yours: "yours"}}

	var buf strings.Builder
	conflicts, err := triway.RenderMerge(&buf, mine, blocks, opts)
	require.NoError(t, err)
	assert.True(t, conflicts)
	assert.Equal(t, "a\n<<<<<<< mine\nb\n=======\nB\n>>>>>>> yours\nc\n", buf.String())
}

func TestRenderMergeShowsCommonAncestorWhenRequested(t *testing.T) {
	mine := triway.NewSourceFromBytes("mine", []byte("a\nb\nc\n"))
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.AllDiffer,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines: [3][][]byte{
				{[]byte("b\n")},
				{[]byte("o\n")},
				{[]byte("B\n")},
			},
		},
	}
	opts := &triway.Options{Flagging: true, Show2nd: true, Labels: triway.Labels{Mine: "mine", Older: "older", Yours: "yours"}}

	var buf strings.Builder
	conflicts, err := triway.RenderMerge(&buf, mine, blocks, opts)
	require.NoError(t, err)
	assert.True(t, conflicts)
	assert.Equal(t, "a\n<<<<<<< mine\nb\n||||||| older\no\n=======\nB\n>>>>>>> yours\nc\n", buf.String())
}

// A SameAsCommon3rd block without Show2nd is applied silently (MINE and
// YOURS already agree, so MINE's own content is already correct and no
// conflict marker is needed).
func TestRenderMergeSameAsCommonSilent(t *testing.T) {
	mine := triway.NewSourceFromBytes("mine", []byte("a\nB\nc\n"))
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.SameAsCommon3rd,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines: [3][][]byte{
				{[]byte("B\n")},
				{[]byte("o\n")},
				{[]byte("B\n")},
			},
		},
	}
	opts := &triway.Options{}

	var buf strings.Builder
	conflicts, err := triway.RenderMerge(&buf, mine, blocks, opts)
	require.NoError(t, err)
	assert.False(t, conflicts)
	assert.Equal(t, "a\nB\nc\n", buf.String())
}

// SameAsCommon3rd IS shown (and bracketed as a conflict) when Show2nd
// asks to flag changes from the second file.
func TestRenderMergeSameAsCommonShownWithShow2nd(t *testing.T) {
	mine := triway.NewSourceFromBytes("mine", []byte("a\nB\nc\n"))
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.SameAsCommon3rd,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines: [3][][]byte{
				{[]byte("B\n")},
				{[]byte("o\n")},
				{[]byte("B\n")},
			},
		},
	}
	opts := &triway.Options{Show2nd: true, Labels: triway.Labels{Mine: "mine", Older: "older", Yours: "yours"}}

	var buf strings.Builder
	conflicts, err := triway.RenderMerge(&buf, mine, blocks, opts)
	require.NoError(t, err)
	assert.True(t, conflicts)
	assert.Equal(t, "a\n<<<<<<< older\no\n=======\nB\n>>>>>>> yours\nc\n", buf.String())
}

// OnlyMine blocks never need output: MINE's own span is already the
// desired content, so RenderMerge on an all-OnlyMine block list is a
// verbatim pass-through of MINE.
func TestRenderMergeOnlyMineIsPassthrough(t *testing.T) {
	mine := triway.NewSourceFromBytes("mine", []byte("a\nb\nc\n"))
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.OnlyMine,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 1}, {Low: 2, High: 1}},
			Lines: [3][][]byte{
				{[]byte("b\n")},
				nil,
				nil,
			},
		},
	}
	var buf strings.Builder
	conflicts, err := triway.RenderMerge(&buf, mine, blocks, &triway.Options{})
	require.NoError(t, err)
	assert.False(t, conflicts)
	assert.Equal(t, "a\nb\nc\n", buf.String())
}

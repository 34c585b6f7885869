package triway_test

import (
	"strings"
	"testing"

	"github.com/ashgrove/trimerge3/modules/triway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEdScriptUnbracketedChange(t *testing.T) {
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.OnlyYours,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines: [3][][]byte{
				nil,
				{[]byte("o\n")},
				{[]byte("B\n")},
			},
		},
	}
	var buf strings.Builder
	conflicts, err := triway.RenderEdScript(&buf, blocks, &triway.Options{})
	require.NoError(t, err)
	assert.False(t, conflicts)
	assert.Equal(t, "2c\nB\n.\n", buf.String())
}

func TestRenderEdScriptFinalWriteAppendsWQ(t *testing.T) {
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.OnlyYours,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines: [3][][]byte{
				nil,
				{[]byte("o\n")},
				{[]byte("B\n")},
			},
		},
	}
	var buf strings.Builder
	_, err := triway.RenderEdScript(&buf, blocks, &triway.Options{FinalWrite: true})
	require.NoError(t, err)
	assert.Equal(t, "2c\nB\n.\nw\nq\n", buf.String())
}

// Blocks are emitted in reverse line-number order so earlier addresses
// in the script are never invalidated by a later edit.
func TestRenderEdScriptReverseOrder(t *testing.T) {
	blocks := []*triway.TriBlock{
		{
			Kind:   triway.OnlyYours,
			Ranges: [3]triway.Range{{Low: 2, High: 2}, {Low: 2, High: 2}, {Low: 2, High: 2}},
			Lines:  [3][][]byte{nil, {[]byte("o1\n")}, {[]byte("Y1\n")}},
		},
		{
			Kind:   triway.OnlyYours,
			Ranges: [3]triway.Range{{Low: 5, High: 5}, {Low: 5, High: 5}, {Low: 5, High: 5}},
			Lines:  [3][][]byte{nil, {[]byte("o2\n")}, {[]byte("Y2\n")}},
		},
	}
	var buf strings.Builder
	conflicts, err := triway.RenderEdScript(&buf, blocks, &triway.Options{})
	require.NoError(t, err)
	assert.False(t, conflicts)
	assert.Equal(t, "5c\nY2\n.\n2c\nY1\n.\n", buf.String())
}

func TestRenderEdScriptFlaggedConflict(t *testing.T) {
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
	conflicts, err := triway.RenderEdScript(&buf, blocks, opts)
	require.NoError(t, err)
	assert.True(t, conflicts)
	assert.Equal(t, "2a\n=======\nB\n>>>>>>> yours\n.\n1a\n<<<<<<< mine\n.\n", buf.String())
}

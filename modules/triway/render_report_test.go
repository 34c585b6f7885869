package triway_test

import (
	"strings"
	"testing"

	"github.com/ashgrove/trimerge3/modules/triway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RenderReport never signals conflicts itself: it is pure description,
// and emits a block for every kind, including OnlyMine (which the
// merge and ed-script renderers both treat as needing no output at
// all).
func TestRenderReportAllDiffer(t *testing.T) {
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
	var buf strings.Builder
	err := triway.RenderReport(&buf, blocks, &triway.Options{})
	require.NoError(t, err)
	assert.Equal(t, "====\n1:2c\n  b\n2:2c\n  o\n3:2c\n  B\n", buf.String())
}

func TestRenderReportSameAsCommon3rdSkipsMine(t *testing.T) {
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
	var buf strings.Builder
	err := triway.RenderReport(&buf, blocks, &triway.Options{})
	require.NoError(t, err)
	// order is Mine, Yours, Older for this kind; Mine's excerpt is
	// skipped since it's identical to Yours's.
	assert.Equal(t, "====2\n1:2c\n3:2c\n  B\n2:2c\n  o\n", buf.String())
}

func TestRenderReportOnlyMineSkipsOlder(t *testing.T) {
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
	err := triway.RenderReport(&buf, blocks, &triway.Options{})
	require.NoError(t, err)
	assert.Equal(t, "====1\n1:2c\n  b\n2:1a\n3:1a\n", buf.String())
}

func TestRenderReportInitialTabUsesTabPrefix(t *testing.T) {
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
	var buf strings.Builder
	err := triway.RenderReport(&buf, blocks, &triway.Options{InitialTab: true})
	require.NoError(t, err)
	assert.Equal(t, "====\n1:2c\n\tb\n2:2c\n\to\n3:2c\n\tB\n", buf.String())
}

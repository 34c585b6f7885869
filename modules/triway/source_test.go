package triway_test

import (
	"os"
	"testing"

	"github.com/ashgrove/trimerge3/modules/triway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLinesWithTrailingNewline(t *testing.T) {
	s := triway.NewSourceFromBytes("x", []byte("a\nb\nc\n"))
	require.Equal(t, 3, s.NumLines())
	assert.Equal(t, []byte("a\n"), s.Line(1))
	assert.Equal(t, []byte("b\n"), s.Line(2))
	assert.Equal(t, []byte("c\n"), s.Line(3))
}

func TestSourceLinesWithoutFinalNewline(t *testing.T) {
	s := triway.NewSourceFromBytes("x", []byte("a\nb\nc"))
	require.Equal(t, 3, s.NumLines())
	assert.Equal(t, []byte("c"), s.Line(3))
}

func TestSourceLinesInRange(t *testing.T) {
	s := triway.NewSourceFromBytes("x", []byte("a\nb\nc\n"))
	got := s.LinesIn(triway.Range{Low: 2, High: 3})
	assert.Equal(t, [][]byte{[]byte("b\n"), []byte("c\n")}, got)
}

func TestSourceLinesInEmptyRange(t *testing.T) {
	s := triway.NewSourceFromBytes("x", []byte("a\nb\n"))
	got := s.LinesIn(triway.Range{Low: 2, High: 1})
	assert.Nil(t, got)
}

func TestSourceEmpty(t *testing.T) {
	s := triway.NewSourceFromBytes("x", nil)
	assert.Equal(t, 0, s.NumLines())
}

func TestProviderPathReturnsRealFileUnchanged(t *testing.T) {
	f, err := os.CreateTemp("", "trimerge3-source-test-*")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, _ = f.WriteString("hello\n")
	f.Close()

	s, err := triway.ReadSource(f.Name())
	require.NoError(t, err)
	path, cleanup, err := s.ProviderPath()
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, f.Name(), path)
}

func TestProviderPathSpillsBufferedSource(t *testing.T) {
	s := triway.NewSourceFromBytes("-", []byte("piped content\n"))
	path, cleanup, err := s.ProviderPath()
	require.NoError(t, err)
	defer cleanup()
	assert.NotEqual(t, "-", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped content\n"), data)
}

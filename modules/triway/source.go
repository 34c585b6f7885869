package triway

import (
	"bytes"
	"io"
	"os"
)

// initialReadSize is the fallback growth hint when a source's size
// can't be learned up front (a pipe, or stdin), mirroring the 8 KiB
// default blksize diff3 falls back to when fstat can't report one.
const initialReadSize = 8 * 1024

// Source is one of the three participating files, read fully into
// memory so the reconciler can address it by line range. "-" names
// stdin, matching normal diff(1) and GNU diff3's own convention.
type Source struct {
	Name string
	data []byte
	// lines are inclusive byte ranges into data, one per line, each
	// ending at the line's newline byte; the final line's range ends at
	// the last byte of data if the source doesn't end in a newline.
	lines []Range
}

// ReadSource reads path (or stdin, for "-") fully into memory.
func ReadSource(path string) (*Source, error) {
	var r io.Reader
	hint := int64(initialReadSize)
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, newIOTrouble("open "+path, err)
		}
		defer f.Close()
		if fi, err := f.Stat(); err == nil && fi.Size() > 0 {
			hint = fi.Size()
		}
		r = f
	}

	var buf bytes.Buffer
	buf.Grow(int(hint))
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, newIOTrouble("read "+path, err)
	}

	s := &Source{Name: path, data: buf.Bytes()}
	s.indexLines()
	return s, nil
}

// NewSourceFromBytes wraps already-in-memory content, used by callers
// (library entry points, tests) that don't read from the filesystem.
func NewSourceFromBytes(name string, data []byte) *Source {
	s := &Source{Name: name, data: data}
	s.indexLines()
	return s
}

func (s *Source) indexLines() {
	data := s.data
	i := 0
	for i < len(data) {
		j := bytes.IndexByte(data[i:], '\n')
		if j < 0 {
			s.lines = append(s.lines, Range{Low: i, High: len(data) - 1})
			return
		}
		s.lines = append(s.lines, Range{Low: i, High: i + j})
		i += j + 1
	}
}

// Bytes returns the full content.
func (s *Source) Bytes() []byte { return s.data }

// NumLines reports how many lines the source has.
func (s *Source) NumLines() int { return len(s.lines) }

// Line returns the 1-indexed line n's payload, including its trailing
// newline unless n is the final line and the source lacks one.
func (s *Source) Line(n Lin) []byte {
	r := s.lines[n-1]
	lo, hi := r.Low, r.High
	if hi < len(s.data) && s.data[hi] == '\n' {
		return s.data[lo : hi+1]
	}
	return s.data[lo : hi+1]
}

// LinesIn returns the payloads for an inclusive 1-indexed range; an
// empty range (r.Empty()) returns nil.
func (s *Source) LinesIn(r Range) [][]byte {
	if r.Empty() {
		return nil
	}
	out := make([][]byte, 0, r.Len())
	for n := r.Low; n <= r.High; n++ {
		out = append(out, s.Line(n))
	}
	return out
}

// ProviderPath returns a filesystem path the external diff provider can
// read this source's content from. A real file name is returned as-is;
// a source read from stdin ("-", or already-buffered content with no
// real path) is spilled to a scratch file instead, since the provider
// subprocess cannot share the process's single stdin with two
// invocations (one per pairwise diff) the way ReadSource already has.
func (s *Source) ProviderPath() (path string, cleanup func(), err error) {
	if s.Name != "" && s.Name != "-" {
		return s.Name, func() {}, nil
	}
	f, err := os.CreateTemp("", "trimerge3-*")
	if err != nil {
		return "", nil, newIOTrouble("spill "+s.Name, err)
	}
	name := f.Name()
	if _, err := f.Write(s.data); err != nil {
		f.Close()
		os.Remove(name)
		return "", nil, newIOTrouble("spill "+s.Name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", nil, newIOTrouble("spill "+s.Name, err)
	}
	return name, func() { os.Remove(name) }, nil
}

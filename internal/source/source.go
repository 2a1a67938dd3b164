package source

import (
	"bytes"
	"fmt"
	"os"
	"sort"
)

// Span is a half-open byte range [Start, End) within a single file.
type Span struct {
	Start uint32
	End   uint32
}

func NewSpan(start, end int) Span {
	return Span{Start: uint32(start), End: uint32(end)}
}

func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Pos is a 1-based line/column position.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File holds the content of one definition file together with a line index
// for span resolution. Content is normalized: CRLF becomes LF and a leading
// UTF-8 BOM is stripped.
type File struct {
	Path    string
	Content []byte

	lineStarts []int
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func NewFile(path string, content []byte) *File {
	content = bytes.TrimPrefix(content, bom)
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	return &File{
		Path:    path,
		Content: content,
	}
}

func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", path, err)
	}

	return NewFile(path, content), nil
}

// Text returns the source slice covered by span.
func (f *File) Text(span Span) string {
	return string(f.Content[span.Start:span.End])
}

// Resolve converts a span's start offset into a line/column position.
func (f *File) Resolve(span Span) Pos {
	return f.Pos(int(span.Start))
}

// Pos converts a byte offset into a 1-based line/column position.
func (f *File) Pos(offset int) Pos {
	if f.lineStarts == nil {
		f.buildLineIndex()
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})

	return Pos{
		Line:   line,
		Column: offset - f.lineStarts[line-1] + 1,
	}
}

func (f *File) buildLineIndex() {
	f.lineStarts = []int{0}
	for i, b := range f.Content {
		if b == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
}

package report

import (
	"sort"

	"github.com/t14raptor/go-scope/ast"
)

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int `json:"line" yaml:"line" cbor:"line"`
	Column int `json:"column" yaml:"column" cbor:"column"`
}

// lineIndex maps byte offsets to positions.
type lineIndex []int

func newLineIndex(src string) lineIndex {
	lines := lineIndex{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

func (l lineIndex) position(idx ast.Idx) Position {
	if idx <= 0 {
		return Position{}
	}
	offset := idx.Offset()
	line := sort.Search(len(l), func(i int) bool { return l[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Position{Line: line + 1, Column: offset - l[line] + 1}
}

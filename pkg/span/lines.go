package span

import "sort"

// LineIndex maps byte offsets to 1-based line and column positions.
// Reporters use it to print positions; the engine itself only deals in offsets.
type LineIndex struct {
	// starts holds the byte offset of the first character of each line.
	starts []int
	length int
}

// NewLineIndex builds a line index for the given text.
// Both LF and CRLF line endings are handled; the index counts bytes.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, length: len(text)}
}

// LineCount returns the number of lines in the indexed text.
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// Position converts a byte offset to a 1-based line and column.
// Offsets past the end of the text clamp to the last position.
func (li *LineIndex) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > li.length {
		offset = li.length
	}
	// First line start strictly greater than offset; the line is the one before.
	idx := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	})
	line = idx // starts[idx-1] <= offset, lines are 1-based
	col = offset - li.starts[idx-1] + 1
	return line, col
}

// LineRange returns the byte range of the 1-based line, excluding the
// trailing newline. Returns an empty range for out-of-range lines.
func (li *LineIndex) LineRange(line int) Range {
	if line < 1 || line > len(li.starts) {
		return Range{}
	}
	start := li.starts[line-1]
	end := li.length
	if line < len(li.starts) {
		end = li.starts[line] - 1 // drop the '\n'; CRLF keeps the '\r'
	}
	return Range{Start: start, End: end}
}

package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	r := Range{Start: 3, End: 8}

	assert.Equal(t, 5, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(8))
	assert.True(t, r.Covers(Range{Start: 4, End: 8}))
	assert.False(t, r.Covers(Range{Start: 2, End: 5}))
	assert.True(t, Range{Start: 1, End: 1}.IsEmpty())
}

func TestStyleTagPriorityLadder(t *testing.T) {
	// The ordering of the priority ladder is load-bearing for the combiner.
	ladder := []StyleTag{
		StyleHeading,
		StyleHTMLTag,
		StyleTable,
		StyleYAMLKey,
		StyleYAMLComment,
		StyleCSSProperty,
		StylePlaceholder,
		StyleEmoji,
		StylePageBreak,
		StyleHTMLComment,
		StyleSearchMatch,
		StyleDesignOverlay,
	}

	for i := 1; i < len(ladder); i++ {
		assert.Less(t, ladder[i-1].Priority(), ladder[i].Priority(),
			"expected %v < %v", ladder[i-1], ladder[i])
	}
}

func TestStyleTagLintChannel(t *testing.T) {
	assert.True(t, StyleLintError.IsLint())
	assert.True(t, StyleLintWarning.IsLint())
	assert.False(t, StyleHeading.IsLint())

	// Lint tags never compete for the color slot.
	assert.Equal(t, uint8(0), StyleLintError.Priority())
	assert.Equal(t, uint8(0), StyleLintWarning.Priority())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "unclosed-brace", KindUnclosedBrace.String())
	assert.Equal(t, "missing-css-class", KindMissingCssClass.String())
	assert.Equal(t, "unknown", ErrorKind(200).String())
}

func TestDefaultSeverity(t *testing.T) {
	assert.Equal(t, SeverityWarning, KindMissingBlankLine.DefaultSeverity())
	assert.Equal(t, SeverityWarning, KindMissingCssClass.DefaultSeverity())
	assert.Equal(t, SeverityError, KindUnclosedOpening.DefaultSeverity())
	assert.Equal(t, SeverityError, KindRedundantBrace.DefaultSeverity())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name    string
		kind    ErrorKind
		context string
		want    string
	}{
		{
			name:    "unclosed opening tag",
			kind:    KindUnclosedOpening,
			context: "div",
			want:    "Opening tag <div> is never closed",
		},
		{
			name:    "redundant closing tag",
			kind:    KindRedundantClosing,
			context: "p",
			want:    "Closing tag </p> has no matching opening tag",
		},
		{
			name:    "missing colon in yaml",
			kind:    KindMissingColon,
			context: "yaml",
			want:    "Expected 'key: value' but found no ':'",
		},
		{
			name:    "missing colon in css",
			kind:    KindMissingColon,
			context: "css-rule",
			want:    "CSS declaration is missing ':' between property and value",
		},
		{
			name:    "at-rule missing prefix",
			kind:    KindMalformedTag,
			context: "@keyframes",
			want:    "At-rule 'keyframes' is missing its '@' prefix",
		},
		{
			name:    "missing css class",
			kind:    KindMissingCssClass,
			context: "hero-banner",
			want:    "CSS class 'hero-banner' is not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Message(tt.kind, tt.context)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineIndexPosition(t *testing.T) {
	li := NewLineIndex("alpha\nbeta\r\ngamma")

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{5, 1, 6},  // the '\n' itself
		{6, 2, 1},  // 'b'
		{12, 3, 1}, // 'g' after CRLF
		{17, 3, 6}, // end of text
		{99, 3, 6}, // clamped
	}

	for _, tt := range tests {
		line, col := li.Position(tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d line", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d col", tt.offset)
	}
}

func TestLineIndexLineRange(t *testing.T) {
	text := "alpha\nbeta\ngamma"
	li := NewLineIndex(text)

	require.Equal(t, 3, li.LineCount())
	assert.Equal(t, "alpha", text[li.LineRange(1).Start:li.LineRange(1).End])
	assert.Equal(t, "beta", text[li.LineRange(2).Start:li.LineRange(2).End])
	assert.Equal(t, "gamma", text[li.LineRange(3).Start:li.LineRange(3).End])
	assert.True(t, li.LineRange(0).IsEmpty())
	assert.True(t, li.LineRange(4).IsEmpty())
}

func TestLineIndexEmptyText(t *testing.T) {
	li := NewLineIndex("")

	require.Equal(t, 1, li.LineCount())
	line, col := li.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

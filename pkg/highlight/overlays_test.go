package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goweave/pkg/span"
)

// spansOf filters the result down to one style for easier assertions.
func spansOf(spans []span.StyledSpan, style span.StyleTag) []span.StyledSpan {
	var out []span.StyledSpan
	for _, s := range spans {
		if s.Style == style {
			out = append(out, s)
		}
	}
	return out
}

func TestOverlays_HTMLTagAndAttribute(t *testing.T) {
	text := `before <div class="hero"> after`

	spans := Overlays(text)

	tags := spansOf(spans, span.StyleHTMLTag)
	require.Len(t, tags, 1)
	assert.Equal(t, `<div class="hero">`, text[tags[0].Start:tags[0].End])

	attrs := spansOf(spans, span.StyleHTMLAttribute)
	require.Len(t, attrs, 1)
	assert.Equal(t, ` class="hero"`, text[attrs[0].Start:attrs[0].End])
}

func TestOverlays_HTMLComment(t *testing.T) {
	text := "a <!-- note\nspanning --> b"

	comments := spansOf(Overlays(text), span.StyleHTMLComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "<!-- note\nspanning -->", text[comments[0].Start:comments[0].End])
}

func TestOverlays_Placeholder(t *testing.T) {
	text := "Dear {{first_name}}, welcome to {{company}}."

	got := spansOf(Overlays(text), span.StylePlaceholder)
	require.Len(t, got, 2)
	assert.Equal(t, "{{first_name}}", text[got[0].Start:got[0].End])
	assert.Equal(t, "{{company}}", text[got[1].Start:got[1].End])
}

func TestOverlays_PlaceholderNeverCrossesLines(t *testing.T) {
	got := spansOf(Overlays("{{open\nclose}}"), span.StylePlaceholder)
	assert.Empty(t, got)
}

func TestOverlays_Emoji(t *testing.T) {
	text := "done ✅ ship \U0001F680\U0001F680"

	got := spansOf(Overlays(text), span.StyleEmoji)
	require.Len(t, got, 2)
	assert.Equal(t, "✅", text[got[0].Start:got[0].End])
	assert.Equal(t, "\U0001F680\U0001F680", text[got[1].Start:got[1].End])
}

func TestOverlays_PageBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"newpage", "a\n\\newpage\nb", 1},
		{"pagebreak with trailing space", "a\n\\pagebreak \nb", 1},
		{"must own the line", "a \\newpage b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spansOf(Overlays(tt.text), span.StylePageBreak)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFromRanges(t *testing.T) {
	ranges := []span.Range{
		{Start: 2, End: 5},
		{Start: 9, End: 9},
		{Start: -1, End: 4},
		{Start: 7, End: 8},
	}

	got := FromRanges(span.StyleSearchMatch, ranges)

	want := []span.StyledSpan{
		{Style: span.StyleSearchMatch, Start: 2, End: 5},
		{Style: span.StyleSearchMatch, Start: 7, End: 8},
	}
	assert.Equal(t, want, got)

	assert.Nil(t, FromRanges(span.StyleSearchMatch, nil))
}

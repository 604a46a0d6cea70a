package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goweave/pkg/span"
)

func TestCombine_PriorityLadder(t *testing.T) {
	colors := []span.StyledSpan{
		{Style: span.StyleHeading, Start: 0, End: 10},
		{Style: span.StyleHTMLTag, Start: 4, End: 8},
	}

	got := Combine(colors, nil)

	want := []Span{
		{Start: 0, End: 4, Style: span.StyleHeading},
		{Start: 4, End: 8, Style: span.StyleHTMLTag},
		{Start: 8, End: 10, Style: span.StyleHeading},
	}
	assert.Equal(t, want, got)
}

func TestCombine_EqualPriorityInnerWins(t *testing.T) {
	// Attribute spans nest inside their tag span at the same priority.
	colors := []span.StyledSpan{
		{Style: span.StyleHTMLTag, Start: 0, End: 10},
		{Style: span.StyleHTMLAttribute, Start: 3, End: 8},
	}

	got := Combine(colors, nil)

	want := []Span{
		{Start: 0, End: 3, Style: span.StyleHTMLTag},
		{Start: 3, End: 8, Style: span.StyleHTMLAttribute},
		{Start: 8, End: 10, Style: span.StyleHTMLTag},
	}
	assert.Equal(t, want, got)
}

func TestCombine_LintChannelIndependent(t *testing.T) {
	// Search-match sits near the top of the ladder; the diagnostic must
	// still attach underneath it.
	colors := []span.StyledSpan{
		{Style: span.StyleSearchMatch, Start: 0, End: 10},
	}
	diags := []span.Diagnostic{
		{Start: 2, End: 4, Kind: span.KindMalformedTag, Context: "div"},
	}

	got := Combine(colors, diags)

	want := []Span{
		{Start: 0, End: 2, Style: span.StyleSearchMatch},
		{Start: 2, End: 4, Style: span.StyleSearchMatch, Lint: span.StyleLintError},
		{Start: 4, End: 10, Style: span.StyleSearchMatch},
	}
	assert.Equal(t, want, got)
}

func TestCombine_LintOnly(t *testing.T) {
	diags := []span.Diagnostic{
		{Start: 5, End: 9, Kind: span.KindUnclosedCodeBlock},
	}

	got := Combine(nil, diags)

	want := []Span{
		{Start: 5, End: 9, Lint: span.StyleLintError},
	}
	assert.Equal(t, want, got)
}

func TestCombine_ErrorBeatsWarning(t *testing.T) {
	diags := []span.Diagnostic{
		{Start: 0, End: 10, Kind: span.KindMissingBlankLine, Context: "div"},
		{Start: 3, End: 6, Kind: span.KindMalformedTag},
	}

	got := Combine(nil, diags)

	want := []Span{
		{Start: 0, End: 3, Lint: span.StyleLintWarning},
		{Start: 3, End: 6, Lint: span.StyleLintError},
		{Start: 6, End: 10, Lint: span.StyleLintWarning},
	}
	assert.Equal(t, want, got)
}

func TestCombine_MergesIdenticalNeighbors(t *testing.T) {
	colors := []span.StyledSpan{
		{Style: span.StyleCodeBlock, Start: 0, End: 5},
		{Style: span.StyleCodeBlock, Start: 5, End: 12},
	}

	got := Combine(colors, nil)

	want := []Span{
		{Start: 0, End: 12, Style: span.StyleCodeBlock},
	}
	assert.Equal(t, want, got)
}

func TestCombine_DropsInvalidSpans(t *testing.T) {
	colors := []span.StyledSpan{
		{Style: span.StyleHeading, Start: 4, End: 4},
		{Style: span.StyleHeading, Start: -1, End: 3},
		{Style: span.StyleLintError, Start: 0, End: 3},
	}

	assert.Empty(t, Combine(colors, nil))
}

func TestCombine_Deterministic(t *testing.T) {
	colors := []span.StyledSpan{
		{Style: span.StyleHeading, Start: 0, End: 20},
		{Style: span.StyleHTMLTag, Start: 2, End: 12},
		{Style: span.StyleHTMLAttribute, Start: 4, End: 10},
		{Style: span.StyleEmoji, Start: 8, End: 9},
		{Style: span.StyleTable, Start: 12, End: 18},
	}
	diags := []span.Diagnostic{
		{Start: 3, End: 7, Kind: span.KindMissingColon, Context: "css-rule"},
		{Start: 15, End: 16, Kind: span.KindMissingCssClass, Context: "hero"},
	}

	first := Combine(colors, diags)
	require.NotEmpty(t, first)

	// Same inputs, permuted order. The output must be byte-identical.
	permuted := []span.StyledSpan{colors[4], colors[2], colors[0], colors[3], colors[1]}
	reversedDiags := []span.Diagnostic{diags[1], diags[0]}

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Combine(colors, diags))
		assert.Equal(t, first, Combine(permuted, reversedDiags))
	}
}

func TestCombine_Empty(t *testing.T) {
	assert.Nil(t, Combine(nil, nil))
}

package highlight

import (
	"sort"

	"github.com/yaklabco/goweave/pkg/span"
)

// Span is a combined output interval: exactly one color tag and at most
// one lint tag. Lint is span.StyleNone when no diagnostic covers the
// interval, and Style is span.StyleNone for intervals only a diagnostic
// covers.
type Span struct {
	Start int
	End   int
	Style span.StyleTag
	Lint  span.StyleTag
}

// Combine resolves overlapping color spans and diagnostics into an
// ordered, non-overlapping sequence. For every minimal interval between
// span boundaries the highest-priority covering color span wins; ties go
// to the later-starting (more deeply nested) span, then to the higher tag
// value, so the result never depends on input order. Diagnostics ride a
// separate channel: they attach as lint tags and never displace a color.
func Combine(colors []span.StyledSpan, diags []span.Diagnostic) []Span {
	colors = validColors(colors)
	lints := lintSpans(diags)
	if len(colors) == 0 && len(lints) == 0 {
		return nil
	}

	bounds := boundaries(colors, lints)

	var out []Span
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		cur := Span{
			Start: start,
			End:   end,
			Style: pickColor(colors, start, end),
			Lint:  pickLint(lints, start, end),
		}
		if cur.Style == span.StyleNone && cur.Lint == span.StyleNone {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == cur.Start &&
			out[n-1].Style == cur.Style && out[n-1].Lint == cur.Lint {
			out[n-1].End = cur.End
			continue
		}
		out = append(out, cur)
	}
	return out
}

func validColors(colors []span.StyledSpan) []span.StyledSpan {
	valid := make([]span.StyledSpan, 0, len(colors))
	for _, s := range colors {
		if s.Start < 0 || s.End <= s.Start || s.Style == span.StyleNone || s.Style.IsLint() {
			continue
		}
		valid = append(valid, s)
	}
	sort.Slice(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		if valid[i].End != valid[j].End {
			return valid[i].End < valid[j].End
		}
		return valid[i].Style < valid[j].Style
	})
	return valid
}

// lintSpans reinterprets diagnostics as underline spans, split by
// severity.
func lintSpans(diags []span.Diagnostic) []span.StyledSpan {
	spans := make([]span.StyledSpan, 0, len(diags))
	for _, d := range diags {
		if d.Start < 0 || d.End <= d.Start {
			continue
		}
		style := span.StyleLintWarning
		if d.Kind.DefaultSeverity() == span.SeverityError {
			style = span.StyleLintError
		}
		spans = append(spans, span.StyledSpan{Style: style, Start: d.Start, End: d.End})
	}
	return spans
}

func boundaries(groups ...[]span.StyledSpan) []int {
	var bounds []int
	for _, spans := range groups {
		for _, s := range spans {
			bounds = append(bounds, s.Start, s.End)
		}
	}
	sort.Ints(bounds)

	dedup := bounds[:0]
	for i, b := range bounds {
		if i == 0 || b != bounds[i-1] {
			dedup = append(dedup, b)
		}
	}
	return dedup
}

// pickColor returns the winning color tag for an interval, or StyleNone.
func pickColor(colors []span.StyledSpan, start, end int) span.StyleTag {
	var best span.StyledSpan
	for _, s := range colors {
		if s.Start > start {
			break
		}
		if s.End < end {
			continue
		}
		if best.Style == span.StyleNone {
			best = s
			continue
		}
		switch {
		case s.Style.Priority() > best.Style.Priority():
			best = s
		case s.Style.Priority() < best.Style.Priority():
		case s.Start > best.Start:
			best = s
		case s.Start == best.Start && s.Style > best.Style:
			best = s
		}
	}
	return best.Style
}

// pickLint returns the strongest lint tag covering the interval.
func pickLint(lints []span.StyledSpan, start, end int) span.StyleTag {
	found := span.StyleNone
	for _, s := range lints {
		if s.Start <= start && s.End >= end {
			if s.Style == span.StyleLintError {
				return span.StyleLintError
			}
			found = span.StyleLintWarning
		}
	}
	return found
}

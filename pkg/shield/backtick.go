package shield

import "github.com/yaklabco/goweave/pkg/span"

// maskBackticks finds backtick-delimited regions in buf and masks them,
// reporting opener runs that never find a matching closer.
//
// The matching rule: an opener run of length k closes at the next literal
// run of exactly k backticks. Exact-count matching beats proximity, so a
// triple-backtick opener skips over single backticks while searching.
// An unmatched opener masks only itself, which keeps the rest of the line
// visible to later passes instead of cascading false positives.
func maskBackticks(buf []byte) []span.Diagnostic {
	var diags []span.Diagnostic

	i := 0
	for i < len(buf) {
		if buf[i] != '`' || escaped(buf, i) {
			i++
			continue
		}

		runEnd := backtickRunEnd(buf, i)
		k := runEnd - i

		closer := findCloser(buf, runEnd, k)
		if closer >= 0 {
			maskRange(buf, i, closer+k)
			i = closer + k
			continue
		}

		// No closer: report the whole line, mask only the opener run.
		lineStart, lineEnd := lineBounds(buf, i)
		diags = append(diags, span.Diagnostic{
			Start: lineStart,
			End:   lineEnd,
			Kind:  span.KindUnclosedCodeBlock,
		})
		maskRange(buf, i, runEnd)
		i = runEnd
	}

	return diags
}

// findCloser returns the start offset of the next run of exactly k
// backticks at or after from, or -1 if none exists.
func findCloser(buf []byte, from, k int) int {
	i := from
	for i < len(buf) {
		if buf[i] != '`' || escaped(buf, i) {
			i++
			continue
		}
		runEnd := backtickRunEnd(buf, i)
		if runEnd-i == k {
			return i
		}
		i = runEnd
	}
	return -1
}

// backtickRunEnd returns the offset one past the run of backticks at i.
func backtickRunEnd(buf []byte, i int) int {
	end := i
	for end < len(buf) && buf[end] == '`' {
		end++
	}
	return end
}

// escaped reports whether the character at i is preceded by an odd number
// of backslashes.
func escaped(buf []byte, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && buf[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

package span

import "github.com/dshills/richspan/internal/engine/textrun"

// Runs reconstructs the persisted run sequence from the live spans and
// the final (possibly whitespace-trimmed) text. Span offsets shift
// left by trimOffset and clamp to the bounds of finalText; spans left
// degenerate by the clamping are dropped. Gaps between spans become
// plain runs, and adjacent runs with identical attributes merge.
//
// Concatenating the text of the returned runs always reproduces
// finalText exactly. With no spans tracked (or the engine never
// activated), the result is a single plain run of the whole text.
func (e *Engine) Runs(finalText string, trimOffset int) []textrun.TextRun {
	runes := []rune(finalText)
	n := len(runes)

	plain := []textrun.TextRun{{Text: finalText}}
	if !e.active || len(e.spans) == 0 {
		return plain
	}

	var out []textrun.TextRun
	prev := 0
	for _, s := range e.spans {
		start := s.Start - trimOffset
		end := s.End - trimOffset
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		if start < prev {
			start = prev
		}
		if end <= start || start >= n {
			continue
		}
		if start > prev {
			out = append(out, textrun.TextRun{Text: string(runes[prev:start])})
		}
		out = append(out, attributesRun(string(runes[start:end]), s.Attrs))
		prev = end
	}
	if prev < n {
		out = append(out, textrun.TextRun{Text: string(runes[prev:])})
	}

	if len(out) == 0 {
		return plain
	}
	return textrun.Merge(out)
}

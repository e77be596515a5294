package span

import "unicode"

// AutoLink inspects the word that ends at boundary in the post-edit
// text and, if a registered matcher recognizes it, inserts a link span
// over it. The host calls this when a single space or newline was
// inserted with nothing replaced; text is the full buffer after that
// insert and boundary is the offset of the inserted separator.
//
// Idempotent: a candidate range already covered by a link span is left
// alone, so repeated boundary events never duplicate or split an
// existing link.
func (e *Engine) AutoLink(text string, boundary int) {
	runes := []rune(text)
	if boundary < 0 {
		boundary = 0
	}
	if boundary > len(runes) {
		boundary = len(runes)
	}

	start := boundary
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	if start == boundary {
		return
	}

	url, ok := e.links.Match(string(runes[start:boundary]))
	if !ok {
		return
	}

	for _, s := range e.spans {
		if s.Attrs.Link != "" && s.Covers(start, boundary) {
			return
		}
	}

	e.InsertSpan(start, boundary, Attributes{Link: url})
}

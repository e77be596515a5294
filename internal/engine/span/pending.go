package span

// Pending is an ephemeral link edit in progress: the range the link
// will cover and the text that was selected when the user asked to
// insert a link. At most one exists per engine, and it is never
// persisted.
type Pending struct {
	StartOffset  int
	EndOffset    int
	SelectedText string
}

// BeginHyperlink records a pending link edit over [start, end) with
// the given selected text. A collapsed selection (start == end) means
// the link display text does not exist yet; CompleteHyperlink sizes
// the span from the display text in that case. Any previous pending
// edit is replaced.
func (e *Engine) BeginHyperlink(start, end int, selected string) {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	e.pending = &Pending{
		StartOffset:  start,
		EndOffset:    end,
		SelectedText: selected,
	}
}

// PendingHyperlink returns the link edit in progress, if any.
func (e *Engine) PendingHyperlink() (Pending, bool) {
	if e.pending == nil {
		return Pending{}, false
	}
	return *e.pending, true
}

// CompleteHyperlink commits the pending link edit as a span carrying
// url. With a collapsed pending selection the span covers the display
// text the host inserted at the pending offset. A no-op when nothing
// is pending or url is empty (treated as cancellation).
func (e *Engine) CompleteHyperlink(url, displayText string) {
	p := e.pending
	e.pending = nil
	if p == nil || url == "" {
		return
	}

	start, end := p.StartOffset, p.EndOffset
	if start == end {
		end = start + len([]rune(displayText))
	}
	e.InsertSpan(start, end, Attributes{Link: url})
}

// CancelHyperlink discards the pending link edit, if any.
func (e *Engine) CancelHyperlink() {
	e.pending = nil
}

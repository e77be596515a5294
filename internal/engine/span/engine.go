package span

import (
	"sort"

	"github.com/dshills/richspan/internal/engine/textrun"
	"github.com/dshills/richspan/internal/linkify"
)

// Option configures an Engine.
type Option func(*Engine)

// WithMatchers sets the auto-link matcher registry.
func WithMatchers(reg *linkify.Registry) Option {
	return func(e *Engine) {
		e.links = reg
	}
}

// Engine tracks formatting and hyperlink metadata anchored to rune
// ranges of a live-edited text buffer. It keeps the ranges consistent
// as the buffer is mutated and converts between the persisted run
// representation and the live offset-indexed spans.
//
// An Engine is owned by exactly one edit session and is not
// goroutine-safe: all mutations arrive synchronously from the host's
// single change-event stream. Construct one per session and Reset (or
// discard) it when the session ends.
//
// The engine never fails. Malformed input is normalized by clamping
// offsets and discarding degenerate spans, because it is a best-effort
// metadata layer that must stay visually consistent even when the host
// buffer and the engine momentarily disagree about lengths.
type Engine struct {
	spans   []Span
	active  bool
	pending *Pending
	links   *linkify.Registry
}

// New creates an inactive engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		links: linkify.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Active returns true once the engine has been seeded or has had a
// span inserted, and false again after Reset.
func (e *Engine) Active() bool {
	return e.active
}

// Initialize seeds the engine from the persisted run sequence.
// Span i covers the rune range occupied by run i's text; runs with no
// attributes are still tracked so the sequence round-trips. An empty
// sequence yields an active engine with no spans.
func (e *Engine) Initialize(runs []textrun.TextRun) {
	e.spans = e.spans[:0]
	e.active = true
	e.pending = nil

	offset := 0
	for _, r := range runs {
		length := len([]rune(r.Text))
		if length > 0 {
			e.spans = append(e.spans, Span{
				Start: offset,
				End:   offset + length,
				Attrs: runAttributes(r),
			})
		}
		offset += length
	}
}

// Spans returns a copy of the tracked spans in ascending Start order.
func (e *Engine) Spans() []Span {
	out := make([]Span, len(e.spans))
	copy(out, e.spans)
	return out
}

// SpanCount returns the number of tracked spans.
func (e *Engine) SpanCount() int {
	return len(e.spans)
}

// ApplyEdits adjusts every span for a batch of edit deltas. Deltas are
// given in pre-edit coordinates, so the batch is applied in descending
// RangeOffset order; see sortDescending. Spans reduced to zero or
// negative length are dropped. The batch is atomic with respect to the
// engine: no query runs between individual deltas.
func (e *Engine) ApplyEdits(deltas []Delta) {
	if len(deltas) == 0 {
		return
	}
	for _, d := range sortDescending(deltas) {
		e.applyDelta(d)
	}
}

func (e *Engine) applyDelta(d Delta) {
	kept := e.spans[:0]
	for _, s := range e.spans {
		next, dropped := transformSpan(s, d)
		if dropped || next.End <= next.Start {
			continue
		}
		kept = append(kept, next)
	}
	e.spans = kept
}

// InsertSpan adds a span over [start, end) with the given attributes,
// resolving overlaps with existing spans deterministically: spans
// outside the new range are kept, spans inside it are superseded, a
// span containing it is split in two, and spans crossing one edge are
// truncated to that edge. Activates the engine if needed.
func (e *Engine) InsertSpan(start, end int, attrs Attributes) {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return
	}
	e.active = true

	kept := make([]Span, 0, len(e.spans)+2)
	for _, s := range e.spans {
		switch {
		case !s.Overlaps(start, end):
			kept = append(kept, s)

		case s.Start >= start && s.End <= end:
			// Fully inside the new range: superseded.

		case s.Start < start && s.End > end:
			// Fully contains the new range: split around it.
			kept = append(kept,
				Span{Start: s.Start, End: start, Attrs: s.Attrs},
				Span{Start: end, End: s.End, Attrs: s.Attrs},
			)

		case s.Start < start:
			// Overlaps only the new range's start.
			kept = append(kept, Span{Start: s.Start, End: start, Attrs: s.Attrs})

		default:
			// Overlaps only the new range's end.
			kept = append(kept, Span{Start: end, End: s.End, Attrs: s.Attrs})
		}
	}

	kept = append(kept, Span{Start: start, End: end, Attrs: attrs})
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Start < kept[j].Start
	})
	e.spans = kept
}

// SpanAt returns the link-carrying span containing the given offset,
// if any. Spans without a link never match; this is the hit test for
// hover and click. Linear scan: span counts are tens, not thousands.
func (e *Engine) SpanAt(offset int) (Span, bool) {
	for _, s := range e.spans {
		if s.Attrs.Link != "" && s.Contains(offset) {
			return s, true
		}
	}
	return Span{}, false
}

// LinkSpans returns the tracked spans that carry a link, in order.
func (e *Engine) LinkSpans() []Span {
	var out []Span
	for _, s := range e.spans {
		if s.Attrs.Link != "" {
			out = append(out, s)
		}
	}
	return out
}

// HasFormatting returns true if any span carries at least one
// attribute. The caller uses this to decide whether the cell persists
// as rich text or as a plain string.
func (e *Engine) HasFormatting() bool {
	for _, s := range e.spans {
		if !s.Attrs.IsZero() {
			return true
		}
	}
	return false
}

// Reset deactivates the engine and discards all spans and any pending
// hyperlink. Idempotent.
func (e *Engine) Reset() {
	e.spans = nil
	e.active = false
	e.pending = nil
}

func runAttributes(r textrun.TextRun) Attributes {
	return Attributes{
		Link:          r.Link,
		Bold:          r.Bold,
		Italic:        r.Italic,
		Underline:     r.Underline,
		StrikeThrough: r.StrikeThrough,
		TextColor:     r.TextColor,
	}
}

func attributesRun(text string, a Attributes) textrun.TextRun {
	return textrun.TextRun{
		Text:          text,
		Link:          a.Link,
		Bold:          a.Bold,
		Italic:        a.Italic,
		Underline:     a.Underline,
		StrikeThrough: a.StrikeThrough,
		TextColor:     a.TextColor,
	}
}

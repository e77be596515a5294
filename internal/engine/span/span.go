package span

import "fmt"

// Attributes is the formatting carried by a span. The zero value means
// plain text. An attribute that was never set and one that was
// explicitly cleared are the same normalized state.
type Attributes struct {
	Link          string
	Bold          bool
	Italic        bool
	Underline     bool
	StrikeThrough bool
	TextColor     string
}

// IsZero returns true if no attribute is set.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Equal returns true if a and b carry identical attributes.
func (a Attributes) Equal(b Attributes) bool {
	return a == b
}

// Span is a half-open rune-offset interval [Start, End) over the text
// buffer, with the attributes that apply to it. End > Start for every
// span the engine retains.
type Span struct {
	Start int
	End   int
	Attrs Attributes
}

// NewSpan creates a span over [start, end) with the given attributes.
func NewSpan(start, end int, attrs Attributes) Span {
	return Span{Start: start, End: end, Attrs: attrs}
}

// Len returns the length of the span in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if the given offset is within [Start, End).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Covers returns true if [start, end) lies entirely within the span.
func (s Span) Covers(start, end int) bool {
	return s.Start <= start && s.End >= end
}

// Overlaps returns true if the span overlaps [start, end).
func (s Span) Overlaps(start, end int) bool {
	return s.Start < end && start < s.End
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Attrs.Link != "" {
		return fmt.Sprintf("[%d:%d) link=%s", s.Start, s.End, s.Attrs.Link)
	}
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

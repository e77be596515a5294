package span

import (
	"fmt"
	"sort"
)

// Delta describes one contiguous replacement in the text buffer, in
// pre-edit rune coordinates: the runes in
// [RangeOffset, RangeOffset+RangeLength) are removed and
// InsertedLength runes are inserted at RangeOffset.
type Delta struct {
	RangeOffset    int
	RangeLength    int
	InsertedLength int
}

// NewInsertDelta creates a delta for a pure insertion at offset.
func NewInsertDelta(offset, length int) Delta {
	return Delta{RangeOffset: offset, InsertedLength: length}
}

// NewDeleteDelta creates a delta for a pure deletion of [start, end).
func NewDeleteDelta(start, end int) Delta {
	return Delta{RangeOffset: start, RangeLength: end - start}
}

// ChangeEnd returns the pre-edit offset just past the replaced range.
func (d Delta) ChangeEnd() int {
	return d.RangeOffset + d.RangeLength
}

// Shift returns the change in buffer length caused by this delta.
// Positive means the buffer grew, negative means it shrank.
func (d Delta) Shift() int {
	return d.InsertedLength - d.RangeLength
}

// IsInsert returns true if this is a pure insertion.
func (d Delta) IsInsert() bool {
	return d.RangeLength == 0 && d.InsertedLength > 0
}

// IsDelete returns true if this is a pure deletion.
func (d Delta) IsDelete() bool {
	return d.RangeLength > 0 && d.InsertedLength == 0
}

// String returns a human-readable representation of the delta.
func (d Delta) String() string {
	if d.IsInsert() {
		return fmt.Sprintf("Insert(%d, +%d)", d.RangeOffset, d.InsertedLength)
	}
	if d.IsDelete() {
		return fmt.Sprintf("Delete[%d:%d)", d.RangeOffset, d.ChangeEnd())
	}
	return fmt.Sprintf("Replace[%d:%d) with %d", d.RangeOffset, d.ChangeEnd(), d.InsertedLength)
}

// sortDescending returns a copy of deltas ordered by descending
// RangeOffset. Deltas arrive in pre-edit coordinates, so a batch must
// be applied right-to-left: applying a low-offset delta first would
// shift every span behind the not-yet-applied deltas and invalidate
// their coordinates. This ordering is a correctness requirement, not
// an optimization.
func sortDescending(deltas []Delta) []Delta {
	out := make([]Delta, len(deltas))
	copy(out, deltas)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RangeOffset > out[j].RangeOffset
	})
	return out
}

// transformSpan maps a span through a single delta. It returns the
// transformed span and false if the span survives, or true if the edit
// swallowed it entirely. Exactly one of six disjoint cases applies,
// checked in priority order.
func transformSpan(s Span, d Delta) (Span, bool) {
	shift := d.Shift()
	changeEnd := d.ChangeEnd()

	switch {
	case s.End <= d.RangeOffset:
		// Entirely before the edit.
		return s, false

	case s.Start >= changeEnd:
		// Entirely after the edit: both bounds shift.
		s.Start += shift
		s.End += shift
		return s, false

	case d.RangeOffset >= s.Start && changeEnd <= s.End:
		// Edit entirely inside the span: only the end moves.
		s.End += shift
		return s, false

	case d.RangeOffset < s.Start && changeEnd > s.Start && changeEnd <= s.End:
		// Edit overlaps the span's start: the span now begins right
		// after the inserted text.
		s.Start = d.RangeOffset + d.InsertedLength
		s.End += shift
		return s, false

	case d.RangeOffset >= s.Start && d.RangeOffset < s.End && changeEnd > s.End:
		// Edit overlaps the span's end: truncate to before the edit.
		s.End = d.RangeOffset
		return s, false

	default:
		// Edit encompasses the span.
		return Span{}, true
	}
}

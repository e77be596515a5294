// Package span tracks hyperlink and formatting metadata anchored to
// rune ranges of a live-edited text buffer.
//
// The engine maintains a list of disjoint, ordered half-open spans
// over the buffer. As the host editor reports edit deltas, span
// boundaries are adjusted incrementally so the metadata keeps pointing
// at the same text. Spans can be queried by offset, inserted with
// deterministic overlap resolution, and serialized back to the flat
// run representation used for persistence.
//
// # Invariants
//
//   - Spans are sorted ascending by Start and never overlap at any
//     stable point; overlaps introduced by InsertSpan are resolved
//     immediately by split, truncate, or delete.
//   - End > Start always; a span reduced further by an edit is dropped.
//   - Gaps between spans are implicit plain text and are not stored.
//
// # Usage
//
// One engine per edit session:
//
//	eng := span.New()
//	eng.Initialize(runs)            // seed from persisted runs
//	eng.ApplyEdits(deltas)          // per keystroke batch
//	eng.AutoLink(text, boundary)    // after a space/newline insert
//	runs = eng.Runs(finalText, 0)   // on commit
//	eng.Reset()                     // session over
//
// All coordinates are rune offsets. The host owns conversion between
// its native positions (line/column, UTF-16 units) and rune offsets.
//
// The engine performs no I/O and returns no errors: out-of-range
// offsets are clamped and degenerate spans discarded, because a fault
// here would corrupt the editing experience with no recovery path.
// It is not goroutine-safe; a session's change events arrive from a
// single stream.
package span

package span

import (
	"testing"

	"github.com/dshills/richspan/internal/engine/textrun"
)

// TestRuns tests serialization back to persisted runs
func TestRuns(t *testing.T) {
	t.Run("no spans yields single plain run", func(t *testing.T) {
		e := New()
		runs := e.Runs("hello world", 0)
		if len(runs) != 1 {
			t.Fatalf("expected 1 run, got %d", len(runs))
		}
		if runs[0].Text != "hello world" || !runs[0].IsPlain() {
			t.Errorf("expected plain run of full text, got %+v", runs[0])
		}
	})

	t.Run("round trip preserves text and boundaries", func(t *testing.T) {
		in := []textrun.TextRun{
			{Text: "plain "},
			{Text: "bold", Bold: true},
			{Text: " then "},
			{Text: "a link", Link: "https://example.com"},
			{Text: " tail"},
		}
		text := textrun.Concat(in)

		e := New()
		e.Initialize(in)
		out := e.Runs(text, 0)

		if got := textrun.Concat(out); got != text {
			t.Fatalf("round trip text mismatch: %q != %q", got, text)
		}

		// Attribute boundaries survive: merging is allowed, splitting
		// is not, and the plain runs here already alternate with
		// attributed ones so the shape is identical.
		if len(out) != len(in) {
			t.Fatalf("expected %d runs, got %d: %+v", len(in), len(out), out)
		}
		for i := range in {
			if out[i] != in[i] {
				t.Errorf("run %d: expected %+v, got %+v", i, in[i], out[i])
			}
		}
	})

	t.Run("gaps become plain runs", func(t *testing.T) {
		e := New()
		e.InsertSpan(6, 10, Attributes{Link: "https://x.test"})
		runs := e.Runs("visit here today", 0)

		want := []textrun.TextRun{
			{Text: "visit "},
			{Text: "here", Link: "https://x.test"},
			{Text: " today"},
		}
		if len(runs) != len(want) {
			t.Fatalf("expected %d runs, got %d: %+v", len(want), len(runs), runs)
		}
		for i, w := range want {
			if runs[i] != w {
				t.Errorf("run %d: expected %+v, got %+v", i, w, runs[i])
			}
		}
	})

	t.Run("trim offset shifts and clamps", func(t *testing.T) {
		// Buffer was "  abcdef" with a bold span over the leading
		// whitespace and two letters; the persisted text is trimmed.
		e := New()
		e.InsertSpan(0, 4, Attributes{Bold: true})
		runs := e.Runs("abcdef", 2)

		want := []textrun.TextRun{
			{Text: "ab", Bold: true},
			{Text: "cdef"},
		}
		if len(runs) != len(want) {
			t.Fatalf("expected %d runs, got %d: %+v", len(want), len(runs), runs)
		}
		for i, w := range want {
			if runs[i] != w {
				t.Errorf("run %d: expected %+v, got %+v", i, w, runs[i])
			}
		}
	})

	t.Run("spans beyond final text are dropped", func(t *testing.T) {
		e := New()
		e.InsertSpan(2, 4, Attributes{Italic: true})
		e.InsertSpan(10, 14, Attributes{Bold: true})
		runs := e.Runs("abcde", 0)

		if got := textrun.Concat(runs); got != "abcde" {
			t.Fatalf("round trip text mismatch: %q", got)
		}
		for _, r := range runs {
			if r.Bold {
				t.Errorf("out-of-range bold span should be dropped, got %+v", r)
			}
		}
	})

	t.Run("end clamps to final length", func(t *testing.T) {
		e := New()
		e.InsertSpan(3, 99, Attributes{Underline: true})
		runs := e.Runs("abcdef", 0)

		want := []textrun.TextRun{
			{Text: "abc"},
			{Text: "def", Underline: true},
		}
		if len(runs) != len(want) {
			t.Fatalf("expected %d runs, got %d: %+v", len(want), len(runs), runs)
		}
		for i, w := range want {
			if runs[i] != w {
				t.Errorf("run %d: expected %+v, got %+v", i, w, runs[i])
			}
		}
	})

	t.Run("adjacent identical attributes merge", func(t *testing.T) {
		e := New()
		e.Initialize([]textrun.TextRun{
			{Text: "ab", Bold: true},
			{Text: "cd", Bold: true},
		})
		runs := e.Runs("abcd", 0)
		if len(runs) != 1 {
			t.Fatalf("expected merged single run, got %+v", runs)
		}
		if runs[0].Text != "abcd" || !runs[0].Bold {
			t.Errorf("expected bold 'abcd', got %+v", runs[0])
		}
	})

	t.Run("multibyte text slices by rune", func(t *testing.T) {
		e := New()
		e.InsertSpan(0, 2, Attributes{Bold: true})
		runs := e.Runs("héllo", 0)

		if runs[0].Text != "hé" || !runs[0].Bold {
			t.Errorf("expected bold 'hé', got %+v", runs[0])
		}
		if got := textrun.Concat(runs); got != "héllo" {
			t.Errorf("round trip text mismatch: %q", got)
		}
	})

	t.Run("empty final text", func(t *testing.T) {
		e := New()
		e.InsertSpan(0, 5, Attributes{Bold: true})
		runs := e.Runs("", 0)
		if got := textrun.Concat(runs); got != "" {
			t.Errorf("expected empty concatenation, got %q", got)
		}
	})
}

package textrun

// TextRun is one element of the persisted rich-text representation:
// a literal piece of text plus the attributes that apply to all of it.
// A run with no attributes set is plain text.
type TextRun struct {
	Text          string
	Link          string
	Bold          bool
	Italic        bool
	Underline     bool
	StrikeThrough bool
	TextColor     string
}

// IsPlain returns true if the run carries no attributes.
func (r TextRun) IsPlain() bool {
	return r.Link == "" && !r.Bold && !r.Italic && !r.Underline &&
		!r.StrikeThrough && r.TextColor == ""
}

// SameAttributes returns true if r and other carry identical attributes,
// ignoring their text.
func (r TextRun) SameAttributes(other TextRun) bool {
	return r.Link == other.Link &&
		r.Bold == other.Bold &&
		r.Italic == other.Italic &&
		r.Underline == other.Underline &&
		r.StrikeThrough == other.StrikeThrough &&
		r.TextColor == other.TextColor
}

// Merge collapses adjacent runs with identical attributes into single runs
// and drops empty runs. The concatenated text is preserved exactly.
func Merge(runs []TextRun) []TextRun {
	var out []TextRun
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameAttributes(r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// Concat returns the concatenated text of all runs in order.
func Concat(runs []TextRun) string {
	var b []byte
	for _, r := range runs {
		b = append(b, r.Text...)
	}
	return string(b)
}

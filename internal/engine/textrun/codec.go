package textrun

import (
	"errors"
	"log"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformedRuns indicates the persisted payload is not valid JSON.
var ErrMalformedRuns = errors.New("malformed text run payload")

// Encode serializes runs to their persisted JSON form.
// Attributes at their zero value are omitted from the encoded object,
// keeping the persisted shape sparse.
func Encode(runs []TextRun) string {
	out := "[]"
	for _, r := range runs {
		obj := "{}"
		obj, _ = sjson.Set(obj, "text", r.Text)
		if r.Link != "" {
			obj, _ = sjson.Set(obj, "link", r.Link)
		}
		if r.Bold {
			obj, _ = sjson.Set(obj, "bold", true)
		}
		if r.Italic {
			obj, _ = sjson.Set(obj, "italic", true)
		}
		if r.Underline {
			obj, _ = sjson.Set(obj, "underline", true)
		}
		if r.StrikeThrough {
			obj, _ = sjson.Set(obj, "strikeThrough", true)
		}
		if r.TextColor != "" {
			obj, _ = sjson.Set(obj, "textColor", r.TextColor)
		}
		out, _ = sjson.SetRaw(out, "-1", obj)
	}
	return out
}

// Decode parses a persisted JSON payload into runs.
//
// The decoder is deliberately loose about attribute presence: null,
// absent, and zero-valued attributes all decode to the same normalized
// zero state. A bare JSON string decodes to a single plain run.
// Array elements that are not objects degrade to plain runs of their
// string form, with a diagnostic warning.
func Decode(data string) ([]TextRun, error) {
	if !gjson.Valid(data) {
		return nil, ErrMalformedRuns
	}
	v := gjson.Parse(data)
	if v.Type == gjson.String {
		return []TextRun{{Text: v.String()}}, nil
	}
	if !v.IsArray() {
		return nil, ErrMalformedRuns
	}
	var runs []TextRun
	for _, item := range v.Array() {
		if !item.IsObject() {
			log.Printf("textrun: unrecognized run element %s, treating as plain text", item.Type)
			runs = append(runs, TextRun{Text: item.String()})
			continue
		}
		runs = append(runs, TextRun{
			Text:          item.Get("text").String(),
			Link:          item.Get("link").String(),
			Bold:          item.Get("bold").Bool(),
			Italic:        item.Get("italic").Bool(),
			Underline:     item.Get("underline").Bool(),
			StrikeThrough: item.Get("strikeThrough").Bool(),
			TextColor:     item.Get("textColor").String(),
		})
	}
	return runs, nil
}

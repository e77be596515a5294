package decoration

import (
	"testing"

	"github.com/dshills/richspan/internal/engine/span"
)

// TestBuild tests decoration generation from spans
func TestBuild(t *testing.T) {
	spans := []span.Span{
		{Start: 0, End: 4, Attrs: span.Attributes{Bold: true}},
		{Start: 6, End: 19, Attrs: span.Attributes{Link: "https://x.com"}},
		{Start: 20, End: 25},
	}

	t.Run("only link spans decorate", func(t *testing.T) {
		decos := NewBuilder().Build(spans)
		if len(decos) != 1 {
			t.Fatalf("expected 1 decoration, got %d", len(decos))
		}
		d := decos[0]
		if d.StartOffset != 6 || d.EndOffset != 19 {
			t.Errorf("expected range [6:19), got [%d:%d)", d.StartOffset, d.EndOffset)
		}
		if d.StyleClass != StyleClassLink {
			t.Errorf("expected style class %q, got %q", StyleClassLink, d.StyleClass)
		}
		if d.TooltipText != "https://x.com" {
			t.Errorf("expected url tooltip, got %q", d.TooltipText)
		}
	})

	t.Run("no spans yields no decorations", func(t *testing.T) {
		if decos := NewBuilder().Build(nil); len(decos) != 0 {
			t.Errorf("expected none, got %v", decos)
		}
	})

	t.Run("options override class and tooltip", func(t *testing.T) {
		b := NewBuilder(
			WithStyleClass("custom-link"),
			WithTooltip(func(url string) string { return "open " + url }),
		)
		decos := b.Build(spans)
		if decos[0].StyleClass != "custom-link" {
			t.Errorf("expected custom class, got %q", decos[0].StyleClass)
		}
		if decos[0].TooltipText != "open https://x.com" {
			t.Errorf("expected custom tooltip, got %q", decos[0].TooltipText)
		}
	})
}

// TestNormalizeColor tests textColor canonicalization
func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#FF0000", "#ff0000", true},
		{"#ff0000", "#ff0000", true},
		{"#f00", "#ff0000", true},
		{"  #00ff00  ", "#00ff00", true},
		{"red", "", false},
		{"", "", false},
		{"#zzzzzz", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestHoverColor tests hover tinting
func TestHoverColor(t *testing.T) {
	t.Run("valid color lightens", func(t *testing.T) {
		got := HoverColor("#000000")
		if got == "#000000" {
			t.Error("hover color should differ from input")
		}
		if len(got) != 7 || got[0] != '#' {
			t.Errorf("expected #rrggbb form, got %q", got)
		}
	})

	t.Run("invalid color falls back", func(t *testing.T) {
		if got := HoverColor("nope"); got != DefaultLinkColor {
			t.Errorf("expected default link color, got %q", got)
		}
	})
}

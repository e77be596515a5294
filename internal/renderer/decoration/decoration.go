package decoration

import (
	"github.com/dshills/richspan/internal/engine/span"
)

// StyleClassLink is the style class attached to hyperlink decorations.
const StyleClassLink = "span-link"

// Decoration is a request to the host renderer: style the rune range
// [StartOffset, EndOffset) with StyleClass and show TooltipText on
// hover.
type Decoration struct {
	StartOffset int
	EndOffset   int
	StyleClass  string
	TooltipText string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithStyleClass overrides the style class used for link decorations.
func WithStyleClass(class string) BuilderOption {
	return func(b *Builder) {
		b.class = class
	}
}

// WithTooltip overrides how a link URL becomes tooltip text.
func WithTooltip(fn func(url string) string) BuilderOption {
	return func(b *Builder) {
		b.tooltip = fn
	}
}

// Builder turns the engine's spans into decoration requests. Only
// spans carrying a link decorate; formatting-only spans are the
// renderer's own concern via the run attributes.
type Builder struct {
	class   string
	tooltip func(url string) string
}

// NewBuilder creates a builder with the default link style class and a
// tooltip that shows the URL itself.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		class:   StyleClassLink,
		tooltip: func(url string) string { return url },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns one decoration per link span, in span order.
func (b *Builder) Build(spans []span.Span) []Decoration {
	var out []Decoration
	for _, s := range spans {
		if s.Attrs.Link == "" {
			continue
		}
		out = append(out, Decoration{
			StartOffset: s.Start,
			EndOffset:   s.End,
			StyleClass:  b.class,
			TooltipText: b.tooltip(s.Attrs.Link),
		})
	}
	return out
}

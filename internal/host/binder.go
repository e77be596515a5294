package host

import (
	"github.com/dshills/richspan/internal/engine/span"
	"github.com/dshills/richspan/internal/engine/textrun"
	"github.com/dshills/richspan/internal/renderer/decoration"
)

// RenderSink receives the regenerated decorations after every mutation.
type RenderSink func([]decoration.Decoration)

// PromptFunc asks the user for a link URL. The selected text is shown
// in the prompt; the host answers through CompleteLink or CancelLink.
type PromptFunc func(selected string)

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithRenderSink sets the decoration consumer.
func WithRenderSink(sink RenderSink) BinderOption {
	return func(b *Binder) {
		b.sink = sink
	}
}

// WithPrompt sets the hyperlink entry prompt.
func WithPrompt(fn PromptFunc) BinderOption {
	return func(b *Binder) {
		b.prompt = fn
	}
}

// WithDecorationBuilder overrides the decoration builder.
func WithDecorationBuilder(db *decoration.Builder) BinderOption {
	return func(b *Binder) {
		b.deco = db
	}
}

// Binder owns one span engine for one edit session and wires it to an
// EditSource. It applies each delta batch as a single atomic unit,
// fires URL auto-linking when a batch is a lone space or newline
// keystroke, regenerates decorations after every mutation, and runs
// the pending-hyperlink request flow.
type Binder struct {
	eng    *span.Engine
	deco   *decoration.Builder
	sink   RenderSink
	prompt PromptFunc
}

// NewBinder creates a binder around the given engine.
func NewBinder(eng *span.Engine, opts ...BinderOption) *Binder {
	b := &Binder{
		eng:  eng,
		deco: decoration.NewBuilder(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Engine returns the engine this binder owns.
func (b *Binder) Engine() *span.Engine {
	return b.eng
}

// Bind subscribes the binder to the editing surface's events.
func (b *Binder) Bind(src EditSource) {
	src.OnContentChanged(b.handleChange)
	src.OnLinkInsertRequested(b.handleLinkRequest)
}

// Load begins an edit session from persisted runs.
func (b *Binder) Load(runs []textrun.TextRun) {
	b.eng.Initialize(runs)
	b.publish()
}

// Commit ends the session: it serializes the spans against the final
// text, resets the engine, and returns the runs to persist.
func (b *Binder) Commit(finalText string, trimOffset int) []textrun.TextRun {
	runs := b.eng.Runs(finalText, trimOffset)
	b.eng.Reset()
	b.publish()
	return runs
}

func (b *Binder) handleChange(ch ContentChange) {
	b.eng.ApplyEdits(ch.Deltas)

	// Auto-link triggers only on the single-delta shape of a space or
	// newline keystroke. Multi-delta batches (paste, multi-cursor)
	// never look like one, so each boundary event stays independent.
	if len(ch.Deltas) == 1 {
		d := ch.Deltas[0]
		if d.RangeLength == 0 && d.InsertedLength == 1 && isBoundaryRune(ch.Text, d.RangeOffset) {
			b.eng.AutoLink(ch.Text, d.RangeOffset)
		}
	}

	b.publish()
}

func (b *Binder) handleLinkRequest(sel Selection) {
	b.eng.BeginHyperlink(sel.Start, sel.End, sel.Text)
	if b.prompt != nil {
		b.prompt(sel.Text)
	}
}

// CompleteLink commits the pending hyperlink with the entered URL.
// displayText is the text the surface inserted for a collapsed
// selection; it is ignored when text was selected.
func (b *Binder) CompleteLink(url, displayText string) {
	b.eng.CompleteHyperlink(url, displayText)
	b.publish()
}

// CancelLink abandons the pending hyperlink.
func (b *Binder) CancelLink() {
	b.eng.CancelHyperlink()
}

// Decorations returns the current decorations without mutating state.
func (b *Binder) Decorations() []decoration.Decoration {
	return b.deco.Build(b.eng.LinkSpans())
}

func (b *Binder) publish() {
	if b.sink != nil {
		b.sink(b.Decorations())
	}
}

// isBoundaryRune reports whether the rune at the given offset of text
// is a space or newline.
func isBoundaryRune(text string, offset int) bool {
	runes := []rune(text)
	if offset < 0 || offset >= len(runes) {
		return false
	}
	return runes[offset] == ' ' || runes[offset] == '\n'
}

package host

import "github.com/dshills/richspan/internal/engine/span"

// Selection is a selected rune range and its text, reported by the
// editing surface when the user asks to insert a link. A collapsed
// selection (Start == End) means the cursor position.
type Selection struct {
	Start int
	End   int
	Text  string
}

// ContentChange is one batch of edit deltas from the editing surface,
// together with the full buffer text after the batch was applied.
// The deltas are in pre-edit coordinates, as the surface reports them.
type ContentChange struct {
	Deltas []span.Delta
	Text   string
}

// EditSource is the narrow capability the binder needs from a text
// editing surface. Concrete editors implement it with whatever event
// mechanism they have; the engine never sees the editor itself.
type EditSource interface {
	// OnContentChanged registers the callback invoked once per edit
	// batch, after the surface's buffer reflects the batch.
	OnContentChanged(fn func(ContentChange))

	// OnLinkInsertRequested registers the callback invoked when the
	// user asks to insert a hyperlink at the current selection.
	OnLinkInsertRequested(fn func(sel Selection))
}

// Package main is an interactive terminal demo of the span engine:
// type text, watch URLs become links when you hit space, and press
// Ctrl-K to insert a link by hand. On exit the persisted run form of
// the buffer is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/richspan/internal/engine/span"
	"github.com/dshills/richspan/internal/engine/textrun"
	"github.com/dshills/richspan/internal/host"
	"github.com/dshills/richspan/internal/linkify"
	"github.com/dshills/richspan/internal/renderer/decoration"
)

func main() {
	os.Exit(run())
}

func run() int {
	var matcherScript string
	flag.StringVar(&matcherScript, "matchers", "", "Path to a Lua matcher script")
	flag.Parse()

	reg := linkify.Default()
	if matcherScript != "" {
		script, err := os.ReadFile(matcherScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read matcher script: %v\n", err)
			return 1
		}
		m, err := linkify.NewLuaMatcher(string(script))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer m.Close()
		reg.Add(m)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}

	ed := newEditor(reg)
	runs := ed.loop(screen)
	screen.Fini()

	fmt.Println(textrun.Encode(runs))
	return 0
}

// editor is a minimal line editor implementing host.EditSource. Its
// event callbacks are plain fields; the binder registers into them.
type editor struct {
	text   []rune
	cursor int

	binder *host.Binder
	decos  []decoration.Decoration

	onChange func(host.ContentChange)
	onLink   func(host.Selection)

	prompting bool
	promptBuf []rune
	status    string
}

func (e *editor) OnContentChanged(fn func(host.ContentChange))  { e.onChange = fn }
func (e *editor) OnLinkInsertRequested(fn func(host.Selection)) { e.onLink = fn }

func newEditor(reg *linkify.Registry) *editor {
	e := &editor{}
	e.binder = host.NewBinder(
		span.New(span.WithMatchers(reg)),
		host.WithRenderSink(func(d []decoration.Decoration) { e.decos = d }),
		host.WithPrompt(func(string) { e.prompting = true; e.promptBuf = nil }),
	)
	e.binder.Bind(e)
	e.binder.Load(nil)
	return e
}

// loop runs the event loop until quit and returns the runs to persist.
func (e *editor) loop(screen tcell.Screen) []textrun.TextRun {
	for {
		e.draw(screen)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if e.prompting {
				e.promptKey(ev)
				continue
			}
			switch ev.Key() {
			case tcell.KeyCtrlQ, tcell.KeyEscape:
				return e.binder.Commit(string(e.text), 0)
			case tcell.KeyCtrlK:
				e.onLink(host.Selection{Start: e.cursor, End: e.cursor})
			case tcell.KeyCtrlO:
				e.showLink()
			case tcell.KeyLeft:
				e.cursor = prevBoundary(e.text, e.cursor)
			case tcell.KeyRight:
				e.cursor = nextBoundary(e.text, e.cursor)
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				e.deleteRange(prevBoundary(e.text, e.cursor), e.cursor)
			case tcell.KeyDelete:
				e.deleteRange(e.cursor, nextBoundary(e.text, e.cursor))
			case tcell.KeyEnter:
				e.insert('\n')
			case tcell.KeyRune:
				e.insert(ev.Rune())
			}
		}
	}
}

func (e *editor) promptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.prompting = false
		e.binder.CancelLink()
	case tcell.KeyEnter:
		e.prompting = false
		url := string(e.promptBuf)
		if url == "" {
			e.binder.CancelLink()
			return
		}
		// Collapsed selection: the URL itself becomes the display
		// text, so insert it into the buffer before completing.
		e.spliceText(e.cursor, e.cursor, e.promptBuf)
		e.binder.CompleteLink(url, url)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.promptBuf) > 0 {
			e.promptBuf = e.promptBuf[:len(e.promptBuf)-1]
		}
	case tcell.KeyRune:
		e.promptBuf = append(e.promptBuf, ev.Rune())
	}
}

func (e *editor) insert(r rune) {
	e.spliceText(e.cursor, e.cursor, []rune{r})
}

func (e *editor) deleteRange(start, end int) {
	if start >= end {
		return
	}
	e.spliceText(start, end, nil)
}

// spliceText replaces [start, end) with repl, reports the delta to the
// binder, and places the cursor after the replacement.
func (e *editor) spliceText(start, end int, repl []rune) {
	next := make([]rune, 0, len(e.text)-(end-start)+len(repl))
	next = append(next, e.text[:start]...)
	next = append(next, repl...)
	next = append(next, e.text[end:]...)
	e.text = next
	e.cursor = start + len(repl)

	e.onChange(host.ContentChange{
		Deltas: []span.Delta{{
			RangeOffset:    start,
			RangeLength:    end - start,
			InsertedLength: len(repl),
		}},
		Text: string(e.text),
	})
}

func (e *editor) showLink() {
	if s, ok := e.binder.Engine().SpanAt(e.cursor); ok {
		e.status = "link: " + s.Attrs.Link
	} else {
		e.status = "no link here"
	}
}

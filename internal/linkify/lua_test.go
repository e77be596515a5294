package linkify

import (
	"errors"
	"testing"
)

const ticketScript = `
function match(word)
    local t = string.match(word, "^[A-Z]+%-%d+$")
    if t then
        return "https://tickets.example.com/" .. t
    end
end
`

// TestLuaMatcher tests script-defined link rules
func TestLuaMatcher(t *testing.T) {
	t.Run("matching word returns target", func(t *testing.T) {
		m, err := NewLuaMatcher(ticketScript)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer m.Close()

		url, ok := m.Match("PROJ-123")
		if !ok {
			t.Fatal("expected match")
		}
		if url != "https://tickets.example.com/PROJ-123" {
			t.Errorf("unexpected target %q", url)
		}
	})

	t.Run("non-matching word returns nothing", func(t *testing.T) {
		m, err := NewLuaMatcher(ticketScript)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer m.Close()

		if _, ok := m.Match("hello"); ok {
			t.Error("expected no match")
		}
	})

	t.Run("works inside a registry", func(t *testing.T) {
		m, err := NewLuaMatcher(ticketScript)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer m.Close()

		reg := Default()
		reg.Add(m)

		if url, _ := reg.Match("PROJ-7"); url != "https://tickets.example.com/PROJ-7" {
			t.Errorf("unexpected target %q", url)
		}
	})

	t.Run("script without match function is rejected", func(t *testing.T) {
		_, err := NewLuaMatcher(`x = 1`)
		if !errors.Is(err, ErrNoMatchFunction) {
			t.Errorf("expected ErrNoMatchFunction, got %v", err)
		}
	})

	t.Run("syntax error is rejected", func(t *testing.T) {
		if _, err := NewLuaMatcher(`function match(`); err == nil {
			t.Error("expected compile error")
		}
	})

	t.Run("runtime error is no match", func(t *testing.T) {
		m, err := NewLuaMatcher(`function match(w) error("boom") end`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer m.Close()

		if _, ok := m.Match("x"); ok {
			t.Error("script error must degrade to no match")
		}
	})

	t.Run("closed matcher reports no matches", func(t *testing.T) {
		m, err := NewLuaMatcher(ticketScript)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m.Close()
		if _, ok := m.Match("PROJ-1"); ok {
			t.Error("closed matcher must not match")
		}
	})
}

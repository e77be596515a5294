package linkify

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Errors returned when loading a Lua matcher.
var (
	// ErrNoMatchFunction indicates the script does not define a global
	// "match" function.
	ErrNoMatchFunction = errors.New("lua matcher script must define a match function")
)

// LuaMatcher runs a host-supplied Lua script as a Matcher.
//
// The script must define a global function match(candidate) that
// returns the link target string for a match, or nil otherwise:
//
//	function match(word)
//	    local t = string.match(word, "^[A-Z]+%-%d+$")
//	    if t then
//	        return "https://tickets.example.com/" .. t
//	    end
//	end
//
// The Lua state is sandboxed: only the base, table, string, and math
// libraries are opened. io, os, debug, and package stay closed.
//
// gopher-lua's LState is not goroutine-safe; the internal mutex
// serializes calls, so a LuaMatcher may be shared across goroutines.
type LuaMatcher struct {
	mu sync.Mutex
	l  *lua.LState
	fn lua.LValue
}

// NewLuaMatcher compiles a matcher script and verifies its match function.
func NewLuaMatcher(script string) (*LuaMatcher, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // open selectively below
	})
	openSafeLibraries(L)

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("compile lua matcher: %w", err)
	}

	fn := L.GetGlobal("match")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoMatchFunction
	}

	return &LuaMatcher{l: L, fn: fn}, nil
}

// openSafeLibraries opens only Lua standard libraries that cannot
// touch the file system or the process.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Match implements Matcher. A script error or a non-string return is
// treated as no match; auto-linking is best-effort and must never
// disturb the edit session.
func (m *LuaMatcher) Match(candidate string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.l == nil {
		return "", false
	}

	m.l.Push(m.fn)
	m.l.Push(lua.LString(candidate))
	if err := m.l.PCall(1, 1, nil); err != nil {
		return "", false
	}

	ret := m.l.Get(-1)
	m.l.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok || s == "" {
		return "", false
	}
	return string(s), true
}

// Close releases the underlying Lua state. The matcher reports no
// matches after Close.
func (m *LuaMatcher) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.l != nil {
		m.l.Close()
		m.l = nil
		m.fn = lua.LNil
	}
}

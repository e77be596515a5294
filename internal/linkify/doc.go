// Package linkify decides whether a just-completed word should become
// a hyperlink. The built-in matcher recognizes literal http/https
// URLs; hosts can register additional matchers, including sandboxed
// Lua scripts, through a Registry.
package linkify

package linkify

import "regexp"

// urlPattern is the strict auto-link pattern: an http or https scheme
// (case-insensitive) followed by at least one character that is neither
// whitespace nor a quote, anchored at both ends of the candidate.
var urlPattern = regexp.MustCompile(`^(?i:https?)://[^\s"']+$`)

// Matcher decides whether a candidate word should become a link.
// It returns the link target and true on a match.
type Matcher interface {
	Match(candidate string) (url string, ok bool)
}

// URLMatcher is the built-in matcher for literal http/https URLs.
// The candidate itself is the link target.
type URLMatcher struct{}

// Match implements Matcher.
func (URLMatcher) Match(candidate string) (string, bool) {
	if !urlPattern.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// Registry is an ordered list of matchers. The first match wins.
type Registry struct {
	matchers []Matcher
}

// NewRegistry creates a registry with the given matchers in order.
func NewRegistry(matchers ...Matcher) *Registry {
	return &Registry{matchers: matchers}
}

// Default returns a registry containing only the built-in URL matcher.
func Default() *Registry {
	return NewRegistry(URLMatcher{})
}

// Add appends a matcher after all existing matchers.
func (r *Registry) Add(m Matcher) {
	r.matchers = append(r.matchers, m)
}

// Match implements Matcher by trying each registered matcher in order.
func (r *Registry) Match(candidate string) (string, bool) {
	for _, m := range r.matchers {
		if url, ok := m.Match(candidate); ok {
			return url, true
		}
	}
	return "", false
}

// Len returns the number of registered matchers.
func (r *Registry) Len() int {
	return len(r.matchers)
}

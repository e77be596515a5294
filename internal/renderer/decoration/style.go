package decoration

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultLinkColor is the foreground used for link decorations when
// the host supplies no theme.
const DefaultLinkColor = "#1a73e8"

// NormalizeColor parses a textColor descriptor and returns it in
// canonical lowercase #rrggbb form. Both #rgb and #rrggbb inputs are
// accepted. Returns false for anything unparsable; callers fall back
// to the default foreground rather than failing.
func NormalizeColor(descriptor string) (string, bool) {
	s := strings.TrimSpace(descriptor)
	if s == "" {
		return "", false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// HoverColor returns a lighter variant of hex for hover rendering,
// blended toward white in Lab space so the shift looks even across
// hues. Unparsable input returns the default link color.
func HoverColor(hex string) string {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return DefaultLinkColor
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, 0.3).Clamped().Hex()
}

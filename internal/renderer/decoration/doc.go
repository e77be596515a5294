// Package decoration converts link spans into the decoration requests
// a host renderer draws as inline color and underline, and provides
// the color math for textColor attributes.
package decoration

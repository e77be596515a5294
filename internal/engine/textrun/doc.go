// Package textrun defines the persisted representation of rich text:
// an ordered sequence of text runs, each carrying a literal piece of
// text and the formatting attributes that apply to it.
//
// The JSON codec is intentionally tolerant on decode. Persisted data
// may come from older producers that emit null, omit keys, or include
// fields this version does not know about; all of those normalize to
// the same zero-valued attribute state. Encoding always produces the
// sparse form, omitting zero-valued attributes.
package textrun

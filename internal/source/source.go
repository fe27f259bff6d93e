// Package source holds the immutable, byte-indexed view of a TINY program
// that the scanner and parser both read from but never mutate.
package source

import "github.com/aledsdavies/tiny/internal/span"

// View is a read-only character sequence indexed by byte offset.
type View struct {
	text string
}

// New wraps src in a View. The returned View never copies or mutates src.
func New(src string) *View {
	return &View{text: src}
}

// Text returns the full source text.
func (v *View) Text() string {
	return v.text
}

// Len returns the number of bytes in the source.
func (v *View) Len() int {
	return len(v.text)
}

// Lexeme returns the substring covered by sp. Callers are responsible for
// keeping sp within bounds; the scanner and parser only ever construct
// spans derived from the same source they index into.
func (v *View) Lexeme(sp span.Span) string {
	return v.text[sp.Start:sp.End]
}

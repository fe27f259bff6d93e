package lexer

import "unicode"

// ASCII character lookup tables for fast classification, mirroring the
// precomputed-table approach used for hot-path character tests elsewhere in
// this lineage. Runes above the ASCII range fall back to the unicode
// package.
var (
	isWhitespaceASCII [128]bool
	isDigitASCII      [128]bool
	isAlphaASCII      [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isWhitespaceASCII[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
		isDigitASCII[i] = ch >= '0' && ch <= '9'
		isAlphaASCII[i] = (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
	}
}

// isWhitespace reports whether r is ASCII whitespace (space, tab, CR, LF,
// FF, VT). TINY has no notion of significant whitespace beyond separating
// tokens.
func isWhitespace(r rune) bool {
	return r < 128 && isWhitespaceASCII[r]
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r < 128 && isDigitASCII[r]
}

// isAlphabetic reports whether r is a Unicode letter. The ASCII range is
// served by the precomputed table; runes at or above 0x80 fall back to
// unicode.IsLetter.
func isAlphabetic(r rune) bool {
	if r < 128 {
		return isAlphaASCII[r]
	}
	return unicode.IsLetter(r)
}

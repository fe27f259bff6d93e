// Package lexer implements TINY's deterministic finite-state scanner: a
// single pass over the source bytes that emits classified token spans.
// Tokenize never fails — unexpected characters become SYMBOL tokens and the
// parser decides legality later.
package lexer

import (
	"unicode/utf8"

	"github.com/aledsdavies/tiny/internal/span"
	"github.com/aledsdavies/tiny/internal/token"
)

// state is one of the five scanner states.
type state int

const (
	stateStart state = iota
	stateComment
	stateNumber
	stateIdent
	stateAssign
)

// Tokenize scans src in a single O(n) pass and returns its tokens in span
// order. lo/hi track the byte span of the token currently being
// accumulated; advancing over a character moves hi forward by the
// character's UTF-8 byte width.
func Tokenize(src string) []token.Token {
	var toks []token.Token
	n := len(src)
	lo, hi := 0, 0
	st := stateStart

	for hi < n {
		r, w := utf8.DecodeRuneInString(src[hi:])

		switch st {
		case stateStart:
			switch {
			case isWhitespace(r):
				hi += w
				lo = hi
			case r == '{':
				toks = append(toks, sym(lo, hi+w))
				hi += w
				lo = hi
				st = stateComment
			case isAlphabetic(r):
				hi += w
				st = stateIdent
			case isDigit(r):
				hi += w
				st = stateNumber
			case r == ':':
				hi += w
				st = stateAssign
			default:
				toks = append(toks, sym(lo, hi+w))
				hi += w
				lo = hi
			}

		case stateComment:
			if r == '}' {
				toks = append(toks, token.Token{Kind: token.Comment, Span: span.Span{Start: lo, End: hi}})
				toks = append(toks, sym(hi, hi+w))
				hi += w
				lo = hi
				st = stateStart
			} else {
				hi += w
			}

		case stateNumber:
			if isDigit(r) {
				hi += w
			} else {
				toks = append(toks, token.Token{Kind: token.Number, Span: span.Span{Start: lo, End: hi}})
				lo = hi
				st = stateStart
			}

		case stateIdent:
			if isAlphabetic(r) {
				hi += w
			} else {
				toks = append(toks, identOrKeyword(src, lo, hi))
				lo = hi
				st = stateStart
			}

		case stateAssign:
			if r == '=' {
				toks = append(toks, sym(lo, hi+w))
				hi += w
				lo = hi
				st = stateStart
			} else {
				toks = append(toks, sym(lo, hi))
				lo = hi
				st = stateStart
			}
		}
	}

	toks = append(toks, flush(src, st, lo, hi)...)
	return toks
}

// flush emits whatever token was mid-accumulation when the source ran out.
// An unterminated comment spans to EOF with no closing `}` SYMBOL — this is
// not a scan-time error.
func flush(src string, st state, lo, hi int) []token.Token {
	switch st {
	case stateNumber:
		return []token.Token{{Kind: token.Number, Span: span.Span{Start: lo, End: hi}}}
	case stateIdent:
		return []token.Token{identOrKeyword(src, lo, hi)}
	case stateAssign:
		return []token.Token{sym(lo, hi)}
	case stateComment:
		return []token.Token{{Kind: token.Comment, Span: span.Span{Start: lo, End: hi}}}
	default:
		return nil
	}
}

func sym(lo, hi int) token.Token {
	return token.Token{Kind: token.Symbol, Span: span.Span{Start: lo, End: hi}}
}

func identOrKeyword(src string, lo, hi int) token.Token {
	lexeme := src[lo:hi]
	if isKeyword(lexeme) {
		return token.Token{Kind: token.Reserved, Span: span.Span{Start: lo, End: hi}}
	}
	return token.Token{Kind: token.Identifier, Span: span.Span{Start: lo, End: hi}}
}

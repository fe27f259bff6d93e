// Package cursor provides a forward, peekable iterator over a scanner's
// token output. The grammar is LL(1) modulo the parser's own operator-chain
// loops, so peek-1 with no backtracking is all the parser ever needs.
package cursor

import (
	"github.com/aledsdavies/tiny/internal/source"
	"github.com/aledsdavies/tiny/internal/token"
)

// Cursor is a forward-only, peekable iterator over a token sequence. It
// also transparently skips comment trivia — a `{` SYMBOL, an optional
// COMMENT body, and an optional closing `}` SYMBOL — since TINY's grammar
// never references braces and comments never enter the parse tree.
type Cursor struct {
	src    *source.View
	tokens []token.Token
	pos    int
}

// New builds a Cursor over the full token sequence produced by the
// scanner (comments included); trivia is skipped here and after every Next,
// so Peek always sits on a non-trivia token.
func New(src *source.View, tokens []token.Token) *Cursor {
	c := &Cursor{src: src, tokens: tokens}
	c.skipTrivia()
	return c
}

// Pos returns the cursor's current index into the (trivia-included) token
// slice. Parsers use it only to detect whether a sub-parse made progress —
// never for backtracking.
func (c *Cursor) Pos() int {
	return c.pos
}

// Peek returns the next non-trivia token without consuming it.
func (c *Cursor) Peek() (token.Token, bool) {
	if c.pos >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next consumes and returns the next non-trivia token.
func (c *Cursor) Next() (token.Token, bool) {
	tok, ok := c.Peek()
	if !ok {
		return token.Token{}, false
	}
	c.pos++
	c.skipTrivia()
	return tok, true
}

// skipTrivia advances past any run of comment tokens (and the braces that
// delimit them) sitting at the cursor's current position.
func (c *Cursor) skipTrivia() {
	for c.pos < len(c.tokens) && c.isCommentOpen(c.tokens[c.pos]) {
		c.pos++ // `{`
		if c.pos < len(c.tokens) && c.tokens[c.pos].Kind == token.Comment {
			c.pos++ // comment body
		}
		if c.pos < len(c.tokens) && c.isCommentClose(c.tokens[c.pos]) {
			c.pos++ // `}`
		}
	}
}

func (c *Cursor) isCommentOpen(t token.Token) bool {
	return t.Kind == token.Symbol && c.src.Lexeme(t.Span) == "{"
}

func (c *Cursor) isCommentClose(t token.Token) bool {
	return t.Kind == token.Symbol && c.src.Lexeme(t.Span) == "}"
}

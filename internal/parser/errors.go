package parser

import (
	"fmt"

	"github.com/aledsdavies/tiny/internal/span"
	"github.com/aledsdavies/tiny/internal/suggest"
	"github.com/aledsdavies/tiny/internal/token"
)

// describeFound returns a human-readable description of whatever token sits
// at the cursor right now (the offending token's lexeme, or "EOF") along
// with the span an Error node attached here should carry.
func (p *parser) describeFound() (string, span.Span) {
	tok, ok := p.cur.Peek()
	if !ok {
		return "EOF", p.eofSpan()
	}
	return p.lexeme(tok), tok.Span
}

// errMsg builds a human-readable parser error message containing the
// construct under parse, what was expected, what was actually found, and —
// when the offending token looks like a near-miss keyword typo — a
// suggested fix.
func (p *parser) errMsg(construct, expected string) string {
	found, _ := p.describeFound()
	msg := fmt.Sprintf("%s: expected %s, found %s", construct, expected, found)

	if tok, ok := p.cur.Peek(); ok && tok.Kind == token.Identifier {
		if kw, ok2 := suggest.Keyword(p.lexeme(tok)); ok2 {
			msg += fmt.Sprintf(" (did you mean '%s'?)", kw)
		}
	}
	return msg
}

// eofSpan is the zero-width span at the end of the source, used for Error
// nodes raised when the cursor is exhausted.
func (p *parser) eofSpan() span.Span {
	return span.Span{Start: p.srcLen, End: p.srcLen}
}

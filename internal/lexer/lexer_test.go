package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/tiny/internal/token"
)

func lexemes(t *testing.T, src string, toks []token.Token) []string {
	t.Helper()
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = src[tok.Span.Start:tok.Span.End]
	}
	return out
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	toks := Tokenize("if x then")
	require.Len(t, toks, 3)
	assert.Equal(t, []token.Kind{token.Reserved, token.Identifier, token.Reserved}, kinds(toks))
	assert.Equal(t, []string{"if", "x", "then"}, lexemes(t, "if x then", toks))
}

func TestTokenizeNumberAndAssign(t *testing.T) {
	src := "x := 123"
	toks := Tokenize(src)
	require.Len(t, toks, 3)
	assert.Equal(t, []token.Kind{token.Identifier, token.Symbol, token.Number}, kinds(toks))
	assert.Equal(t, []string{"x", ":=", "123"}, lexemes(t, src, toks))
}

func TestTokenizeLoneColonIsNotAssign(t *testing.T) {
	src := "x : y"
	toks := Tokenize(src)
	require.Len(t, toks, 3)
	assert.Equal(t, []string{"x", ":", "y"}, lexemes(t, src, toks))
}

func TestTokenizeComment(t *testing.T) {
	src := "{this is a comment} x"
	toks := Tokenize(src)
	require.Len(t, toks, 4)
	assert.Equal(t, []token.Kind{token.Symbol, token.Comment, token.Symbol}, kinds(toks)[:3])

	// identifier after the comment is a separate token
	toks = Tokenize(src)
	var idents []string
	for _, tok := range toks {
		if tok.Kind == token.Identifier {
			idents = append(idents, src[tok.Span.Start:tok.Span.End])
		}
	}
	assert.Equal(t, []string{"x"}, idents)

	// comment body excludes the braces
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			assert.Equal(t, "this is a comment", src[tok.Span.Start:tok.Span.End])
		}
	}
}

func TestTokenizeUnterminatedCommentSpansToEOF(t *testing.T) {
	src := "{never closed"
	toks := Tokenize(src)
	require.Len(t, toks, 2) // SYMBOL `{`, COMMENT to EOF
	assert.Equal(t, token.Comment, toks[1].Kind)
	assert.Equal(t, len(src), toks[1].Span.End)
}

func TestTokenizeUnicodeIdentifierByteWidth(t *testing.T) {
	src := "café read" // 'é' is 2 bytes
	toks := Tokenize(src)
	require.Len(t, toks, 2)
	assert.Equal(t, "café", src[toks[0].Span.Start:toks[0].Span.End])
	assert.Equal(t, len("café"), toks[0].Span.End)
}

func TestTokenizeUnrecognizedCharacterIsSymbol(t *testing.T) {
	toks := Tokenize("x $ y")
	require.Len(t, toks, 3)
	assert.Equal(t, token.Symbol, toks[1].Kind)
}

// TestTokenizeSpansReconstructSource checks the scanner invariant that
// concatenating lexemes with the whitespace between spans reconstructs the
// source exactly.
func TestTokenizeSpansReconstructSource(t *testing.T) {
	src := "if x < 10 then\n  write x\nelse\n  read y\nend"
	toks := Tokenize(src)

	var b strings.Builder
	prevEnd := 0
	for _, tok := range toks {
		b.WriteString(src[prevEnd:tok.Span.Start])
		b.WriteString(src[tok.Span.Start:tok.Span.End])
		prevEnd = tok.Span.End
	}
	b.WriteString(src[prevEnd:])
	assert.Equal(t, src, b.String())
}

func TestTokenizeSpansAreStrictlyIncreasing(t *testing.T) {
	toks := Tokenize("repeat x := x - 1 until x = 0")
	for i := 1; i < len(toks); i++ {
		assert.Greater(t, toks[i].Span.Start, toks[i-1].Span.Start)
	}
}

func TestTokenizeNeverFails(t *testing.T) {
	assert.NotPanics(t, func() {
		Tokenize("@#$%^&*()_+ñ好")
	})
}

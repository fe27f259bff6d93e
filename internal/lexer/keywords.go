package lexer

// keywords is the fixed TINY keyword set, checked by byte equality against
// the accumulated identifier lexeme. All reserved words are lowercase; the
// scanner never case-folds.
var keywords = map[string]bool{
	"if":     true,
	"then":   true,
	"else":   true,
	"repeat": true,
	"end":    true,
	"until":  true,
	"read":   true,
	"write":  true,
}

// isKeyword reports whether lexeme is one of the reserved TINY keywords.
func isKeyword(lexeme string) bool {
	return keywords[lexeme]
}

// Package parser implements TINY's recursive-descent parser: tokens to a
// parse tree, in either full (concrete syntax tree) or simplified
// (collapsed abstract syntax tree) mode. The parser never aborts on the
// first error — it records an Error node and keeps parsing, so a single
// pass always returns a complete (if imperfect) tree.
package parser

import (
	"fmt"

	"github.com/aledsdavies/tiny/internal/cursor"
	"github.com/aledsdavies/tiny/internal/lexer"
	"github.com/aledsdavies/tiny/internal/source"
	"github.com/aledsdavies/tiny/internal/token"
	"github.com/aledsdavies/tiny/internal/tree"
)

type parser struct {
	src        *source.View
	cur        *cursor.Cursor
	simplified bool
	srcLen     int
}

// Parse tokenizes source and builds its TINY parse tree. simplified selects
// the abstract (true) or concrete (false) tree shape; the mode never
// changes mid-parse. Parse always returns a tree — recoverable errors are
// recorded as Error nodes rather than aborting the parse.
func Parse(src string, simplified bool) *tree.Node {
	view := source.New(src)
	toks := lexer.Tokenize(src)
	p := &parser{
		src:        view,
		cur:        cursor.New(view, toks),
		simplified: simplified,
		srcLen:     view.Len(),
	}
	return p.parseProgram()
}

func (p *parser) lexeme(t token.Token) string {
	return p.src.Lexeme(t.Span)
}

func (p *parser) isSymbol(t token.Token, lexeme string) bool {
	return t.Kind == token.Symbol && p.lexeme(t) == lexeme
}

func (p *parser) isKeyword(t token.Token, kw string) bool {
	return t.Kind == token.Reserved && p.lexeme(t) == kw
}

// program := stmt-seq
func (p *parser) parseProgram() *tree.Node {
	root := tree.NewOfKind(tree.Program)
	root.AddChild(p.parseStmtSeq())
	return root
}

// stmt-seq := stmt ( ';' stmt )*
//
// Full mode keeps every statement and every ';' as children of one StmtSeq
// node. Simplified mode threads the statements into a sibling chain rooted
// at the first statement via NextStmt and returns that head directly — no
// StmtSeq node appears in the simplified tree.
func (p *parser) parseStmtSeq() *tree.Node {
	if !p.simplified {
		seq := tree.NewOfKind(tree.StmtSeq)
		seq.AddChild(p.parseStmt())
		for {
			tok, ok := p.cur.Peek()
			if !ok || !p.isSymbol(tok, ";") {
				break
			}
			semi, _ := p.cur.Next()
			seq.AddChild(&tree.Node{Kind: tree.Symbol, Span: semi.Span})
			seq.AddChild(p.parseStmt())
		}
		return seq
	}

	stmts := []*tree.Node{p.parseStmt()}
	for {
		tok, ok := p.cur.Peek()
		if !ok || !p.isSymbol(tok, ";") {
			break
		}
		p.cur.Next()
		stmts = append(stmts, p.parseStmt())
	}
	for i := 0; i < len(stmts)-1; i++ {
		stmts[i].SetNextStmt(stmts[i+1])
	}
	return stmts[0]
}

// stmt := if-stmt | repeat-stmt | assign-stmt | read-stmt | write-stmt
func (p *parser) parseStmt() *tree.Node {
	tok, ok := p.cur.Peek()
	switch {
	case ok && p.isKeyword(tok, "if"):
		return p.parseIfStmt()
	case ok && p.isKeyword(tok, "repeat"):
		return p.parseRepeatStmt()
	case ok && p.isKeyword(tok, "read"):
		return p.parseReadStmt()
	case ok && p.isKeyword(tok, "write"):
		return p.parseWriteStmt()
	case ok && tok.Kind == token.Identifier:
		return p.parseAssignStmt()
	default:
		return p.illegalStmt(tok, ok)
	}
}

// illegalStmt builds the Stmt(Illegal) placeholder inserted into the
// statement position when no statement alternative matches. The offending
// token (if any) is left unconsumed so an outer rule may still use it.
func (p *parser) illegalStmt(tok token.Token, ok bool) *tree.Node {
	found, sp := p.describeFound()
	kind := tree.IllegalStmt
	if !ok {
		kind = tree.UnexpectedEOF
	}
	msg := fmt.Sprintf("stmt: expected 'if', 'repeat', 'read', 'write', or an identifier, found %s", found)
	node := &tree.Node{Kind: tree.StmtIllegal, Span: sp}
	node.AddChild(tree.NewError(kind, msg, sp))
	return node
}

// if-stmt := 'if' exp 'then' stmt-seq ( 'else' stmt-seq )? 'end'
func (p *parser) parseIfStmt() *tree.Node {
	kw, _ := p.cur.Next()
	node := tree.NewOfKind(tree.StmtIf)
	p.addOrFoldKeyword(node, kw)

	node.AddChild(p.parseExp())

	if tok, ok := p.cur.Peek(); ok && p.isKeyword(tok, "then") {
		thenTok, _ := p.cur.Next()
		p.addOrFoldKeyword(node, thenTok)
	} else {
		msg := p.errMsg("if exp ->...<- then stmtseq end", "'then'")
		_, sp := p.describeFound()
		node.AddChild(tree.NewError(tree.MissingThenKeyword, msg, sp))
	}

	node.AddChild(p.parseStmtSeq())

	if tok, ok := p.cur.Peek(); ok && p.isKeyword(tok, "else") {
		elseTok, _ := p.cur.Next()
		p.addOrFoldKeyword(node, elseTok)
		node.AddChild(p.parseStmtSeq())
	}

	if tok, ok := p.cur.Peek(); ok && p.isKeyword(tok, "end") {
		endTok, _ := p.cur.Next()
		p.addOrFoldKeyword(node, endTok)
	} else {
		msg := p.errMsg("if exp then stmtseq ->...<- end", "'end'")
		_, sp := p.describeFound()
		node.AddChild(tree.NewError(tree.NonEndedIfStmt, msg, sp))
	}

	return node
}

// repeat-stmt := 'repeat' stmt-seq 'until' exp
func (p *parser) parseRepeatStmt() *tree.Node {
	kw, _ := p.cur.Next()
	node := tree.NewOfKind(tree.StmtRepeat)
	p.addOrFoldKeyword(node, kw)

	node.AddChild(p.parseStmtSeq())

	if tok, ok := p.cur.Peek(); ok && p.isKeyword(tok, "until") {
		untilTok, _ := p.cur.Next()
		p.addOrFoldKeyword(node, untilTok)
	} else {
		msg := p.errMsg("repeat stmtseq ->...<- until exp", "'until'")
		_, sp := p.describeFound()
		node.AddChild(tree.NewError(tree.MissingUntilKeyword, msg, sp))
	}

	node.AddChild(p.parseExp())
	return node
}

// read-stmt := 'read' IDENT
func (p *parser) parseReadStmt() *tree.Node {
	kw, _ := p.cur.Next()
	node := tree.NewOfKind(tree.StmtRead)
	p.addOrFoldKeyword(node, kw)

	if tok, ok := p.cur.Peek(); ok && tok.Kind == token.Identifier {
		idTok, _ := p.cur.Next()
		node.AddChild(&tree.Node{Kind: tree.Identifier, Span: idTok.Span})
	} else {
		msg := p.errMsg("read ->...<- IDENT", "an identifier")
		_, sp := p.describeFound()
		node.AddChild(tree.NewError(tree.ExpectedIdentifier, msg, sp))
	}
	return node
}

// write-stmt := 'write' exp
func (p *parser) parseWriteStmt() *tree.Node {
	kw, _ := p.cur.Next()
	node := tree.NewOfKind(tree.StmtWrite)
	p.addOrFoldKeyword(node, kw)
	node.AddChild(p.parseExp())
	return node
}

// assign-stmt := IDENT ':=' exp
func (p *parser) parseAssignStmt() *tree.Node {
	idTok, _ := p.cur.Next()
	node := tree.NewOfKind(tree.StmtAssign)
	node.AddChild(&tree.Node{Kind: tree.Identifier, Span: idTok.Span})

	if tok, ok := p.cur.Peek(); ok && p.isSymbol(tok, ":=") {
		assignTok, _ := p.cur.Next()
		if !p.simplified {
			node.AddChild(&tree.Node{Kind: tree.Symbol, Span: assignTok.Span})
		} else {
			node.FoldSpan(assignTok.Span)
		}
	} else {
		msg := p.errMsg("IDENT ->...<- := exp", "':='")
		_, sp := p.describeFound()
		node.AddChild(tree.NewError(tree.MissingAssignOp, msg, sp))
	}

	node.AddChild(p.parseExp())
	return node
}

// addOrFoldKeyword consumes a keyword token that has already been peeked:
// in full mode it becomes a Keyword leaf child; in simplified mode its
// span still folds into node but the keyword itself is omitted.
func (p *parser) addOrFoldKeyword(node *tree.Node, kw token.Token) {
	if !p.simplified {
		node.AddChild(&tree.Node{Kind: tree.Keyword, Span: kw.Span})
	} else {
		node.FoldSpan(kw.Span)
	}
}

// exp := simple-exp ( compop simple-exp )*
func (p *parser) parseExp() *tree.Node {
	return p.parseChain(tree.Exp, tree.OpComp, isCompOp, p.parseSimpleExp)
}

// simple-exp := term ( addop term )*
func (p *parser) parseSimpleExp() *tree.Node {
	return p.parseChain(tree.SimpleExp, tree.OpAdd, isAddOp, p.parseTerm)
}

// term := factor ( mulop factor )*
func (p *parser) parseTerm() *tree.Node {
	return p.parseChain(tree.Term, tree.OpMul, isMulOp, p.parseFactor)
}

func isCompOp(lexeme string) bool { return lexeme == "<" || lexeme == "=" }
func isAddOp(lexeme string) bool  { return lexeme == "+" || lexeme == "-" }
func isMulOp(lexeme string) bool  { return lexeme == "*" || lexeme == "/" }

// parseChain implements the shared operator-chain shape of exp/simple-exp/
// term: parse one operand, then while the next token matches isOp, consume
// operator + next operand.
//
// Full mode always allocates a wrapper node of kind level holding every
// operand and every operator terminal as siblings (a concrete syntax
// tree). Simplified mode never allocates a wrapper: each operator
// application becomes a single Op(opKind) node owning its two operands,
// built left-associatively; a chain with zero operators reduces to the
// bare operand.
func (p *parser) parseChain(level, opKind tree.Kind, isOp func(string) bool, parseOperand func() *tree.Node) *tree.Node {
	posBefore := p.cur.Pos()
	left := parseOperand()

	if p.cur.Pos() == posBefore {
		// parseOperand reported an illegal/missing factor without consuming
		// anything. The token it's still sitting on must not be
		// re-examined as an operator here — that would silently swallow
		// the error token into an operator chain instead of leaving it for
		// an outer rule to recover from.
		if !p.simplified {
			wrapper := tree.NewOfKind(level)
			wrapper.AddChild(left)
			return wrapper
		}
		return left
	}

	if !p.simplified {
		wrapper := tree.NewOfKind(level)
		wrapper.AddChild(left)
		for {
			tok, ok := p.cur.Peek()
			if !ok || tok.Kind != token.Symbol || !isOp(p.lexeme(tok)) {
				break
			}
			opTok, _ := p.cur.Next()
			wrapper.AddChild(&tree.Node{Kind: opKind, Span: opTok.Span})
			wrapper.AddChild(parseOperand())
		}
		return wrapper
	}

	for {
		tok, ok := p.cur.Peek()
		if !ok || tok.Kind != token.Symbol || !isOp(p.lexeme(tok)) {
			break
		}
		opTok, _ := p.cur.Next()
		right := parseOperand()
		opNode := &tree.Node{Kind: opKind, Span: opTok.Span}
		opNode.AddChild(left)
		opNode.AddChild(right)
		left = opNode
	}
	return left
}

// factor := '(' exp ')' | NUMBER | IDENT
func (p *parser) parseFactor() *tree.Node {
	tok, ok := p.cur.Peek()

	switch {
	case ok && p.isSymbol(tok, "("):
		return p.parseParenFactor(tok)
	case ok && tok.Kind == token.Number:
		numTok, _ := p.cur.Next()
		return &tree.Node{Kind: tree.Number, Span: numTok.Span}
	case ok && tok.Kind == token.Identifier:
		idTok, _ := p.cur.Next()
		return &tree.Node{Kind: tree.Identifier, Span: idTok.Span}
	default:
		found, sp := p.describeFound()
		kind := tree.IllegalFactor
		if !ok {
			kind = tree.ExpectedFactor
		}
		msg := fmt.Sprintf("factor: expected '(', a number, or an identifier, found %s", found)
		return tree.NewError(kind, msg, sp)
	}
}

func (p *parser) parseParenFactor(open token.Token) *tree.Node {
	p.cur.Next() // '('
	inner := p.parseExp()

	closeTok, haveClose := p.cur.Peek()
	if haveClose && p.isSymbol(closeTok, ")") {
		p.cur.Next()
	}

	if !p.simplified {
		node := tree.NewOfKind(tree.Factor)
		node.AddChild(&tree.Node{Kind: tree.OpeningBrace, Span: open.Span})
		node.AddChild(inner)
		if haveClose && p.isSymbol(closeTok, ")") {
			node.AddChild(&tree.Node{Kind: tree.ClosingBrace, Span: closeTok.Span})
		} else {
			msg := p.errMsg("( exp ->...<- )", "')'")
			_, sp := p.describeFound()
			node.AddChild(tree.NewError(tree.MissingClosingBracket, msg, sp))
		}
		return node
	}

	// Simplified mode hoists inner directly, folding the parentheses'
	// spans into it so the Span invariant still covers the whole factor.
	inner.FoldSpan(open.Span)
	if haveClose && p.isSymbol(closeTok, ")") {
		inner.FoldSpan(closeTok.Span)
		return inner
	}

	msg := p.errMsg("( exp ->...<- )", "')'")
	_, sp := p.describeFound()
	wrap := tree.NewOfKind(tree.Factor)
	wrap.AddChild(inner)
	wrap.AddChild(tree.NewError(tree.MissingClosingBracket, msg, sp))
	return wrap
}

// Package diagnostics renders parse-tree Error nodes as human-readable,
// Rust/Clang-style messages with a source snippet and caret. Line and
// column are never stored on a token or tree node — the core only ever
// tracks byte spans — so this package computes them purely for display.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/tiny/internal/source"
	"github.com/aledsdavies/tiny/internal/span"
	"github.com/aledsdavies/tiny/internal/tree"
)

// Diagnostic is one reportable parse error, resolved against a source file
// for display.
type Diagnostic struct {
	Kind    tree.ErrorKind
	Message string
	Span    span.Span // the Error node's own byte span, for log records
	Line    int       // 1-based
	Column  int       // 1-based
}

// Collect walks a parse tree and returns a Diagnostic for every Error node,
// in tree order (both structural Children and simplified-mode NextStmt
// chains are visited, so no error is missed regardless of parse mode).
func Collect(root *tree.Node, src *source.View) []Diagnostic {
	var out []Diagnostic
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		if n.Kind == tree.ErrorNode {
			line, col := position(src, n.Span.Start)
			out = append(out, Diagnostic{
				Kind:    n.ErrorKind,
				Message: n.Message,
				Span:    n.Span,
				Line:    line,
				Column:  col,
			})
		}
		for _, c := range n.Children {
			walk(c)
		}
		for _, s := range n.NextStmt {
			walk(s)
		}
	}
	walk(root)
	return out
}

// position converts a byte offset into a 1-based (line, column) pair by
// counting newlines up to offset.
func position(src *source.View, offset int) (line, col int) {
	text := src.Text()
	if offset > len(text) {
		offset = len(text)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Format renders d against src in the snippet style: a location header, the
// offending source line, and a caret under the error column.
func Format(d Diagnostic, src *source.View) string {
	snippet := snippet(d, src)
	return fmt.Sprintf("%s: %s\n%s", d.Kind, d.Message, snippet)
}

func snippet(d Diagnostic, src *source.View) string {
	lines := strings.Split(src.Text(), "\n")
	if d.Line < 1 || d.Line > len(lines) {
		return ""
	}
	lineContent := lines[d.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", d.Line, d.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", d.Line, lineContent)
	b.WriteString("   | ")
	if d.Column > 0 && d.Column <= len(lineContent)+1 {
		b.WriteString(strings.Repeat(" ", d.Column-1) + "^")
	}
	return b.String()
}

// FormatAll renders every diagnostic in ds, separated by a blank line.
func FormatAll(ds []Diagnostic, src *source.View) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = Format(d, src)
	}
	return strings.Join(parts, "\n\n")
}

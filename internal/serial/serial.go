// Package serial turns a TINY parse tree into the external, structured
// document contract described in the specification's serializer
// collaborator: one object per node, with "text", "pseudo", "span",
// "children", and "HTMLclass" fields, emitted as JSON or CBOR.
package serial

import (
	"github.com/aledsdavies/tiny/internal/source"
	"github.com/aledsdavies/tiny/internal/tree"
)

// Node is the encoder-agnostic intermediate form of one parse-tree node.
// Both the JSON and CBOR encoders serialize this struct directly — it is
// the single place the field contract ("text", "pseudo", "span",
// "children", "HTMLclass") is defined.
type Node struct {
	Text      map[string]string `json:"text" cbor:"text"`
	Pseudo    bool              `json:"pseudo" cbor:"pseudo"`
	Span      [2]int            `json:"span" cbor:"span"`
	Children  []*Node           `json:"children" cbor:"children"`
	HTMLClass string            `json:"HTMLclass" cbor:"HTMLclass"`
}

// Build converts a single tree.Node into its serial form. Any structural
// child that starts a simplified-mode nextstmt chain has that whole chain
// flattened into this node's Children array — the chain represents
// siblings, not descendants, but the node-per-object JSON/CBOR contract has
// no separate concept of a sibling thread.
func Build(n *tree.Node, src *source.View, simplified bool) *Node {
	sn := &Node{
		Pseudo:    n.Kind == tree.Null,
		Span:      [2]int{n.Span.Start, n.Span.End},
		HTMLClass: n.HTMLClass(),
	}
	if simplified {
		sn.Text = map[string]string{"value": src.Lexeme(n.Span)}
	} else {
		sn.Text = map[string]string{"type": n.Kind.String()}
	}
	sn.Children = buildChildren(n.Children, src, simplified)
	return sn
}

// buildChildren serializes each structural child, expanding any
// nextstmt-threaded chain it starts into additional flat entries.
func buildChildren(children []*tree.Node, src *source.View, simplified bool) []*Node {
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		for _, stmt := range chain(c) {
			out = append(out, Build(stmt, src, simplified))
		}
	}
	return out
}

// chain follows n's NextStmt links and returns n followed by every
// statement it threads to. In full mode NextStmt is always empty, so chain
// degenerates to a single-element slice.
func chain(n *tree.Node) []*tree.Node {
	out := []*tree.Node{n}
	cur := n
	for len(cur.NextStmt) > 0 {
		cur = cur.NextStmt[0]
		out = append(out, cur)
	}
	return out
}

// Program builds the top-level document(s) for a parsed tree.
//
// In full mode the Program node itself is the sole document. In simplified
// mode the Program wrapper is elided per the serializer contract ("its
// first child is emitted instead"): Program's single structural child is
// the head of the top-level nextstmt chain, so Program returns one document
// per top-level statement rather than nesting the rest under the first —
// nesting them would misrepresent siblings as descendants.
func Program(root *tree.Node, src *source.View, simplified bool) []*Node {
	if !simplified {
		return []*Node{Build(root, src, simplified)}
	}
	if len(root.Children) == 0 {
		return []*Node{Build(root, src, simplified)}
	}
	stmts := chain(root.Children[0])
	docs := make([]*Node, len(stmts))
	for i, stmt := range stmts {
		docs[i] = Build(stmt, src, simplified)
	}
	return docs
}

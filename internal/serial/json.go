package serial

import (
	"encoding/json"

	"github.com/aledsdavies/tiny/internal/source"
	"github.com/aledsdavies/tiny/internal/tree"
)

// EncodeJSON renders a parsed tree as JSON using the node contract. A
// program with exactly one top-level statement (the common case, and
// always true in full mode) encodes as a single node object; a simplified
// program with several top-level statements encodes as a JSON array of
// node objects, since the Program wrapper that would normally hold them is
// elided.
func EncodeJSON(root *tree.Node, src *source.View, simplified bool) ([]byte, error) {
	docs := Program(root, src, simplified)
	if len(docs) == 1 {
		return json.Marshal(docs[0])
	}
	return json.Marshal(docs)
}

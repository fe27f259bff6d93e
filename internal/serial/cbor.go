package serial

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/tiny/internal/source"
	"github.com/aledsdavies/tiny/internal/tree"
)

// EncodeCBOR renders a parsed tree as CBOR, mirroring EncodeJSON's shape
// (single object, or array when simplified mode yields several top-level
// documents) but using cbor struct tags instead of json ones.
func EncodeCBOR(root *tree.Node, src *source.View, simplified bool) ([]byte, error) {
	docs := Program(root, src, simplified)
	if len(docs) == 1 {
		return cbor.Marshal(docs[0])
	}
	return cbor.Marshal(docs)
}

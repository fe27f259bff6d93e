package serial

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/tiny/internal/parser"
	"github.com/aledsdavies/tiny/internal/source"
)

func TestBuildSimplifiedTextIsValue(t *testing.T) {
	src := source.New("x := 1")
	root := parser.Parse(src.Text(), true)
	doc := Build(root, src, true)
	assert.Equal(t, "x := 1", doc.Text["value"])
}

func TestBuildFullTextIsType(t *testing.T) {
	src := source.New("x := 1")
	root := parser.Parse(src.Text(), false)
	doc := Build(root, src, false)
	assert.Equal(t, "Program", doc.Text["type"])
}

func TestProgramUnwrapsRootInSimplifiedMode(t *testing.T) {
	src := source.New("read x")
	root := parser.Parse(src.Text(), true)
	docs := Program(root, src, true)
	require.Len(t, docs, 1)
	assert.Equal(t, "read x", docs[0].Text["value"])
}

func TestProgramSurfacesEveryTopLevelStatement(t *testing.T) {
	src := source.New("read x ; write x ; y := 1")
	root := parser.Parse(src.Text(), true)
	docs := Program(root, src, true)
	require.Len(t, docs, 3)
	assert.Equal(t, "read x", docs[0].Text["value"])
	assert.Equal(t, "write x", docs[1].Text["value"])
	assert.Equal(t, "y := 1", docs[2].Text["value"])
}

func TestNestedChainFlattensIntoParentChildren(t *testing.T) {
	src := source.New("if x then read a ; write a end")
	root := parser.Parse(src.Text(), true)
	docs := Program(root, src, true)
	require.Len(t, docs, 1)

	ifStmt := docs[0]
	require.Len(t, ifStmt.Children, 3) // cond, then the then-chain flattened across two entries
	assert.Equal(t, "read a", ifStmt.Children[1].Text["value"])
	assert.Equal(t, "write a", ifStmt.Children[2].Text["value"])
}

func TestEncodeJSONSingleStatementIsObject(t *testing.T) {
	src := source.New("write 1")
	root := parser.Parse(src.Text(), true)
	data, err := EncodeJSON(root, src, true)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "HTMLclass")
}

func TestEncodeJSONMultiStatementIsArray(t *testing.T) {
	src := source.New("read x ; write x")
	root := parser.Parse(src.Text(), true)
	data, err := EncodeJSON(root, src, true)
	require.NoError(t, err)

	var arr []any
	require.NoError(t, json.Unmarshal(data, &arr))
	assert.Len(t, arr, 2)
}

func TestEncodeJSONValidatesAgainstSchema(t *testing.T) {
	src := source.New("if x then y := 1 else y := 2 end")
	root := parser.Parse(src.Text(), true)
	data, err := EncodeJSON(root, src, true)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON(data))
}

func TestEncodeJSONFullModeValidatesAgainstSchema(t *testing.T) {
	src := source.New("repeat x := x - 1 until x = 0")
	root := parser.Parse(src.Text(), false)
	data, err := EncodeJSON(root, src, false)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON(data))
}

func TestJSONAndCBORAgree(t *testing.T) {
	src := source.New("x := 1 + 2 * 3")
	root := parser.Parse(src.Text(), true)

	jsonBytes, err := EncodeJSON(root, src, true)
	require.NoError(t, err)
	cborBytes, err := EncodeCBOR(root, src, true)
	require.NoError(t, err)

	var fromJSON, fromCBOR Node
	require.NoError(t, json.Unmarshal(jsonBytes, &fromJSON))
	require.NoError(t, cbor.Unmarshal(cborBytes, &fromCBOR))

	if diff := cmp.Diff(fromJSON, fromCBOR); diff != "" {
		t.Fatalf("JSON and CBOR encodings diverge (-json +cbor):\n%s", diff)
	}
}

func TestEncodeJSONRoundTripsThroughNodeStruct(t *testing.T) {
	src := source.New("if x then write x end")
	root := parser.Parse(src.Text(), true)
	data, err := EncodeJSON(root, src, true)
	require.NoError(t, err)

	var decoded Node
	require.NoError(t, json.Unmarshal(data, &decoded))

	reencoded, err := json.Marshal(&decoded)
	require.NoError(t, err)

	var roundTripped Node
	require.NoError(t, json.Unmarshal(reencoded, &roundTripped))
	if diff := cmp.Diff(decoded, roundTripped); diff != "" {
		t.Fatalf("round-trip through Node diverged:\n%s", diff)
	}
}

package serial

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// nodeSchemaJSON describes a single serialized node. "children" recurses
// into itself, so a node with no children is valid and a deeply nested tree
// validates just as well as a single statement would.
const nodeSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$id": "https://tiny.invalid/schema/node.json",
	"title": "tiny-node",
	"type": "object",
	"required": ["text", "pseudo", "span", "children", "HTMLclass"],
	"properties": {
		"text": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"pseudo": {"type": "boolean"},
		"span": {
			"type": "array",
			"items": {"type": "integer", "minimum": 0},
			"minItems": 2,
			"maxItems": 2
		},
		"children": {
			"type": "array",
			"items": {"$ref": "#"}
		},
		"HTMLclass": {"type": "string"}
	}
}`

const nodeSchemaID = "https://tiny.invalid/schema/node.json"

// compileNodeSchema compiles the node schema fresh on every call. Schema
// compilation is cheap relative to a CLI invocation's lifetime and keeps
// this package free of package-level mutable state.
func compileNodeSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(nodeSchemaID, strings.NewReader(nodeSchemaJSON)); err != nil {
		return nil, fmt.Errorf("serial: add schema resource: %w", err)
	}
	schema, err := c.Compile(nodeSchemaID)
	if err != nil {
		return nil, fmt.Errorf("serial: compile schema: %w", err)
	}
	return schema, nil
}

// ValidateJSON checks that data — the output of EncodeJSON, a single node
// object or an array of them — conforms to the node contract. Used by this
// package's tests; neither the encoders nor the CLI driver call it.
func ValidateJSON(data []byte) error {
	schema, err := compileNodeSchema()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("serial: decode json: %w", err)
	}

	if arr, ok := v.([]any); ok {
		for i, item := range arr {
			if err := schema.Validate(item); err != nil {
				return fmt.Errorf("serial: document %d: %w", i, err)
			}
		}
		return nil
	}
	return schema.Validate(v)
}

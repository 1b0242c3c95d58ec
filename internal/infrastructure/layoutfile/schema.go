package layoutfile

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

// Schema returns the JSON schema of a layout document. Readers are more
// tolerant than the schema: unknown node types are replaced on load.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t != reflect.TypeOf(entity.StringOrList{}) {
				return nil
			}
			return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			}}
		},
	}
	schema := r.Reflect(&entity.LayoutDescription{})
	schema.ID = "https://github.com/bnema/dumbterm/layout.schema.json"
	schema.Title = "dumbterm Layout"

	if node, ok := schema.Definitions["LayoutNode"]; ok {
		if typ, ok := node.Properties.Get("type"); ok {
			typ.Enum = []any{
				entity.LayoutTypeTerminal,
				entity.LayoutTypeHSplit,
				entity.LayoutTypeVSplit,
				entity.LayoutTypeNotebook,
			}
		}
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout schema: %w", err)
	}
	return data, nil
}

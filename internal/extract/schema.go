package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildExtractionJSONSchema returns the wire contract for one recognized
// page (JSON-Schema draft 2020-12 subset) as a generic map. It is sent to
// the vision model as a structured-output constraint and used locally to
// validate what actually came back.
func BuildExtractionJSONSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}
	nullableNumber := map[string]any{"type": []string{"number", "string", "null"}}

	party := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"name": nullableString,
			"inn":  nullableNumber,
		},
	}

	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":     map[string]any{"type": "string"},
			"unit":     nullableString,
			"qty":      nullableNumber,
			"price":    nullableNumber,
			"sum":      nullableNumber,
			"vat_rate": nullableString,
		},
		"required": []string{"name"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"doc_type": map[string]any{
				"type": "string",
				"enum": []string{"upd", "receipt", "act", "cash_order", "other", "unknown"},
			},
			"has_qr":       map[string]any{"type": "boolean"},
			"doc_number":   nullableNumber,
			"date":         nullableString,
			"supplier":     party,
			"buyer":        party,
			"items":        map[string]any{"type": "array", "items": item},
			"total_amount": nullableNumber,
			"page_number":  map[string]any{"type": "integer", "minimum": 1},
			"total_pages":  map[string]any{"type": "integer", "minimum": 1},
			"group_key":    nullableString,
			"quality_check": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"confidence_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"warnings":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"required": []string{"doc_type", "items"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

package llm

import "github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"

// BuildFieldSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We use it locally to validate what the model returned before accepting it.
// Every field is a string; missing values come back as "".
func BuildFieldSchema(dt constants.DocType) map[string]any {
	props := map[string]any{}
	for _, key := range constants.FieldKeys(dt) {
		props[key] = map[string]any{"type": "string"}
	}
	// No required list: absent keys are filled with "" when parsing, and
	// extra keys the model invents are dropped there too.
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties":           props,
	}
}

package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
)

// ParseFieldMap decodes a raw JSON object into a FieldMap for the given
// document type. The parse is strict about shape but lenient about content:
// every declared field is present in the result (missing → ""), unknown
// keys are dropped, numbers are coerced to their literal string form, and
// nulls become "". An open map is never passed downstream.
func ParseFieldMap(dt constants.DocType, raw []byte) (FieldMap, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode field payload: %w", err)
	}

	out := make(FieldMap, len(constants.FieldKeys(dt)))
	for _, k := range constants.FieldKeys(dt) {
		out[k] = coerce(m[k])
	}
	return out, nil
}

func coerce(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		// encoding/json decodes untyped numbers as float64; totals and
		// serials are integral, so render without an exponent.
		return fmt.Sprintf("%.0f", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}

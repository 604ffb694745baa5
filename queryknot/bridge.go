package queryknot

import (
	"fmt"
	"math"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Conversions between QueryKnot text and JSON/YAML. These are the direct
// structural mappings promised by the format: once the nested mapping
// exists, both directions are mechanical. Nested collections on the
// incoming side are rejected, since QueryKnot cannot represent them.

// FromJSON converts a JSON object to canonical QueryKnot text.
func FromJSON(data []byte) (string, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("decode json: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return "", fmt.Errorf("queryknot: JSON root must be an object, got %T", v)
	}
	return Serialize(normalizeNumbers(m).(map[string]any))
}

// ToJSON converts QueryKnot text to a JSON object.
func ToJSON(text string) ([]byte, error) {
	m, err := ParseToMap(text)
	if err != nil {
		return nil, err
	}
	out, err := gojson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

// ToJSONIndent converts QueryKnot text to indented JSON.
func ToJSONIndent(text string) ([]byte, error) {
	m, err := ParseToMap(text)
	if err != nil {
		return nil, err
	}
	out, err := gojson.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

// FromYAML converts a YAML mapping to canonical QueryKnot text.
func FromYAML(data []byte) (string, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("decode yaml: %w", err)
	}
	return Serialize(m)
}

// ToYAML converts QueryKnot text to a YAML mapping.
func ToYAML(text string) ([]byte, error) {
	m, err := ParseToMap(text)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// normalizeNumbers walks a decoded JSON tree and converts integer-looking
// float64 values to int64, so `25` survives a JSON round trip as an
// integer. JSON has one number type; QueryKnot distinguishes.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && x >= -(1<<53) && x <= 1<<53 {
			return int64(x)
		}
		return x
	case map[string]any:
		for k, item := range x {
			x[k] = normalizeNumbers(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = normalizeNumbers(item)
		}
		return x
	default:
		return v
	}
}

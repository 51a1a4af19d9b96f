package tools

import (
	"fmt"

	"yuki/internal/domain/entity"
)

// Decoded action_input JSON arrives as map[string]any with float64
// numbers. The helpers below normalize the common shapes; required
// parameters are each tool's job to enforce.

func stringParam(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func intParam(params map[string]any, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func boolParam(params map[string]any, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// pointParam decodes a [x, y] coordinate pair.
func pointParam(params map[string]any, key string) (entity.Point, error) {
	raw, ok := params[key]
	if !ok {
		return entity.Point{}, fmt.Errorf("missing %q parameter", key)
	}
	arr, ok := raw.([]any)
	if !ok || len(arr) != 2 {
		return entity.Point{}, fmt.Errorf("%q must be a [x, y] pair", key)
	}
	x, okX := toInt(arr[0])
	y, okY := toInt(arr[1])
	if !okX || !okY {
		return entity.Point{}, fmt.Errorf("%q must contain two numbers", key)
	}
	return entity.Point{X: x, Y: y}, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// locSchema is the shared JSON schema fragment for coordinate pairs.
func locSchema(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "integer"},
		"minItems":    2,
		"maxItems":    2,
		"description": description,
	}
}

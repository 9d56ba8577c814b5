package normalization

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// asMap returns v as a JSON object, or nil when v is anything else.
func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// asString renders scalar JSON values as text. Objects and arrays give "".
func asString(v interface{}) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return ""
	}
}

// asInt accepts numbers and numeric strings; anything else is 0.
func asInt(v interface{}) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0
		}
		return int(parsed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

// firstString returns the first non-blank scalar among keys in m.
func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := asString(m[key]); value != "" {
			return value
		}
	}
	return ""
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

package normalization

import (
	"regexp"
	"sort"
	"strings"
)

// Separators are comma, period, semicolon and the words "or"/"and" between whitespace.
var symptomSeparator = regexp.MustCompile(`,|\.|;|\s(?:or|and)\s`)

const maxObjectDepth = 4

// SplitSymptoms turns a list, a free text string or an object holding either
// into an ordered list of non-empty symptom strings. It never fails: shapes it
// cannot read yield an empty list.
func SplitSymptoms(input interface{}) []string {
	return splitSymptoms(input, 0)
}

func splitSymptoms(input interface{}, depth int) []string {
	switch value := input.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanList(value)
	case []interface{}:
		items := make([]string, 0, len(value))
		for _, item := range value {
			items = append(items, asString(item))
		}
		return cleanList(items)
	case string:
		return splitText(value)
	case map[string]interface{}:
		if depth >= maxObjectDepth {
			return []string{}
		}
		return splitObject(value, depth+1)
	default:
		return []string{}
	}
}

func splitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	return cleanList(symptomSeparator.Split(text, -1))
}

func splitObject(object map[string]interface{}, depth int) []string {
	if value, ok := object["symptoms"]; ok {
		if symptoms := splitSymptoms(value, depth); len(symptoms) > 0 {
			return symptoms
		}
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		if key == "symptoms" {
			continue
		}
		if strings.Contains(key, "symptom") || key == "description" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		if symptoms := splitSymptoms(object[key], depth); len(symptoms) > 0 {
			return symptoms
		}
	}
	return []string{}
}

func cleanList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// SplitMedications accepts a list or a comma/semicolon separated string.
// Periods are kept since doses like "2.5mg" use them.
func SplitMedications(input interface{}) []string {
	switch value := input.(type) {
	case string:
		return cleanList(strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ';'
		}))
	case []string, []interface{}:
		return splitSymptoms(value, 0)
	default:
		return []string{}
	}
}

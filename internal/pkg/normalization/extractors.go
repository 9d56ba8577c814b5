package normalization

// SymptomExtractor reads symptoms from one known location of a detail record.
// ok is false when the location is absent or holds nothing usable.
type SymptomExtractor interface {
	ExtractSymptoms(record map[string]interface{}) (symptoms []string, ok bool)
}

// FieldExtractor reads a top level field.
type FieldExtractor struct {
	Field string
}

func (e FieldExtractor) ExtractSymptoms(record map[string]interface{}) ([]string, bool) {
	value, exists := record[e.Field]
	if !exists {
		return nil, false
	}
	symptoms := SplitSymptoms(value)
	return symptoms, len(symptoms) > 0
}

// NestedExtractor reads symptoms, or the misspelled symtoms, from a wrapper object.
type NestedExtractor struct {
	Wrapper string
}

func (e NestedExtractor) ExtractSymptoms(record map[string]interface{}) ([]string, bool) {
	nested := asMap(record[e.Wrapper])
	if nested == nil {
		return nil, false
	}
	for _, field := range []string{"symptoms", "symtoms"} {
		if symptoms, ok := (FieldExtractor{Field: field}).ExtractSymptoms(nested); ok {
			return symptoms, true
		}
	}
	return nil, false
}

// SymptomChain tries each extractor in order; the first non-empty result wins.
type SymptomChain []SymptomExtractor

// DefaultSymptomChain is the precedence the upstream backend needs: the
// misspelled top level field, a patientRecord wrapper, the correctly spelled
// top level field, then a record wrapper.
var DefaultSymptomChain = SymptomChain{
	FieldExtractor{Field: "symtoms"},
	NestedExtractor{Wrapper: "patientRecord"},
	FieldExtractor{Field: "symptoms"},
	NestedExtractor{Wrapper: "record"},
}

func (c SymptomChain) Extract(record map[string]interface{}) []string {
	if record == nil {
		return []string{}
	}
	for _, extractor := range c {
		if symptoms, ok := extractor.ExtractSymptoms(record); ok {
			return symptoms
		}
	}
	return []string{}
}

// UnwrapRecord locates the detail record inside a patientRecord response.
// Lookup order: patientRecord, record, data.patientRecord, data.record and
// finally the response itself.
func UnwrapRecord(response interface{}) map[string]interface{} {
	root := asMap(response)
	if root == nil {
		return map[string]interface{}{}
	}
	if record := asMap(root["patientRecord"]); record != nil {
		return record
	}
	if record := asMap(root["record"]); record != nil {
		return record
	}
	if data := asMap(root["data"]); data != nil {
		if record := asMap(data["patientRecord"]); record != nil {
			return record
		}
		if record := asMap(data["record"]); record != nil {
			return record
		}
	}
	return root
}

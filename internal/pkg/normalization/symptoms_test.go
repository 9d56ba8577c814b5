package normalization

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestSplitSymptoms(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
		{
			name:  "string list passes through trimmed",
			input: []interface{}{" Headache", "Dizziness ", "", 42.0},
			want:  []string{"Headache", "Dizziness", "42"},
		},
		{
			name:  "typed string list",
			input: []string{"Fatigue", "  "},
			want:  []string{"Fatigue"},
		},
		{
			name:  "comma separated",
			input: "Headache, Dizziness, Shortness of breath",
			want:  []string{"Headache", "Dizziness", "Shortness of breath"},
		},
		{
			name:  "mixed separators",
			input: "fever; cough. fatigue or chills and nausea",
			want:  []string{"fever", "cough", "fatigue", "chills", "nausea"},
		},
		{
			name:  "words containing or and and are kept",
			input: "sore throat, hand tremor",
			want:  []string{"sore throat", "hand tremor"},
		},
		{
			name:  "separators only",
			input: " , ; . ",
			want:  []string{},
		},
		{
			name:  "blank string",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "object with symptoms string",
			input: map[string]interface{}{"symptoms": "thirst, fatigue"},
			want:  []string{"thirst", "fatigue"},
		},
		{
			name:  "object with key containing symptom",
			input: map[string]interface{}{"main_symptom_text": "lump; pain"},
			want:  []string{"lump", "pain"},
		},
		{
			name:  "object with description",
			input: map[string]interface{}{"note": "ignored", "description": "blurred vision"},
			want:  []string{"blurred vision"},
		},
		{
			name:  "nested object is searched recursively",
			input: map[string]interface{}{"symptoms": map[string]interface{}{"description": "palpitations"}},
			want:  []string{"palpitations"},
		},
		{
			name:  "object without symptom keys",
			input: map[string]interface{}{"note": "nothing here"},
			want:  []string{},
		},
		{
			name:  "unsupported scalar",
			input: true,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSymptoms(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitSymptoms_Idempotent(t *testing.T) {
	inputs := []string{
		"Headache, Dizziness, Shortness of breath",
		"fever;cough.fatigue",
		"pain or swelling and redness",
		"or, and, .; ,",
		"lump in breast, nipple discharge and skin dimpling",
		"x,or y",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := SplitSymptoms(input)
			assert.Equal(t, first, SplitSymptoms(first), "splitting a split list should be a no-op")

			for _, fragment := range first {
				assert.NotEmpty(t, fragment, "fragments should never be empty")
				assert.Equal(t, []string{fragment}, SplitSymptoms(fragment), "re-splitting a fragment should return it unchanged")
			}
		})
	}
}

func TestSplitSymptoms_DepthLimit(t *testing.T) {
	var nested interface{} = "deep symptom"
	for i := 0; i < maxObjectDepth+2; i++ {
		nested = map[string]interface{}{"symptoms": nested}
	}

	assert.Equal(t, []string{}, SplitSymptoms(nested), "objects nested past the depth limit should yield nothing")
}

func TestSplitSymptoms_DecodedJSON(t *testing.T) {
	var payload interface{}
	err := json.Unmarshal([]byte(`{"symptoms":["Increased thirst","Frequent urination"]}`), &payload)
	assert.NoError(t, err)

	assert.Equal(t, []string{"Increased thirst", "Frequent urination"}, SplitSymptoms(payload))
}

func TestSplitMedications(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{name: "list", input: []interface{}{"Metformin", "Insulin"}, want: []string{"Metformin", "Insulin"}},
		{name: "string keeps dose periods", input: "Amlodipine 2.5mg, Lisinopril; Aspirin", want: []string{"Amlodipine 2.5mg", "Lisinopril", "Aspirin"}},
		{name: "missing", input: nil, want: []string{}},
		{name: "object", input: map[string]interface{}{"name": "x"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMedications(tt.input))
		})
	}
}

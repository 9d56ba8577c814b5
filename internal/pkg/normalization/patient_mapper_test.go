package normalization

import (
	"testing"

	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBasic(t *testing.T, raw string) responses.PatientBasic {
	t.Helper()
	var basic responses.PatientBasic
	require.NoError(t, json.Unmarshal([]byte(raw), &basic))
	return basic
}

func decodeAny(t *testing.T, raw string) interface{} {
	t.Helper()
	var payload interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalizePatient_NoDetail(t *testing.T) {
	basic := decodeBasic(t, `{"id": 7, "name": "", "age": "41", "mobnumber": "", "gender": "", "doctor": ""}`)

	patient := NormalizePatient(basic, nil)

	assert.Equal(t, "7", patient.ID)
	assert.Equal(t, 41, patient.Age)
	assert.Equal(t, constvars.PatientUnknownName, patient.Name)
	assert.Equal(t, constvars.PatientUnknownGender, patient.Gender)
	assert.Equal(t, constvars.PatientUnknownDisease, patient.Disease)
	assert.Equal(t, constvars.PatientUnknownTreatment, patient.Treatment)
	assert.Equal(t, constvars.PatientUnknownContact, patient.ContactNumber)
	assert.Equal(t, constvars.PatientUnassignedDoctor, patient.DoctorAssigned)
	assert.NotNil(t, patient.Symptoms, "symptoms should be an empty list")
	assert.Empty(t, patient.Symptoms)
	assert.NotNil(t, patient.Medications, "medications should be an empty list")
	assert.Empty(t, patient.Medications)
	assert.Nil(t, patient.LastVisit)
	assert.Nil(t, patient.NextVisit)

	encoded, err := json.Marshal(patient)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"symptoms":[]`)
	assert.Contains(t, string(encoded), `"medications":[]`)
}

func TestNormalizePatient_WithDetail(t *testing.T) {
	basic := decodeBasic(t, `{
		"id": "1",
		"name": "John Doe",
		"age": 45,
		"mobnumber": "555-123-4567",
		"gender": "Male",
		"doctor": "Dr. Sarah Johnson",
		"last_visit": "2025-03-10",
		"next_visit": ""
	}`)

	tests := []struct {
		name   string
		detail string
	}{
		{
			name:   "patientRecord wrapper",
			detail: `{"patientRecord": {"disease": "Hypertension", "symtoms": "Headache, Dizziness", "treatment": "Diet", "medications": ["Lisinopril"]}}`,
		},
		{
			name:   "data.record wrapper",
			detail: `{"data": {"record": {"disease": "Hypertension", "symptoms": ["Headache", "Dizziness"], "treatment": "Diet", "medications": "Lisinopril"}}}`,
		},
		{
			name:   "flat record",
			detail: `{"disease": "Hypertension", "symptoms": {"description": "Headache and Dizziness"}, "treatment": "Diet", "medications": ["Lisinopril"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patient := NormalizePatient(basic, decodeAny(t, tt.detail))

			assert.Equal(t, "1", patient.ID)
			assert.Equal(t, "John Doe", patient.Name)
			assert.Equal(t, 45, patient.Age)
			assert.Equal(t, "Hypertension", patient.Disease)
			assert.Equal(t, []string{"Headache", "Dizziness"}, patient.Symptoms)
			assert.Equal(t, []string{"Lisinopril"}, patient.Medications)
			assert.Equal(t, "Diet", patient.Treatment)
			assert.Equal(t, "555-123-4567", patient.ContactNumber)
			assert.Equal(t, "Dr. Sarah Johnson", patient.DoctorAssigned)
			require.NotNil(t, patient.LastVisit)
			assert.Equal(t, "2025-03-10", *patient.LastVisit)
			assert.Nil(t, patient.NextVisit, "blank visit dates should stay absent")
		})
	}
}

func TestNormalizePatient_MisspelledFieldPrecedence(t *testing.T) {
	basic := decodeBasic(t, `{"id": "3", "name": "Jane"}`)
	detail := decodeAny(t, `{
		"symtoms": "misspelled wins",
		"symptoms": "canonical",
		"record": {"symptoms": "nested wrapper"}
	}`)

	patient := NormalizePatient(basic, detail)

	assert.Equal(t, []string{"misspelled wins"}, patient.Symptoms)
}

func TestNormalizePatient_MalformedDetail(t *testing.T) {
	basic := decodeBasic(t, `{"id": "4", "name": "Ann"}`)

	for _, detail := range []interface{}{"oops", 12.0, []interface{}{"a"}, map[string]interface{}{"symptoms": 3.0}} {
		patient := NormalizePatient(basic, detail)
		assert.Equal(t, constvars.PatientUnknownDisease, patient.Disease)
		assert.Equal(t, []string{}, patient.Medications)
	}
}

func TestPatientFromData(t *testing.T) {
	t.Run("canonical names", func(t *testing.T) {
		data := decodeAny(t, `{
			"id": "9",
			"name": "Eve",
			"age": 30,
			"gender": "Female",
			"disease": "Breast Cancer",
			"symptoms": ["Lump"],
			"medications": ["Tamoxifen"],
			"treatment": "Surgery",
			"contact_number": "555",
			"doctor_assigned": "Dr. Who",
			"next_visit": "2030-01-01"
		}`)

		patient := PatientFromData(data)

		assert.Equal(t, "9", patient.ID)
		assert.Equal(t, "Eve", patient.Name)
		assert.Equal(t, 30, patient.Age)
		assert.Equal(t, "Breast Cancer", patient.Disease)
		assert.Equal(t, []string{"Lump"}, patient.Symptoms)
		assert.Equal(t, []string{"Tamoxifen"}, patient.Medications)
		assert.Equal(t, "555", patient.ContactNumber)
		assert.Equal(t, "Dr. Who", patient.DoctorAssigned)
		require.NotNil(t, patient.NextVisit)
		assert.Equal(t, "2030-01-01", *patient.NextVisit)
	})

	t.Run("backend names with nested record", func(t *testing.T) {
		data := decodeAny(t, `{
			"id": 11,
			"name": "Sam",
			"age": "52",
			"mobnumber": "555-000",
			"doctor": "Dr. Lee",
			"record": {"disease": "Hypertension", "symtoms": "Headache"}
		}`)

		patient := PatientFromData(data)

		assert.Equal(t, "11", patient.ID)
		assert.Equal(t, 52, patient.Age)
		assert.Equal(t, "555-000", patient.ContactNumber)
		assert.Equal(t, "Dr. Lee", patient.DoctorAssigned)
		assert.Equal(t, "Hypertension", patient.Disease)
		assert.Equal(t, []string{"Headache"}, patient.Symptoms)
		assert.Equal(t, constvars.PatientUnknownGender, patient.Gender)
	})

	t.Run("nil data", func(t *testing.T) {
		patient := PatientFromData(nil)

		assert.Equal(t, "", patient.ID)
		assert.Equal(t, constvars.PatientUnknownName, patient.Name)
		assert.Equal(t, []string{}, patient.Symptoms)
	})
}

func TestNormalizePatient_SymptomChainRunsOnWholeResponse(t *testing.T) {
	basic := decodeBasic(t, `{"id": "5", "name": "Ray"}`)

	t.Run("patientRecord wrapper beats top level symptoms", func(t *testing.T) {
		detail := decodeAny(t, `{
			"symptoms": "canonical",
			"patientRecord": {"symtoms": "wrapped", "disease": "Hypertension"}
		}`)
		patient := NormalizePatient(basic, detail)
		assert.Equal(t, []string{"wrapped"}, patient.Symptoms)
		assert.Equal(t, "Hypertension", patient.Disease, "clinical fields still come from the wrapper")
	})

	t.Run("top level symptoms beat record wrapper", func(t *testing.T) {
		detail := decodeAny(t, `{
			"symptoms": "canonical",
			"record": {"symptoms": "nested wrapper", "treatment": "Rest"}
		}`)
		patient := NormalizePatient(basic, detail)
		assert.Equal(t, []string{"canonical"}, patient.Symptoms)
		assert.Equal(t, "Rest", patient.Treatment)
	})

	t.Run("falls back to the unwrapped record", func(t *testing.T) {
		detail := decodeAny(t, `{"data": {"record": {"symptoms": "Fatigue"}}}`)
		patient := NormalizePatient(basic, detail)
		assert.Equal(t, []string{"Fatigue"}, patient.Symptoms)
	})
}

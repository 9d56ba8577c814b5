package normalization

import (
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
)

// NormalizePatient merges a listing record with its detail payload. detail may
// be nil or any decoded JSON shape; unreadable parts fall back to sentinels.
func NormalizePatient(basic responses.PatientBasic, detail interface{}) models.Patient {
	record := UnwrapRecord(detail)

	// The chain owns the wrapper precedence, so it sees the response first.
	symptoms := DefaultSymptomChain.Extract(asMap(detail))
	if len(symptoms) == 0 {
		symptoms = DefaultSymptomChain.Extract(record)
	}

	return models.Patient{
		ID:             basic.ID.String(),
		Name:           orDefault(basic.Name, constvars.PatientUnknownName),
		Age:            basic.Age.Int(),
		Gender:         orDefault(basic.Gender, constvars.PatientUnknownGender),
		Disease:        orDefault(firstString(record, "disease"), constvars.PatientUnknownDisease),
		Symptoms:       symptoms,
		Medications:    SplitMedications(record["medications"]),
		Treatment:      orDefault(firstString(record, "treatment"), constvars.PatientUnknownTreatment),
		LastVisit:      optionalPointer(basic.LastVisit),
		NextVisit:      optionalPointer(basic.NextVisit),
		ContactNumber:  orDefault(basic.MobNumber, constvars.PatientUnknownContact),
		DoctorAssigned: orDefault(basic.Doctor, constvars.PatientUnassignedDoctor),
	}
}

// PatientFromData builds a Patient from the data object of a mutation
// envelope. Both the canonical field names and the backend's listing names
// are accepted, and a nested record wrapper is read for clinical fields.
func PatientFromData(data interface{}) models.Patient {
	root := asMap(data)
	if root == nil {
		root = map[string]interface{}{}
	}
	record := UnwrapRecord(root)

	clinical := func(keys ...string) string {
		if value := firstString(root, keys...); value != "" {
			return value
		}
		return firstString(record, keys...)
	}

	symptoms := DefaultSymptomChain.Extract(root)
	if len(symptoms) == 0 {
		symptoms = DefaultSymptomChain.Extract(record)
	}

	medications := SplitMedications(root["medications"])
	if len(medications) == 0 {
		medications = SplitMedications(record["medications"])
	}

	return models.Patient{
		ID:             firstString(root, "id", "patient_id", "_id"),
		Name:           orDefault(firstString(root, "name"), constvars.PatientUnknownName),
		Age:            asInt(root["age"]),
		Gender:         orDefault(firstString(root, "gender"), constvars.PatientUnknownGender),
		Disease:        orDefault(clinical("disease"), constvars.PatientUnknownDisease),
		Symptoms:       symptoms,
		Medications:    medications,
		Treatment:      orDefault(clinical("treatment"), constvars.PatientUnknownTreatment),
		LastVisit:      optionalString(firstString(root, "last_visit", "lastVisit")),
		NextVisit:      optionalString(firstString(root, "next_visit", "nextAppointment", "next_appointment")),
		ContactNumber:  orDefault(firstString(root, "contact_number", "contactNumber", "mobnumber", "mobile_number"), constvars.PatientUnknownContact),
		DoctorAssigned: orDefault(firstString(root, "doctor_assigned", "doctor_Assigned", "doctor"), constvars.PatientUnassignedDoctor),
	}
}

func optionalPointer(value *string) *string {
	if value == nil {
		return nil
	}
	return optionalString(*value)
}

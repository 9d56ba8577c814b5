package patients

import (
	"sort"
	"strings"
	"time"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/normalization"
)

// FilterPatients applies the dashboard search, disease filter and sort. The
// input slice is not modified.
func FilterPatients(patients []models.Patient, filter requests.PatientFilter) []models.Patient {
	result := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if !patient.Matches(filter.Search, filter.AdminScope) {
			continue
		}
		if filter.Disease != "" && patient.Disease != filter.Disease {
			continue
		}
		result = append(result, patient)
	}

	switch filter.SortBy {
	case constvars.PatientSortByName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	case constvars.PatientSortByAge:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Age < result[j].Age
		})
	case constvars.PatientSortByDisease:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Disease) < strings.ToLower(result[j].Disease)
		})
	}
	return result
}

func ComputeStats(patients []models.Patient, now time.Time) models.PatientStats {
	stats := models.PatientStats{Total: len(patients)}
	for _, patient := range patients {
		switch patient.Gender {
		case constvars.GenderMale:
			stats.Male++
		case constvars.GenderFemale:
			stats.Female++
		}
		if patient.HasUpcomingVisit(now) {
			stats.Upcoming++
		}
	}
	return stats
}

// UniqueDiseases lists each disease once, in first-seen order.
func UniqueDiseases(patients []models.Patient) []string {
	seen := make(map[string]struct{}, len(patients))
	diseases := make([]string, 0, len(patients))
	for _, patient := range patients {
		if _, ok := seen[patient.Disease]; ok {
			continue
		}
		seen[patient.Disease] = struct{}{}
		diseases = append(diseases, patient.Disease)
	}
	return diseases
}

func patientFromRequest(patientID string, request *requests.PatientRequest) models.Patient {
	return models.Patient{
		ID:             patientID,
		Name:           valueOr(request.Name, constvars.PatientUnknownName),
		Age:            request.Age,
		Gender:         valueOr(request.Gender, constvars.PatientUnknownGender),
		Disease:        valueOr(request.Disease, constvars.PatientUnknownDisease),
		Symptoms:       nonNil(request.Symptoms),
		Medications:    nonNil(request.Medications),
		Treatment:      valueOr(request.Treatment, constvars.PatientUnknownTreatment),
		LastVisit:      request.LastVisit,
		NextVisit:      request.NextVisit,
		ContactNumber:  valueOr(request.ContactNumber, constvars.PatientUnknownContact),
		DoctorAssigned: valueOr(request.DoctorAssigned, constvars.PatientUnassignedDoctor),
	}
}

// mergePatient overlays what the backend echoed back on top of what was
// submitted. Fields the backend left out keep the submitted values.
func mergePatient(submitted models.Patient, data interface{}) models.Patient {
	if data == nil {
		return submitted
	}
	echoed := normalization.PatientFromData(data)

	merged := submitted
	if echoed.ID != "" {
		merged.ID = echoed.ID
	}
	merged.Name = overlay(merged.Name, echoed.Name, constvars.PatientUnknownName)
	merged.Gender = overlay(merged.Gender, echoed.Gender, constvars.PatientUnknownGender)
	merged.Disease = overlay(merged.Disease, echoed.Disease, constvars.PatientUnknownDisease)
	merged.Treatment = overlay(merged.Treatment, echoed.Treatment, constvars.PatientUnknownTreatment)
	merged.ContactNumber = overlay(merged.ContactNumber, echoed.ContactNumber, constvars.PatientUnknownContact)
	merged.DoctorAssigned = overlay(merged.DoctorAssigned, echoed.DoctorAssigned, constvars.PatientUnassignedDoctor)
	if echoed.Age > 0 {
		merged.Age = echoed.Age
	}
	if len(echoed.Symptoms) > 0 {
		merged.Symptoms = echoed.Symptoms
	}
	if len(echoed.Medications) > 0 {
		merged.Medications = echoed.Medications
	}
	if echoed.LastVisit != nil {
		merged.LastVisit = echoed.LastVisit
	}
	if echoed.NextVisit != nil {
		merged.NextVisit = echoed.NextVisit
	}
	return merged
}

func overlay(current, echoed, sentinel string) string {
	if echoed == "" || echoed == sentinel {
		return current
	}
	return echoed
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

package responses

import "patient-records-service/internal/app/models"

// PatientBasic is a record from the bulk listing endpoint.
type PatientBasic struct {
	ID        FlexibleString `json:"id"`
	Name      string         `json:"name"`
	Age       FlexibleInt    `json:"age"`
	MobNumber string         `json:"mobnumber"`
	Gender    string         `json:"gender"`
	Doctor    string         `json:"doctor"`
	LastVisit *string        `json:"last_visit,omitempty"`
	NextVisit *string        `json:"next_visit,omitempty"`
}

// PatientListing is the body of GET /patient_all; some deployments use "data".
type PatientListing struct {
	Patients []PatientBasic `json:"patients"`
	Data     []PatientBasic `json:"data,omitempty"`
}

func (l PatientListing) Records() []PatientBasic {
	if len(l.Patients) > 0 {
		return l.Patients
	}
	if l.Data != nil {
		return l.Data
	}
	return []PatientBasic{}
}

// UpstreamEnvelope wraps single-resource CRUD responses.
type UpstreamEnvelope struct {
	Status  string      `json:"status,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type PatientProfile struct {
	Patient        models.Patient   `json:"patient"`
	Remedies       *models.Remedies `json:"remedies"`
	RemediesNotice string           `json:"remedies_notice,omitempty"`
}

type PatientList struct {
	Patients []models.Patient `json:"patients"`
	Total    int              `json:"total"`
}

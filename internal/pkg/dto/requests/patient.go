package requests

// PatientRequest is the admin form payload for create and update.
type PatientRequest struct {
	Name           string   `json:"name" validate:"required,not_blank,max=120"`
	Age            int      `json:"age" validate:"gte=0,lte=150"`
	Gender         string   `json:"gender" validate:"required,oneof=Male Female Other"`
	Disease        string   `json:"disease" validate:"max=200"`
	Symptoms       []string `json:"symptoms" validate:"dive,required"`
	Medications    []string `json:"medications" validate:"dive,required"`
	Treatment      string   `json:"treatment"`
	ContactNumber  string   `json:"contact_number" validate:"max=32"`
	DoctorAssigned string   `json:"doctor_assigned" validate:"required,not_blank"`
	LastVisit      *string  `json:"last_visit,omitempty"`
	NextVisit      *string  `json:"next_visit,omitempty"`
}

// UpstreamPatientPayload is the body sent to POST/PUT /patient using the
// backend's own field names.
type UpstreamPatientPayload struct {
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	MobNumber   string   `json:"mobnumber"`
	Gender      string   `json:"gender"`
	Doctor      string   `json:"doctor"`
	Disease     string   `json:"disease,omitempty"`
	Symptoms    []string `json:"symptoms"`
	Medications []string `json:"medications"`
	Treatment   string   `json:"treatment,omitempty"`
	LastVisit   *string  `json:"last_visit,omitempty"`
	NextVisit   *string  `json:"next_visit,omitempty"`
}

func (r *PatientRequest) ToUpstreamPayload() *UpstreamPatientPayload {
	payload := &UpstreamPatientPayload{
		Name:        r.Name,
		Age:         r.Age,
		MobNumber:   r.ContactNumber,
		Gender:      r.Gender,
		Doctor:      r.DoctorAssigned,
		Disease:     r.Disease,
		Symptoms:    r.Symptoms,
		Medications: r.Medications,
		Treatment:   r.Treatment,
		LastVisit:   r.LastVisit,
		NextVisit:   r.NextVisit,
	}
	if payload.Symptoms == nil {
		payload.Symptoms = []string{}
	}
	if payload.Medications == nil {
		payload.Medications = []string{}
	}
	return payload
}

type PatientFilter struct {
	Search     string
	Disease    string
	SortBy     string
	AdminScope bool
}
